package controllers

import (
	"encoding/json"
	"net/http"
)

type HealthController struct {
	appName string
}

func NewHealthController(appName string) *HealthController {
	return &HealthController{appName: appName}
}

func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"app":    h.appName,
	})
}
