package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ryklith/photo-library-chat/controllers"
)

func WebhookRoutes(ctrl *controllers.WebhookController) chi.Router {
	r := chi.NewRouter()

	// POST /api/test-webhook : fire a diagnostic payload
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		result := ctrl.Test(r.Context())
		if !result.Success {
			writeJSON(w, http.StatusBadRequest, result)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})

	// GET /api/test-webhook : configuration status, no network call
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ctrl.Status())
	})

	return r
}
