package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ryklith/photo-library-chat/controllers"
	"github.com/ryklith/photo-library-chat/types"
)

func GalleryRoutes(ctrl *controllers.GalleryController) chi.Router {
	r := chi.NewRouter()

	// POST /api/gallery/filter : keep images matching all predicates
	r.Post("/filter", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Images  []types.GalleryImage `json:"images"`
			Filters types.GalleryFilters `json:"filters"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"images": ctrl.Filter(req.Images, req.Filters),
		})
	})

	// POST /api/gallery/sort : reorder by score/people/quality
	r.Post("/sort", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Images []types.GalleryImage `json:"images"`
			SortBy string               `json:"sortBy"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"images": ctrl.Sort(req.Images, req.SortBy),
		})
	})

	return r
}
