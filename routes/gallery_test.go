package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ryklith/photo-library-chat/controllers"
	galleryservice "github.com/ryklith/photo-library-chat/services/gallery"
	"github.com/ryklith/photo-library-chat/types"
)

func galleryRouter() http.Handler {
	return GalleryRoutes(controllers.NewGalleryController(galleryservice.NewExtractor()))
}

func TestGalleryFilterRoute(t *testing.T) {
	body := `{"images":[{"id":"low","score":1},{"id":"high","score":9}],"filters":{"minScore":5}}`
	req := httptest.NewRequest("POST", "/filter", strings.NewReader(body))
	rr := httptest.NewRecorder()
	galleryRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Images []types.GalleryImage `json:"images"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Images) != 1 || resp.Images[0].ID != "high" {
		t.Errorf("unexpected filter result %+v", resp.Images)
	}
}

func TestGallerySortRoute(t *testing.T) {
	body := `{"images":[{"id":"a","score":1},{"id":"b","score":9}],"sortBy":"score"}`
	req := httptest.NewRequest("POST", "/sort", strings.NewReader(body))
	rr := httptest.NewRecorder()
	galleryRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Images []types.GalleryImage `json:"images"`
	}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if len(resp.Images) != 2 || resp.Images[0].ID != "b" {
		t.Errorf("unexpected sort result %+v", resp.Images)
	}
}

func TestGalleryFilterRouteBadBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/filter", strings.NewReader(`nope`))
	rr := httptest.NewRecorder()
	galleryRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
