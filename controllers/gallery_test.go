package controllers

import (
	"testing"

	"github.com/ryklith/photo-library-chat/services/gallery"
	"github.com/ryklith/photo-library-chat/types"
)

func TestGalleryControllerDelegates(t *testing.T) {
	ctrl := NewGalleryController(gallery.NewExtractor())
	images := []types.GalleryImage{{ID: "a", Score: 2}, {ID: "b", Score: 8}}

	filtered := ctrl.Filter(images, types.GalleryFilters{MinScore: 5})
	if len(filtered) != 1 || filtered[0].ID != "b" {
		t.Errorf("unexpected filter result %+v", filtered)
	}

	sorted := ctrl.Sort(images, "score")
	if sorted[0].ID != "b" || sorted[1].ID != "a" {
		t.Errorf("unexpected sort result %+v", sorted)
	}
}
