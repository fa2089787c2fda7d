// controllers/gallery.go
package controllers

import (
	"github.com/ryklith/photo-library-chat/services/gallery"
	"github.com/ryklith/photo-library-chat/types"
)

type GalleryController struct {
	extractor *gallery.Extractor
}

func NewGalleryController(extractor *gallery.Extractor) *GalleryController {
	return &GalleryController{extractor: extractor}
}

func (c *GalleryController) Filter(images []types.GalleryImage, filters types.GalleryFilters) []types.GalleryImage {
	return c.extractor.FilterImages(images, filters)
}

func (c *GalleryController) Sort(images []types.GalleryImage, sortBy string) []types.GalleryImage {
	return c.extractor.SortImages(images, sortBy)
}
