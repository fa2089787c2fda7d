// types/gallery.go
package types

import "time"

// GalleryImage is one normalized image record. URL is the derived
// thumbnail, OriginalURL the source's full-resolution URL verbatim.
type GalleryImage struct {
	ID          string         `json:"id"`
	URL         string         `json:"url"`
	OriginalURL string         `json:"originalUrl"`
	Description string         `json:"description"`
	Score       float64        `json:"score"`
	Filename    string         `json:"filename"`
	Metadata    map[string]any `json:"metadata"`
}

// GalleryData is one extraction result. Timestamp is the time of
// extraction, not of the underlying search.
type GalleryData struct {
	Images       []GalleryImage `json:"images"`
	Query        string         `json:"query,omitempty"`
	TotalResults int            `json:"totalResults,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}

// GalleryFilters selects images satisfying all supplied predicates.
// Zero values mean the predicate is not applied.
type GalleryFilters struct {
	MinScore   float64  `json:"minScore,omitempty"`
	MaxPeople  float64  `json:"maxPeople,omitempty"`
	Activities []string `json:"activities,omitempty"`
	EventTypes []string `json:"eventTypes,omitempty"`
}
