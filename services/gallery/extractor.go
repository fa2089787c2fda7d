// services/gallery/extractor.go
package gallery

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ryklith/photo-library-chat/types"
	"github.com/ryklith/photo-library-chat/utils/jsonutils"
	"github.com/ryklith/photo-library-chat/utils/logging"
)

const (
	defaultDescription = "No description available"
	defaultFilename    = "unknown.jpg"
)

// Extractor locates an embedded list of image matches inside an
// arbitrarily-shaped webhook reply and normalizes it. It never returns
// an error: an unrecognizable reply simply yields no gallery.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractGalleryData probes the reply for the known gallery shapes, in
// order, first match wins:
//  1. intermediateSteps[].observation (a JSON-encoded string) holding a
//     list of tool results with a "matches" list
//  2. a top-level gallery.images list
//  3. a gallery.images list nested under output
//
// Returns nil when no shape matches.
func (e *Extractor) ExtractGalleryData(response map[string]any) *types.GalleryData {
	if steps, ok := response["intermediateSteps"].([]any); ok {
		for _, step := range steps {
			stepMap, ok := step.(map[string]any)
			if !ok {
				continue
			}
			observation, ok := stepMap["observation"].(string)
			if !ok {
				continue
			}
			items, ok := jsonutils.DecodeSlice(observation)
			if !ok {
				// one bad observation never fails the whole extraction
				logging.AppLogger.Warn("skipping unparseable observation")
				continue
			}
			for _, item := range items {
				itemMap, ok := item.(map[string]any)
				if !ok {
					continue
				}
				if matches, ok := itemMap["matches"].([]any); ok {
					logging.AppLogger.Info("found matches in intermediate steps", zap.Int("count", len(matches)))
					return e.processMatches(matches, response["output"])
				}
			}
		}
	}

	if data := e.galleryAt(response); data != nil {
		return data
	}
	if output, ok := response["output"].(map[string]any); ok {
		if data := e.galleryAt(output); data != nil {
			return data
		}
	}

	return nil
}

// galleryAt normalizes a container's gallery.images list, carrying
// query and totalResults through verbatim.
func (e *Extractor) galleryAt(container map[string]any) *types.GalleryData {
	gallery, ok := container["gallery"].(map[string]any)
	if !ok {
		return nil
	}
	images, ok := gallery["images"].([]any)
	if !ok {
		return nil
	}

	normalized := make([]types.GalleryImage, 0, len(images))
	for _, img := range images {
		m, _ := img.(map[string]any)
		normalized = append(normalized, e.normalizeImage(m))
	}
	query, _ := gallery["query"].(string)
	return &types.GalleryData{
		Images:       normalized,
		Query:        query,
		TotalResults: int(numberField(gallery, "totalResults")),
		Timestamp:    time.Now(),
	}
}

func (e *Extractor) processMatches(matches []any, output any) *types.GalleryData {
	images := make([]types.GalleryImage, 0, len(matches))
	for _, match := range matches {
		m, _ := match.(map[string]any)
		images = append(images, e.normalizeImage(m))
	}
	query, _ := output.(string)
	return &types.GalleryData{
		Images:       images,
		Query:        query,
		TotalResults: len(matches),
		Timestamp:    time.Now(),
	}
}

// normalizeImage reshapes one raw match into the canonical record.
// Fields under metadata win over their top-level twins; missing fields
// get fixed defaults.
func (e *Extractor) normalizeImage(m map[string]any) types.GalleryImage {
	meta, _ := m["metadata"].(map[string]any)

	id := stringField(m, "id")
	if id == "" {
		id = "img-" + uuid.NewString()
	}
	originalURL := firstNonEmpty(stringField(meta, "url"), stringField(m, "url"))

	// eight semantic tag defaults, then the raw metadata overlaid so
	// source values win and extra keys pass through
	metadata := map[string]any{
		"activities":    []any{},
		"age_groups":    []any{},
		"event_type":    []any{},
		"num_people":    float64(0),
		"photo_quality": float64(0),
		"photo_setting": "",
		"mood":          float64(0),
		"objects":       []any{},
	}
	for k, v := range meta {
		metadata[k] = v
	}

	return types.GalleryImage{
		ID:          id,
		URL:         thumbnailURL(originalURL),
		OriginalURL: originalURL,
		Description: firstNonEmpty(stringField(meta, "description"), stringField(m, "description"), defaultDescription),
		Score:       numberField(m, "score"),
		Filename:    firstNonEmpty(stringField(meta, "filename"), stringField(m, "filename"), defaultFilename),
		Metadata:    metadata,
	}
}

// thumbnailURL derives the gallery thumbnail by inserting a
// "thumbnails" segment immediately before the filename. Fails soft:
// anything that does not parse as an absolute URL comes back unchanged.
func thumbnailURL(originalURL string) string {
	if originalURL == "" {
		return ""
	}
	u, err := url.Parse(originalURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return originalURL
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	parts := strings.Split(path, "/")
	last := len(parts) - 1
	rebuilt := append(append([]string{}, parts[:last]...), "thumbnails", parts[last])
	return u.Scheme + "://" + u.Host + strings.Join(rebuilt, "/")
}

// FilterImages keeps images satisfying all supplied predicates. Zero
// values in filters mean the predicate is not applied.
func (e *Extractor) FilterImages(images []types.GalleryImage, filters types.GalleryFilters) []types.GalleryImage {
	return lo.Filter(images, func(img types.GalleryImage, _ int) bool {
		if filters.MinScore != 0 && img.Score < filters.MinScore {
			return false
		}
		if filters.MaxPeople != 0 && metaNumber(img, "num_people") > filters.MaxPeople {
			return false
		}
		if len(filters.Activities) > 0 && !lo.Some(metaStrings(img, "activities"), filters.Activities) {
			return false
		}
		if len(filters.EventTypes) > 0 && !lo.Some(metaStrings(img, "event_type"), filters.EventTypes) {
			return false
		}
		return true
	})
}

// SortImages returns a new slice ordered descending by the chosen key.
// Unrecognized keys (including "date") leave the relative order as-is;
// the input is never modified.
func (e *Extractor) SortImages(images []types.GalleryImage, sortBy string) []types.GalleryImage {
	sorted := make([]types.GalleryImage, len(images))
	copy(sorted, images)

	var key func(types.GalleryImage) float64
	switch sortBy {
	case "", "score":
		key = func(img types.GalleryImage) float64 { return img.Score }
	case "people":
		key = func(img types.GalleryImage) float64 { return metaNumber(img, "num_people") }
	case "quality":
		key = func(img types.GalleryImage) float64 { return metaNumber(img, "photo_quality") }
	default:
		return sorted
	}
	sort.SliceStable(sorted, func(i, j int) bool { return key(sorted[i]) > key(sorted[j]) })
	return sorted
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func numberField(m map[string]any, key string) float64 {
	switch n := m[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func metaNumber(img types.GalleryImage, key string) float64 {
	return numberField(img.Metadata, key)
}

func metaStrings(img types.GalleryImage, key string) []string {
	switch v := img.Metadata[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
