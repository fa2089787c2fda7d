package jsonutils

import (
	"encoding/json"
	"strings"
)

// DecodeSlice attempts to decode s as a JSON array. A false return
// means s was not one; that is the normal skip-and-continue signal
// during gallery extraction, not an error.
func DecodeSlice(s string) ([]any, bool) {
	var out []any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, false
	}
	return out, true
}

// DecodeObject attempts to decode s as a JSON object.
func DecodeObject(s string) (map[string]any, bool) {
	var out map[string]any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, false
	}
	return out, true
}

// ToJSON serializes a Go value to an indented JSON string for logging.
// Returns an empty string if serialization fails.
func ToJSON(v any) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(bytes))
}
