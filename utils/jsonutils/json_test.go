package jsonutils

import "testing"

func TestDecodeSlice(t *testing.T) {
	items, ok := DecodeSlice(`[{"matches":[]},"text",3]`)
	if !ok {
		t.Fatal("expected valid array to decode")
	}
	if len(items) != 3 {
		t.Errorf("expected 3 items, got %d", len(items))
	}

	for _, bad := range []string{`{"an":"object"}`, `not json`, ``} {
		if _, ok := DecodeSlice(bad); ok {
			t.Errorf("input %q should not decode as a slice", bad)
		}
	}
}

func TestDecodeObject(t *testing.T) {
	obj, ok := DecodeObject(`{"output":"hi"}`)
	if !ok || obj["output"] != "hi" {
		t.Fatalf("expected object decode, got %v (ok=%v)", obj, ok)
	}

	if _, ok := DecodeObject(`[1,2]`); ok {
		t.Error("array input should not decode as an object")
	}
}

func TestToJSON(t *testing.T) {
	if got := ToJSON(map[string]int{"a": 1}); got == "" {
		t.Error("expected non-empty json for serializable value")
	}
	if got := ToJSON(make(chan int)); got != "" {
		t.Errorf("expected empty string for unserializable value, got %q", got)
	}
}
