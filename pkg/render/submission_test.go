package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHiddenFieldsWithAndSorted(t *testing.T) {
	base := HiddenFields{"version": "1", " ": "dropped"}
	merged := base.With(CSRFToken("_csrf", "token"), Hidden("version", 2), HiddenField{})

	want := []HiddenField{
		{Name: "_csrf", Value: "token"},
		{Name: "version", Value: "2"},
	}
	if diff := cmp.Diff(want, merged.Sorted()); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
	if base["version"] != "1" {
		t.Fatalf("expected With to leave the receiver untouched")
	}
}

func TestHiddenFieldsEmpty(t *testing.T) {
	var empty HiddenFields
	if got := empty.With(); got != nil {
		t.Fatalf("expected nil for empty merge, got %v", got)
	}
	if got := empty.Sorted(); got != nil {
		t.Fatalf("expected nil sorted list, got %v", got)
	}
}
