package testsupport

import (
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
)

// AssertOutline renders component and compares its element outline with want.
func AssertOutline(t *testing.T, ctx context.Context, component templ.Component, want []string) {
	t.Helper()
	got := Outline(t, Render(t, ctx, component))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("outline mismatch (-want +got):\n%s", diff)
	}
}

// AssertMarkup renders component and fails with a diff unless the output is
// exactly want.
func AssertMarkup(t *testing.T, ctx context.Context, component templ.Component, want string) {
	t.Helper()
	if got := Render(t, ctx, component); got != want {
		t.Fatalf("markup mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}
