package render

import (
	"context"

	"github.com/a-h/templ"
)

// Document is the unit a page renderer turns into bytes: a title plus the
// component tree (widgets, grids, cells) forming the page body.
type Document struct {
	Title string
	Body  templ.Component
}

// Renderer converts a Document into a byte representation (a full HTML page,
// a bare fragment, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, options RenderOptions) ([]byte, error)
}
