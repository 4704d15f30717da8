package formwidgets

import (
	"context"
	"net/url"

	"github.com/goliatone/go-formwidgets/pkg/definition"
	"github.com/goliatone/go-formwidgets/pkg/orchestrator"
	"github.com/goliatone/go-formwidgets/pkg/render"
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describes per-request locale, translator, theme and
// stylesheet overrides.
type RenderOptions = render.RenderOptions

// Request aliases the orchestrator request for callers of the root package.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the definition at path and renders it as a full page
// with the named renderer ("" selects the default html renderer).
func GenerateHTML(ctx context.Context, path, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		DefinitionPath: path,
		Renderer:       rendererName,
	})
}

// GenerateHTMLFromDocument renders a pre-parsed definition.
func GenerateHTMLFromDocument(ctx context.Context, doc definition.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// GenerateSubmitted renders the definition after processing a submission, so
// validation messages and sticky values appear in the output.
func GenerateSubmitted(ctx context.Context, path string, values url.Values, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		DefinitionPath: path,
		Values:         values,
		RenderOptions:  opts,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}
