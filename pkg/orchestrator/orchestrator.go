package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/definition"
	"github.com/goliatone/go-formwidgets/pkg/grid"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/page"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
	theme "github.com/goliatone/go-theme"
)

const defaultRendererName = page.NameHTML

// Option customises the orchestrator.
type Option func(*Orchestrator)

// WithRegistry replaces the page renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.registry = registry
		}
	}
}

// WithDefaultRenderer selects the renderer used when a request names none.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) { o.defaultRenderer = name }
}

// WithPageOptions configures the built-in HTML renderer. Ignored when
// WithRegistry is used.
func WithPageOptions(opts ...page.Option) Option {
	return func(o *Orchestrator) { o.pageOptions = append(o.pageOptions, opts...) }
}

// WithBuilderOptions configures the definition builder.
func WithBuilderOptions(opts ...definition.Option) Option {
	return func(o *Orchestrator) { o.builderOptions = append(o.builderOptions, opts...) }
}

// WithThemeSelector resolves RenderOptions.Theme from a go-theme selector when
// the request does not carry an explicit theme config.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) { o.themeSelector = selector }
}

// WithLogger sets the logger handed to the builder and page renderer.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator turns definitions into rendered pages.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	pageOptions     []page.Option
	builderOptions  []definition.Option
	themeSelector   theme.ThemeSelector
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an orchestrator. Without WithRegistry the html and fragment
// page renderers are registered.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		opts := append([]page.Option{page.WithLogger(o.logger)}, o.pageOptions...)
		if err := page.Register(o.registry, opts...); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderers: %w", err)
		}
	}
	return o
}

// Request describes one render.
type Request struct {
	// DefinitionPath is read when Document is nil.
	DefinitionPath string
	Document       *definition.Document
	// Rows replaces the rows of every grid in the definition.
	Rows grid.RowSource
	// Values are processed by the component tree before rendering, as if the
	// form had been submitted.
	Values url.Values
	// Messages are server-side validation messages keyed by widget id or
	// field path. They require a form definition.
	Messages      map[string][]string
	Renderer      string
	RenderOptions render.RenderOptions
	// ThemeName and ThemeVariant are handed to the theme selector.
	ThemeName    string
	ThemeVariant string
}

// Build loads the definition and builds its component tree.
func (o *Orchestrator) Build(ctx context.Context, req Request) (widgets.Widget, *definition.Document, error) {
	if ctx == nil {
		return nil, nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	doc := req.Document
	if doc == nil {
		if req.DefinitionPath == "" {
			return nil, nil, errors.New("orchestrator: definition path or document is required")
		}
		loaded, err := definition.Load(req.DefinitionPath)
		if err != nil {
			return nil, nil, fmt.Errorf("orchestrator: %w", err)
		}
		doc = loaded
	}

	opts := append([]definition.Option{definition.WithLogger(o.logger)}, o.builderOptions...)
	if req.Rows != nil {
		opts = append(opts, definition.WithRowSource(req.Rows))
	}
	root, err := definition.NewBuilder(opts...).Build(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("orchestrator: build: %w", err)
	}
	return root, doc, nil
}

// Generate builds, processes and renders the request.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}
	root, doc, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := o.Apply(ctx, root, req); err != nil {
		return nil, err
	}
	return o.Render(ctx, root, doc.Title, req)
}

// Apply processes req.Values and attaches req.Messages.
func (o *Orchestrator) Apply(ctx context.Context, root widgets.Widget, req Request) error {
	ctx = render.WithLocalizer(ctx, req.RenderOptions.Localizer())
	if req.Values != nil {
		processor, ok := root.(widgets.Processor)
		if !ok {
			return fmt.Errorf("orchestrator: %T does not process submitted values", root)
		}
		if err := processor.Process(ctx, req.Values); err != nil {
			return fmt.Errorf("orchestrator: process: %w", err)
		}
	}
	if len(req.Messages) > 0 {
		form, ok := root.(*widgets.Form)
		if !ok {
			return fmt.Errorf("orchestrator: messages need a form definition, got %T", root)
		}
		form.ApplyMessages(req.Messages)
	}
	o.logger.Debug("applied request", "root", root.WidgetID(), "values", len(req.Values), "messages", len(req.Messages))
	return nil
}

// Render renders root with the requested page renderer.
func (o *Orchestrator) Render(ctx context.Context, root widgets.Widget, title string, req Request) ([]byte, error) {
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	opts := req.RenderOptions
	if opts.Theme == nil && o.themeSelector != nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		opts.Theme = cfg
	}
	out, err := renderer.Render(ctx, render.Document{Title: title, Body: root}, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return out, nil
}

// Renderers lists the registered page renderers.
func (o *Orchestrator) Renderers() []string {
	return o.registry.List()
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	renderer, err := o.registry.Resolve(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}
	return rendererConfig(selection), nil
}

// rendererConfig flattens a theme selection: variant tokens, templates and
// asset files override the manifest's, and every token becomes a "--token" CSS
// variable.
func rendererConfig(selection *theme.Selection) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}
	files := map[string]string{}
	prefix := ""
	if manifest := selection.Manifest; manifest != nil {
		prefix = manifest.Assets.Prefix
		mergeStrings(cfg.Tokens, manifest.Tokens)
		mergeStrings(cfg.Partials, manifest.Templates)
		mergeStrings(files, manifest.Assets.Files)
		if v, ok := manifest.Variants[selection.Variant]; ok {
			mergeStrings(cfg.Tokens, v.Tokens)
			mergeStrings(cfg.Partials, v.Templates)
			mergeStrings(files, v.Assets.Files)
			if v.Assets.Prefix != "" {
				prefix = v.Assets.Prefix
			}
		}
	}
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
	}
	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok {
			return ""
		}
		if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + file
	}
	return cfg
}

func mergeStrings(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
