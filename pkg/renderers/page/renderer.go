// Package page renders a render.Document into a full HTML page or a bare
// fragment. Stylesheets registered by components while the body renders are
// collected and linked from the page head.
package page

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/render/template"
	"github.com/goliatone/go-formwidgets/pkg/render/template/pongo"
)

// Renderer names.
const (
	NameHTML     = "html"
	NameFragment = "fragment"
)

// DefaultAssetPrefix is prepended to stylesheet hrefs when no theme asset
// resolver is configured.
const DefaultAssetPrefix = "/assets/"

// Option configures the HTML renderer.
type Option func(*HTML)

// WithTemplateRenderer replaces the embedded pongo2 layout engine.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *HTML) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithTemplatesFS loads layouts from files instead of the embedded ones.
func WithTemplatesFS(files fs.FS) Option {
	return func(r *HTML) { r.templates = files }
}

// WithLayout selects the layout template.
func WithLayout(name string) Option {
	return func(r *HTML) {
		if name = strings.TrimSpace(name); name != "" {
			r.layout = name
		}
	}
}

// WithAssetPrefix changes DefaultAssetPrefix.
func WithAssetPrefix(prefix string) Option {
	return func(r *HTML) { r.assetPrefix = prefix }
}

// WithInlineStyles embeds the stylesheets read from files into the page
// instead of linking them. Hrefs missing from files stay linked.
func WithInlineStyles(files fs.FS) Option {
	return func(r *HTML) { r.inline = files }
}

// WithLogger sets the debug logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *HTML) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// HTML renders full documents through a layout template.
type HTML struct {
	engine      template.TemplateRenderer
	templates   fs.FS
	layout      string
	assetPrefix string
	inline      fs.FS
	logger      *slog.Logger
}

var _ render.Renderer = (*HTML)(nil)

// NewHTML builds the page renderer.
func NewHTML(opts ...Option) (*HTML, error) {
	r := &HTML{
		layout:      LayoutTemplate,
		assetPrefix: DefaultAssetPrefix,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.engine == nil {
		files := r.templates
		if files == nil {
			files = TemplatesFS()
		}
		engine, err := pongo.New(pongo.WithFS(files))
		if err != nil {
			return nil, fmt.Errorf("page: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Name implements render.Renderer.
func (r *HTML) Name() string { return NameHTML }

// ContentType implements render.Renderer.
func (r *HTML) ContentType() string { return "text/html; charset=utf-8" }

// Render implements render.Renderer.
func (r *HTML) Render(ctx context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	body, stylesheets, err := renderBody(ctx, doc, options)
	if err != nil {
		return nil, err
	}

	locale := strings.TrimSpace(options.Locale)
	if locale == "" {
		locale = "en"
	}
	localizer := options.Localizer()
	linked, inlined := r.stylesheets(stylesheets, options.Theme)

	data := map[string]any{
		"title":         doc.Title,
		"locale":        locale,
		"body":          body,
		"stylesheets":   linked,
		"inline_styles": inlined,
		"theme":         themeContext(options.Theme),
	}
	for name, fn := range render.TemplateI18nFuncs(localizer, render.TemplateI18nConfig{}) {
		data[name] = fn
	}

	r.logger.Debug("rendering page", "layout", r.layout, "stylesheets", len(linked), "inline", len(inlined))
	out, err := r.engine.RenderTemplate(r.layout, data)
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	return []byte(out), nil
}

func (r *HTML) stylesheets(hrefs []string, cfg *theme.RendererConfig) (linked, inlined []string) {
	var resolve func(string) string
	if cfg != nil && cfg.AssetURL != nil {
		resolve = cfg.AssetURL
	}
	for _, href := range hrefs {
		if r.inline != nil {
			if css, err := fs.ReadFile(r.inline, href); err == nil {
				inlined = append(inlined, string(css))
				continue
			}
			r.logger.Debug("stylesheet not inlined", "href", href)
		}
		linked = append(linked, r.resolveHref(href, resolve))
	}
	return linked, inlined
}

func (r *HTML) resolveHref(href string, resolve func(string) string) string {
	if isAbsoluteHref(href) {
		return href
	}
	if resolve != nil {
		if resolved := resolve(href); resolved != "" {
			return resolved
		}
	}
	if r.assetPrefix == "" {
		return href
	}
	return strings.TrimSuffix(r.assetPrefix, "/") + "/" + strings.TrimPrefix(href, "/")
}

func isAbsoluteHref(href string) bool {
	return strings.HasPrefix(href, "/") || strings.Contains(href, "://")
}

// Fragment renders only the document body.
type Fragment struct{}

var _ render.Renderer = Fragment{}

// Name implements render.Renderer.
func (Fragment) Name() string { return NameFragment }

// ContentType implements render.Renderer.
func (Fragment) ContentType() string { return "text/html; charset=utf-8" }

// Render implements render.Renderer.
func (Fragment) Render(ctx context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	body, _, err := renderBody(ctx, doc, options)
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

// Register adds the HTML and fragment renderers to registry. HTML becomes the
// default when the registry is empty.
func Register(registry *render.Registry, opts ...Option) error {
	if registry == nil {
		return render.NewConfigError("page", render.ErrMissingCollaborator, "registry is required")
	}
	html, err := NewHTML(opts...)
	if err != nil {
		return err
	}
	if err := registry.Register(html); err != nil {
		return err
	}
	return registry.Register(Fragment{})
}

// renderBody renders the document body with a fresh stylesheet set and the
// request localizer in ctx.
func renderBody(ctx context.Context, doc render.Document, options render.RenderOptions) (string, []string, error) {
	if doc.Body == nil {
		return "", nil, errors.New("page: document has no body")
	}
	set := render.NewStylesheetSet(options.Stylesheets...)
	ctx = render.WithStylesheets(ctx, set)
	ctx = render.WithLocalizer(ctx, options.Localizer())

	var buf bytes.Buffer
	if err := doc.Body.Render(ctx, &buf); err != nil {
		return "", nil, fmt.Errorf("page: render body: %w", err)
	}
	return buf.String(), set.List(), nil
}

func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":     cfg.Theme,
		"variant":  cfg.Variant,
		"css_vars": cssVarsStyle(cfg.CSSVars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {")
	for _, key := range keys {
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}
