package definition

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/cells"
	"github.com/goliatone/go-formwidgets/pkg/grid"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// WidgetGrid is the node type that embeds a grid in a form.
const WidgetGrid = "grid"

// Option configures a Builder.
type Option func(*Builder)

// WithWidgetRegistry sets the registry widgets are built from.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(b *Builder) {
		if registry != nil {
			b.widgets = registry
		}
	}
}

// WithCellRegistry sets the registry grid cells are built from.
func WithCellRegistry(registry *cells.Registry) Option {
	return func(b *Builder) {
		if registry != nil {
			b.cells = registry
		}
	}
}

// WithLogger sets the logger handed to built grids.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithRowSource overrides the rows of every built grid.
func WithRowSource(source grid.RowSource) Option {
	return func(b *Builder) { b.source = source }
}

// Builder turns definitions into component trees.
type Builder struct {
	widgets *widgets.Registry
	cells   *cells.Registry
	logger  *slog.Logger
	source  grid.RowSource
}

// NewBuilder returns a builder using the built-in registries.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		widgets: widgets.NewRegistry(),
		cells:   cells.NewRegistry(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Build returns the grid or form the document defines. A document with both
// returns the form, with the grid appended as its last child.
func (b *Builder) Build(doc *Document) (widgets.Widget, error) {
	if doc == nil || (doc.Grid == nil && doc.Form == nil) {
		return nil, ErrEmptyDocument
	}
	var table *grid.Grid
	if doc.Grid != nil {
		var err error
		if table, err = b.Grid(*doc.Grid); err != nil {
			return nil, err
		}
		if doc.Form == nil {
			return table, nil
		}
	}
	root, err := b.Widget(*doc.Form)
	if err != nil {
		return nil, err
	}
	if table != nil {
		if err := attach(root, table); err != nil {
			return nil, fmt.Errorf("definition: %w", err)
		}
	}
	return root, nil
}

// Grid builds a grid.
func (b *Builder) Grid(def GridDefinition) (*grid.Grid, error) {
	opts := []grid.Option{
		grid.WithCellRegistry(b.cells),
		grid.WithLogger(b.logger),
		grid.WithRowKey(def.RowKey),
	}
	switch {
	case b.source != nil:
		opts = append(opts, grid.WithSource(b.source))
	case def.Rows != nil:
		opts = append(opts, grid.WithSource(grid.StaticSource(def.Rows)))
	}

	table := grid.New(def.ID, opts...)
	table.NoRecordsMessage = def.NoRecords
	table.Classes = append(table.Classes, def.Classes...)
	for _, id := range def.CheckboxColumns {
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("definition: grid %q: checkbox column id is required", table.ID)
		}
		table.AddCheckboxColumn(id)
	}

	seen := make(map[string]struct{}, len(def.Columns))
	for index, column := range def.Columns {
		id := strings.TrimSpace(column.ID)
		if id == "" {
			return nil, fmt.Errorf("definition: grid %q: column %d: id is required", table.ID, index)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("definition: grid %q: duplicate column %q", table.ID, id)
		}
		seen[id] = struct{}{}
		if column.Renderer != "" && !b.cells.Has(column.Renderer) {
			return nil, fmt.Errorf("definition: grid %q: column %q: %w",
				table.ID, id, render.ConfigErrorf("cells registry", render.ErrUnknownComponent, "renderer %q", column.Renderer))
		}
		table.AddColumn(grid.Column{
			ID:         id,
			Title:      column.Title,
			Renderer:   column.Renderer,
			Properties: column.Properties,
			Bindings:   column.Bindings,
			Hidden:     column.Hidden,
		})
	}
	return table, nil
}

// Widget builds a widget tree and links confirm-password entries to their
// password entries.
func (b *Builder) Widget(node WidgetNode) (widgets.Widget, error) {
	state := &buildState{byID: make(map[string]widgets.Widget)}
	root, err := b.widget(node, state)
	if err != nil {
		return nil, err
	}
	if err := state.linkPasswords(); err != nil {
		return nil, err
	}
	return root, nil
}

type passwordLink struct {
	confirm *widgets.ConfirmPasswordEntry
	target  string
}

type buildState struct {
	byID  map[string]widgets.Widget
	links []passwordLink
}

func (s *buildState) register(w widgets.Widget) error {
	id := w.WidgetID()
	if _, dup := s.byID[id]; dup {
		return fmt.Errorf("definition: duplicate widget id %q", id)
	}
	s.byID[id] = w
	return nil
}

func (s *buildState) linkPasswords() error {
	for _, link := range s.links {
		target, ok := s.byID[link.target]
		if !ok {
			return fmt.Errorf("definition: widget %q: password widget %q not found", link.confirm.ID, link.target)
		}
		password, ok := target.(*widgets.PasswordEntry)
		if !ok {
			return fmt.Errorf("definition: widget %q: %w", link.confirm.ID,
				render.ConfigErrorf("confirm-password-entry "+link.confirm.ID, render.ErrInvalidChild, "%q is a %T, not a password entry", link.target, target))
		}
		link.confirm.PasswordWidget = password
	}
	return nil
}

func (b *Builder) widget(node WidgetNode, state *buildState) (widgets.Widget, error) {
	kind := strings.TrimSpace(node.Type)
	if kind == "" {
		return nil, fmt.Errorf("definition: widget %q: type is required", node.ID)
	}

	var built widgets.Widget
	if strings.EqualFold(kind, WidgetGrid) {
		if node.Grid == nil {
			return nil, fmt.Errorf("definition: widget %q: grid node needs a grid definition", node.ID)
		}
		def := *node.Grid
		if def.ID == "" {
			def.ID = node.ID
		}
		table, err := b.Grid(def)
		if err != nil {
			return nil, err
		}
		built = table
	} else {
		w, err := b.widgets.New(kind, node.ID)
		if err != nil {
			return nil, fmt.Errorf("definition: widget %q: %w", node.ID, err)
		}
		built = w
	}

	if err := applyProperties(built, kind, node.Properties); err != nil {
		return nil, err
	}
	if err := state.register(built); err != nil {
		return nil, err
	}

	if node.PasswordWidget != "" {
		confirm, ok := built.(*widgets.ConfirmPasswordEntry)
		if !ok {
			return nil, fmt.Errorf("definition: widget %q: password_widget only applies to confirm-password entries", built.WidgetID())
		}
		state.links = append(state.links, passwordLink{confirm: confirm, target: node.PasswordWidget})
	}

	for _, childNode := range node.Children {
		child, err := b.widget(childNode, state)
		if err != nil {
			return nil, err
		}
		if err := attach(built, child); err != nil {
			return nil, fmt.Errorf("definition: %w", err)
		}
	}
	return built, nil
}

func applyProperties(w widgets.Widget, kind string, properties map[string]any) error {
	if len(properties) == 0 {
		return nil
	}
	setter, ok := w.(widgets.PropertySetter)
	if !ok {
		return fmt.Errorf("definition: widget %q: %s accepts no properties", w.WidgetID(), kind)
	}
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := setter.SetProperty(name, properties[name]); err != nil {
			return fmt.Errorf("definition: widget %q: %w", w.WidgetID(), err)
		}
	}
	return nil
}

// attach adds child to parent using whichever insertion the parent offers.
func attach(parent, child widgets.Widget) error {
	switch p := parent.(type) {
	case interface{ Add(widgets.Widget) error }:
		return p.Add(child)
	case interface{ Add(widgets.Widget) }:
		p.Add(child)
		return nil
	case *widgets.ActionItem:
		if p.Widget != nil {
			return render.ConfigErrorf("action-item "+p.ID, render.ErrInvalidChild, "an action item holds a single widget")
		}
		p.Widget = child
		return nil
	default:
		return render.ConfigErrorf(parent.WidgetID(), render.ErrInvalidChild, "%T does not accept children", parent)
	}
}
