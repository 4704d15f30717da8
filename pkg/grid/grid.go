package grid

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/cells"
	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Stylesheet is registered by every visible grid.
const Stylesheet = "formwidgets/grid.css"

// DefaultRowKey is the row field identifying rows for selection.
const DefaultRowKey = "id"

// Option configures a Grid.
type Option func(*Grid)

// WithCellRegistry sets the registry cell renderers are built from.
func WithCellRegistry(registry *cells.Registry) Option {
	return func(g *Grid) {
		if registry != nil {
			g.cells = registry
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Grid) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRowKey sets the row field identifying rows.
func WithRowKey(key string) Option {
	return func(g *Grid) {
		if key = strings.TrimSpace(key); key != "" {
			g.RowKey = key
		}
	}
}

// WithSource sets the row source.
func WithSource(source RowSource) Option {
	return func(g *Grid) { g.Source = source }
}

// Grid is a table view widget.
type Grid struct {
	widgets.Base
	Columns []Column
	Source  RowSource
	RowKey  string
	// NoRecordsMessage replaces the localized "No records found." row.
	NoRecordsMessage string

	checkboxes []*CheckboxColumn
	cells      *cells.Registry
	logger     *slog.Logger
}

// New returns an empty grid.
func New(id string, opts ...Option) *Grid {
	g := &Grid{
		Base:   widgets.NewBase(id),
		RowKey: DefaultRowKey,
		cells:  cells.NewRegistry(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// AddColumn appends a column.
func (g *Grid) AddColumn(column Column) {
	g.Columns = append(g.Columns, column)
}

// AddCheckboxColumn prepends a selection column and returns it.
func (g *Grid) AddCheckboxColumn(id string) *CheckboxColumn {
	column := NewCheckboxColumn(id)
	g.checkboxes = append(g.checkboxes, column)
	return column
}

// Selector implements widgets.View.
func (g *Grid) Selector(id string) (widgets.ViewSelector, bool) {
	for _, column := range g.checkboxes {
		if column.ID == id {
			return column, true
		}
	}
	return nil, false
}

// Process implements widgets.Processor by reading checkbox selections.
func (g *Grid) Process(_ context.Context, values url.Values) error {
	if !g.Visible || !g.Sensitive {
		return nil
	}
	for _, column := range g.checkboxes {
		column.Process(values)
	}
	return nil
}

// SetProperty implements widgets.PropertySetter.
func (g *Grid) SetProperty(name string, value any) error {
	var err error
	switch name {
	case "visible":
		g.Visible, err = props.Bool(name, value)
	case "sensitive":
		g.Sensitive, err = props.Bool(name, value)
	case "classes", "class":
		g.Classes = props.Strings(value)
	case "row_key":
		WithRowKey(props.String(value))(g)
	case "no_records":
		g.NoRecordsMessage = props.String(value)
	default:
		return props.Unknown("grid", name)
	}
	return err
}

// ClassNames returns the table classes.
func (g *Grid) ClassNames() widgets.ClassList {
	list := widgets.NewClassList("swat-table-view")
	if !g.Sensitive {
		list = list.Append(widgets.ClassInsensitive)
	}
	return list.Append(g.Classes...)
}

func (g *Grid) visibleColumns() []Column {
	out := make([]Column, 0, len(g.Columns))
	for _, column := range g.Columns {
		if !column.Hidden {
			out = append(out, column)
		}
	}
	return out
}

// Render implements templ.Component.
func (g *Grid) Render(ctx context.Context, w io.Writer) error {
	if !g.Visible {
		return nil
	}
	var rows []Row
	if g.Source != nil {
		var err error
		rows, err = g.Source.Rows(ctx)
		if err != nil {
			return fmt.Errorf("grid: %s: %w", g.ID, err)
		}
	}
	g.logger.Debug("rendering grid", "grid", g.ID, "rows", len(rows), "columns", len(g.Columns))

	render.RegisterStylesheet(ctx, Stylesheet)
	columns := g.visibleColumns()

	var buf bytes.Buffer
	table := widgets.NewTag("table").Set("id", g.ID).Set("class", g.ClassNames().String())
	table.Open(&buf)

	buf.WriteString(`<thead><tr>`)
	for _, checkbox := range g.checkboxes {
		checkbox.writeHeader(&buf)
	}
	for _, column := range columns {
		th := widgets.NewTag("th").Set("class", "swat-table-view-column-"+column.ID)
		th.Content = column.HeaderTitle()
		th.Display(&buf)
	}
	buf.WriteString(`</tr></thead><tbody>`)

	if len(rows) == 0 {
		g.writeNoRecords(ctx, &buf, len(columns)+len(g.checkboxes))
	}
	for index, row := range rows {
		class := "odd"
		if index%2 == 1 {
			class = "even"
		}
		buf.WriteString(`<tr class="` + class + `">`)
		for _, checkbox := range g.checkboxes {
			checkbox.writeCell(ctx, &buf, row[g.RowKey])
		}
		for _, column := range columns {
			if err := g.writeCell(ctx, &buf, column, row); err != nil {
				return fmt.Errorf("grid: %s: row %d: column %q: %w", g.ID, index, column.ID, err)
			}
		}
		buf.WriteString(`</tr>`)
	}

	buf.WriteString(`</tbody>`)
	table.Close(&buf)
	_, err := buf.WriteTo(w)
	return err
}

func (g *Grid) writeNoRecords(ctx context.Context, buf *bytes.Buffer, span int) {
	message := g.NoRecordsMessage
	if message == "" {
		message = render.LocalizerFrom(ctx).T(render.MsgNoRecords)
	}
	if span < 1 {
		span = 1
	}
	buf.WriteString(`<tr class="swat-none"><td colspan="` + strconv.Itoa(span) + `">`)
	buf.WriteString(format.Escape(message))
	buf.WriteString(`</td></tr>`)
}

func (g *Grid) writeCell(ctx context.Context, buf *bytes.Buffer, column Column, row Row) error {
	cell, err := g.cellFor(column, row)
	if err != nil {
		return err
	}
	buf.WriteString(`<td class="swat-table-view-column-` + format.Escape(column.ID) + `">`)
	if err := cell.Render(ctx, buf); err != nil {
		return err
	}
	buf.WriteString(`</td>`)
	return nil
}

// cellFor builds a fresh renderer for one row so no state crosses rows.
func (g *Grid) cellFor(column Column, row Row) (cells.Renderer, error) {
	name := column.Renderer
	if name == "" {
		resolved, ok := g.cells.Resolve(row[column.ID])
		if !ok {
			return nil, render.ConfigErrorf("grid column "+column.ID, render.ErrUnknownComponent, "no renderer matches %T", row[column.ID])
		}
		g.logger.Debug("resolved cell renderer", "column", column.ID, "renderer", resolved)
		name = resolved
	}
	cell, err := g.cells.New(name)
	if err != nil {
		return nil, err
	}
	for property, value := range column.Properties {
		if err := cell.SetProperty(property, value); err != nil {
			return nil, err
		}
	}
	for property, field := range column.bindings(name) {
		if err := cell.SetProperty(property, bindingValue(row, field)); err != nil {
			return nil, err
		}
	}
	return cell, nil
}

// bindingValue reads field from row. A comma separated list of fields binds a
// slice, for patterns taking several arguments.
func bindingValue(row Row, field string) any {
	if !strings.Contains(field, ",") {
		return row[strings.TrimSpace(field)]
	}
	parts := strings.Split(field, ",")
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		out = append(out, row[strings.TrimSpace(part)])
	}
	return out
}
