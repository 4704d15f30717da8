package grid

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/cells"
	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Column describes one grid column.
type Column struct {
	ID    string
	Title string
	// Renderer names a cell renderer; blank picks one per row from the value.
	Renderer string
	// Properties are applied to every cell before bindings.
	Properties map[string]any
	// Bindings map cell property names to row fields. Without bindings the
	// row field named like the column is bound to "value", or to "text" for
	// text cells that have no pattern of their own.
	Bindings map[string]string
	Hidden   bool
}

// HeaderTitle returns Title, or the id title-cased when Title is blank.
func (c Column) HeaderTitle() string {
	if title := strings.TrimSpace(c.Title); title != "" {
		return title
	}
	words := strings.NewReplacer("_", " ", "-", " ").Replace(c.ID)
	return cases.Title(language.English).String(words)
}

func (c Column) bindings(renderer string) map[string]string {
	if len(c.Bindings) > 0 {
		return c.Bindings
	}
	switch renderer {
	case cells.RendererText, cells.RendererNullText:
		if _, ok := c.Properties["text"]; !ok {
			return map[string]string{"text": c.ID}
		}
	}
	return map[string]string{"value": c.ID}
}

// CheckboxColumn lets the user select rows. It implements
// widgets.ViewSelector.
type CheckboxColumn struct {
	ID       string
	Title    string
	selected widgets.ViewSelection
}

// NewCheckboxColumn returns a checkbox column.
func NewCheckboxColumn(id string) *CheckboxColumn {
	return &CheckboxColumn{ID: id}
}

// SelectorID implements widgets.ViewSelector.
func (c *CheckboxColumn) SelectorID() string { return c.ID }

// Selection implements widgets.ViewSelector.
func (c *CheckboxColumn) Selection() widgets.ViewSelection { return c.selected }

// Select replaces the selection.
func (c *CheckboxColumn) Select(ids ...string) {
	c.selected = widgets.NewViewSelection(ids...)
}

func (c *CheckboxColumn) fieldName() string { return c.ID + "[]" }

// Process reads the checked row keys.
func (c *CheckboxColumn) Process(values url.Values) {
	if values == nil {
		return
	}
	if checked, ok := values[c.fieldName()]; ok {
		c.Select(checked...)
		return
	}
	c.Select(values[c.ID]...)
}

func (c *CheckboxColumn) writeHeader(buf *bytes.Buffer) {
	buf.WriteString(`<th class="swat-checkbox-column">`)
	if c.Title != "" {
		buf.WriteString(format.Escape(c.Title))
	}
	buf.WriteString(`</th>`)
}

func (c *CheckboxColumn) writeCell(_ context.Context, buf *bytes.Buffer, key any) {
	value := props.String(key)
	buf.WriteString(`<td class="swat-checkbox-column">`)
	input := widgets.NewTag("input")
	input.Void = true
	input.Set("type", "checkbox").
		Set("name", c.fieldName()).
		Set("value", value)
	if c.selected.Contains(value) {
		input.Set("checked", "checked")
	}
	input.Display(buf)
	buf.WriteString(`</td>`)
}
