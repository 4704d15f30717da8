package cells

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// Stylesheet is registered with the request stylesheet set by every visible
// cell.
const Stylesheet = "formwidgets/cells.css"

// NullMarkerClass wraps placeholder output for null values.
const NullMarkerClass = "swat-null-text-cell-renderer"

// Renderer is the contract shared by all cell renderers.
type Renderer interface {
	templ.Component
	SetProperty(name string, value any) error
}

// Base holds the state every cell carries.
type Base struct {
	Visible   bool
	Sensitive bool
}

// NewBase returns a visible, sensitive base.
func NewBase() Base {
	return Base{Visible: true, Sensitive: true}
}

func (b *Base) setProperty(name string, value any) (bool, error) {
	var err error
	switch name {
	case "visible":
		b.Visible, err = props.Bool(name, value)
	case "sensitive":
		b.Sensitive, err = props.Bool(name, value)
	default:
		return false, nil
	}
	return true, err
}

// renderCell runs the shared prologue and buffers body so a failing cell
// leaves w untouched.
func renderCell(ctx context.Context, w io.Writer, base Base, body func(buf *bytes.Buffer) error) error {
	if !base.Visible {
		return nil
	}
	render.RegisterStylesheet(ctx, Stylesheet)

	var buf bytes.Buffer
	if err := body(&buf); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func writeNullMarker(buf *bytes.Buffer, text string) {
	buf.WriteString(`<span class="`)
	buf.WriteString(NullMarkerClass)
	buf.WriteString(`">`)
	buf.WriteString(format.Escape(text))
	buf.WriteString(`</span>`)
}

// substituted applies format.Substitute and escapes plain output.
func substituted(pattern string, value any, contentType format.ContentType) (string, error) {
	out, err := format.Substitute(pattern, value)
	if err != nil {
		return "", err
	}
	return format.Content(out, contentType), nil
}
