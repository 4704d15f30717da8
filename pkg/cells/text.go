package cells

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
)

// TextCellRenderer renders Text, substituting Value into it when set. A slice
// value is spread into positional arguments.
type TextCellRenderer struct {
	Base
	Text        string
	Value       any
	ContentType format.ContentType
}

// NewText returns a visible plain-text cell.
func NewText() *TextCellRenderer {
	return &TextCellRenderer{Base: NewBase(), ContentType: format.ContentTypePlain}
}

// Render implements templ.Component.
func (c *TextCellRenderer) Render(ctx context.Context, w io.Writer) error {
	return renderCell(ctx, w, c.Base, func(buf *bytes.Buffer) error {
		out, err := substituted(c.Text, c.Value, c.ContentType)
		if err != nil {
			return fmt.Errorf("cells: text: %w", err)
		}
		buf.WriteString(out)
		return nil
	})
}

// SetProperty implements Renderer.
func (c *TextCellRenderer) SetProperty(name string, value any) error {
	if ok, err := c.Base.setProperty(name, value); ok {
		return err
	}
	switch name {
	case "text":
		c.Text = props.String(value)
	case "value":
		c.Value = value
	case "content_type":
		c.ContentType = format.ParseContentType(props.String(value))
	default:
		return props.Unknown("text", name)
	}
	return nil
}
