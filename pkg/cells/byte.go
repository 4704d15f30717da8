package cells

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
)

// ByteCellRenderer renders a byte count with base-2 units.
type ByteCellRenderer struct {
	Base
	Value any
}

// NewByte returns a visible byte cell.
func NewByte() *ByteCellRenderer {
	return &ByteCellRenderer{Base: NewBase()}
}

// Render implements templ.Component.
func (c *ByteCellRenderer) Render(ctx context.Context, w io.Writer) error {
	return renderCell(ctx, w, c.Base, func(buf *bytes.Buffer) error {
		out, err := format.Bytes(c.Value)
		if err != nil {
			return fmt.Errorf("cells: byte: %w", err)
		}
		buf.WriteString(format.Escape(out))
		return nil
	})
}

// SetProperty implements Renderer.
func (c *ByteCellRenderer) SetProperty(name string, value any) error {
	if ok, err := c.Base.setProperty(name, value); ok {
		return err
	}
	if name != "value" {
		return props.Unknown("byte", name)
	}
	c.Value = value
	return nil
}
