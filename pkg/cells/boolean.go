package cells

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// BooleanCellRenderer renders TrueContent or FalseContent depending on Value.
// Empty content falls back to the localized "Yes" and "No". A nil value renders
// nothing.
type BooleanCellRenderer struct {
	Base
	Value        any
	TrueContent  string
	FalseContent string
	ContentType  format.ContentType
}

// NewBoolean returns a visible boolean cell.
func NewBoolean() *BooleanCellRenderer {
	return &BooleanCellRenderer{Base: NewBase(), ContentType: format.ContentTypePlain}
}

// Render implements templ.Component.
func (c *BooleanCellRenderer) Render(ctx context.Context, w io.Writer) error {
	return renderCell(ctx, w, c.Base, func(buf *bytes.Buffer) error {
		if c.Value == nil {
			return nil
		}
		truthy, err := props.Bool("value", c.Value)
		if err != nil {
			return fmt.Errorf("cells: boolean: %w", err)
		}
		localizer := render.LocalizerFrom(ctx)
		content, key := c.FalseContent, render.MsgNo
		if truthy {
			content, key = c.TrueContent, render.MsgYes
		}
		if content == "" {
			buf.WriteString(format.Escape(localizer.T(key)))
			return nil
		}
		buf.WriteString(format.Content(content, c.ContentType))
		return nil
	})
}

// SetProperty implements Renderer.
func (c *BooleanCellRenderer) SetProperty(name string, value any) error {
	if ok, err := c.Base.setProperty(name, value); ok {
		return err
	}
	switch name {
	case "value":
		c.Value = value
	case "true_content":
		c.TrueContent = props.String(value)
	case "false_content":
		c.FalseContent = props.String(value)
	case "content_type":
		c.ContentType = format.ParseContentType(props.String(value))
	default:
		return props.Unknown("boolean", name)
	}
	return nil
}
