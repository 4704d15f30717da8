package cells

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// NullTextCellRenderer renders like TextCellRenderer but shows NullText in a
// marker span when Text is null. Strict only treats nil as null; otherwise
// empty strings, false, zero numbers and empty slices count as well.
type NullTextCellRenderer struct {
	Base
	Text        any
	Value       any
	ContentType format.ContentType
	NullText    string
	Strict      bool
}

// NewNullText returns a loose null-text cell using the "<none>" marker.
func NewNullText() *NullTextCellRenderer {
	return &NullTextCellRenderer{
		Base:        NewBase(),
		ContentType: format.ContentTypePlain,
		NullText:    render.MsgNone,
	}
}

// Render implements templ.Component.
func (c *NullTextCellRenderer) Render(ctx context.Context, w io.Writer) error {
	return renderCell(ctx, w, c.Base, func(buf *bytes.Buffer) error {
		if IsNull(c.Text, c.Strict) {
			nullText := c.NullText
			if nullText == render.MsgNone {
				nullText = render.LocalizerFrom(ctx).T(render.MsgNone)
			}
			writeNullMarker(buf, nullText)
			return nil
		}
		out, err := substituted(props.String(c.Text), c.Value, c.ContentType)
		if err != nil {
			return fmt.Errorf("cells: null text: %w", err)
		}
		buf.WriteString(out)
		return nil
	})
}

// SetProperty implements Renderer.
func (c *NullTextCellRenderer) SetProperty(name string, value any) error {
	if ok, err := c.Base.setProperty(name, value); ok {
		return err
	}
	var err error
	switch name {
	case "text":
		c.Text = value
	case "value":
		c.Value = value
	case "content_type":
		c.ContentType = format.ParseContentType(props.String(value))
	case "null_text":
		c.NullText = props.String(value)
	case "strict":
		c.Strict, err = props.Bool(name, value)
	default:
		return props.Unknown("null-text", name)
	}
	return err
}

// IsNull reports whether value is null. The string "0" is never null.
func IsNull(value any, strict bool) bool {
	if value == nil {
		return true
	}
	if strict {
		return false
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case bool:
		return !v
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	if f, ok := format.ToFloat(value); ok {
		return f == 0
	}
	return false
}
