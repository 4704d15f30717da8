package cells

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// NumericCellRenderer formats numeric values for the request locale.
//
// Values that are not numeric are emitted escaped but otherwise untouched so
// pre-formatted strings pass through.
type NumericCellRenderer struct {
	Base
	Value any
	// Precision is the number of decimals; format.AutoPrecision keeps as many
	// as the value needs.
	Precision int
	// NullDisplayValue is shown in a marker span for nil values when set.
	NullDisplayValue string
	// Locale overrides the locale carried by the request localizer.
	Locale    string
	Formatter format.NumberFormatter
}

// NewNumeric returns a numeric cell with automatic precision.
func NewNumeric() *NumericCellRenderer {
	return &NumericCellRenderer{Base: NewBase(), Precision: format.AutoPrecision}
}

// Render implements templ.Component.
func (c *NumericCellRenderer) Render(ctx context.Context, w io.Writer) error {
	return renderCell(ctx, w, c.Base, func(buf *bytes.Buffer) error {
		c.write(ctx, buf, c.Value, "")
		return nil
	})
}

// write renders value, appending suffix after formatted numbers only.
func (c *NumericCellRenderer) write(ctx context.Context, buf *bytes.Buffer, value any, suffix string) {
	if value == nil && c.NullDisplayValue != "" {
		writeNullMarker(buf, c.NullDisplayValue)
		return
	}
	f, ok := format.ToFloat(value)
	if !ok {
		buf.WriteString(format.Escape(props.String(value)))
		return
	}
	buf.WriteString(format.Escape(c.formatter().FormatNumber(c.locale(ctx), f, c.Precision)))
	buf.WriteString(suffix)
}

func (c *NumericCellRenderer) formatter() format.NumberFormatter {
	if c.Formatter != nil {
		return c.Formatter
	}
	return format.DefaultNumberFormatter
}

func (c *NumericCellRenderer) locale(ctx context.Context) string {
	if locale := strings.TrimSpace(c.Locale); locale != "" {
		return locale
	}
	return render.LocalizerFrom(ctx).Locale
}

// SetProperty implements Renderer.
func (c *NumericCellRenderer) SetProperty(name string, value any) error {
	return c.setProperty("numeric", name, value)
}

func (c *NumericCellRenderer) setProperty(component, name string, value any) error {
	if ok, err := c.Base.setProperty(name, value); ok {
		return err
	}
	var err error
	switch name {
	case "value":
		c.Value = value
	case "precision":
		c.Precision, err = props.Int(name, value)
	case "null_display_value":
		c.NullDisplayValue = props.String(value)
	case "locale":
		c.Locale = props.String(value)
	default:
		return props.Unknown(component, name)
	}
	return err
}

// PercentageCellRenderer renders a ratio as a percentage: 0.256 with
// precision 1 becomes "25.6%".
type PercentageCellRenderer struct {
	NumericCellRenderer
}

// NewPercentage returns a percentage cell with automatic precision.
func NewPercentage() *PercentageCellRenderer {
	return &PercentageCellRenderer{NumericCellRenderer: *NewNumeric()}
}

// Render implements templ.Component. The stored Value is never scaled.
func (c *PercentageCellRenderer) Render(ctx context.Context, w io.Writer) error {
	return renderCell(ctx, w, c.Base, func(buf *bytes.Buffer) error {
		value := c.Value
		if f, ok := format.ToFloat(value); ok {
			value = f * 100
		}
		c.write(ctx, buf, value, "%")
		return nil
	})
}

// SetProperty implements Renderer.
func (c *PercentageCellRenderer) SetProperty(name string, value any) error {
	return c.setProperty("percentage", name, value)
}
