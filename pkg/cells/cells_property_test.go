//go:build property
// +build property

package cells

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCellProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: invisible cells write nothing whatever they hold.
	properties.Property("invisible renders nothing", prop.ForAll(
		func(text string, value float64) bool {
			var buf bytes.Buffer
			text1 := NewText()
			text1.Text = text
			text1.Visible = false
			numeric := NewNumeric()
			numeric.Value = value
			numeric.Visible = false
			if err := text1.Render(context.Background(), &buf); err != nil {
				return false
			}
			if err := numeric.Render(context.Background(), &buf); err != nil {
				return false
			}
			return buf.Len() == 0
		},
		gen.AnyString(),
		gen.Float64Range(-1e9, 1e9),
	))

	// Property: plain text output never contains raw angle brackets.
	properties.Property("plain text is escaped", prop.ForAll(
		func(value string) bool {
			cell := NewText()
			cell.Text = "%s"
			cell.Value = value
			var buf bytes.Buffer
			if err := cell.Render(context.Background(), &buf); err != nil {
				return false
			}
			return !strings.ContainsAny(buf.String(), "<>")
		},
		gen.AnyString(),
	))

	// Property: percentage rendering never changes the stored value.
	properties.Property("percentage keeps value", prop.ForAll(
		func(value float64, precision int) bool {
			cell := NewPercentage()
			cell.Value = value
			cell.Precision = precision
			var buf bytes.Buffer
			if err := cell.Render(context.Background(), &buf); err != nil {
				return false
			}
			return cell.Value == value && strings.HasSuffix(buf.String(), "%")
		},
		gen.Float64Range(-1e6, 1e6),
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}
