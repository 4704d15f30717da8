package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrNotNumeric is returned by formatters that require a numeric value.
var ErrNotNumeric = errors.New("format: value is not numeric")

// AutoPrecision asks the formatter to keep every significant decimal.
const AutoPrecision = -1

// NumberFormatter formats numbers for a locale with a fixed precision.
type NumberFormatter interface {
	FormatNumber(locale string, value float64, precision int) string
}

// NumberFormatterFunc adapts a function to NumberFormatter.
type NumberFormatterFunc func(locale string, value float64, precision int) string

func (f NumberFormatterFunc) FormatNumber(locale string, value float64, precision int) string {
	return f(locale, value, precision)
}

// DecimalFormatter formats numbers with CLDR grouping and decimal separators.
type DecimalFormatter struct{}

// DefaultNumberFormatter is used when a renderer has no formatter configured.
var DefaultNumberFormatter NumberFormatter = DecimalFormatter{}

// FormatNumber implements NumberFormatter. A negative precision keeps as many
// decimals as the shortest exact representation of value needs.
func (DecimalFormatter) FormatNumber(locale string, value float64, precision int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	if precision < 0 {
		precision = decimalPlaces(value)
	}
	printer := message.NewPrinter(ParseLocale(locale))
	return printer.Sprint(number.Decimal(value, number.Scale(precision)))
}

// ParseLocale converts a locale identifier ("en_US", "fr-CA") into a language
// tag, falling back to English.
func ParseLocale(locale string) language.Tag {
	trimmed := strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if trimmed == "" {
		return language.English
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return language.English
	}
	return tag
}

func decimalPlaces(value float64) int {
	repr := strconv.FormatFloat(value, 'f', -1, 64)
	if idx := strings.IndexByte(repr, '.'); idx >= 0 {
		return len(repr) - idx - 1
	}
	return 0
}

// IsNumeric reports whether value is a number or a numeric string.
func IsNumeric(value any) bool {
	_, ok := ToFloat(value)
	return ok
}

// ToFloat converts integers, floats, json.Number and numeric strings.
func ToFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		return parseDecimal(string(v))
	case string:
		return parseDecimal(v)
	case []byte:
		return ToFloat(string(v))
	default:
		return 0, false
	}
}

// parseDecimal accepts plain decimal notation with an optional sign, fraction
// and exponent. NaN, infinities and hex floats are not numeric.
func parseDecimal(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	digits := false
	for i, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.' || r == 'e' || r == 'E':
		case (r == '+' || r == '-') && (i == 0 || trimmed[i-1] == 'e' || trimmed[i-1] == 'E'):
		default:
			return 0, false
		}
	}
	if !digits {
		return 0, false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// MustFloat is ToFloat returning an error that names the offending value.
func MustFloat(value any) (float64, error) {
	f, ok := ToFloat(value)
	if !ok {
		return 0, fmt.Errorf("%w: %v (%T)", ErrNotNumeric, value, value)
	}
	return f, nil
}
