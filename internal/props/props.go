// Package props coerces loosely typed property values, as decoded from YAML
// definitions or bound from grid rows, into the Go types components expect.
package props

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// String renders any value as a string; nil becomes "".
func String(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Bool accepts booleans, "true"/"false"/"yes"/"no"/"1"/"0" and numbers.
func Bool(name string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case nil:
		return false, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0", "":
			return false, nil
		}
	default:
		if f, ok := format.ToFloat(v); ok {
			return f != 0, nil
		}
	}
	return false, invalid(name, value, "boolean")
}

// Int accepts integers, integral floats and numeric strings.
func Int(name string, value any) (int, error) {
	if s, ok := value.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, invalid(name, value, "integer")
		}
		return n, nil
	}
	f, ok := format.ToFloat(value)
	if !ok || f != float64(int(f)) {
		return 0, invalid(name, value, "integer")
	}
	return int(f), nil
}

// Strings accepts a single string or a list of values.
func Strings(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return strings.Fields(v)
	case []string:
		return append([]string(nil), v...)
	}
	args := format.Arguments(value)
	out := make([]string, 0, len(args))
	for _, arg := range args {
		out = append(out, String(arg))
	}
	return out
}

// Unknown reports a property the component does not understand.
func Unknown(component, name string) error {
	return render.ConfigErrorf(component, render.ErrUnknownProperty, "property %q", name)
}

func invalid(name string, value any, want string) error {
	return render.ConfigErrorf(name, render.ErrInvalidProperty, "expected %s, got %v (%T)", want, value, value)
}
