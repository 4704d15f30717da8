package render

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenField is a hidden input emitted by forms alongside their widgets.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs the hidden field carrying a request forgery token.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// HiddenFields is a name → value set of hidden inputs.
type HiddenFields map[string]string

// With returns a copy of h with fields applied. Later fields win on name
// collisions and empty names are ignored.
func (h HiddenFields) With(fields ...HiddenField) HiddenFields {
	out := make(HiddenFields, len(h)+len(fields))
	for name, value := range h {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		out[field.Name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Sorted returns the fields ordered by name for deterministic rendering.
func (h HiddenFields) Sorted() []HiddenField {
	if len(h) == 0 {
		return nil
	}
	names := make([]string, 0, len(h))
	for name := range h {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{Name: name, Value: h[name]})
	}
	return result
}
