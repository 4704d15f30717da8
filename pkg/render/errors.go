package render

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration errors are programmer mistakes: a widget wired without a
// required collaborator, a child of the wrong kind, an unknown component name.
// They are never recorded as user-facing messages.
var (
	ErrMissingCollaborator = errors.New("render: required collaborator is not configured")
	ErrInvalidChild        = errors.New("render: child does not provide the required capability")
	ErrUnknownComponent    = errors.New("render: component is not registered")
	ErrUnknownProperty     = errors.New("render: unknown property")
	ErrInvalidProperty     = errors.New("render: invalid property value")
)

// ConfigError reports a configuration mistake on a named component.
type ConfigError struct {
	Component string
	Detail    string
	Err       error
}

// NewConfigError builds a ConfigError. err should be one of the sentinels above
// so callers can match it with errors.Is.
func NewConfigError(component string, err error, detail string) *ConfigError {
	return &ConfigError{
		Component: strings.TrimSpace(component),
		Detail:    strings.TrimSpace(detail),
		Err:       err,
	}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("configuration error")
	if e.Component != "" {
		b.WriteString(" in ")
		b.WriteString(e.Component)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsConfigError reports whether err (or anything it wraps) is a ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// MessageMapping splits a server-side validation payload into messages keyed
// by widget id and messages that belong to the form as a whole.
type MessageMapping struct {
	Widgets map[string][]string
	Form    []string
}

// MapMessagePayload matches payload keys against the known widget ids. Keys may
// be plain ids or paths ("account.password", "/body/password", "items[0].sku");
// the deepest segment naming a known widget wins. Unknown keys become
// form-level messages so nothing is lost.
func MapMessagePayload(widgetIDs []string, payload map[string][]string) MessageMapping {
	mapping := MessageMapping{Widgets: make(map[string][]string)}
	if len(payload) == 0 {
		mapping.Widgets = nil
		return mapping
	}

	known := make(map[string]struct{}, len(widgetIDs))
	for _, id := range widgetIDs {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			known[trimmed] = struct{}{}
		}
	}

	for rawKey, messages := range payload {
		normalized := NormalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		id, ok := matchWidgetKey(rawKey, known)
		if !ok {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Widgets[id] = append(mapping.Widgets[id], normalized...)
	}

	if len(mapping.Widgets) == 0 {
		mapping.Widgets = nil
	}
	mapping.Form = NormalizeMessages(mapping.Form)
	return mapping
}

// NormalizeMessages trims messages, drops blanks and removes duplicates while
// preserving order.
func NormalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func matchWidgetKey(raw string, known map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", false
	}
	if _, ok := known[trimmed]; ok {
		return trimmed, true
	}

	segments := keySegments(trimmed)
	for i := len(segments) - 1; i >= 0; i-- {
		if _, ok := known[segments[i]]; ok {
			return segments[i], true
		}
	}
	return "", false
}

func keySegments(key string) []string {
	replacer := strings.NewReplacer("[", ".", "]", "", "#", "", "$", "")
	clean := replacer.Replace(key)
	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(key) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}

// ConfigErrorf is NewConfigError with a formatted detail.
func ConfigErrorf(component string, err error, format string, args ...any) *ConfigError {
	return NewConfigError(component, err, fmt.Sprintf(format, args...))
}
