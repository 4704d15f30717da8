package widgets

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// Form is the root of a widget tree submitted together.
type Form struct {
	Container
	Action       string
	Method       string
	Encoding     string
	HiddenFields render.HiddenFields
}

// NewForm returns an empty form posting to its own URL.
func NewForm(id string) *Form {
	return &Form{Container: *NewContainer(id), Method: "post"}
}

// AddHidden sets a hidden field.
func (f *Form) AddHidden(name string, value any) {
	f.HiddenFields = f.HiddenFields.With(render.Hidden(name, value))
}

// ClassNames returns the form classes.
func (f *Form) ClassNames() ClassList {
	return f.baseClasses("swat-form")
}

// Render implements templ.Component.
func (f *Form) Render(ctx context.Context, w io.Writer) error {
	return renderWidget(ctx, w, f.Visible, func(buf *bytes.Buffer) error {
		method := strings.ToLower(strings.TrimSpace(f.Method))
		if method == "" {
			method = "post"
		}
		form := NewTag("form").
			Set("id", f.ID).
			Set("method", method).
			Set("action", f.Action).
			Set("class", f.ClassNames().String())
		form.SetIf("enctype", f.Encoding)
		form.Open(buf)

		if hidden := f.HiddenFields.Sorted(); len(hidden) > 0 {
			buf.WriteString(`<div class="swat-hidden-fields">`)
			for _, field := range hidden {
				input := NewTag("input")
				input.Void = true
				input.Set("type", "hidden").Set("name", field.Name).Set("value", field.Value)
				input.Display(buf)
			}
			buf.WriteString(`</div>`)
		}
		writeMessages(buf, "swat-form-messages", f.Messages())

		if err := f.renderChildren(ctx, buf); err != nil {
			return err
		}
		form.Close(buf)
		return nil
	})
}

// ApplyMessages attaches server-side validation messages keyed by widget id or
// path. Keys that match no message-holding widget become form messages.
func (f *Form) ApplyMessages(payload map[string][]string) {
	mapping := render.MapMessagePayload(IDs(f), payload)
	for id, messages := range mapping.Widgets {
		target, _ := Find(f, id)
		holder, ok := target.(MessageHolder)
		if !ok {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		for _, msg := range messages {
			holder.AddMessage(NewErrorMessage(msg))
		}
	}
	for _, msg := range render.NormalizeMessages(mapping.Form) {
		f.AddMessage(NewErrorMessage(msg))
	}
}

// IsValid reports whether no widget of the form holds an error message.
func (f *Form) IsValid() bool { return IsValid(f) }

// SetProperty implements PropertySetter.
func (f *Form) SetProperty(name string, value any) error {
	if ok, err := f.Base.setProperty(name, value); ok {
		return err
	}
	switch name {
	case "action":
		f.Action = props.String(value)
	case "method":
		f.Method = props.String(value)
	case "encoding", "enctype":
		f.Encoding = props.String(value)
	case "hidden":
		fields, ok := value.(map[string]any)
		if !ok {
			return render.ConfigErrorf("form", render.ErrInvalidProperty, "hidden expects a map, got %T", value)
		}
		for key, val := range fields {
			f.AddHidden(key, val)
		}
	default:
		return props.Unknown("form", name)
	}
	return nil
}
