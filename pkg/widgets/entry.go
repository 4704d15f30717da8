package widgets

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// Entry is a single-line text input.
type Entry struct {
	Base
	// Name is the submitted field name; blank uses the id.
	Name         string
	Value        *string
	Size         int
	MaxLength    int
	ReadOnly     bool
	Required     bool
	AutoTrim     bool
	AutoComplete string
	Placeholder  string
}

// NewEntry returns a text entry with automatic trimming.
func NewEntry(id string) *Entry {
	return &Entry{Base: NewBase(id), Size: 50, AutoTrim: true}
}

// ClassNames returns the entry classes.
func (e *Entry) ClassNames() ClassList {
	return e.baseClasses("swat-entry")
}

// FieldName returns the name submitted values are read from.
func (e *Entry) FieldName() string {
	if name := strings.TrimSpace(e.Name); name != "" {
		return name
	}
	return e.ID
}

// SetValue stores a non-nil value.
func (e *Entry) SetValue(value string) { e.Value = &value }

// StringValue returns the value or "".
func (e *Entry) StringValue() string {
	if e.Value == nil {
		return ""
	}
	return *e.Value
}

// Render implements templ.Component.
func (e *Entry) Render(ctx context.Context, w io.Writer) error {
	return e.renderInput(ctx, w, "text", e.ClassNames(), true)
}

// renderInput writes the input element shared by every entry type.
func (e *Entry) renderInput(ctx context.Context, w io.Writer, inputType string, classes ClassList, showValue bool) error {
	return renderWidget(ctx, w, e.Visible, func(buf *bytes.Buffer) error {
		input := NewTag("input")
		input.Void = true
		input.Set("type", inputType).
			Set("name", e.FieldName()).
			Set("id", e.ID).
			Set("class", classes.String())
		if showValue && e.Value != nil {
			input.Set("value", *e.Value)
		}
		if e.Size > 0 {
			input.Set("size", strconv.Itoa(e.Size))
		}
		if e.MaxLength > 0 {
			input.Set("maxlength", strconv.Itoa(e.MaxLength))
		}
		if e.ReadOnly {
			input.Set("readonly", "readonly")
		}
		if !e.Sensitive {
			input.Set("disabled", "disabled")
		}
		input.SetIf("autocomplete", e.AutoComplete)
		input.SetIf("placeholder", e.Placeholder)
		input.Display(buf)
		return nil
	})
}

// Process reads the submitted value, then checks required and maximum length.
// A missing field leaves the value untouched.
func (e *Entry) Process(ctx context.Context, values url.Values) error {
	if !e.Visible || !e.Sensitive || values == nil {
		return nil
	}
	raw, ok := values[e.FieldName()]
	if !ok {
		return nil
	}
	value := ""
	if len(raw) > 0 {
		value = raw[0]
	}
	if e.AutoTrim {
		value = strings.TrimSpace(value)
	}

	localizer := render.LocalizerFrom(ctx)
	if value == "" {
		e.Value = nil
		if e.Required {
			e.AddMessage(NewErrorMessage(localizer.T(render.MsgRequired)))
		}
		return nil
	}
	e.Value = &value
	if e.MaxLength > 0 && utf8.RuneCountInString(value) > e.MaxLength {
		e.AddMessage(NewErrorMessage(localizer.T(render.MsgMaxLength, e.MaxLength)))
	}
	return nil
}

// SetProperty implements PropertySetter.
func (e *Entry) SetProperty(name string, value any) error {
	return e.setProperty("entry", name, value)
}

func (e *Entry) setProperty(component, name string, value any) error {
	if ok, err := e.Base.setProperty(name, value); ok {
		return err
	}
	var err error
	switch name {
	case "name":
		e.Name = props.String(value)
	case "value":
		if value == nil {
			e.Value = nil
		} else {
			e.SetValue(props.String(value))
		}
	case "size":
		e.Size, err = props.Int(name, value)
	case "maxlength", "max_length":
		e.MaxLength, err = props.Int(name, value)
	case "read_only", "readonly":
		e.ReadOnly, err = props.Bool(name, value)
	case "required":
		e.Required, err = props.Bool(name, value)
	case "auto_trim":
		e.AutoTrim, err = props.Bool(name, value)
	case "autocomplete":
		e.AutoComplete = props.String(value)
	case "placeholder":
		e.Placeholder = props.String(value)
	default:
		return props.Unknown(component, name)
	}
	return err
}

// IsRequired reports whether a value must be submitted.
func (e *Entry) IsRequired() bool { return e.Required }

func (e *Entry) replica(suffix string) Entry {
	clone := *e
	clone.Base = e.replicaBase(suffix)
	if e.Name != "" {
		clone.Name = replicaID(e.Name, suffix)
	}
	if e.Value != nil {
		value := *e.Value
		clone.Value = &value
	}
	return clone
}

// Replicate implements Replicable.
func (e *Entry) Replicate(suffix string) Widget {
	clone := e.replica(suffix)
	return &clone
}

// PhoneEntry is an entry for telephone numbers.
type PhoneEntry struct {
	Entry
}

// NewPhoneEntry returns a phone entry.
func NewPhoneEntry(id string) *PhoneEntry {
	return &PhoneEntry{Entry: *NewEntry(id)}
}

// ClassNames prepends the phone class to the entry classes.
func (e *PhoneEntry) ClassNames() ClassList {
	return e.Entry.ClassNames().Prepend("swat-phone-entry")
}

// Render implements templ.Component.
func (e *PhoneEntry) Render(ctx context.Context, w io.Writer) error {
	return e.renderInput(ctx, w, "tel", e.ClassNames(), true)
}

// SetProperty implements PropertySetter.
func (e *PhoneEntry) SetProperty(name string, value any) error {
	return e.setProperty("phone-entry", name, value)
}

// Replicate implements Replicable.
func (e *PhoneEntry) Replicate(suffix string) Widget {
	return &PhoneEntry{Entry: e.replica(suffix)}
}

// PasswordEntry is an entry whose value is never echoed back.
type PasswordEntry struct {
	Entry
}

// NewPasswordEntry returns a password entry with autocomplete disabled.
func NewPasswordEntry(id string) *PasswordEntry {
	entry := NewEntry(id)
	entry.AutoTrim = false
	entry.AutoComplete = "off"
	return &PasswordEntry{Entry: *entry}
}

// ClassNames prepends the password class to the entry classes.
func (e *PasswordEntry) ClassNames() ClassList {
	return e.Entry.ClassNames().Prepend("swat-password-entry")
}

// Render implements templ.Component.
func (e *PasswordEntry) Render(ctx context.Context, w io.Writer) error {
	return e.renderInput(ctx, w, "password", e.ClassNames(), false)
}

// SetProperty implements PropertySetter.
func (e *PasswordEntry) SetProperty(name string, value any) error {
	return e.setProperty("password-entry", name, value)
}

// Replicate implements Replicable.
func (e *PasswordEntry) Replicate(suffix string) Widget {
	return &PasswordEntry{Entry: e.replica(suffix)}
}
