package widgets

import (
	"context"
	"io"
	"net/url"

	"github.com/goliatone/go-formwidgets/pkg/render"
)

// ConfirmPasswordEntry asks for a password a second time and checks it against
// PasswordWidget.
type ConfirmPasswordEntry struct {
	PasswordEntry
	PasswordWidget *PasswordEntry
}

// NewConfirmPasswordEntry returns a confirmation entry bound to password.
func NewConfirmPasswordEntry(id string, password *PasswordEntry) *ConfirmPasswordEntry {
	return &ConfirmPasswordEntry{PasswordEntry: *NewPasswordEntry(id), PasswordWidget: password}
}

// ClassNames prepends the confirmation class to the password classes.
func (e *ConfirmPasswordEntry) ClassNames() ClassList {
	return e.PasswordEntry.ClassNames().Prepend("swat-confirm-password-entry")
}

// Render implements templ.Component.
func (e *ConfirmPasswordEntry) Render(ctx context.Context, w io.Writer) error {
	return e.renderInput(ctx, w, "password", e.ClassNames(), false)
}

// Process runs entry processing, then compares the value with PasswordWidget.
// A mismatch adds one error message and is not returned as an error; a missing
// PasswordWidget is a configuration error. A hidden or insensitive entry reads
// nothing and so compares nothing.
func (e *ConfirmPasswordEntry) Process(ctx context.Context, values url.Values) error {
	if err := e.PasswordEntry.Process(ctx, values); err != nil {
		return err
	}
	if e.PasswordWidget == nil {
		return render.NewConfigError("confirm-password-entry "+e.ID, render.ErrMissingCollaborator, "password widget is not set")
	}
	if !e.Visible || !e.Sensitive || values == nil {
		return nil
	}

	password := e.PasswordWidget.Value
	if password == nil {
		return nil
	}
	if e.Value == nil || *e.Value != *password {
		msg := render.LocalizerFrom(ctx).T(render.MsgPasswordMismatch)
		e.AddMessage(NewErrorMessage(msg))
	}
	return nil
}

// SetProperty implements PropertySetter. The password widget is linked by the
// definition builder, not through properties.
func (e *ConfirmPasswordEntry) SetProperty(name string, value any) error {
	return e.setProperty("confirm-password-entry", name, value)
}

// Replicate implements Replicable. The replica keeps the original password
// widget; callers replicating both should relink it.
func (e *ConfirmPasswordEntry) Replicate(suffix string) Widget {
	return &ConfirmPasswordEntry{
		PasswordEntry:  PasswordEntry{Entry: e.replica(suffix)},
		PasswordWidget: e.PasswordWidget,
	}
}
