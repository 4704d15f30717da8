package prompt

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Fill asks a question for every visible, sensitive input widget under root
// and returns the answers keyed by field name.
func Fill(ctx context.Context, driver Driver, root widgets.Widget) (url.Values, error) {
	if driver == nil {
		return nil, render.NewConfigError("prompt", render.ErrMissingCollaborator, "driver is required")
	}
	f := &filler{driver: driver, values: url.Values{}, localizer: render.LocalizerFrom(ctx)}
	if err := f.visit(ctx, root, ""); err != nil {
		return nil, err
	}
	return f.values, nil
}

type filler struct {
	driver    Driver
	values    url.Values
	localizer render.Localizer
}

func (f *filler) visit(ctx context.Context, w widgets.Widget, title string) error {
	if w == nil || !w.IsVisible() {
		return nil
	}
	if fieldTitle, ok := formFieldTitle(w); ok && fieldTitle != "" {
		title = fieldTitle
	}

	handled, err := f.ask(ctx, w, title)
	if err != nil || handled {
		return err
	}
	parent, ok := w.(widgets.Parent)
	if !ok {
		return nil
	}
	for _, child := range parent.Children() {
		if err := f.visit(ctx, child, title); err != nil {
			return err
		}
	}
	return nil
}

func (f *filler) ask(ctx context.Context, w widgets.Widget, title string) (bool, error) {
	switch v := w.(type) {
	case *widgets.ConfirmPasswordEntry:
		return true, f.password(ctx, &v.Entry, label(title, v.ID))
	case *widgets.PasswordEntry:
		return true, f.password(ctx, &v.Entry, label(title, v.ID))
	case *widgets.PhoneEntry:
		return true, f.input(ctx, &v.Entry, label(title, v.ID))
	case *widgets.Entry:
		return true, f.input(ctx, v, label(title, v.ID))
	case *widgets.YesNoFlydown:
		return true, f.confirm(ctx, &v.OptionControl, v.Selected(), label(title, v.ID))
	case *widgets.YesNoRadioList:
		return true, f.confirm(ctx, &v.OptionControl, v.Selected(), label(title, v.ID))
	case *widgets.Flydown:
		return true, f.choose(ctx, &v.OptionControl, label(title, v.ID))
	case *widgets.RadioList:
		return true, f.choose(ctx, &v.OptionControl, label(title, v.ID))
	}
	return false, nil
}

func (f *filler) input(ctx context.Context, e *widgets.Entry, message string) error {
	if !e.Sensitive || e.ReadOnly {
		return nil
	}
	answer, err := f.driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   e.StringValue(),
		Help:      e.Placeholder,
		Validator: f.entryValidator(e),
	})
	if err != nil {
		return fmt.Errorf("prompt: %s: %w", e.ID, err)
	}
	f.values.Set(e.FieldName(), answer)
	return nil
}

func (f *filler) password(ctx context.Context, e *widgets.Entry, message string) error {
	if !e.Sensitive || e.ReadOnly {
		return nil
	}
	answer, err := f.driver.Password(ctx, InputConfig{Message: message, Validator: f.entryValidator(e)})
	if err != nil {
		return fmt.Errorf("prompt: %s: %w", e.ID, err)
	}
	f.values.Set(e.FieldName(), answer)
	return nil
}

func (f *filler) entryValidator(e *widgets.Entry) func(string) error {
	return func(answer string) error {
		if e.AutoTrim {
			answer = strings.TrimSpace(answer)
		}
		if e.Required && answer == "" {
			return fmt.Errorf("%s", f.localizer.T(render.MsgRequired))
		}
		if e.MaxLength > 0 && utf8.RuneCountInString(answer) > e.MaxLength {
			return fmt.Errorf("%s", f.localizer.T(render.MsgMaxLength, e.MaxLength))
		}
		return nil
	}
}

func (f *filler) confirm(ctx context.Context, c *widgets.OptionControl, selected *bool, message string) error {
	if !c.Sensitive {
		return nil
	}
	def := false
	if selected != nil {
		def = *selected
	}
	answer, err := f.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: def})
	if err != nil {
		return fmt.Errorf("prompt: %s: %w", c.ID, err)
	}
	f.values.Set(c.FieldName(), widgets.EncodeValue(answer))
	return nil
}

func (f *filler) choose(ctx context.Context, c *widgets.OptionControl, message string) error {
	if !c.Sensitive {
		return nil
	}
	var (
		titles  []string
		choices []widgets.Option
	)
	if !c.Required {
		titles = append(titles, f.localizer.T(render.MsgNone))
		choices = append(choices, widgets.Option{})
	}
	defaultIndex := 0
	for _, opt := range c.Options {
		if opt.Divider {
			continue
		}
		if c.IsSelected(opt) {
			defaultIndex = len(titles)
		}
		title := opt.Title
		if c.TranslateTitles {
			title = f.localizer.T(title)
		}
		titles = append(titles, title)
		choices = append(choices, opt)
	}
	if len(choices) == 0 {
		return nil
	}

	index, err := f.driver.Select(ctx, SelectConfig{Message: message, Options: titles, DefaultIndex: defaultIndex})
	if err != nil {
		return fmt.Errorf("prompt: %s: %w", c.ID, err)
	}
	if index < 0 || index >= len(choices) {
		return fmt.Errorf("prompt: %s: choice %d out of range", c.ID, index)
	}
	f.values.Set(c.FieldName(), widgets.EncodeValue(choices[index].Value))
	return nil
}

func formFieldTitle(w widgets.Widget) (string, bool) {
	switch v := w.(type) {
	case *widgets.FormField:
		return v.Title, true
	case *widgets.HeaderFormField:
		return v.Title, true
	case *widgets.FooterFormField:
		return v.Title, true
	case *widgets.GroupingFormField:
		return v.Title, true
	}
	return "", false
}

func label(title, id string) string {
	if title != "" {
		return title
	}
	return id
}
