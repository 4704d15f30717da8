package widgets

import (
	"context"
	"io"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// yesNoOptions are always false then true; titles are message keys translated
// at render time.
func yesNoOptions() []Option {
	return []Option{
		NewOption(false, render.MsgNo),
		NewOption(true, render.MsgYes),
	}
}

func selectedBool(value any) *bool {
	b, ok := value.(bool)
	if !ok {
		return nil
	}
	return &b
}

// YesNoFlydown is a flydown with exactly the options No (false) and Yes
// (true).
type YesNoFlydown struct {
	Flydown
}

// NewYesNoFlydown returns a yes/no flydown.
func NewYesNoFlydown(id string) *YesNoFlydown {
	flydown := NewFlydown(id)
	flydown.Options = yesNoOptions()
	flydown.TranslateTitles = true
	return &YesNoFlydown{Flydown: *flydown}
}

// Selected returns the chosen boolean, or nil when nothing is selected.
func (f *YesNoFlydown) Selected() *bool { return selectedBool(f.Value) }

// SetSelected selects the option for value.
func (f *YesNoFlydown) SetSelected(value bool) { f.Value = value }

// ClassNames prepends the yes/no class to the flydown classes.
func (f *YesNoFlydown) ClassNames() ClassList {
	return f.Flydown.ClassNames().Prepend("swat-yes-no-flydown")
}

// Render implements templ.Component.
func (f *YesNoFlydown) Render(ctx context.Context, w io.Writer) error {
	return f.display(ctx, w, f.ClassNames())
}

// SetProperty implements PropertySetter. The option list is fixed.
func (f *YesNoFlydown) SetProperty(name string, value any) error {
	if name == "options" {
		return render.ConfigErrorf("yes-no-flydown", render.ErrInvalidProperty, "options are fixed")
	}
	if name == "value" && value != nil {
		selected, err := props.Bool(name, value)
		if err != nil {
			return err
		}
		f.Value = selected
		return nil
	}
	return f.setProperty("yes-no-flydown", name, value)
}

// Replicate implements Replicable.
func (f *YesNoFlydown) Replicate(suffix string) Widget {
	return &YesNoFlydown{Flydown: *f.Flydown.Replicate(suffix).(*Flydown)}
}

// YesNoRadioList is a radio list with exactly the options No (false) and Yes
// (true).
type YesNoRadioList struct {
	RadioList
}

// NewYesNoRadioList returns a yes/no radio list.
func NewYesNoRadioList(id string) *YesNoRadioList {
	list := NewRadioList(id)
	list.Options = yesNoOptions()
	list.TranslateTitles = true
	return &YesNoRadioList{RadioList: *list}
}

// Selected returns the chosen boolean, or nil when nothing is selected.
func (r *YesNoRadioList) Selected() *bool { return selectedBool(r.Value) }

// SetSelected selects the option for value.
func (r *YesNoRadioList) SetSelected(value bool) { r.Value = value }

// ClassNames prepends the yes/no class to the radio list classes.
func (r *YesNoRadioList) ClassNames() ClassList {
	return r.RadioList.ClassNames().Prepend("swat-yes-no-radio-list")
}

// Render implements templ.Component.
func (r *YesNoRadioList) Render(ctx context.Context, w io.Writer) error {
	return r.display(ctx, w, r.ClassNames())
}

// SetProperty implements PropertySetter. The option list is fixed.
func (r *YesNoRadioList) SetProperty(name string, value any) error {
	if name == "options" {
		return render.ConfigErrorf("yes-no-radio-list", render.ErrInvalidProperty, "options are fixed")
	}
	if name == "value" && value != nil {
		selected, err := props.Bool(name, value)
		if err != nil {
			return err
		}
		r.Value = selected
		return nil
	}
	return r.setProperty("yes-no-radio-list", name, value)
}

// Replicate implements Replicable.
func (r *YesNoRadioList) Replicate(suffix string) Widget {
	return &YesNoRadioList{RadioList: *r.RadioList.Replicate(suffix).(*RadioList)}
}
