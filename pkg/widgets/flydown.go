package widgets

import (
	"bytes"
	"context"
	"io"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
)

// DividerTitle is shown for divider options without a title.
const DividerTitle = "──────────"

// Flydown is a single-select dropdown.
type Flydown struct {
	OptionControl
	ShowBlank  bool
	BlankTitle string
}

// NewFlydown returns a flydown with a blank first option.
func NewFlydown(id string) *Flydown {
	return &Flydown{OptionControl: newOptionControl(id), ShowBlank: true}
}

// ClassNames returns the flydown classes.
func (f *Flydown) ClassNames() ClassList {
	return f.baseClasses("swat-flydown")
}

// Render implements templ.Component.
func (f *Flydown) Render(ctx context.Context, w io.Writer) error {
	return f.display(ctx, w, f.ClassNames())
}

func (f *Flydown) display(ctx context.Context, w io.Writer, classes ClassList) error {
	return renderWidget(ctx, w, f.Visible, func(buf *bytes.Buffer) error {
		sel := NewTag("select").
			Set("name", f.FieldName()).
			Set("id", f.ID).
			Set("class", classes.String())
		if !f.Sensitive {
			sel.Set("disabled", "disabled")
		}
		sel.Open(buf)
		if f.ShowBlank {
			blank := NewTag("option").Set("value", "")
			blank.Content = f.BlankTitle
			blank.Display(buf)
		}
		for _, opt := range f.Options {
			f.writeOption(ctx, buf, opt)
		}
		sel.Close(buf)
		return nil
	})
}

func (f *Flydown) writeOption(ctx context.Context, buf *bytes.Buffer, opt Option) {
	tag := NewTag("option")
	if opt.Divider {
		tag.Set("value", "").Set("disabled", "disabled").Set("class", "swat-flydown-option-divider")
		title := opt.Title
		if title == "" {
			title = DividerTitle
		}
		tag.Open(buf)
		buf.WriteString(format.Escape(title))
		tag.Close(buf)
		return
	}
	tag.Set("value", EncodeValue(opt.Value))
	if f.IsSelected(opt) {
		tag.Set("selected", "selected")
	}
	tag.Open(buf)
	buf.WriteString(f.title(ctx, opt))
	tag.Close(buf)
}

// SetProperty implements PropertySetter.
func (f *Flydown) SetProperty(name string, value any) error {
	return f.setProperty("flydown", name, value)
}

func (f *Flydown) setProperty(component, name string, value any) error {
	var err error
	switch name {
	case "show_blank":
		f.ShowBlank, err = props.Bool(name, value)
	case "blank_title":
		f.BlankTitle = props.String(value)
	default:
		return f.OptionControl.setProperty(component, name, value)
	}
	return err
}

// Replicate implements Replicable.
func (f *Flydown) Replicate(suffix string) Widget {
	clone := *f
	clone.OptionControl = f.OptionControl.replica(suffix)
	return &clone
}

// RadioList renders options as a list of radio buttons.
type RadioList struct {
	OptionControl
}

// NewRadioList returns an empty radio list.
func NewRadioList(id string) *RadioList {
	return &RadioList{OptionControl: newOptionControl(id)}
}

// ClassNames returns the radio list classes.
func (r *RadioList) ClassNames() ClassList {
	return r.baseClasses("swat-radio-list")
}

// Render implements templ.Component.
func (r *RadioList) Render(ctx context.Context, w io.Writer) error {
	return r.display(ctx, w, r.ClassNames())
}

func (r *RadioList) display(ctx context.Context, w io.Writer, classes ClassList) error {
	return renderWidget(ctx, w, r.Visible, func(buf *bytes.Buffer) error {
		list := NewTag("ul").Set("id", r.ID).Set("class", classes.String())
		list.Open(buf)
		for _, opt := range r.Options {
			if opt.Divider {
				divider := NewTag("li").Set("class", "swat-radio-list-divider")
				divider.Content = opt.Title
				divider.Display(buf)
				continue
			}
			inputID := r.ID + "_" + EncodeValue(opt.Value)
			buf.WriteString(`<li>`)
			input := NewTag("input")
			input.Void = true
			input.Set("type", "radio").
				Set("name", r.FieldName()).
				Set("id", inputID).
				Set("value", EncodeValue(opt.Value))
			if r.IsSelected(opt) {
				input.Set("checked", "checked")
			}
			if !r.Sensitive {
				input.Set("disabled", "disabled")
			}
			input.Display(buf)
			label := NewTag("label").Set("for", inputID)
			label.Open(buf)
			buf.WriteString(r.title(ctx, opt))
			label.Close(buf)
			buf.WriteString(`</li>`)
		}
		list.Close(buf)
		return nil
	})
}

// SetProperty implements PropertySetter.
func (r *RadioList) SetProperty(name string, value any) error {
	return r.setProperty("radio-list", name, value)
}

// Replicate implements Replicable.
func (r *RadioList) Replicate(suffix string) Widget {
	return &RadioList{OptionControl: r.OptionControl.replica(suffix)}
}
