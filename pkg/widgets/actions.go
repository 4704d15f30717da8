package widgets

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// ActionEntry is an entry of an Actions flydown: an ActionItem or an
// ActionItemDivider.
type ActionEntry interface {
	Widget
	actionOption() Option
}

// ActionItem is a selectable action. Its optional Widget collects extra input
// for the action and is only shown while the action is selected.
type ActionItem struct {
	Base
	Title  string
	Widget Widget
}

// NewActionItem returns an action item.
func NewActionItem(id, title string) *ActionItem {
	return &ActionItem{Base: NewBase(id), Title: title}
}

func (i *ActionItem) actionOption() Option { return NewOption(i.ID, i.Title) }

// Children implements Parent.
func (i *ActionItem) Children() []Widget {
	if i.Widget == nil {
		return nil
	}
	return []Widget{i.Widget}
}

// Render implements templ.Component by rendering the item widget.
func (i *ActionItem) Render(ctx context.Context, w io.Writer) error {
	if i.Widget == nil {
		return nil
	}
	return renderWidget(ctx, w, i.Visible, func(buf *bytes.Buffer) error {
		return i.Widget.Render(ctx, buf)
	})
}

// SetProperty implements PropertySetter.
func (i *ActionItem) SetProperty(name string, value any) error {
	if ok, err := i.Base.setProperty(name, value); ok {
		return err
	}
	if name != "title" {
		return props.Unknown("action-item", name)
	}
	i.Title = props.String(value)
	return nil
}

// ActionItemDivider separates groups of actions. It shows up as a disabled
// option in the actions flydown and renders nothing on its own.
type ActionItemDivider struct {
	Base
	Title string
}

// NewActionItemDivider returns a divider.
func NewActionItemDivider(id string) *ActionItemDivider {
	return &ActionItemDivider{Base: NewBase(id)}
}

func (d *ActionItemDivider) actionOption() Option { return NewDivider(d.Title) }

// Render implements templ.Component.
func (d *ActionItemDivider) Render(context.Context, io.Writer) error { return nil }

// SetProperty implements PropertySetter.
func (d *ActionItemDivider) SetProperty(name string, value any) error {
	if ok, err := d.Base.setProperty(name, value); ok {
		return err
	}
	if name != "title" {
		return props.Unknown("action-item-divider", name)
	}
	d.Title = props.String(value)
	return nil
}

// Actions lets the user pick one action from a flydown and apply it.
type Actions struct {
	Base
	ApplyTitle string
	ShowBlank  bool
	items      []ActionEntry
	selected   *ActionItem
}

// NewActions returns an empty actions widget.
func NewActions(id string) *Actions {
	return &Actions{Base: NewBase(id), ShowBlank: true}
}

// AddItem appends an action item.
func (a *Actions) AddItem(item *ActionItem) {
	if item != nil {
		a.items = append(a.items, item)
	}
}

// AddDivider appends a divider and returns it.
func (a *Actions) AddDivider(title string) *ActionItemDivider {
	divider := NewActionItemDivider(replicaID(a.ID, "divider_"+strconv.Itoa(len(a.items))))
	divider.Title = title
	a.items = append(a.items, divider)
	return divider
}

// Add appends child when it is an action entry.
func (a *Actions) Add(child Widget) error {
	entry, ok := child.(ActionEntry)
	if !ok {
		return render.ConfigErrorf("actions "+a.ID, render.ErrInvalidChild, "%T is not an action item", child)
	}
	a.items = append(a.items, entry)
	return nil
}

// Children implements Parent.
func (a *Actions) Children() []Widget {
	out := make([]Widget, 0, len(a.items))
	for _, item := range a.items {
		out = append(out, item)
	}
	return out
}

// Selected returns the action chosen on submission, or nil.
func (a *Actions) Selected() *ActionItem { return a.selected }

// Select marks the item with id as selected.
func (a *Actions) Select(id string) bool {
	for _, entry := range a.items {
		if item, ok := entry.(*ActionItem); ok && item.ID == id {
			a.selected = item
			return true
		}
	}
	return false
}

// ClassNames returns the actions classes.
func (a *Actions) ClassNames() ClassList {
	return a.baseClasses("swat-actions")
}

func (a *Actions) flydown() *Flydown {
	flydown := NewFlydown(a.ID + "_action_flydown")
	flydown.Classes = []string{"swat-actions-flydown"}
	flydown.ShowBlank = a.ShowBlank
	flydown.Sensitive = a.Sensitive
	for _, entry := range a.items {
		flydown.Options = append(flydown.Options, entry.actionOption())
	}
	if a.selected != nil {
		flydown.Value = a.selected.ID
	}
	return flydown
}

// Render implements templ.Component.
func (a *Actions) Render(ctx context.Context, w io.Writer) error {
	return renderWidget(ctx, w, a.Visible, func(buf *bytes.Buffer) error {
		div := NewTag("div").Set("id", a.ID).Set("class", a.ClassNames().String())
		div.Open(buf)
		if err := a.flydown().Render(ctx, buf); err != nil {
			return err
		}
		for _, entry := range a.items {
			item, ok := entry.(*ActionItem)
			if !ok || item.Widget == nil {
				continue
			}
			classes := NewClassList("swat-action-item")
			if item != a.selected {
				classes = classes.Append("swat-hidden")
			}
			container := NewTag("div").Set("id", item.ID+"_container").Set("class", classes.String())
			container.Open(buf)
			if err := item.Render(ctx, buf); err != nil {
				return err
			}
			container.Close(buf)
		}
		title := a.ApplyTitle
		if title == "" {
			title = render.LocalizerFrom(ctx).T(render.MsgApply)
		}
		button := NewTag("button").
			Set("type", "submit").
			Set("name", a.ID+"_apply_button").
			Set("class", "swat-button swat-primary")
		if !a.Sensitive {
			button.Set("disabled", "disabled")
		}
		button.Content = title
		button.ContentType = format.ContentTypePlain
		button.Display(buf)
		div.Close(buf)
		return nil
	})
}

// Process reads the chosen action and processes its widget.
func (a *Actions) Process(ctx context.Context, values url.Values) error {
	if !a.Visible || !a.Sensitive || values == nil {
		return nil
	}
	a.selected = nil
	if !a.Select(values.Get(a.ID + "_action_flydown")) {
		return nil
	}
	if processor, ok := a.selected.Widget.(Processor); ok {
		return processor.Process(ctx, values)
	}
	return nil
}

// SetProperty implements PropertySetter.
func (a *Actions) SetProperty(name string, value any) error {
	if ok, err := a.Base.setProperty(name, value); ok {
		return err
	}
	var err error
	switch name {
	case "apply_title":
		a.ApplyTitle = props.String(value)
	case "show_blank":
		a.ShowBlank, err = props.Bool(name, value)
	default:
		return props.Unknown("actions", name)
	}
	return err
}
