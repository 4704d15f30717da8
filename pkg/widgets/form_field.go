package widgets

import (
	"bytes"
	"context"
	"io"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
)

// Class names used by form fields.
const (
	ClassFormField             = "swat-form-field"
	ClassFormFieldWithMessages = "swat-form-field-with-messages"
	ClassFormFieldContents     = "swat-form-field-contents"
	ClassFormFieldMessages     = "swat-form-field-messages"
	ClassNote                  = "swat-note"
)

// requirer is implemented by controls that need a value.
type requirer interface {
	IsRequired() bool
}

// FormField wraps one or more controls with a title, notes and the messages
// collected from its descendants.
type FormField struct {
	Container
	Title            string
	TitleContentType format.ContentType
	Note             string
	NoteContentType  format.ContentType
	// Required marks the field; a required first child marks it as well.
	Required bool
}

// NewFormField returns an empty form field.
func NewFormField(id, title string) *FormField {
	return &FormField{
		Container:        *NewContainer(id),
		Title:            title,
		TitleContentType: format.ContentTypePlain,
		NoteContentType:  format.ContentTypePlain,
	}
}

// IsRequired reports whether the field or its first child is required.
func (f *FormField) IsRequired() bool {
	if f.Required {
		return true
	}
	if child, ok := f.First().(requirer); ok {
		return child.IsRequired()
	}
	return false
}

// ClassNames returns the form field classes.
func (f *FormField) ClassNames() ClassList {
	classes := []string{ClassFormField}
	if f.hasDescendantMessages() {
		classes = append(classes, ClassFormFieldWithMessages)
	}
	if f.IsRequired() {
		classes = append(classes, ClassRequired)
	}
	return f.baseClasses(classes...)
}

// DescendantMessages returns the messages of every widget in the field.
func (f *FormField) DescendantMessages() []Message {
	return DescendantMessages(f)
}

func (f *FormField) hasDescendantMessages() bool {
	return len(f.DescendantMessages()) > 0
}

// TitleTag builds the label element. The label points at the first child.
func (f *FormField) TitleTag() *Tag {
	tag := NewTag("label")
	if first := f.First(); first != nil {
		tag.Set("for", first.WidgetID())
	}
	tag.Content = f.Title
	tag.ContentType = f.TitleContentType
	return tag
}

// Render implements templ.Component.
func (f *FormField) Render(ctx context.Context, w io.Writer) error {
	return f.display(ctx, w, f.ClassNames())
}

func (f *FormField) display(ctx context.Context, w io.Writer, classes ClassList) error {
	return renderWidget(ctx, w, f.Visible, func(buf *bytes.Buffer) error {
		div := NewTag("div").Set("id", f.ID).Set("class", classes.String())
		div.Open(buf)
		if f.Title != "" {
			f.writeTitle(buf, f.TitleTag())
		}
		contents := NewTag("div").Set("class", ClassFormFieldContents)
		contents.Open(buf)
		if err := f.renderChildren(ctx, buf); err != nil {
			return err
		}
		contents.Close(buf)
		f.writeNotes(buf)
		writeMessages(buf, ClassFormFieldMessages, f.DescendantMessages())
		div.Close(buf)
		return nil
	})
}

func (f *FormField) writeTitle(buf *bytes.Buffer, tag *Tag) {
	tag.Open(buf)
	buf.WriteString(format.Content(tag.Content, tag.ContentType))
	if f.IsRequired() {
		buf.WriteString(`<span class="` + ClassRequired + `">*</span>`)
	}
	tag.Close(buf)
}

func (f *FormField) writeNotes(buf *bytes.Buffer) {
	if f.Note == "" {
		return
	}
	note := NewTag("div").Set("class", ClassNote)
	note.Content = f.Note
	note.ContentType = f.NoteContentType
	note.Display(buf)
}

// SetProperty implements PropertySetter.
func (f *FormField) SetProperty(name string, value any) error {
	return f.setProperty("form-field", name, value)
}

func (f *FormField) setProperty(component, name string, value any) error {
	if ok, err := f.Base.setProperty(name, value); ok {
		return err
	}
	var err error
	switch name {
	case "title":
		f.Title = props.String(value)
	case "title_content_type":
		f.TitleContentType = format.ParseContentType(props.String(value))
	case "note":
		f.Note = props.String(value)
	case "note_content_type":
		f.NoteContentType = format.ParseContentType(props.String(value))
	case "required":
		f.Required, err = props.Bool(name, value)
	default:
		return props.Unknown(component, name)
	}
	return err
}

func (f *FormField) replica(suffix string) FormField {
	clone := *f
	clone.Container = *f.Container.Replicate(suffix).(*Container)
	return clone
}

// Replicate implements Replicable.
func (f *FormField) Replicate(suffix string) Widget {
	clone := f.replica(suffix)
	return &clone
}

// HeaderFormField is a form field shown as a header row.
type HeaderFormField struct {
	FormField
}

// NewHeaderFormField returns an empty header form field.
func NewHeaderFormField(id, title string) *HeaderFormField {
	return &HeaderFormField{FormField: *NewFormField(id, title)}
}

// ClassNames prepends the header class to the form field classes.
func (f *HeaderFormField) ClassNames() ClassList {
	return f.FormField.ClassNames().Prepend("swat-header-form-field")
}

// Render implements templ.Component.
func (f *HeaderFormField) Render(ctx context.Context, w io.Writer) error {
	return f.display(ctx, w, f.ClassNames())
}

// SetProperty implements PropertySetter.
func (f *HeaderFormField) SetProperty(name string, value any) error {
	return f.setProperty("header-form-field", name, value)
}

// Replicate implements Replicable.
func (f *HeaderFormField) Replicate(suffix string) Widget {
	return &HeaderFormField{FormField: f.replica(suffix)}
}

// FooterFormField is a form field shown below the other fields, typically
// holding buttons.
type FooterFormField struct {
	FormField
}

// NewFooterFormField returns an empty footer form field.
func NewFooterFormField(id, title string) *FooterFormField {
	return &FooterFormField{FormField: *NewFormField(id, title)}
}

// ClassNames prepends the footer class to the form field classes.
func (f *FooterFormField) ClassNames() ClassList {
	return f.FormField.ClassNames().Prepend("swat-footer-form-field")
}

// Render implements templ.Component.
func (f *FooterFormField) Render(ctx context.Context, w io.Writer) error {
	return f.display(ctx, w, f.ClassNames())
}

// SetProperty implements PropertySetter.
func (f *FooterFormField) SetProperty(name string, value any) error {
	return f.setProperty("footer-form-field", name, value)
}

// Replicate implements Replicable.
func (f *FooterFormField) Replicate(suffix string) Widget {
	return &FooterFormField{FormField: f.replica(suffix)}
}

// GroupingFormField groups several controls inside a fieldset whose legend is
// the field title.
type GroupingFormField struct {
	FormField
}

// NewGroupingFormField returns an empty grouping form field.
func NewGroupingFormField(id, title string) *GroupingFormField {
	return &GroupingFormField{FormField: *NewFormField(id, title)}
}

// ClassNames prepends the grouping class to the form field classes.
func (f *GroupingFormField) ClassNames() ClassList {
	return f.FormField.ClassNames().Prepend("swat-grouping-form-field")
}

// TitleTag builds the legend element.
func (f *GroupingFormField) TitleTag() *Tag {
	tag := NewTag("legend")
	tag.Content = f.Title
	tag.ContentType = f.TitleContentType
	return tag
}

// Render writes, in order: the outer div, the fieldset, the legend, the
// children, the notes, the fieldset end, the messages and the div end. An
// invisible or empty field writes nothing.
func (f *GroupingFormField) Render(ctx context.Context, w io.Writer) error {
	if f.First() == nil {
		return nil
	}
	return renderWidget(ctx, w, f.Visible, func(buf *bytes.Buffer) error {
		div := NewTag("div").Set("id", f.ID).Set("class", f.ClassNames().String())
		div.Open(buf)

		fieldset := NewTag("fieldset").Set("class", "swat-grouping-form-field-fieldset")
		fieldset.Open(buf)
		if f.Title != "" {
			f.writeTitle(buf, f.TitleTag())
		}
		if err := f.renderChildren(ctx, buf); err != nil {
			return err
		}
		f.writeNotes(buf)
		fieldset.Close(buf)

		writeMessages(buf, ClassFormFieldMessages, f.DescendantMessages())
		div.Close(buf)
		return nil
	})
}

// SetProperty implements PropertySetter.
func (f *GroupingFormField) SetProperty(name string, value any) error {
	return f.setProperty("grouping-form-field", name, value)
}

// Replicate implements Replicable.
func (f *GroupingFormField) Replicate(suffix string) Widget {
	return &GroupingFormField{FormField: f.replica(suffix)}
}
