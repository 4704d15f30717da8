package widgets

import (
	"bytes"
	"context"
	"io"

	"github.com/goliatone/go-formwidgets/pkg/format"
)

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Tag builds an HTML element. Attribute values are always escaped; Content
// follows ContentType.
type Tag struct {
	Name        string
	Attrs       []Attr
	Content     string
	ContentType format.ContentType
	// Void elements such as input are written self-closed.
	Void bool
}

// NewTag returns a tag named name.
func NewTag(name string) *Tag {
	return &Tag{Name: name, ContentType: format.ContentTypePlain}
}

// Set assigns an attribute, replacing an earlier value.
func (t *Tag) Set(name, value string) *Tag {
	for i := range t.Attrs {
		if t.Attrs[i].Name == name {
			t.Attrs[i].Value = value
			return t
		}
	}
	t.Attrs = append(t.Attrs, Attr{Name: name, Value: value})
	return t
}

// SetIf assigns an attribute only when value is not empty.
func (t *Tag) SetIf(name, value string) *Tag {
	if value == "" {
		return t
	}
	return t.Set(name, value)
}

// Get returns an attribute value.
func (t *Tag) Get(name string) (string, bool) {
	for _, attr := range t.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Open writes the start tag.
func (t *Tag) Open(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.WriteString(t.Name)
	for _, attr := range t.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(attr.Name)
		buf.WriteString(`="`)
		buf.WriteString(format.Escape(attr.Value))
		buf.WriteByte('"')
	}
	if t.Void {
		buf.WriteString(" />")
		return
	}
	buf.WriteByte('>')
}

// Close writes the end tag.
func (t *Tag) Close(buf *bytes.Buffer) {
	if t.Void {
		return
	}
	buf.WriteString("</")
	buf.WriteString(t.Name)
	buf.WriteByte('>')
}

// Display writes the whole element.
func (t *Tag) Display(buf *bytes.Buffer) {
	t.Open(buf)
	if !t.Void {
		buf.WriteString(format.Content(t.Content, t.ContentType))
	}
	t.Close(buf)
}

// Render implements templ.Component.
func (t *Tag) Render(_ context.Context, w io.Writer) error {
	var buf bytes.Buffer
	t.Display(&buf)
	_, err := buf.WriteTo(w)
	return err
}
