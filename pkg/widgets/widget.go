package widgets

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// Stylesheet is registered by every visible widget.
const Stylesheet = "formwidgets/widgets.css"

// Widget is a node of a widget tree.
type Widget interface {
	templ.Component
	WidgetID() string
	IsVisible() bool
}

// Processor is implemented by widgets that read submitted form values.
// Validation failures become messages; only configuration errors are returned.
type Processor interface {
	Process(ctx context.Context, values url.Values) error
}

// Parent is implemented by widgets that own children.
type Parent interface {
	Widget
	Children() []Widget
}

// MessageHolder is implemented by widgets that collect messages.
type MessageHolder interface {
	AddMessage(msg Message)
	Messages() []Message
	HasMessage() bool
}

// PropertySetter is implemented by widgets configurable from definitions.
type PropertySetter interface {
	SetProperty(name string, value any) error
}

// AutoID returns a unique widget id for widgets created without one.
func AutoID() string {
	return "w-" + uuid.NewString()
}

// Base holds the state shared by all widgets.
type Base struct {
	ID        string
	Visible   bool
	Sensitive bool
	// Classes are user supplied classes appended after the type classes.
	Classes  []string
	messages []Message
}

// NewBase returns a visible, sensitive base. A blank id is replaced by AutoID.
func NewBase(id string) Base {
	id = strings.TrimSpace(id)
	if id == "" {
		id = AutoID()
	}
	return Base{ID: id, Visible: true, Sensitive: true}
}

// WidgetID implements Widget.
func (b *Base) WidgetID() string { return b.ID }

// IsVisible implements Widget.
func (b *Base) IsVisible() bool { return b.Visible }

// AddMessage records a message on the widget.
func (b *Base) AddMessage(msg Message) {
	b.messages = append(b.messages, msg)
}

// Messages returns the widget's own messages.
func (b *Base) Messages() []Message {
	if len(b.messages) == 0 {
		return nil
	}
	return append([]Message(nil), b.messages...)
}

// HasMessage reports whether the widget holds any message.
func (b *Base) HasMessage() bool { return len(b.messages) > 0 }

// ClearMessages drops all messages.
func (b *Base) ClearMessages() { b.messages = nil }

// baseClasses appends the sensitivity marker and user classes to typeClasses.
func (b *Base) baseClasses(typeClasses ...string) ClassList {
	list := NewClassList(typeClasses...)
	if !b.Sensitive {
		list = list.Append(ClassInsensitive)
	}
	return list.Append(b.Classes...)
}

// replicaBase copies b for a replica, suffixing the id and dropping messages.
func (b *Base) replicaBase(suffix string) Base {
	clone := *b
	clone.ID = replicaID(b.ID, suffix)
	clone.Classes = append([]string(nil), b.Classes...)
	clone.messages = nil
	return clone
}

func (b *Base) setProperty(name string, value any) (bool, error) {
	var err error
	switch name {
	case "id":
		if id := strings.TrimSpace(props.String(value)); id != "" {
			b.ID = id
		}
	case "visible":
		b.Visible, err = props.Bool(name, value)
	case "sensitive":
		b.Sensitive, err = props.Bool(name, value)
	case "classes", "class":
		b.Classes = props.Strings(value)
	default:
		return false, nil
	}
	return true, err
}

func replicaID(id, suffix string) string {
	if suffix == "" {
		return id
	}
	return id + "_" + suffix
}

// renderWidget skips invisible widgets and buffers body so a failure leaves w
// untouched.
func renderWidget(ctx context.Context, w io.Writer, visible bool, body func(buf *bytes.Buffer) error) error {
	if !visible {
		return nil
	}
	render.RegisterStylesheet(ctx, Stylesheet)

	var buf bytes.Buffer
	if err := body(&buf); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
