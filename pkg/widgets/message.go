package widgets

import (
	"bytes"

	"github.com/goliatone/go-formwidgets/pkg/format"
)

// MessageType classifies a message.
type MessageType string

const (
	MessageNotification MessageType = "notification"
	MessageWarning      MessageType = "warning"
	MessageError        MessageType = "error"
	MessageSystemError  MessageType = "system-error"
)

// Message is a user visible message attached to a widget.
type Message struct {
	Primary     string
	Secondary   string
	Type        MessageType
	ContentType format.ContentType
}

// NewErrorMessage builds a plain-text error message.
func NewErrorMessage(primary string) Message {
	return Message{Primary: primary, Type: MessageError, ContentType: format.ContentTypePlain}
}

// IsError reports whether the message marks its widget invalid.
func (m Message) IsError() bool {
	return m.Type == MessageError || m.Type == MessageSystemError
}

func (m Message) cssClass() string {
	kind := m.Type
	if kind == "" {
		kind = MessageNotification
	}
	return "swat-message swat-message-" + string(kind)
}

func writeMessages(buf *bytes.Buffer, class string, messages []Message) {
	if len(messages) == 0 {
		return
	}
	buf.WriteString(`<div class="` + class + `">`)
	for _, msg := range messages {
		buf.WriteString(`<p class="` + msg.cssClass() + `">`)
		buf.WriteString(format.Content(msg.Primary, msg.ContentType))
		if msg.Secondary != "" {
			buf.WriteString(` <span class="swat-message-secondary">`)
			buf.WriteString(format.Content(msg.Secondary, msg.ContentType))
			buf.WriteString(`</span>`)
		}
		buf.WriteString(`</p>`)
	}
	buf.WriteString(`</div>`)
}

// DescendantMessages collects messages from w and every widget below it, in
// tree order.
func DescendantMessages(w Widget) []Message {
	var out []Message
	Walk(w, func(node Widget) bool {
		if holder, ok := node.(MessageHolder); ok {
			out = append(out, holder.Messages()...)
		}
		return true
	})
	return out
}

// IsValid reports whether no widget in the tree holds an error message.
func IsValid(w Widget) bool {
	for _, msg := range DescendantMessages(w) {
		if msg.IsError() {
			return false
		}
	}
	return true
}
