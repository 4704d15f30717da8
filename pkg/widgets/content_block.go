package widgets

import (
	"bytes"
	"context"
	"io"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
)

// ContentBlock emits Content escaped, or raw when ContentType is markup.
// Sanitize passes markup through the shared sanitising policy first.
type ContentBlock struct {
	Base
	Content     string
	ContentType format.ContentType
	Sanitize    bool
}

// NewContentBlock returns a plain-text content block.
func NewContentBlock(id, content string) *ContentBlock {
	return &ContentBlock{Base: NewBase(id), Content: content, ContentType: format.ContentTypePlain}
}

// Render implements templ.Component.
func (b *ContentBlock) Render(ctx context.Context, w io.Writer) error {
	return renderWidget(ctx, w, b.Visible, func(buf *bytes.Buffer) error {
		content := b.Content
		if b.Sanitize && b.ContentType.IsMarkup() {
			content = format.SanitizeMarkup(content)
		}
		buf.WriteString(format.Content(content, b.ContentType))
		return nil
	})
}

// SetProperty implements PropertySetter.
func (b *ContentBlock) SetProperty(name string, value any) error {
	if ok, err := b.Base.setProperty(name, value); ok {
		return err
	}
	var err error
	switch name {
	case "content":
		b.Content = props.String(value)
	case "content_type":
		b.ContentType = format.ParseContentType(props.String(value))
	case "sanitize":
		b.Sanitize, err = props.Bool(name, value)
	default:
		return props.Unknown("content-block", name)
	}
	return err
}

// Replicate implements Replicable.
func (b *ContentBlock) Replicate(suffix string) Widget {
	clone := *b
	clone.Base = b.replicaBase(suffix)
	return &clone
}
