package format

import (
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

// ContentType tells renderers whether a string is plain text that must be
// escaped or markup that is emitted as-is.
type ContentType string

const (
	ContentTypePlain  ContentType = "text/plain"
	ContentTypeMarkup ContentType = "text/xml"
)

// IsMarkup reports whether the content type asks for raw output. The zero value
// is treated as plain text.
func (c ContentType) IsMarkup() bool {
	switch strings.ToLower(strings.TrimSpace(string(c))) {
	case string(ContentTypeMarkup), "markup", "text/html", "xml", "html":
		return true
	default:
		return false
	}
}

// ParseContentType normalises loose spellings used in definitions.
func ParseContentType(raw string) ContentType {
	if ContentType(raw).IsMarkup() {
		return ContentTypeMarkup
	}
	return ContentTypePlain
}

// Escape converts special characters to HTML entities.
func Escape(s string) string {
	return templ.EscapeString(s)
}

// Content renders s according to its content type.
func Content(s string, contentType ContentType) string {
	if contentType.IsMarkup() {
		return s
	}
	return Escape(s)
}

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// SanitizeMarkup strips scripts, event handlers and other unsafe constructs
// from user supplied markup while keeping common formatting elements.
func SanitizeMarkup(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return markupSanitizer().Sanitize(raw)
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		markupPolicy = policy
	})
	return markupPolicy
}
