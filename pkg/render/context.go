package render

import (
	"context"
	"strings"
	"sync"
)

type contextKey int

const (
	stylesheetsKey contextKey = iota
	localizerKey
)

// StylesheetSet collects stylesheet hrefs registered by components while a
// page renders. Order of first registration is kept and duplicates dropped.
type StylesheetSet struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	hrefs []string
}

// NewStylesheetSet returns an empty set.
func NewStylesheetSet(initial ...string) *StylesheetSet {
	set := &StylesheetSet{seen: make(map[string]struct{})}
	for _, href := range initial {
		set.Add(href)
	}
	return set
}

// Add registers href once.
func (s *StylesheetSet) Add(href string) {
	if s == nil {
		return
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[href]; ok {
		return
	}
	s.seen[href] = struct{}{}
	s.hrefs = append(s.hrefs, href)
}

// List returns the registered hrefs in registration order.
func (s *StylesheetSet) List() []string {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.hrefs...)
}

// WithStylesheets attaches set to ctx so components can register their
// stylesheets while rendering.
func WithStylesheets(ctx context.Context, set *StylesheetSet) context.Context {
	return context.WithValue(ctx, stylesheetsKey, set)
}

// StylesheetsFrom returns the set attached to ctx, or nil.
func StylesheetsFrom(ctx context.Context) *StylesheetSet {
	if ctx == nil {
		return nil
	}
	set, _ := ctx.Value(stylesheetsKey).(*StylesheetSet)
	return set
}

// RegisterStylesheet adds href to the set attached to ctx. It is a no-op when
// nothing collects stylesheets, e.g. when rendering a single cell in a test.
func RegisterStylesheet(ctx context.Context, href string) {
	StylesheetsFrom(ctx).Add(href)
}

// WithLocalizer attaches the request localizer to ctx.
func WithLocalizer(ctx context.Context, l Localizer) context.Context {
	return context.WithValue(ctx, localizerKey, l)
}

// LocalizerFrom returns the localizer attached to ctx or the zero Localizer,
// which translates with the built-in catalog in English.
func LocalizerFrom(ctx context.Context) Localizer {
	if ctx == nil {
		return Localizer{}
	}
	l, _ := ctx.Value(localizerKey).(Localizer)
	return l
}
