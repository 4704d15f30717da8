package cells

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// Built-in renderer names exposed by the registry.
const (
	RendererText       = "text"
	RendererNullText   = "null-text"
	RendererNumeric    = "numeric"
	RendererPercentage = "percentage"
	RendererByte       = "byte"
	RendererImageLink  = "image-link"
	RendererBoolean    = "boolean"
)

// Factory builds a fresh renderer instance.
type Factory func() Renderer

// Matcher decides whether a renderer should handle a value when a column does
// not name one.
type Matcher func(value any) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry maps renderer names to factories and picks a renderer for bare
// values through prioritised matchers. Higher priority wins; ties fall back to
// registration order.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	rules     []rule
}

// NewRegistry constructs a registry with the built-in renderers registered.
func NewRegistry() *Registry {
	reg := &Registry{factories: make(map[string]Factory)}
	reg.registerBuiltins()
	return reg
}

// Register adds a factory under name. Duplicate names return an error.
func (r *Registry) Register(name string, factory Factory) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || factory == nil {
		return render.NewConfigError("cells registry", render.ErrMissingCollaborator, "name and factory are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[trimmed]; exists {
		return fmt.Errorf("cells: renderer %q already registered", trimmed)
	}
	r.factories[trimmed] = factory
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// RegisterMatcher adds a matcher used by Resolve.
func (r *Registry) RegisterMatcher(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{name: trimmed, priority: priority, match: matcher, order: len(r.rules)})
}

// New builds a renderer by name.
func (r *Registry) New(name string) (Renderer, error) {
	r.mu.RLock()
	factory, ok := r.factories[strings.TrimSpace(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, render.ConfigErrorf("cells registry", render.ErrUnknownComponent, "renderer %q", name)
	}
	return factory(), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[strings.TrimSpace(name)]
	return ok
}

// Names returns the registered renderer names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the renderer name for a value.
func (r *Registry) Resolve(value any) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(value) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	r.MustRegister(RendererText, func() Renderer { return NewText() })
	r.MustRegister(RendererNullText, func() Renderer { return NewNullText() })
	r.MustRegister(RendererNumeric, func() Renderer { return NewNumeric() })
	r.MustRegister(RendererPercentage, func() Renderer { return NewPercentage() })
	r.MustRegister(RendererByte, func() Renderer { return NewByte() })
	r.MustRegister(RendererImageLink, func() Renderer { return NewImageLink() })
	r.MustRegister(RendererBoolean, func() Renderer { return NewBoolean() })

	r.RegisterMatcher(RendererBoolean, 90, func(value any) bool {
		_, ok := value.(bool)
		return ok
	})
	r.RegisterMatcher(RendererNumeric, 80, func(value any) bool {
		if _, isString := value.(string); isString {
			return false
		}
		return format.IsNumeric(value)
	})
	r.RegisterMatcher(RendererText, 0, func(any) bool { return true })
}
