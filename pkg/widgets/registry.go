package widgets

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formwidgets/pkg/render"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetForm                    = "form"
	WidgetContainer               = "container"
	WidgetDisplayableContainer    = "displayable-container"
	WidgetContentBlock            = "content-block"
	WidgetEntry                   = "entry"
	WidgetPhoneEntry              = "phone-entry"
	WidgetPasswordEntry           = "password-entry"
	WidgetConfirmPasswordEntry    = "confirm-password-entry"
	WidgetFormField               = "form-field"
	WidgetHeaderFormField         = "header-form-field"
	WidgetFooterFormField         = "footer-form-field"
	WidgetGroupingFormField       = "grouping-form-field"
	WidgetFlydown                 = "flydown"
	WidgetRadioList               = "radio-list"
	WidgetYesNoFlydown            = "yes-no-flydown"
	WidgetYesNoRadioList          = "yes-no-radio-list"
	WidgetActions                 = "actions"
	WidgetActionItem              = "action-item"
	WidgetActionItemDivider       = "action-item-divider"
	WidgetNoteBook                = "note-book"
	WidgetNoteBookPage            = "note-book-page"
	WidgetReplicableContainer     = "replicable-container"
	WidgetReplicableNoteBookChild = "replicable-note-book-child"
)

// Factory builds a widget with the given id.
type Factory func(id string) Widget

// Registry maps widget names and aliases to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	aliases   map[string]string
}

// NewRegistry constructs a registry with the built-in widgets registered.
func NewRegistry() *Registry {
	reg := &Registry{
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
	}
	reg.registerBuiltins()
	return reg
}

// Register adds a factory. Duplicate names return an error.
func (r *Registry) Register(name string, factory Factory) error {
	name = normalize(name)
	if name == "" || factory == nil {
		return render.NewConfigError("widgets registry", render.ErrMissingCollaborator, "name and factory are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("widgets: widget %q already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Alias makes alias resolve to the registered widget name.
func (r *Registry) Alias(alias, name string) {
	alias, name = normalize(alias), normalize(name)
	if alias == "" || name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = name
}

// Resolve returns the canonical name for name or one of its aliases.
func (r *Registry) Resolve(name string) (string, bool) {
	name = normalize(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	_, ok := r.factories[name]
	return name, ok
}

// New builds a widget by name.
func (r *Registry) New(name, id string) (Widget, error) {
	canonical, ok := r.Resolve(name)
	if !ok {
		return nil, render.ConfigErrorf("widgets registry", render.ErrUnknownComponent, "widget %q", name)
	}
	r.mu.RLock()
	factory := r.factories[canonical]
	r.mu.RUnlock()
	return factory(id), nil
}

// Names returns the registered widget names, sorted.
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

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *Registry) registerBuiltins() {
	r.MustRegister(WidgetForm, func(id string) Widget { return NewForm(id) })
	r.MustRegister(WidgetContainer, func(id string) Widget { return NewContainer(id) })
	r.MustRegister(WidgetDisplayableContainer, func(id string) Widget { return NewDisplayableContainer(id) })
	r.MustRegister(WidgetContentBlock, func(id string) Widget { return NewContentBlock(id, "") })
	r.MustRegister(WidgetEntry, func(id string) Widget { return NewEntry(id) })
	r.MustRegister(WidgetPhoneEntry, func(id string) Widget { return NewPhoneEntry(id) })
	r.MustRegister(WidgetPasswordEntry, func(id string) Widget { return NewPasswordEntry(id) })
	r.MustRegister(WidgetConfirmPasswordEntry, func(id string) Widget { return NewConfirmPasswordEntry(id, nil) })
	r.MustRegister(WidgetFormField, func(id string) Widget { return NewFormField(id, "") })
	r.MustRegister(WidgetHeaderFormField, func(id string) Widget { return NewHeaderFormField(id, "") })
	r.MustRegister(WidgetFooterFormField, func(id string) Widget { return NewFooterFormField(id, "") })
	r.MustRegister(WidgetGroupingFormField, func(id string) Widget { return NewGroupingFormField(id, "") })
	r.MustRegister(WidgetFlydown, func(id string) Widget { return NewFlydown(id) })
	r.MustRegister(WidgetRadioList, func(id string) Widget { return NewRadioList(id) })
	r.MustRegister(WidgetYesNoFlydown, func(id string) Widget { return NewYesNoFlydown(id) })
	r.MustRegister(WidgetYesNoRadioList, func(id string) Widget { return NewYesNoRadioList(id) })
	r.MustRegister(WidgetActions, func(id string) Widget { return NewActions(id) })
	r.MustRegister(WidgetActionItem, func(id string) Widget { return NewActionItem(id, "") })
	r.MustRegister(WidgetActionItemDivider, func(id string) Widget { return NewActionItemDivider(id) })
	r.MustRegister(WidgetNoteBook, func(id string) Widget { return NewNoteBook(id) })
	r.MustRegister(WidgetNoteBookPage, func(id string) Widget { return NewNoteBookPage(id, "") })
	r.MustRegister(WidgetReplicableContainer, func(id string) Widget { return NewReplicableContainer(id) })
	r.MustRegister(WidgetReplicableNoteBookChild, func(id string) Widget { return NewReplicableNoteBookChild(id) })

	r.Alias("text", WidgetEntry)
	r.Alias("tel", WidgetPhoneEntry)
	r.Alias("phone", WidgetPhoneEntry)
	r.Alias("password", WidgetPasswordEntry)
	r.Alias("confirm-password", WidgetConfirmPasswordEntry)
	r.Alias("select", WidgetFlydown)
	r.Alias("radio", WidgetRadioList)
	r.Alias("yes-no", WidgetYesNoFlydown)
	r.Alias("boolean", WidgetYesNoFlydown)
	r.Alias("fieldset", WidgetGroupingFormField)
	r.Alias("divider", WidgetActionItemDivider)
}
