package widgets

import (
	"bytes"
	"context"
	"io"
	"net/url"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// DefaultReplicator names the single replica built when no replicators are
// configured.
const DefaultReplicator = "0"

// Replicable is implemented by widgets that can produce a structural copy of
// themselves. Replicas suffix every id with "_" + suffix.
type Replicable interface {
	Widget
	Replicate(suffix string) Widget
}

type replicaSet struct {
	replicator string
	widgets    []Widget
}

// ReplicableContainer holds prototype widgets and exposes one copy of them per
// replicator id. Replicas are built on first use and kept, so processed values
// survive until the next render.
type ReplicableContainer struct {
	Base
	prototypes  []Replicable
	replicators []string
	replicas    []replicaSet
	built       bool
}

// NewReplicableContainer returns a container replicated once per replicator.
func NewReplicableContainer(id string, replicators ...string) *ReplicableContainer {
	return &ReplicableContainer{Base: NewBase(id), replicators: append([]string(nil), replicators...)}
}

// AddPrototype appends a prototype and discards existing replicas.
func (c *ReplicableContainer) AddPrototype(child Replicable) {
	if child == nil {
		return
	}
	c.prototypes = append(c.prototypes, child)
	c.reset()
}

// Add appends child when it can be replicated.
func (c *ReplicableContainer) Add(child Widget) error {
	replicable, ok := child.(Replicable)
	if !ok {
		return render.ConfigErrorf("replicable-container "+c.ID, render.ErrInvalidChild, "%T cannot be replicated", child)
	}
	c.AddPrototype(replicable)
	return nil
}

// Prototypes returns the prototype widgets.
func (c *ReplicableContainer) Prototypes() []Widget {
	out := make([]Widget, 0, len(c.prototypes))
	for _, proto := range c.prototypes {
		out = append(out, proto)
	}
	return out
}

// SetReplicators replaces the replicator ids and discards existing replicas.
func (c *ReplicableContainer) SetReplicators(ids ...string) {
	c.replicators = append([]string(nil), ids...)
	c.reset()
}

// Replicators returns the effective replicator ids.
func (c *ReplicableContainer) Replicators() []string {
	if len(c.replicators) == 0 {
		return []string{DefaultReplicator}
	}
	return append([]string(nil), c.replicators...)
}

func (c *ReplicableContainer) reset() {
	c.replicas = nil
	c.built = false
}

func (c *ReplicableContainer) ensureReplicas() {
	if c.built {
		return
	}
	for _, replicator := range c.Replicators() {
		set := replicaSet{replicator: replicator}
		for _, proto := range c.prototypes {
			set.widgets = append(set.widgets, proto.Replicate(replicator))
		}
		relinkPasswords(set.widgets, replicator)
		c.replicas = append(c.replicas, set)
	}
	c.built = true
}

// relinkPasswords points replicated confirmation entries at the password entry
// replicated alongside them.
func relinkPasswords(widgets []Widget, suffix string) {
	container := &Container{children: widgets}
	for _, w := range widgets {
		Walk(w, func(node Widget) bool {
			confirm, ok := node.(*ConfirmPasswordEntry)
			if !ok || confirm.PasswordWidget == nil {
				return true
			}
			if found, ok := Find(container, replicaID(confirm.PasswordWidget.ID, suffix)); ok {
				if password, ok := found.(*PasswordEntry); ok {
					confirm.PasswordWidget = password
				}
			}
			return true
		})
	}
}

// Children implements Parent, returning every replica in replicator order.
func (c *ReplicableContainer) Children() []Widget {
	c.ensureReplicas()
	var out []Widget
	for _, set := range c.replicas {
		out = append(out, set.widgets...)
	}
	return out
}

// Replica returns the copy of the prototype protoID made for replicator.
func (c *ReplicableContainer) Replica(replicator, protoID string) (Widget, bool) {
	c.ensureReplicas()
	for _, set := range c.replicas {
		if set.replicator != replicator {
			continue
		}
		return Find(&Container{children: set.widgets}, replicaID(protoID, replicator))
	}
	return nil, false
}

// Render implements templ.Component.
func (c *ReplicableContainer) Render(ctx context.Context, w io.Writer) error {
	return renderWidget(ctx, w, c.Visible, func(buf *bytes.Buffer) error {
		return renderAll(ctx, buf, c.Children())
	})
}

// Process hands submitted values to every replica.
func (c *ReplicableContainer) Process(ctx context.Context, values url.Values) error {
	return processAll(ctx, values, c.Children())
}

// SetProperty implements PropertySetter.
func (c *ReplicableContainer) SetProperty(name string, value any) error {
	return c.setProperty("replicable-container", name, value)
}

func (c *ReplicableContainer) setProperty(component, name string, value any) error {
	if ok, err := c.Base.setProperty(name, value); ok {
		return err
	}
	if name != "replicators" {
		return props.Unknown(component, name)
	}
	c.SetReplicators(props.Strings(value)...)
	return nil
}

func (c *ReplicableContainer) replicate(suffix string) *ReplicableContainer {
	clone := NewReplicableContainer("", c.replicators...)
	clone.Base = c.replicaBase(suffix)
	for _, proto := range c.prototypes {
		if replica, ok := proto.Replicate(suffix).(Replicable); ok {
			clone.prototypes = append(clone.prototypes, replica)
		}
	}
	return clone
}

// Replicate implements Replicable.
func (c *ReplicableContainer) Replicate(suffix string) Widget {
	return c.replicate(suffix)
}

// ReplicablePage is a notebook child that can be replicated.
type ReplicablePage interface {
	NoteBookChild
	Replicable
}

// ReplicableNoteBookChild replicates notebook pages, contributing one set of
// pages per replicator to its notebook.
type ReplicableNoteBookChild struct {
	ReplicableContainer
}

// NewReplicableNoteBookChild returns an empty replicable notebook child.
func NewReplicableNoteBookChild(id string, replicators ...string) *ReplicableNoteBookChild {
	return &ReplicableNoteBookChild{ReplicableContainer: *NewReplicableContainer(id, replicators...)}
}

// AddChild appends a page-providing prototype.
func (r *ReplicableNoteBookChild) AddChild(child ReplicablePage) {
	r.AddPrototype(child)
}

// Add appends child when it both provides pages and can be replicated.
// Anything else is rejected with a configuration error and the children are
// left unchanged.
func (r *ReplicableNoteBookChild) Add(child Widget) error {
	if _, ok := child.(NoteBookChild); !ok {
		return render.ConfigErrorf("replicable-note-book-child "+r.ID, render.ErrInvalidChild, "%T does not provide notebook pages", child)
	}
	page, ok := child.(ReplicablePage)
	if !ok {
		return render.ConfigErrorf("replicable-note-book-child "+r.ID, render.ErrInvalidChild, "%T provides notebook pages but cannot be replicated", child)
	}
	r.AddChild(page)
	return nil
}

// Pages implements NoteBookChild: the pages of every replica, in order.
func (r *ReplicableNoteBookChild) Pages() []*NoteBookPage {
	return collectPages(r.Children())
}

// SetProperty implements PropertySetter.
func (r *ReplicableNoteBookChild) SetProperty(name string, value any) error {
	return r.setProperty("replicable-note-book-child", name, value)
}

// Replicate implements Replicable.
func (r *ReplicableNoteBookChild) Replicate(suffix string) Widget {
	return &ReplicableNoteBookChild{ReplicableContainer: *r.replicate(suffix)}
}
