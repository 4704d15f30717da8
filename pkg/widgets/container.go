package widgets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/goliatone/go-formwidgets/internal/props"
)

// Container owns an ordered list of children and renders them in order.
type Container struct {
	Base
	children []Widget
}

// NewContainer returns an empty container.
func NewContainer(id string) *Container {
	return &Container{Base: NewBase(id)}
}

// Add appends child. Nil children are ignored.
func (c *Container) Add(child Widget) {
	if child == nil {
		return
	}
	c.children = append(c.children, child)
}

// Children implements Parent.
func (c *Container) Children() []Widget {
	if len(c.children) == 0 {
		return nil
	}
	return append([]Widget(nil), c.children...)
}

// First returns the first child or nil.
func (c *Container) First() Widget {
	if len(c.children) == 0 {
		return nil
	}
	return c.children[0]
}

// Render implements templ.Component.
func (c *Container) Render(ctx context.Context, w io.Writer) error {
	return renderWidget(ctx, w, c.Visible, func(buf *bytes.Buffer) error {
		return c.renderChildren(ctx, buf)
	})
}

func (c *Container) renderChildren(ctx context.Context, w io.Writer) error {
	return renderAll(ctx, w, c.children)
}

// Process hands submitted values to every processing child.
func (c *Container) Process(ctx context.Context, values url.Values) error {
	return processAll(ctx, values, c.children)
}

// SetProperty implements PropertySetter.
func (c *Container) SetProperty(name string, value any) error {
	if ok, err := c.Base.setProperty(name, value); ok {
		return err
	}
	return props.Unknown("container", name)
}

// Replicate implements Replicable.
func (c *Container) Replicate(suffix string) Widget {
	return &Container{Base: c.replicaBase(suffix), children: replicateAll(c.children, suffix)}
}

func renderAll(ctx context.Context, w io.Writer, children []Widget) error {
	for _, child := range children {
		if err := child.Render(ctx, w); err != nil {
			return fmt.Errorf("widgets: render %q: %w", child.WidgetID(), err)
		}
	}
	return nil
}

func processAll(ctx context.Context, values url.Values, children []Widget) error {
	for _, child := range children {
		processor, ok := child.(Processor)
		if !ok {
			continue
		}
		if err := processor.Process(ctx, values); err != nil {
			return err
		}
	}
	return nil
}

// replicateAll clones children for a replica. Children that cannot replicate
// are shared between replicas.
func replicateAll(children []Widget, suffix string) []Widget {
	if len(children) == 0 {
		return nil
	}
	out := make([]Widget, len(children))
	for i, child := range children {
		if replicable, ok := child.(Replicable); ok {
			out[i] = replicable.Replicate(suffix)
			continue
		}
		out[i] = child
	}
	return out
}

// Walk visits w and its descendants depth first. Returning false from fn
// skips the node's children.
func Walk(w Widget, fn func(Widget) bool) {
	if w == nil {
		return
	}
	if !fn(w) {
		return
	}
	parent, ok := w.(Parent)
	if !ok {
		return
	}
	for _, child := range parent.Children() {
		Walk(child, fn)
	}
}

// Find returns the widget with id below (or at) root.
func Find(root Widget, id string) (Widget, bool) {
	var found Widget
	Walk(root, func(node Widget) bool {
		if found != nil {
			return false
		}
		if node.WidgetID() == id {
			found = node
			return false
		}
		return true
	})
	return found, found != nil
}

// IDs returns every widget id in the tree, in tree order.
func IDs(root Widget) []string {
	var ids []string
	Walk(root, func(node Widget) bool {
		ids = append(ids, node.WidgetID())
		return true
	})
	return ids
}
