package widgets

import (
	"bytes"
	"context"
	"io"

	"github.com/goliatone/go-formwidgets/internal/props"
)

// DisplayableContainer is a container that wraps its children in a div.
type DisplayableContainer struct {
	Container
}

// NewDisplayableContainer returns an empty displayable container.
func NewDisplayableContainer(id string) *DisplayableContainer {
	return &DisplayableContainer{Container: *NewContainer(id)}
}

// ClassNames returns the container classes.
func (c *DisplayableContainer) ClassNames() ClassList {
	return c.baseClasses("swat-displayable-container")
}

// Render implements templ.Component.
func (c *DisplayableContainer) Render(ctx context.Context, w io.Writer) error {
	return renderWidget(ctx, w, c.Visible, func(buf *bytes.Buffer) error {
		div := NewTag("div").Set("id", c.ID).Set("class", c.ClassNames().String())
		div.Open(buf)
		if err := c.renderChildren(ctx, buf); err != nil {
			return err
		}
		div.Close(buf)
		return nil
	})
}

// SetProperty implements PropertySetter.
func (c *DisplayableContainer) SetProperty(name string, value any) error {
	if ok, err := c.Base.setProperty(name, value); ok {
		return err
	}
	return props.Unknown("displayable-container", name)
}

// Replicate implements Replicable.
func (c *DisplayableContainer) Replicate(suffix string) Widget {
	clone := c.Container.Replicate(suffix).(*Container)
	return &DisplayableContainer{Container: *clone}
}
