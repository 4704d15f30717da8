package cells

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
)

// ImageClass is set on every image rendered by ImageLinkCellRenderer.
const ImageClass = "swat-image-cell-renderer"

// ImageLinkCellRenderer renders an image, linked when the cell is sensitive.
//
// Image and Link are patterns: Value is substituted into Image and LinkValue
// into Link, a slice spreading into positional arguments and nil leaving the
// pattern unchanged.
type ImageLinkCellRenderer struct {
	Base
	Image     string
	Value     any
	Width     int
	Height    int
	Alt       string
	Title     string
	Link      string
	LinkValue any
}

// NewImageLink returns a visible, sensitive image link cell.
func NewImageLink() *ImageLinkCellRenderer {
	return &ImageLinkCellRenderer{Base: NewBase()}
}

// Render implements templ.Component.
func (c *ImageLinkCellRenderer) Render(ctx context.Context, w io.Writer) error {
	return renderCell(ctx, w, c.Base, func(buf *bytes.Buffer) error {
		src, err := format.Substitute(c.Image, c.Value)
		if err != nil {
			return fmt.Errorf("cells: image link: image: %w", err)
		}

		if c.Sensitive {
			href, err := format.Substitute(c.Link, c.LinkValue)
			if err != nil {
				return fmt.Errorf("cells: image link: link: %w", err)
			}
			buf.WriteString(`<a href="`)
			buf.WriteString(format.Escape(string(templ.URL(href))))
			buf.WriteString(`">`)
		}

		buf.WriteString(`<img src="`)
		buf.WriteString(format.Escape(string(templ.URL(src))))
		buf.WriteString(`" class="`)
		buf.WriteString(ImageClass)
		buf.WriteString(`"`)
		if c.Width > 0 {
			buf.WriteString(` width="` + strconv.Itoa(c.Width) + `"`)
		}
		if c.Height > 0 {
			buf.WriteString(` height="` + strconv.Itoa(c.Height) + `"`)
		}
		buf.WriteString(` alt="`)
		buf.WriteString(format.Escape(c.Alt))
		buf.WriteString(`"`)
		if c.Title != "" {
			buf.WriteString(` title="`)
			buf.WriteString(format.Escape(c.Title))
			buf.WriteString(`"`)
		}
		buf.WriteString(` />`)

		if c.Sensitive {
			buf.WriteString(`</a>`)
		}
		return nil
	})
}

// SetProperty implements Renderer.
func (c *ImageLinkCellRenderer) SetProperty(name string, value any) error {
	if ok, err := c.Base.setProperty(name, value); ok {
		return err
	}
	var err error
	switch name {
	case "image":
		c.Image = props.String(value)
	case "value":
		c.Value = value
	case "width":
		c.Width, err = props.Int(name, value)
	case "height":
		c.Height, err = props.Int(name, value)
	case "alt":
		c.Alt = props.String(value)
	case "title":
		c.Title = props.String(value)
	case "link":
		c.Link = props.String(value)
	case "link_value":
		c.LinkValue = value
	default:
		return props.Unknown("image-link", name)
	}
	return err
}
