package widgets

import (
	"bytes"
	"context"
	"io"
	"net/url"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// NoteBookChild is implemented by widgets that provide notebook pages.
type NoteBookChild interface {
	Widget
	Pages() []*NoteBookPage
}

// NoteBookPage is a titled page of a NoteBook.
type NoteBookPage struct {
	Container
	Title            string
	TitleContentType format.ContentType
}

// NewNoteBookPage returns an empty page.
func NewNoteBookPage(id, title string) *NoteBookPage {
	return &NoteBookPage{Container: *NewContainer(id), Title: title, TitleContentType: format.ContentTypePlain}
}

// Pages implements NoteBookChild.
func (p *NoteBookPage) Pages() []*NoteBookPage { return []*NoteBookPage{p} }

// Render implements templ.Component.
func (p *NoteBookPage) Render(ctx context.Context, w io.Writer) error {
	return renderWidget(ctx, w, p.Visible, func(buf *bytes.Buffer) error {
		div := NewTag("div").Set("id", p.ID).Set("class", p.baseClasses("swat-note-book-page").String())
		div.Open(buf)
		if err := p.renderChildren(ctx, buf); err != nil {
			return err
		}
		div.Close(buf)
		return nil
	})
}

// SetProperty implements PropertySetter.
func (p *NoteBookPage) SetProperty(name string, value any) error {
	if ok, err := p.Base.setProperty(name, value); ok {
		return err
	}
	switch name {
	case "title":
		p.Title = props.String(value)
	case "title_content_type":
		p.TitleContentType = format.ParseContentType(props.String(value))
	default:
		return props.Unknown("note-book-page", name)
	}
	return nil
}

// Replicate implements Replicable.
func (p *NoteBookPage) Replicate(suffix string) Widget {
	clone := *p
	clone.Container = *p.Container.Replicate(suffix).(*Container)
	return &clone
}

// NoteBook renders the pages of its children as tabs.
type NoteBook struct {
	Base
	// SelectedPage is the id of the open page; blank opens the first one.
	SelectedPage string
	children     []NoteBookChild
}

// NewNoteBook returns an empty notebook.
func NewNoteBook(id string) *NoteBook {
	return &NoteBook{Base: NewBase(id)}
}

// AddChild appends a page-providing child.
func (n *NoteBook) AddChild(child NoteBookChild) {
	if child != nil {
		n.children = append(n.children, child)
	}
}

// Add appends child when it provides pages.
func (n *NoteBook) Add(child Widget) error {
	nbc, ok := child.(NoteBookChild)
	if !ok {
		return render.ConfigErrorf("note-book "+n.ID, render.ErrInvalidChild, "%T does not provide notebook pages", child)
	}
	n.AddChild(nbc)
	return nil
}

// Children implements Parent.
func (n *NoteBook) Children() []Widget {
	out := make([]Widget, 0, len(n.children))
	for _, child := range n.children {
		out = append(out, child)
	}
	return out
}

// Pages returns the pages of every child in insertion order.
func (n *NoteBook) Pages() []*NoteBookPage {
	return collectPages(n.Children())
}

func collectPages(children []Widget) []*NoteBookPage {
	var pages []*NoteBookPage
	for _, child := range children {
		if nbc, ok := child.(NoteBookChild); ok {
			pages = append(pages, nbc.Pages()...)
		}
	}
	return pages
}

// Render implements templ.Component.
func (n *NoteBook) Render(ctx context.Context, w io.Writer) error {
	return renderWidget(ctx, w, n.Visible, func(buf *bytes.Buffer) error {
		var pages []*NoteBookPage
		for _, page := range n.Pages() {
			if page.Visible {
				pages = append(pages, page)
			}
		}
		selected := n.SelectedPage
		if selected == "" && len(pages) > 0 {
			selected = pages[0].ID
		}

		div := NewTag("div").Set("id", n.ID).Set("class", n.baseClasses("swat-note-book").String())
		div.Open(buf)
		buf.WriteString(`<ul class="swat-note-book-tabs">`)
		for _, page := range pages {
			li := NewTag("li")
			if page.ID == selected {
				li.Set("class", "selected")
			}
			li.Open(buf)
			anchor := NewTag("a").Set("href", "#"+page.ID)
			anchor.Content = page.Title
			anchor.ContentType = page.TitleContentType
			anchor.Display(buf)
			li.Close(buf)
		}
		buf.WriteString(`</ul><div class="swat-note-book-pages">`)
		for _, page := range pages {
			if err := page.Render(ctx, buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</div>`)
		div.Close(buf)
		return nil
	})
}

// Process hands submitted values to every page.
func (n *NoteBook) Process(ctx context.Context, values url.Values) error {
	return processAll(ctx, values, n.Children())
}

// SetProperty implements PropertySetter.
func (n *NoteBook) SetProperty(name string, value any) error {
	if ok, err := n.Base.setProperty(name, value); ok {
		return err
	}
	if name != "selected_page" {
		return props.Unknown("note-book", name)
	}
	n.SelectedPage = props.String(value)
	return nil
}
