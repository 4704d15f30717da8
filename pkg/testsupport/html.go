package testsupport

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render renders component and fails the test on error.
func Render(t *testing.T, ctx context.Context, component templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

// ParseFragment parses markup as body content.
func ParseFragment(t *testing.T, markup string) []*html.Node {
	t.Helper()
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return nodes
}

// Outline returns one line per element of markup, indented two spaces per
// nesting level, as "tag.first-class". Text nodes are listed as "#text" with
// their trimmed content. It lets tests assert exact nesting order.
func Outline(t *testing.T, markup string) []string {
	t.Helper()
	var lines []string
	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		switch n.Type {
		case html.ElementNode:
			line := indent + n.Data
			if class := Attr(n, "class"); class != "" {
				line += "." + strings.Fields(class)[0]
			}
			lines = append(lines, line)
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c, depth+1)
			}
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, indent+"#text "+text)
			}
		}
	}
	for _, node := range ParseFragment(t, markup) {
		walk(node, 0)
	}
	return lines
}

// Attr returns the value of the named attribute.
func Attr(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// FindByID returns the element with id among nodes and their descendants.
func FindByID(nodes []*html.Node, id string) *html.Node {
	for _, node := range nodes {
		if node.Type == html.ElementNode && Attr(node, "id") == id {
			return node
		}
		var children []*html.Node
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			children = append(children, c)
		}
		if found := FindByID(children, id); found != nil {
			return found
		}
	}
	return nil
}
