package widgets

import "strings"

// Shared class names.
const (
	ClassInsensitive = "swat-insensitive"
	ClassRequired    = "swat-required"
)

// ClassList is an ordered set of CSS class names.
type ClassList []string

// NewClassList builds a list from names, splitting on whitespace and dropping
// blanks and duplicates.
func NewClassList(names ...string) ClassList {
	return ClassList(nil).Append(names...)
}

// Append adds names after the existing classes.
func (c ClassList) Append(names ...string) ClassList {
	out := make(ClassList, 0, len(c)+len(names))
	out = append(out, c...)
	for _, token := range tokens(names) {
		if !out.Has(token) {
			out = append(out, token)
		}
	}
	return out
}

// Prepend puts names ahead of the existing classes. A class already present
// moves to the front.
func (c ClassList) Prepend(names ...string) ClassList {
	front := NewClassList(names...)
	out := make(ClassList, 0, len(front)+len(c))
	out = append(out, front...)
	for _, class := range c {
		if !out.Has(class) {
			out = append(out, class)
		}
	}
	return out
}

// Has reports whether class is present.
func (c ClassList) Has(class string) bool {
	for _, existing := range c {
		if existing == class {
			return true
		}
	}
	return false
}

// String joins the classes for a class attribute.
func (c ClassList) String() string {
	return strings.Join(c, " ")
}

func tokens(names []string) []string {
	var out []string
	for _, name := range names {
		out = append(out, strings.Fields(name)...)
	}
	return out
}
