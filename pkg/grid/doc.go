// Package grid renders table views: columns of cell renderers over rows read
// from a RowSource. A Grid is a widget, so it can sit inside a form, and its
// CheckboxColumn implements widgets.ViewSelector.
package grid
