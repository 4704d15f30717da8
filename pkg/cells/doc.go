// Package cells provides value-to-markup renderers used inside data-grid
// columns. Each renderer implements templ.Component and writes nothing when it
// is not visible.
//
// Renderers are configured either directly through their exported fields or,
// when built from a definition, through SetProperty with snake_case names:
//
//	cell := cells.NewText()
//	_ = cell.SetProperty("text", "Page %s of %s")
//	_ = cell.SetProperty("value", []any{2, 5})
//	err := cell.Render(ctx, w) // Page 2 of 5
package cells
