package template

import (
	"io"
)

// TemplateRenderer renders named templates or inline template content with a
// map of view data. Rendered output is returned and, when writers are given,
// also written to each of them.
type TemplateRenderer interface {
	Render(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(content string, data map[string]any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data map[string]any) error
}
