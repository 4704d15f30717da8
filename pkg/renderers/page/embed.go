package page

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/formwidgets/*.css
var embeddedAssets embed.FS

// LayoutTemplate is the default layout name.
const LayoutTemplate = "page"

// TemplatesFS exposes the embedded layout templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the component stylesheets keyed by the hrefs components
// register ("formwidgets/cells.css", ...).
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
