package formwidgets

import (
	"io/fs"

	"github.com/goliatone/go-formwidgets/pkg/renderers/page"
)

// EmbeddedTemplates exposes the built-in page layout templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

// StylesheetsFS exposes the component stylesheets under the hrefs components
// register, ready to mount at the page renderer's asset prefix:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(formwidgets.StylesheetsFS()),
//	  ),
//	)
func StylesheetsFS() fs.FS {
	return page.AssetsFS()
}
