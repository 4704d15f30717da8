// Package template defines the template engine seam page renderers use. The
// pongo subpackage provides the pongo2 implementation.
package template
