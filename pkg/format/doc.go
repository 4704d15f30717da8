// Package format holds the string-level collaborators shared by cell renderers
// and widgets: entity escaping, positional substitution, locale-aware number
// formatting, base-2 byte sizes and markup sanitising.
//
// Everything here is stateless apart from the lazily built sanitising policy,
// so the helpers are safe to call from concurrent requests.
package format
