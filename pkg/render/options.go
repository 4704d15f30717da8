package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that page renderers use to customise
// their output without touching the widget tree.
type RenderOptions struct {
	// Locale selects translations and number formatting (e.g. "en-US", "fr").
	Locale string
	// Translator overrides the built-in message catalog.
	Translator Translator
	// OnMissing controls the string used when a translation is missing.
	OnMissing MissingTranslationHandler
	// Theme carries resolved go-theme tokens and asset URLs. Stylesheet hrefs
	// registered by components are passed through Theme.AssetURL when set.
	Theme *theme.RendererConfig
	// Stylesheets are always linked, ahead of the ones registered while the
	// body renders.
	Stylesheets []string
}

// Localizer builds the request localizer described by the options.
func (o RenderOptions) Localizer() Localizer {
	return Localizer{
		Translator: o.Translator,
		Locale:     o.Locale,
		OnMissing:  o.OnMissing,
	}
}
