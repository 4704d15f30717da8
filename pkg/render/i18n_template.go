package render

import (
	"fmt"
	"strings"
)

// TemplateI18nConfig configures template-level translation helpers.
type TemplateI18nConfig struct {
	// LocaleKey is the map key holding the locale when templates pass their
	// whole context instead of a locale string. Defaults to "locale".
	LocaleKey string
	// FuncName customizes the translator helper name (defaults to "translate").
	FuncName string
}

// TemplateI18nFuncs returns helpers for template engines:
//
//	translate(localeSrc, key, ...args) string
//	current_locale(localeSrc) string
//
// localeSrc is either a locale string or a map carrying one under LocaleKey.
func TemplateI18nFuncs(l Localizer, cfg TemplateI18nConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}
	translateName := strings.TrimSpace(cfg.FuncName)
	if translateName == "" {
		translateName = "translate"
	}

	return map[string]any{
		translateName: func(localeSrc any, key string, params ...any) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			scoped := l
			if locale := resolveLocale(localeSrc, localeKey); locale != "" {
				scoped.Locale = locale
			}
			return scoped.T(key, params...)
		},
		"current_locale": func(localeSrc any) string {
			if locale := resolveLocale(localeSrc, localeKey); locale != "" {
				return locale
			}
			return l.Locale
		},
	}
}

func resolveLocale(src any, key string) string {
	switch data := src.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(data)
	case map[string]string:
		return strings.TrimSpace(data[key])
	case map[string]any:
		if v, ok := data[key]; ok && v != nil {
			return strings.TrimSpace(fmt.Sprint(v))
		}
	}
	return ""
}
