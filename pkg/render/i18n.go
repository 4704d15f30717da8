package render

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/goliatone/go-formwidgets/pkg/format"
)

var (
	// ErrMissingTranslator is passed to MissingTranslationHandler when no
	// translator is configured.
	ErrMissingTranslator = errors.New("render: translator not configured")
	// ErrMissingTranslation is returned by CatalogTranslator for unknown keys.
	ErrMissingTranslation = errors.New("render: translation not found")
)

// Translator resolves a message key for a locale. Keys are the English source
// strings, so a missing translation can always fall back to the key itself.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler returns the string to use when translation fails.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if len(args) == 0 {
		return key
	}
	return fmt.Sprintf(key, args...)
}

// Built-in message keys used by widgets and cell renderers.
const (
	MsgYes              = "Yes"
	MsgNo               = "No"
	MsgNone             = "<none>"
	MsgNoRecords        = "No records found."
	MsgApply            = "Apply"
	MsgRequired         = "This field is required."
	MsgMaxLength        = "This field can be at most %d characters long."
	MsgPasswordMismatch = "Password and confirmation password do not match."
)

var builtinMessages = map[string]map[string]string{
	"en": {
		MsgYes:              "Yes",
		MsgNo:               "No",
		MsgNone:             "<none>",
		MsgNoRecords:        "No records found.",
		MsgApply:            "Apply",
		MsgRequired:         "This field is required.",
		MsgMaxLength:        "This field can be at most %d characters long.",
		MsgPasswordMismatch: "Password and confirmation password do not match.",
	},
	"es": {
		MsgYes:              "Sí",
		MsgNo:               "No",
		MsgNone:             "<ninguno>",
		MsgNoRecords:        "No se encontraron registros.",
		MsgApply:            "Aplicar",
		MsgRequired:         "Este campo es obligatorio.",
		MsgMaxLength:        "Este campo admite como máximo %d caracteres.",
		MsgPasswordMismatch: "La contraseña y su confirmación no coinciden.",
	},
	"fr": {
		MsgYes:              "Oui",
		MsgNo:               "Non",
		MsgNone:             "<aucun>",
		MsgNoRecords:        "Aucun enregistrement trouvé.",
		MsgApply:            "Appliquer",
		MsgRequired:         "Ce champ est obligatoire.",
		MsgMaxLength:        "Ce champ ne peut pas dépasser %d caractères.",
		MsgPasswordMismatch: "Le mot de passe et sa confirmation ne correspondent pas.",
	},
	"de": {
		MsgYes:              "Ja",
		MsgNo:               "Nein",
		MsgNone:             "<keine>",
		MsgNoRecords:        "Keine Einträge gefunden.",
		MsgApply:            "Anwenden",
		MsgRequired:         "Dieses Feld ist erforderlich.",
		MsgMaxLength:        "Dieses Feld darf höchstens %d Zeichen lang sein.",
		MsgPasswordMismatch: "Passwort und Passwortbestätigung stimmen nicht überein.",
	},
}

// CatalogTranslator is a Translator backed by an x/text message catalog.
type CatalogTranslator struct {
	builder *catalog.Builder
	keys    map[string]struct{}
}

// NewCatalogTranslator builds a translator from locale → key → message
// entries. Locales that are not in the catalog fall back to English.
func NewCatalogTranslator(entries map[string]map[string]string) (*CatalogTranslator, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	keys := make(map[string]struct{})
	for locale, messages := range entries {
		tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
		if err != nil {
			return nil, fmt.Errorf("render: parse catalog locale %q: %w", locale, err)
		}
		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("render: set catalog message %q for %s: %w", key, locale, err)
			}
			keys[key] = struct{}{}
		}
	}
	return &CatalogTranslator{builder: builder, keys: keys}, nil
}

var (
	defaultTranslatorOnce sync.Once
	defaultTranslator     *CatalogTranslator
)

// DefaultTranslator returns the built-in catalog (English, Spanish, French,
// German) used when no translator is configured.
func DefaultTranslator() *CatalogTranslator {
	defaultTranslatorOnce.Do(func() {
		translator, err := NewCatalogTranslator(builtinMessages)
		if err != nil {
			panic(err)
		}
		defaultTranslator = translator
	})
	return defaultTranslator
}

// Translate implements Translator.
func (c *CatalogTranslator) Translate(locale, key string, args ...any) (string, error) {
	if c == nil || c.builder == nil {
		return "", ErrMissingTranslator
	}
	if _, ok := c.keys[key]; !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingTranslation, key)
	}
	printer := message.NewPrinter(format.ParseLocale(locale), message.Catalog(c.builder))
	return printer.Sprintf(key, args...), nil
}

// Localizer bundles a translator with the request locale.
type Localizer struct {
	Translator Translator
	Locale     string
	OnMissing  MissingTranslationHandler
}

// T translates key, falling back through OnMissing. A zero Localizer uses the
// built-in catalog in English.
func (l Localizer) T(key string, args ...any) string {
	translator := l.Translator
	if translator == nil {
		translator = DefaultTranslator()
	}
	onMissing := l.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	msg, err := translator.Translate(l.Locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(l.Locale, key, args, err)
	}
	return msg
}
