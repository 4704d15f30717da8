package render_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formwidgets/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestDefaultTranslatorLocales(t *testing.T) {
	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{locale: "", key: render.MsgYes, want: "Yes"},
		{locale: "en-US", key: render.MsgNo, want: "No"},
		{locale: "fr", key: render.MsgYes, want: "Oui"},
		{locale: "de_DE", key: render.MsgNo, want: "Nein"},
		{locale: "es-MX", key: render.MsgYes, want: "Sí"},
		{locale: "ja", key: render.MsgYes, want: "Yes"},
	}
	for _, tt := range tests {
		got, err := render.DefaultTranslator().Translate(tt.locale, tt.key)
		if err != nil {
			t.Fatalf("translate %q/%q: %v", tt.locale, tt.key, err)
		}
		if got != tt.want {
			t.Fatalf("translate %q/%q: expected %q, got %q", tt.locale, tt.key, tt.want, got)
		}
	}
}

func TestDefaultTranslatorFormatsArguments(t *testing.T) {
	got, err := render.DefaultTranslator().Translate("en", render.MsgMaxLength, 8)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "This field can be at most 8 characters long." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestDefaultTranslatorMissingKey(t *testing.T) {
	_, err := render.DefaultTranslator().Translate("en", "Unknown key")
	if !errors.Is(err, render.ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}

func TestLocalizerFallbacks(t *testing.T) {
	var zero render.Localizer
	if got := zero.T(render.MsgYes); got != "Yes" {
		t.Fatalf("expected zero localizer to use built-in catalog, got %q", got)
	}
	if got := zero.T("Untranslated %s", "copy"); got != "Untranslated copy" {
		t.Fatalf("expected missing key to fall back to formatted key, got %q", got)
	}

	custom := render.Localizer{Translator: stubTranslator{render.MsgYes: "Yep"}}
	if got := custom.T(render.MsgYes); got != "Yep" {
		t.Fatalf("expected custom translator, got %q", got)
	}
	if got := custom.T(render.MsgNo); got != render.MsgNo {
		t.Fatalf("expected key fallback, got %q", got)
	}

	var captured error
	handled := render.Localizer{
		Translator: stubTranslator{},
		OnMissing: func(_ string, key string, _ []any, err error) string {
			captured = err
			return "[" + key + "]"
		},
	}
	if got := handled.T("Key"); got != "[Key]" {
		t.Fatalf("expected OnMissing output, got %q", got)
	}
	if captured == nil {
		t.Fatalf("expected OnMissing to receive the translator error")
	}
}

func TestTemplateI18nFuncs(t *testing.T) {
	funcs := render.TemplateI18nFuncs(render.Localizer{Locale: "de"}, render.TemplateI18nConfig{FuncName: "t"})

	translate, ok := funcs["t"].(func(any, string, ...any) string)
	if !ok {
		t.Fatalf("expected translate helper under custom name, got %T", funcs["t"])
	}
	if got := translate(nil, render.MsgYes); got != "Ja" {
		t.Fatalf("expected localizer locale to apply, got %q", got)
	}
	if got := translate(map[string]any{"locale": "fr"}, render.MsgYes); got != "Oui" {
		t.Fatalf("expected locale from map, got %q", got)
	}
	if got := translate("es", " "); got != "" {
		t.Fatalf("expected blank key to render empty, got %q", got)
	}

	current, ok := funcs["current_locale"].(func(any) string)
	if !ok {
		t.Fatalf("expected current_locale helper")
	}
	if got := current(nil); got != "de" {
		t.Fatalf("expected fallback locale de, got %q", got)
	}
}
