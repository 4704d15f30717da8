package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
)

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func acmeSelection() *theme.Selection {
	return &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens:  map[string]string{"brand": "#123456", "radius": "4px"},
			Assets: theme.Assets{
				Prefix: "/static/acme",
				Files:  map[string]string{"formwidgets/grid.css": "grid.css"},
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens: map[string]string{"brand": "#654321"},
					Assets: theme.Assets{Files: map[string]string{"formwidgets/cells.css": "cells.dark.css"}},
				},
			},
		},
	}
}

func TestGenerateResolvesThemeSelection(t *testing.T) {
	selector := &stubThemeSelector{selection: acmeSelection()}
	out, err := New(WithThemeSelector(selector)).Generate(context.Background(), Request{
		DefinitionPath: writeDefinition(t, gridDefinition),
		ThemeName:      "acme",
		ThemeVariant:   "dark",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0] != (selectorCall{name: "acme", variant: "dark"}) {
		t.Fatalf("unexpected selector calls %+v", selector.calls)
	}
	got := string(out)
	for _, want := range []string{
		`href="/static/acme/grid.css"`,
		`href="/static/acme/cells.dark.css"`,
		"--brand: #654321;",
		"--radius: 4px;",
		"theme-acme",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRendererConfigFallsBackForUnknownAssets(t *testing.T) {
	cfg := rendererConfig(acmeSelection())
	if got := cfg.AssetURL("formwidgets/widgets.css"); got != "" {
		t.Fatalf("expected unknown asset to resolve empty, got %q", got)
	}
	if cfg.Tokens["brand"] != "#654321" || cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("variant tokens not merged: %+v", cfg.Tokens)
	}
}

func TestGenerateThemeSelectorError(t *testing.T) {
	boom := errors.New("no such theme")
	_, err := New(WithThemeSelector(&stubThemeSelector{err: boom})).Generate(context.Background(), Request{
		DefinitionPath: writeDefinition(t, gridDefinition),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected selector error, got %v", err)
	}
}
