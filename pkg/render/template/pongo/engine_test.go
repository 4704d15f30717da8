package pongo

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

//go:embed testdata/templates/*.tmpl
var testTemplates embed.FS

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	sub, err := fs.Sub(testTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	engine, err := New(append([]Option{WithFS(sub)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestRenderTemplateWritesToWriters(t *testing.T) {
	engine := newEngine(t)
	var a, b strings.Builder
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "<Ada>"}, &a, &b)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Hello &lt;Ada&gt;!\n"
	if got != want || a.String() != want || b.String() != want {
		t.Fatalf("expected %q everywhere, got %q / %q / %q", want, got, a.String(), b.String())
	}
}

func TestGlobals(t *testing.T) {
	engine := newEngine(t, WithGlobals(map[string]any{
		"greet": func(name string) string { return "hi " + name },
	}))
	if err := engine.GlobalContext(map[string]any{"settings": map[string]any{"env": "staging"}}); err != nil {
		t.Fatalf("global context: %v", err)
	}
	got, err := engine.Render("globals.tmpl", map[string]any{"name": "Grace"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "STAGING hi Grace\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderString(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.Render("{{ value|trim }}|{{ markup|safe }}", map[string]any{"value": "  x  ", "markup": "<b>y</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "x|<b>y</b>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	name := fmt.Sprintf("shout_%d", len(t.Name()))
	if err := engine.RegisterFilter(name, func(in any, _ any) (any, error) {
		return strings.ToUpper(fmt.Sprint(in)) + "!", nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := engine.RegisterFilter(name, func(in any, _ any) (any, error) { return in, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
	got, err := engine.RenderString("{{ word|"+name+" }}", map[string]any{"word": "hey"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "HEY!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestErrors(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without template source")
	}
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil || !strings.Contains(err.Error(), "missing.tmpl") {
		t.Fatalf("expected load error naming the template, got %v", err)
	}
	if _, err := engine.RenderString("{% if %}", nil); err == nil {
		t.Fatalf("expected parse error")
	}
}
