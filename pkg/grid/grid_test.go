package grid

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/cells"
	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/testsupport"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

func sampleGrid() *Grid {
	g := New("files", WithSource(StaticSource{
		{"id": 1, "name": "report.pdf", "size": 1536, "share": 0.256},
		{"id": 2, "name": "<notes>", "size": 512, "share": 0.5},
	}))
	g.AddColumn(Column{ID: "name"})
	g.AddColumn(Column{ID: "size", Renderer: cells.RendererByte})
	g.AddColumn(Column{ID: "share", Title: "Share", Renderer: cells.RendererPercentage, Properties: map[string]any{"precision": 1}})
	return g
}

func TestGridRendersRows(t *testing.T) {
	got := testsupport.Render(t, context.Background(), sampleGrid())

	for _, want := range []string{
		`<table id="files" class="swat-table-view">`,
		`<th class="swat-table-view-column-name">Name</th>`,
		`<th class="swat-table-view-column-share">Share</th>`,
		`<tr class="odd"><td class="swat-table-view-column-name">report.pdf</td><td class="swat-table-view-column-size">1.5 KiB</td><td class="swat-table-view-column-share">25.6%</td></tr>`,
		`<tr class="even"><td class="swat-table-view-column-name">&lt;notes&gt;</td>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got %s", want, got)
		}
	}
}

func TestGridOutline(t *testing.T) {
	g := New("people", WithSource(StaticSource{{"id": "a", "name": "Ada"}}))
	g.AddCheckboxColumn("pick")
	g.AddColumn(Column{ID: "name"})

	testsupport.AssertOutline(t, context.Background(), g, []string{
		"table.swat-table-view",
		"  thead",
		"    tr",
		"      th.swat-checkbox-column",
		"      th.swat-table-view-column-name",
		"        #text Name",
		"  tbody",
		"    tr.odd",
		"      td.swat-checkbox-column",
		"        input",
		"      td.swat-table-view-column-name",
		"        #text Ada",
	})
}

func TestGridNoRecords(t *testing.T) {
	g := New("empty", WithSource(StaticSource{}))
	g.AddColumn(Column{ID: "a"})
	g.AddColumn(Column{ID: "b"})

	ctx := render.WithLocalizer(context.Background(), render.Localizer{Locale: "es"})
	got := testsupport.Render(t, ctx, g)
	want := `<tr class="swat-none"><td colspan="2">No se encontraron registros.</td></tr>`
	if !strings.Contains(got, want) {
		t.Fatalf("expected %q, got %s", want, got)
	}

	g.NoRecordsMessage = "Nothing <here>"
	got = testsupport.Render(t, context.Background(), g)
	if !strings.Contains(got, `<td colspan="2">Nothing &lt;here&gt;</td>`) {
		t.Fatalf("expected custom message, got %s", got)
	}
}

func TestGridInvisibleRendersNothing(t *testing.T) {
	g := sampleGrid()
	g.Visible = false
	set := render.NewStylesheetSet()
	ctx := render.WithStylesheets(context.Background(), set)
	if got := testsupport.Render(t, ctx, g); got != "" {
		t.Fatalf("expected no output, got %q", got)
	}
	if len(set.List()) != 0 {
		t.Fatalf("expected no stylesheets, got %v", set.List())
	}
}

func TestGridRegistersStylesheets(t *testing.T) {
	set := render.NewStylesheetSet()
	ctx := render.WithStylesheets(context.Background(), set)
	testsupport.Render(t, ctx, sampleGrid())
	want := []string{Stylesheet, cells.Stylesheet}
	if diff := cmp.Diff(want, set.List()); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
}

func TestGridBindingsAndHiddenColumns(t *testing.T) {
	g := New("pages", WithSource(StaticSource{{"page": 2, "total": 5, "secret": "x"}}))
	g.AddColumn(Column{
		ID:         "progress",
		Renderer:   cells.RendererText,
		Properties: map[string]any{"text": "Page %s of %s"},
		Bindings:   map[string]string{"value": "page, total"},
	})
	g.AddColumn(Column{ID: "secret", Hidden: true})

	got := testsupport.Render(t, context.Background(), g)
	if !strings.Contains(got, `<td class="swat-table-view-column-progress">Page 2 of 5</td>`) {
		t.Fatalf("expected substituted cell, got %s", got)
	}
	if strings.Contains(got, "secret") {
		t.Fatalf("hidden column rendered: %s", got)
	}
}

func TestGridResolvesRendererByValue(t *testing.T) {
	g := New("flags", WithSource(StaticSource{{"active": true, "count": 3}}))
	g.AddColumn(Column{ID: "active"})
	g.AddColumn(Column{ID: "count"})

	got := testsupport.Render(t, context.Background(), g)
	if !strings.Contains(got, `<td class="swat-table-view-column-active">Yes</td>`) {
		t.Fatalf("expected boolean cell, got %s", got)
	}
	if !strings.Contains(got, `<td class="swat-table-view-column-count">3</td>`) {
		t.Fatalf("expected numeric cell, got %s", got)
	}
}

func TestGridCellErrorLeavesWriterUntouched(t *testing.T) {
	g := New("broken", WithSource(StaticSource{{"page": 2}}))
	g.AddColumn(Column{
		ID:         "progress",
		Renderer:   cells.RendererText,
		Properties: map[string]any{"text": "Page %s of %s"},
		Bindings:   map[string]string{"value": "page"},
	})

	var buf strings.Builder
	err := g.Render(context.Background(), &buf)
	if !errors.Is(err, format.ErrArgumentCount) {
		t.Fatalf("expected ErrArgumentCount, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no partial output, got %q", buf.String())
	}
}

func TestGridUnknownRenderer(t *testing.T) {
	g := New("g", WithSource(StaticSource{{"a": 1}}))
	g.AddColumn(Column{ID: "a", Renderer: "sparkline"})
	err := g.Render(context.Background(), &strings.Builder{})
	if !errors.Is(err, render.ErrUnknownComponent) {
		t.Fatalf("expected ErrUnknownComponent, got %v", err)
	}
}

func TestCheckboxColumnSelection(t *testing.T) {
	g := New("people", WithSource(StaticSource{{"id": "a"}, {"id": "b"}}))
	g.AddCheckboxColumn("pick")

	if err := g.Process(context.Background(), url.Values{"pick[]": {"b", "b", "z"}}); err != nil {
		t.Fatalf("process: %v", err)
	}

	var view widgets.View = g
	selector, ok := view.Selector("pick")
	if !ok {
		t.Fatalf("expected selector")
	}
	if diff := cmp.Diff([]string{"b", "z"}, selector.Selection().Items()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if _, ok := view.Selector("missing"); ok {
		t.Fatalf("expected no selector for unknown id")
	}

	got := testsupport.Render(t, context.Background(), g)
	if !strings.Contains(got, `<input type="checkbox" name="pick[]" value="b" checked="checked" />`) {
		t.Fatalf("expected checked row b, got %s", got)
	}
	if !strings.Contains(got, `<input type="checkbox" name="pick[]" value="a" />`) {
		t.Fatalf("expected unchecked row a, got %s", got)
	}
}

func TestColumnHeaderTitle(t *testing.T) {
	for id, want := range map[string]string{
		"created_at": "Created At",
		"file-size":  "File Size",
		"name":       "Name",
	} {
		if got := (Column{ID: id}).HeaderTitle(); got != want {
			t.Fatalf("HeaderTitle(%q): expected %q, got %q", id, want, got)
		}
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "rows.yaml")
	if err := os.WriteFile(list, []byte("- id: 1\n  name: Ada\n- id: 2\n  name: Grace\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	wrapped := filepath.Join(dir, "rows.json")
	if err := os.WriteFile(wrapped, []byte(`{"rows": [{"id": 3, "name": "Linus"}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows, err := FileSource{Path: list}.Rows(context.Background())
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 || rows[1]["name"] != "Grace" || rows[0]["id"] != 1 {
		t.Fatalf("unexpected rows %v", rows)
	}

	rows, err = FileSource{Path: wrapped}.Rows(context.Background())
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "Linus" {
		t.Fatalf("unexpected rows %v", rows)
	}

	if _, err := (FileSource{Path: filepath.Join(dir, "missing.yaml")}).Rows(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestSQLSource(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "grid.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, stmt := range []string{
		`CREATE TABLE files (id INTEGER PRIMARY KEY, name TEXT, size INTEGER)`,
		`INSERT INTO files (name, size) VALUES ('a.txt', 2048), ('b.txt', NULL)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}

	source := SQLSource{DB: db, Query: `SELECT id, name, size FROM files WHERE id >= ? ORDER BY id`, Args: []any{1}}
	rows, err := source.Rows(ctx)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["name"] != "a.txt" || rows[0]["size"] != int64(2048) || rows[1]["size"] != nil {
		t.Fatalf("unexpected rows %v", rows)
	}

	g := New("files", WithSource(source))
	g.AddColumn(Column{ID: "name"})
	g.AddColumn(Column{ID: "size", Renderer: cells.RendererByte})
	got := testsupport.Render(t, ctx, g)
	if !strings.Contains(got, `<td class="swat-table-view-column-size">2.0 KiB</td>`) {
		t.Fatalf("expected byte cell, got %s", got)
	}

	if _, err := (SQLSource{}).Rows(ctx); err == nil {
		t.Fatalf("expected error without database")
	}
}

func TestGridInsideForm(t *testing.T) {
	form := widgets.NewForm("f")
	g := New("g", WithSource(StaticSource{{"id": "1"}}))
	g.AddCheckboxColumn("sel")
	form.Add(g)

	if err := form.Process(context.Background(), url.Values{"sel[]": {"1"}}); err != nil {
		t.Fatalf("process: %v", err)
	}
	selector, _ := g.Selector("sel")
	if !selector.Selection().Contains("1") {
		t.Fatalf("expected selection through form processing")
	}
}
