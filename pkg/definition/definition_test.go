package definition

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formwidgets/pkg/grid"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/testsupport"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

const gridDocument = `
title: Files
grid:
  id: files
  no_records: Nothing yet
  checkbox_columns: [pick]
  columns:
    - id: name
    - id: size
      renderer: byte
    - id: share
      title: Share
      renderer: percentage
      properties:
        precision: 1
  rows:
    - {id: 1, name: report.pdf, size: 1536, share: 0.256}
`

const signupDocument = `
title: Sign up
form:
  id: signup
  action: /signup
  children:
    - type: header-form-field
      id: password_field
      title: Password
      children:
        - {type: password, id: password, required: true}
    - type: form-field
      id: confirm_field
      title: Confirm
      children:
        - type: confirm-password
          id: confirm
          password_widget: password
    - type: yes-no
      id: newsletter
      value: true
`

func TestBuildGrid(t *testing.T) {
	doc, err := Parse([]byte(gridDocument))
	require.NoError(t, err)
	assert.Equal(t, "Files", doc.Title)

	built, err := NewBuilder().Build(doc)
	require.NoError(t, err)
	table, ok := built.(*grid.Grid)
	require.True(t, ok, "expected *grid.Grid, got %T", built)
	require.Len(t, table.Columns, 3)

	got := testsupport.Render(t, context.Background(), table)
	assert.Contains(t, got, `<td class="swat-table-view-column-size">1.5 KiB</td>`)
	assert.Contains(t, got, `<td class="swat-table-view-column-share">25.6%</td>`)
	assert.Contains(t, got, `name="pick[]" value="1"`)

	_, ok = table.Selector("pick")
	assert.True(t, ok)
}

func TestBuildGridWithRowSourceOverride(t *testing.T) {
	doc, err := Parse([]byte(gridDocument))
	require.NoError(t, err)

	built, err := NewBuilder(WithRowSource(grid.StaticSource{})).Build(doc)
	require.NoError(t, err)

	got := testsupport.Render(t, context.Background(), built)
	assert.Contains(t, got, `<td colspan="4">Nothing yet</td>`)
}

func TestBuildFormLinksConfirmPassword(t *testing.T) {
	doc, err := Parse([]byte(signupDocument))
	require.NoError(t, err)

	built, err := NewBuilder().Build(doc)
	require.NoError(t, err)
	form, ok := built.(*widgets.Form)
	require.True(t, ok, "expected *widgets.Form, got %T", built)
	assert.Equal(t, "/signup", form.Action)

	found, ok := widgets.Find(form, "confirm")
	require.True(t, ok)
	confirm := found.(*widgets.ConfirmPasswordEntry)
	require.NotNil(t, confirm.PasswordWidget)
	assert.Equal(t, "password", confirm.PasswordWidget.ID)

	err = form.Process(context.Background(), url.Values{
		"password": {"secret"},
		"confirm":  {"other"},
	})
	require.NoError(t, err)
	assert.True(t, confirm.HasMessage())
	assert.False(t, widgets.IsValid(form))

	found, ok = widgets.Find(form, "newsletter")
	require.True(t, ok)
	selected := found.(*widgets.YesNoFlydown).Selected()
	require.NotNil(t, selected)
	assert.True(t, *selected)

	got := testsupport.Render(t, context.Background(), form)
	assert.Contains(t, got, `class="swat-header-form-field swat-form-field`)
	assert.Contains(t, got, `<form`)
}

func TestBuildReplicatedConfirmPassword(t *testing.T) {
	doc, err := Parse([]byte(`
form:
  id: people
  children:
    - type: replicable-container
      id: person
      replicators: [a, b]
      children:
        - {type: password, id: pw}
        - {type: confirm-password, id: cf, password_widget: pw}
`))
	require.NoError(t, err)

	built, err := NewBuilder().Build(doc)
	require.NoError(t, err)

	found, ok := widgets.Find(built, "person")
	require.True(t, ok)
	container := found.(*widgets.ReplicableContainer)

	replica, ok := container.Replica("b", "cf")
	require.True(t, ok)
	confirm := replica.(*widgets.ConfirmPasswordEntry)
	require.NotNil(t, confirm.PasswordWidget)
	assert.Equal(t, "pw_b", confirm.PasswordWidget.ID)
}

func TestBuildGridInsideForm(t *testing.T) {
	doc, err := Parse([]byte(`
form:
  id: f
  children:
    - type: grid
      id: people
      grid:
        checkbox_columns: [pick]
        columns: [{id: name}]
        rows: [{id: 1, name: Ada}]
`))
	require.NoError(t, err)

	built, err := NewBuilder().Build(doc)
	require.NoError(t, err)

	got := testsupport.Render(t, context.Background(), built)
	assert.Contains(t, got, `<table id="people" class="swat-table-view">`)
	assert.Contains(t, got, `Ada`)
}

func TestBuildDocumentWithGridAndForm(t *testing.T) {
	doc, err := Parse([]byte(`
grid:
  id: list
  columns: [{id: name}]
form:
  id: f
  action: /apply
`))
	require.NoError(t, err)
	assert.Equal(t, "form", doc.Form.Type)

	built, err := NewBuilder().Build(doc)
	require.NoError(t, err)
	form := built.(*widgets.Form)
	require.Len(t, form.Children(), 1)
	assert.Equal(t, "list", form.Children()[0].WidgetID())
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name   string
		doc    string
		target error
		text   string
	}{
		{
			name:   "unknown widget",
			doc:    "form:\n  id: f\n  children:\n    - {type: slider, id: s}\n",
			target: render.ErrUnknownComponent,
		},
		{
			name:   "unknown renderer",
			doc:    "grid:\n  id: g\n  columns:\n    - {id: a, renderer: sparkline}\n",
			target: render.ErrUnknownComponent,
		},
		{
			name:   "unknown property",
			doc:    "form:\n  id: f\n  children:\n    - {type: entry, id: e, colour: red}\n",
			target: render.ErrUnknownProperty,
		},
		{
			name:   "invalid child",
			doc:    "form:\n  id: f\n  children:\n    - type: replicable-note-book-child\n      id: r\n      children:\n        - {type: entry, id: e}\n",
			target: render.ErrInvalidChild,
		},
		{
			name:   "password widget is not a password entry",
			doc:    "form:\n  id: f\n  children:\n    - {type: entry, id: e}\n    - {type: confirm-password, id: c, password_widget: e}\n",
			target: render.ErrInvalidChild,
		},
		{
			name: "missing password widget",
			doc:  "form:\n  id: f\n  children:\n    - {type: confirm-password, id: c, password_widget: nope}\n",
			text: `password widget "nope" not found`,
		},
		{
			name: "password widget on other widget",
			doc:  "form:\n  id: f\n  children:\n    - {type: entry, id: e, password_widget: x}\n",
			text: "only applies to confirm-password",
		},
		{
			name: "duplicate ids",
			doc:  "form:\n  id: f\n  children:\n    - {type: entry, id: e}\n    - {type: entry, id: e}\n",
			text: `duplicate widget id "e"`,
		},
		{
			name: "duplicate columns",
			doc:  "grid:\n  id: g\n  columns: [{id: a}, {id: a}]\n",
			text: `duplicate column "a"`,
		},
		{
			name: "missing column id",
			doc:  "grid:\n  id: g\n  columns: [{title: A}]\n",
			text: "id is required",
		},
		{
			name: "leaf with children",
			doc:  "form:\n  id: f\n  children:\n    - type: entry\n      id: e\n      children:\n        - {type: entry, id: x}\n",
			text: "does not accept children",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse([]byte(tc.doc))
			require.NoError(t, err)
			_, err = NewBuilder().Build(doc)
			require.Error(t, err)
			if tc.target != nil {
				assert.True(t, errors.Is(err, tc.target), "expected %v, got %v", tc.target, err)
			}
			if tc.text != "" {
				assert.Contains(t, err.Error(), tc.text)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("title: nothing\n"))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Parse([]byte("grid:\n  id: g\n  colums: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colums")

	_, err = NewBuilder().Build(nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(gridDocument), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, doc.Grid)
	assert.Equal(t, "files", doc.Grid.ID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, strings.HasPrefix(err.Error(), "definition: read"))
}
