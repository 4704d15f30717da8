package definition

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formwidgets/pkg/grid"
)

// ErrEmptyDocument is returned for documents with neither a grid nor a form.
var ErrEmptyDocument = errors.New("definition: document defines neither a grid nor a form")

// Document is a decoded definition file.
type Document struct {
	Title string          `yaml:"title"`
	Grid  *GridDefinition `yaml:"grid,omitempty"`
	Form  *WidgetNode     `yaml:"form,omitempty"`
}

// GridDefinition describes a grid.
type GridDefinition struct {
	ID              string             `yaml:"id"`
	RowKey          string             `yaml:"row_key,omitempty"`
	NoRecords       string             `yaml:"no_records,omitempty"`
	Classes         []string           `yaml:"classes,omitempty"`
	CheckboxColumns []string           `yaml:"checkbox_columns,omitempty"`
	Columns         []ColumnDefinition `yaml:"columns"`
	// Rows are used as a static source when no other source is given.
	Rows []grid.Row `yaml:"rows,omitempty"`
}

// ColumnDefinition describes a grid column.
type ColumnDefinition struct {
	ID         string            `yaml:"id"`
	Title      string            `yaml:"title,omitempty"`
	Renderer   string            `yaml:"renderer,omitempty"`
	Properties map[string]any    `yaml:"properties,omitempty"`
	Bindings   map[string]string `yaml:"bindings,omitempty"`
	Hidden     bool              `yaml:"hidden,omitempty"`
}

// WidgetNode describes a widget and its children.
type WidgetNode struct {
	Type     string       `yaml:"type"`
	ID       string       `yaml:"id,omitempty"`
	Children []WidgetNode `yaml:"children,omitempty"`
	// Grid is required when Type is "grid".
	Grid *GridDefinition `yaml:"grid,omitempty"`
	// PasswordWidget names the password entry a confirm-password entry
	// checks against.
	PasswordWidget string         `yaml:"password_widget,omitempty"`
	Properties     map[string]any `yaml:",inline"`
}

// Parse decodes a definition document.
func Parse(data []byte) (*Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("definition: decode: %w", err)
	}
	if doc.Grid == nil && doc.Form == nil {
		return nil, ErrEmptyDocument
	}
	if doc.Form != nil && strings.TrimSpace(doc.Form.Type) == "" {
		doc.Form.Type = "form"
	}
	return &doc, nil
}

// Load reads and parses a definition file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Parse(data)
}
