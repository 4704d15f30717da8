package grid

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/yaml.v3"
)

// Row is one record of a grid, keyed by field name.
type Row map[string]any

// RowSource provides the rows of a grid.
type RowSource interface {
	Rows(ctx context.Context) ([]Row, error)
}

// StaticSource serves a fixed list of rows.
type StaticSource []Row

// Rows implements RowSource.
func (s StaticSource) Rows(context.Context) ([]Row, error) {
	return append([]Row(nil), s...), nil
}

// FileSource reads rows from a YAML or JSON file holding a list of mappings,
// or a mapping with a "rows" list.
type FileSource struct {
	Path string
}

// Rows implements RowSource.
func (s FileSource) Rows(context.Context) ([]Row, error) {
	if strings.TrimSpace(s.Path) == "" {
		return nil, errors.New("grid: file source path is required")
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("grid: read rows %s: %w", filepath.Base(s.Path), err)
	}
	return DecodeRows(data)
}

// DecodeRows decodes YAML (or JSON) row data.
func DecodeRows(data []byte) ([]Row, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("grid: decode rows: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.MappingNode {
		var wrapper struct {
			Rows []Row `yaml:"rows"`
		}
		if err := root.Decode(&wrapper); err != nil {
			return nil, fmt.Errorf("grid: decode rows: %w", err)
		}
		return wrapper.Rows, nil
	}
	var rows []Row
	if err := root.Decode(&rows); err != nil {
		return nil, fmt.Errorf("grid: decode rows: %w", err)
	}
	return rows, nil
}

// SQLSource runs Query and turns every result row into a Row keyed by column
// name.
type SQLSource struct {
	DB    *sql.DB
	Query string
	Args  []any
}

// Rows implements RowSource.
func (s SQLSource) Rows(ctx context.Context) ([]Row, error) {
	if s.DB == nil {
		return nil, errors.New("grid: sql source has no database")
	}
	rows, err := s.DB.QueryContext(ctx, s.Query, s.Args...)
	if err != nil {
		return nil, fmt.Errorf("grid: query rows: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("grid: read columns: %w", err)
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("grid: scan row: %w", err)
		}
		row := make(Row, len(columns))
		for i, column := range columns {
			if raw, ok := values[i].([]byte); ok {
				row[column] = string(raw)
				continue
			}
			row[column] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("grid: iterate rows: %w", err)
	}
	return out, nil
}

// OpenSQLite opens a sqlite database for use with SQLSource.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("grid: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
