package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidgets/internal/prompt"
	"github.com/goliatone/go-formwidgets/pkg/grid"
	"github.com/goliatone/go-formwidgets/pkg/orchestrator"
)

type gridFlags struct {
	definition string
	rows       string
	query      string
}

func newGridCommand(a *app) *cobra.Command {
	var f gridFlags
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render a grid definition",
		Example: `  formwidgets grid --def people.yaml
  formwidgets grid --def people.yaml --rows people.rows.yaml
  formwidgets grid --def people.yaml --db app.db --query "select id, name from people"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.rows != "" && f.query != "" {
				return errors.New("--rows and --query are mutually exclusive")
			}
			source, closeSource, err := a.rowSource(f)
			if err != nil {
				return err
			}
			defer closeSource()

			return a.run(cmd.Context(), f.definition, func(ctx context.Context, o *orchestrator.Orchestrator) ([]byte, error) {
				return o.Generate(ctx, orchestrator.Request{
					DefinitionPath: f.definition,
					Rows:           source,
					Renderer:       a.cfg.Renderer,
					RenderOptions:  a.renderOptions(),
				})
			})
		},
	}
	cmd.Flags().StringVar(&f.definition, "def", "", "grid definition file")
	cmd.Flags().StringVar(&f.rows, "rows", "", "YAML or JSON rows file replacing the definition rows")
	cmd.Flags().StringVar(&f.query, "query", "", "SQL query run against --db for the rows")
	_ = cmd.MarkFlagRequired("def")
	return cmd
}

func (a *app) rowSource(f gridFlags) (grid.RowSource, func(), error) {
	switch {
	case f.rows != "":
		return grid.FileSource{Path: f.rows}, func() {}, nil
	case f.query != "":
		if a.cfg.Database.Path == "" {
			return nil, nil, errors.New("--query needs a database (--db or database.path)")
		}
		db, err := grid.OpenSQLite(a.cfg.Database.Path)
		if err != nil {
			return nil, nil, err
		}
		return grid.SQLSource{DB: db, Query: f.query}, func() { _ = db.Close() }, nil
	default:
		return nil, func() {}, nil
	}
}

type formFlags struct {
	definition string
	values     string
	prompt     bool
}

func newFormCommand(a *app) *cobra.Command {
	var f formFlags
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Render a form definition, optionally processing a submission",
		Example: `  formwidgets form --def signup.yaml
  formwidgets form --def signup.yaml --values "email=&password=a&confirm=b"
  formwidgets form --def signup.yaml --prompt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.prompt && a.watch {
				return errors.New("--prompt cannot be combined with --watch")
			}
			var submitted url.Values
			if strings.TrimSpace(f.values) != "" {
				parsed, err := url.ParseQuery(f.values)
				if err != nil {
					return fmt.Errorf("parse --values: %w", err)
				}
				submitted = parsed
			}

			return a.run(cmd.Context(), f.definition, func(ctx context.Context, o *orchestrator.Orchestrator) ([]byte, error) {
				req := orchestrator.Request{
					DefinitionPath: f.definition,
					Values:         submitted,
					Renderer:       a.cfg.Renderer,
					RenderOptions:  a.renderOptions(),
				}
				if !f.prompt {
					return o.Generate(ctx, req)
				}
				return a.prompted(ctx, o, req, prompt.SurveyDriver{Out: a.stderr})
			})
		},
	}
	cmd.Flags().StringVar(&f.definition, "def", "", "form definition file")
	cmd.Flags().StringVar(&f.values, "values", "", "URL-encoded submission processed before rendering")
	cmd.Flags().BoolVar(&f.prompt, "prompt", false, "fill the form interactively and render the processed result")
	_ = cmd.MarkFlagRequired("def")
	return cmd
}

// prompted asks for every field on the terminal, then processes the answers
// like a submission.
func (a *app) prompted(ctx context.Context, o *orchestrator.Orchestrator, req orchestrator.Request, driver prompt.Driver) ([]byte, error) {
	root, doc, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}
	values, err := prompt.Fill(ctx, driver, root)
	if err != nil {
		return nil, err
	}
	for name, submitted := range req.Values {
		if _, answered := values[name]; !answered {
			values[name] = submitted
		}
	}
	req.Values = values
	if err := o.Apply(ctx, root, req); err != nil {
		return nil, err
	}
	return o.Render(ctx, root, doc.Title, req)
}

func (a *app) run(ctx context.Context, definition string, generate func(context.Context, *orchestrator.Orchestrator) ([]byte, error)) error {
	o := a.orchestrator()
	once := func() error {
		out, err := generate(ctx, o)
		if err != nil {
			return err
		}
		return a.write(out)
	}
	if !a.watch {
		return once()
	}
	if err := once(); err != nil {
		a.logger.Error("render failed", "definition", definition, "error", err)
	}
	return watchFile(ctx, definition, a.logger, func() {
		if err := once(); err != nil {
			a.logger.Error("render failed", "definition", definition, "error", err)
			return
		}
		a.logger.Info("re-rendered", "definition", definition)
	})
}
