package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidgets/internal/config"
	"github.com/goliatone/go-formwidgets/pkg/orchestrator"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/page"
)

// app carries what every subcommand shares once flags and config are loaded.
type app struct {
	stdout, stderr io.Writer

	configFile string
	output     string
	watch      bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "formwidgets",
		Short: "Render grid and form definitions to HTML",
		Long: `formwidgets renders YAML grid and form definitions with the built-in cell
renderers and widgets.

Configuration is read from --config, FORMWIDGETS_CONFIG or .formwidgets.yaml,
then FORMWIDGETS_* environment variables, then flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Log.Logger(a.stderr)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default .formwidgets.yaml, or FORMWIDGETS_CONFIG)")
	flags.String("locale", "en", "locale used for translated strings and number formatting")
	flags.String("renderer", page.NameHTML, "page renderer (html, fragment)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.String("asset-prefix", page.DefaultAssetPrefix, "URL prefix for component stylesheets")
	flags.Bool("inline-css", false, "inline component stylesheets instead of linking them")
	flags.String("db", "", "sqlite database grid rows are queried from")
	flags.StringVarP(&a.output, "output", "o", "", "output file (stdout if empty)")
	flags.BoolVarP(&a.watch, "watch", "w", false, "re-render whenever the definition file changes")

	root.AddCommand(newGridCommand(a), newFormCommand(a), newListCommand(a))
	return root
}

func (a *app) orchestrator() *orchestrator.Orchestrator {
	pageOpts := []page.Option{page.WithAssetPrefix(a.cfg.Assets.Prefix)}
	if a.cfg.Assets.Inline {
		pageOpts = append(pageOpts, page.WithInlineStyles(page.AssetsFS()))
	}
	return orchestrator.New(
		orchestrator.WithLogger(a.logger),
		orchestrator.WithDefaultRenderer(a.cfg.Renderer),
		orchestrator.WithPageOptions(pageOpts...),
	)
}

func (a *app) renderOptions() render.RenderOptions {
	return render.RenderOptions{
		Locale: a.cfg.Locale,
		Theme:  a.cfg.Theme.RendererConfig(),
	}
}

func (a *app) write(out []byte) error {
	if a.output == "" {
		_, err := a.stdout.Write(out)
		return err
	}
	if err := os.WriteFile(a.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.logger.Info("output written", "path", a.output, "bytes", len(out))
	return nil
}
