package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidgets/pkg/cells"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List widget types, cell renderers and page renderers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sections := []struct {
				title string
				names []string
			}{
				{"widgets", widgets.NewRegistry().Names()},
				{"cells", cells.NewRegistry().Names()},
				{"renderers", a.orchestrator().Renderers()},
			}
			for _, section := range sections {
				if _, err := fmt.Fprintf(a.stdout, "%s: %s\n", section.title, strings.Join(section.names, ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
