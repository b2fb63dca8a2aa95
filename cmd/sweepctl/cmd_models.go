package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptsweep/sweepctl/internal/catalog"
	"github.com/promptsweep/sweepctl/internal/notify"
	"github.com/promptsweep/sweepctl/internal/projectconfig"
)

func newModelsCommand() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the models available for sweeps",
		Long: `List the models available for sweeps.

The list comes from the frontend's model proxy. When the proxy is
unreachable or returns an unusable body, a minimal fallback list is shown
instead and marked as such.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := projectconfig.Load(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if baseURL == "" {
				baseURL = cfg.FrontendURL()
			}

			loader := catalog.NewLoader(baseURL, nil, notify.Nop{}, nil)
			cat := loader.Load(cmd.Context())

			out := cmd.OutOrStdout()
			if cat.Degraded {
				fmt.Fprintln(out, "Model catalog unavailable; showing the fallback list.")
				fmt.Fprintln(out)
			}
			for _, e := range cat.Display() {
				marker := "  "
				if e.Preselected {
					marker = "* "
				}
				fmt.Fprintf(out, "%s%-28s %s\n", marker, e.DisplayName, e.ID)
			}
			fmt.Fprintf(out, "\n%d models (* selected by default)\n", len(cat.Display()))
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Frontend service origin (default: configured frontend URL)")

	return cmd
}
