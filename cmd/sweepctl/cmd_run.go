package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/promptsweep/sweepctl/internal/controller"
	"github.com/promptsweep/sweepctl/internal/projectconfig"
	"github.com/promptsweep/sweepctl/internal/prompts"
	"github.com/promptsweep/sweepctl/internal/results"
	"github.com/promptsweep/sweepctl/internal/selection"
	"github.com/promptsweep/sweepctl/internal/spinner"
	"github.com/promptsweep/sweepctl/internal/wizard"
)

func newRunCommand() *cobra.Command {
	var (
		baseURL     string
		flagModels  []string
		flagPrompts []string
		promptsFile string
		flagTemps   []float64
		flagTokens  []int
		timeout     time.Duration
		jsonOutput  bool
		reportPath  string
		noInput     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Assemble and submit a sweep",
		Long: `Assemble and submit a sweep to the experiments backend.

Without flags the command walks through an interactive selection of models,
prompts, temperatures and max-token limits. Flags pre-fill the selection;
--no-input skips the interactive step entirely and submits the flag-built
selection as-is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := projectconfig.Load(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if baseURL == "" {
				baseURL = cfg.FrontendURL()
			}
			if timeout == 0 {
				timeout = time.Duration(cfg.SubmitTimeoutSeconds) * time.Second
			}

			ctrl := controller.New(controller.Options{
				BaseURL:       baseURL,
				SubmitTimeout: timeout,
			})
			ctrl.Bootstrap(cmd.Context())

			sel := ctrl.Selection()
			if err := applyFlagSelection(&sel, flagModels, flagPrompts, promptsFile, flagTemps, flagTokens); err != nil {
				return err
			}

			if !noInput {
				next, confirmed, err := wizard.RunSweepWizard(os.Stdin, cmd.OutOrStdout(), ctrl.Catalog(), sel)
				if err != nil {
					return fmt.Errorf("selection aborted: %w", err)
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Sweep cancelled.")
					return nil
				}
				sel = next
			}

			ctrl.SetSelection(sel)
			if !ctrl.Ready() {
				return fmt.Errorf("selection incomplete: every axis (models, prompts, temperatures, max tokens) needs at least one value")
			}

			if showSpinner(noInput) {
				stop := spinner.Start(cmd.OutOrStdout(), fmt.Sprintf("submitting sweep (%d combinations)", selection.Combinations(sel)))
				defer stop()
			}

			res, err := ctrl.Submitter().Submit(cmd.Context(), sel)
			if err != nil {
				return &SweepFailureError{Message: fmt.Sprintf("sweep failed: %v", err)}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			if jsonOutput {
				results.New(out).RenderRaw(res)
			} else {
				results.New(out).Render(res)
			}

			if reportPath != "" {
				report := FormatSweepReport(res, sel)
				if err := os.WriteFile(reportPath, []byte(report), 0o644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Fprintf(out, "\nReport saved to: %s\n", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Frontend service origin (default: configured frontend URL)")
	cmd.Flags().StringArrayVar(&flagModels, "model", nil, "Model to sweep (can be repeated)")
	cmd.Flags().StringArrayVar(&flagPrompts, "prompt", nil, "Prompt variant (can be repeated, max 3)")
	cmd.Flags().StringVar(&promptsFile, "prompts-file", "", "File of prompt variants (markdown or plain text)")
	cmd.Flags().Float64SliceVar(&flagTemps, "temp", nil, "Temperature to sweep (can be repeated)")
	cmd.Flags().IntSliceVar(&flagTokens, "max-tokens", nil, "Max-token limit to sweep (can be repeated)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Submission timeout (default: configured timeout)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the raw backend response instead of the ranked table")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a markdown sweep report to this path")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Skip the interactive selection and submit the flag-built selection")

	return cmd
}

// applyFlagSelection overlays flag values on the bootstrapped selection.
// Temperatures and token limits must come from the fixed grid the backend
// sweeps over.
func applyFlagSelection(sel *selection.State, models, rawPrompts []string, promptsFile string, temps []float64, tokens []int) error {
	if len(models) > 0 {
		sel.Models = models
	}

	var loaded []string
	if promptsFile != "" {
		fromFile, err := prompts.FromFile(promptsFile)
		if err != nil {
			return err
		}
		loaded = fromFile
	}
	loaded = append(loaded, rawPrompts...)
	if len(loaded) > 0 {
		if len(loaded) > selection.PromptSlots {
			return fmt.Errorf("too many prompts: got %d, the sweep takes at most %d variants", len(loaded), selection.PromptSlots)
		}
		sel.SetPrompts(loaded)
	}

	if len(temps) > 0 {
		for _, tp := range temps {
			if !slices.Contains(selection.Temperatures, tp) {
				return fmt.Errorf("unsupported temperature %g: choose from %v", tp, selection.Temperatures)
			}
		}
		sel.Temperatures = temps
	}
	if len(tokens) > 0 {
		for _, tk := range tokens {
			if !slices.Contains(selection.MaxTokens, tk) {
				return fmt.Errorf("unsupported max-tokens %d: choose from %v", tk, selection.MaxTokens)
			}
		}
		sel.MaxTokens = tokens
	}
	return nil
}

// showSpinner reports whether the animated spinner should run. It stays
// off for non-interactive submissions and when stdout is not a terminal.
func showSpinner(noInput bool) bool {
	if noInput {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
