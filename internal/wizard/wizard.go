// Package wizard renders the sweep selection grids as an interactive huh
// form: a dynamic model multi-select fed by the catalog, three free-text
// prompt fields, and the fixed temperature and max-token grids. Every grid
// item is an independent toggle; nothing in a grid is mutually exclusive.
package wizard

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/promptsweep/sweepctl/internal/catalog"
	"github.com/promptsweep/sweepctl/internal/selection"
)

// RunSweepWizard collects the four selection axes. initial seeds the grids
// (catalog pre-selections and grid defaults). The returned bool reports
// whether the operator confirmed submission.
func RunSweepWizard(in io.Reader, out io.Writer, cat *catalog.Catalog, initial selection.State) (selection.State, bool, error) {
	models := append([]string(nil), initial.Models...)
	temperatures := append([]float64(nil), initial.Temperatures...)
	maxTokens := append([]int(nil), initial.MaxTokens...)
	promptFields := seedPrompts(initial.Prompts)
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Models").
				Description("Models to include in the sweep").
				Options(modelOptions(cat)...).
				Value(&models).
				Validate(func(sel []string) error {
					if len(sel) == 0 {
						return fmt.Errorf("select at least one model")
					}
					return nil
				}),
			huh.NewInput().
				Title("Prompt 1").
				Placeholder("Summarize the following text").
				Value(&promptFields[0]),
			huh.NewInput().
				Title("Prompt 2").
				Placeholder("optional").
				Value(&promptFields[1]),
			huh.NewInput().
				Title("Prompt 3").
				Placeholder("optional").
				Value(&promptFields[2]),
			huh.NewMultiSelect[float64]().
				Title("Temperatures").
				Options(temperatureOptions()...).
				Value(&temperatures).
				Validate(func(sel []float64) error {
					if len(sel) == 0 {
						return fmt.Errorf("select at least one temperature")
					}
					return nil
				}),
			huh.NewMultiSelect[int]().
				Title("Max tokens").
				Options(tokenOptions()...).
				Value(&maxTokens).
				Validate(func(sel []int) error {
					if len(sel) == 0 {
						return fmt.Errorf("select at least one token limit")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Submit sweep?").
				Affirmative("Run").
				Negative("Cancel").
				Value(&confirmed),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return selection.State{}, false, fmt.Errorf("wizard failed: %w", err)
	}

	state := selection.State{
		Models:       models,
		Temperatures: temperatures,
		MaxTokens:    maxTokens,
	}
	state.SetPrompts(promptFields)
	return state, confirmed, nil
}

// seedPrompts maps already-collected prompts onto the fixed prompt slots.
func seedPrompts(prompts []string) []string {
	fields := make([]string, selection.PromptSlots)
	for i, p := range prompts {
		if i >= selection.PromptSlots {
			break
		}
		fields[i] = p
	}
	return fields
}

// modelOptions builds the model grid from the catalog's display view.
func modelOptions(cat *catalog.Catalog) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, e := range cat.Display() {
		label := fmt.Sprintf("%s (%s)", e.DisplayName, e.ID)
		opts = append(opts, huh.NewOption(label, e.ID))
	}
	return opts
}

func temperatureOptions() []huh.Option[float64] {
	var opts []huh.Option[float64]
	for _, v := range selection.Temperatures {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%g", v), v))
	}
	return opts
}

func tokenOptions() []huh.Option[int] {
	var opts []huh.Option[int]
	for _, v := range selection.MaxTokens {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d", v), v))
	}
	return opts
}
