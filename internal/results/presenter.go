// Package results renders a ranked sweep result set: a best-configuration
// summary card, the top rows of the ranked table and a raw-response view.
// Rendering is pure over the given writer and never fails on missing
// fields; anything absent shows as "N/A". Rows are displayed in the order
// the backend returned them — server rank is trusted, never re-sorted.
package results

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/promptsweep/sweepctl/internal/sweep"
)

// tableLimit caps how many ranked rows are displayed.
const tableLimit = 10

// bestMarker visually distinguishes the rank-1 row.
const bestMarker = "★"

// Presenter writes sweep results to out.
type Presenter struct {
	out io.Writer
}

// New returns a Presenter writing to out.
func New(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Render writes the summary card followed by the ranked table.
func (p *Presenter) Render(res *sweep.ResultSet) {
	p.RenderSummary(res)
	fmt.Fprintln(p.out) //nolint:errcheck
	p.RenderTable(res)
}

// RenderSummary writes the best-configuration summary card.
func (p *Presenter) RenderSummary(res *sweep.ResultSet) {
	best := res.BestConfig
	field := func(label, value string) {
		fmt.Fprintf(p.out, "  %s %s\n", padRight(label, 13), value) //nolint:errcheck
	}
	fmt.Fprintln(p.out, "Best configuration") //nolint:errcheck
	field("Model:", orNA(best.ModelName))
	field("Prompt:", orNA(best.PromptName))
	field("Temperature:", fmtFloat(best.Temperature))
	field("Max tokens:", fmtInt(best.MaxTokens))
	field("Score:", fmtScore(best.WeightedScore))
	field("Tests:", fmtTests(best.ValidTests, best.TotalTests))
	field("Combinations:", fmt.Sprintf("%d", res.TotalCombos))
}

// RenderTable writes the top ranked rows in the order already present in
// the result set, marking the row whose rank equals 1.
func (p *Presenter) RenderTable(res *sweep.ResultSet) {
	rows := res.AllResults
	if len(rows) > tableLimit {
		rows = rows[:tableLimit]
	}
	if len(rows) == 0 {
		fmt.Fprintln(p.out, "No results returned.") //nolint:errcheck
		return
	}

	const (
		colRank   = 6
		colModel  = 30
		colPrompt = 24
		colTemp   = 6
		colTokens = 8
		colScore  = 8
	)

	fmt.Fprintf(p.out, "  %s%s%s%s%s%s%s\n", //nolint:errcheck
		padRight("Rank", colRank),
		padRight("Model", colModel),
		padRight("Prompt", colPrompt),
		padRight("Temp", colTemp),
		padRight("Tokens", colTokens),
		padRight("Score", colScore),
		"Resp(s)")

	for _, row := range rows {
		marker := " "
		if row.Rank != nil && *row.Rank == 1 {
			marker = bestMarker
		}
		fmt.Fprintf(p.out, "%s %s%s%s%s%s%s%s\n", //nolint:errcheck
			marker,
			padRight(fmtInt(row.Rank), colRank),
			padRight(truncate(orNA(row.ModelName), colModel-2), colModel),
			padRight(truncate(orNA(row.PromptName), colPrompt-2), colPrompt),
			padRight(fmtFloat(row.Temperature), colTemp),
			padRight(fmtInt(row.MaxTokens), colTokens),
			padRight(fmtScore(row.WeightedScore), colScore),
			fmtFloat(row.Metrics.ResponseTimeSeconds))
	}
}

// RenderRaw writes the unparsed backend response for debugging.
func (p *Presenter) RenderRaw(res *sweep.ResultSet) {
	raw := res.Raw()
	if len(raw) == 0 {
		fmt.Fprintln(p.out, "N/A") //nolint:errcheck
		return
	}
	fmt.Fprintln(p.out, string(raw)) //nolint:errcheck
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func fmtScore(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", *f)
}

func fmtFloat(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *f)
}

func fmtInt(n *int) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *n)
}

func fmtTests(valid, total *int) string {
	if valid == nil && total == nil {
		return "N/A"
	}
	return fmtInt(valid) + "/" + fmtInt(total)
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// truncate shortens s to maxLen runes, replacing the last rune with "…" if
// needed.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
