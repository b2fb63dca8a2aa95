package main

import (
	"fmt"
	"strings"

	"github.com/promptsweep/sweepctl/internal/selection"
	"github.com/promptsweep/sweepctl/internal/statistics"
	"github.com/promptsweep/sweepctl/internal/sweep"
)

const reportRowLimit = 10

// FormatSweepReport formats a sweep outcome as a markdown report.
func FormatSweepReport(res *sweep.ResultSet, sel selection.State) string {
	var b strings.Builder

	b.WriteString("## 🧪 Sweep Results\n\n")

	best := res.BestConfig
	b.WriteString(fmt.Sprintf("**Best:** %s / %s | **Score:** %s | **Tests:** %s\n\n",
		reportNA(best.ModelName),
		reportNA(best.PromptName),
		reportScore(best.WeightedScore),
		reportTests(best.ValidTests, best.TotalTests)))

	// Axis summary
	b.WriteString(fmt.Sprintf("- **Models:** %s\n", strings.Join(sel.Models, ", ")))
	b.WriteString(fmt.Sprintf("- **Prompts:** %d variant(s)\n", len(sel.Prompts)))
	b.WriteString(fmt.Sprintf("- **Temperatures:** %s\n", joinFloats(sel.Temperatures)))
	b.WriteString(fmt.Sprintf("- **Max tokens:** %s\n", joinInts(sel.MaxTokens)))
	b.WriteString(fmt.Sprintf("- **Combinations:** %d\n\n", res.TotalCombos))

	if len(res.AllResults) == 0 {
		b.WriteString("No results returned.\n")
		return b.String()
	}

	var scores []float64
	for _, row := range res.AllResults {
		if row.WeightedScore != nil {
			scores = append(scores, *row.WeightedScore)
		}
	}
	if spread := statistics.ComputeSpread(scores); spread.Count > 1 {
		b.WriteString(fmt.Sprintf("**Score spread:** %.3f - %.3f (mean %.3f, σ=%.4f)\n\n",
			spread.Min, spread.Max, spread.Mean, spread.StdDev))
	}

	// Ranked combinations, server order
	b.WriteString("### Ranked Combinations\n\n")
	b.WriteString("| Rank | Model | Prompt | Temp | Tokens | Score | Resp(s) |\n")
	b.WriteString("|------|-------|--------|------|--------|-------|----------|\n")

	rows := res.AllResults
	if len(rows) > reportRowLimit {
		rows = rows[:reportRowLimit]
	}
	for _, row := range rows {
		rank := reportInt(row.Rank)
		if row.Rank != nil && *row.Rank == 1 {
			rank = "★ " + rank
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s |\n",
			rank,
			reportNA(row.ModelName),
			reportNA(row.PromptName),
			reportFloat(row.Temperature),
			reportInt(row.MaxTokens),
			reportScore(row.WeightedScore),
			reportFloat(row.Metrics.ResponseTimeSeconds)))
	}
	b.WriteString("\n")

	if len(res.AllResults) > reportRowLimit {
		b.WriteString(fmt.Sprintf("Showing the top %d of %d combinations.\n",
			reportRowLimit, len(res.AllResults)))
	}

	return b.String()
}

func reportNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func reportScore(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", *f)
}

func reportFloat(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *f)
}

func reportTests(valid, total *int) string {
	if valid == nil && total == nil {
		return "N/A"
	}
	return reportInt(valid) + "/" + reportInt(total)
}

func reportInt(n *int) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *n)
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ", ")
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
