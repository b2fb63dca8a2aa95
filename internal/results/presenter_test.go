package results

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptsweep/sweepctl/internal/sweep"
)

func intp(n int) *int { return &n }

func rankedSet(t *testing.T) *sweep.ResultSet {
	t.Helper()
	body := `{
		"best_config": {
			"model_name": "openai/gpt-4o-mini",
			"prompt_name": "Summarize",
			"temperature": 0.5,
			"max_tokens": 1024,
			"weighted_score": 0.91337,
			"valid_tests": 3,
			"total_tests": 4
		},
		"all_results": [
			{"rank": 1, "model_name": "openai/gpt-4o-mini", "weighted_score": 0.91337, "metrics": {"response_time_seconds": 1.2}},
			{"rank": 2, "model_name": "anthropic/claude-3-5-haiku", "weighted_score": 0.88},
			{"rank": 3, "model_name": "mistral/mistral-large", "weighted_score": 0.71}
		],
		"total_combos": 12
	}`
	res, err := sweep.ParseResultSet([]byte(body))
	require.NoError(t, err)
	return res
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).RenderSummary(rankedSet(t))
	out := buf.String()

	assert.Contains(t, out, "openai/gpt-4o-mini")
	assert.Contains(t, out, "0.913", "score shown to 3 decimal places")
	assert.NotContains(t, out, "0.91337")
	assert.Contains(t, out, "3/4")
	assert.Contains(t, out, "12")
}

func TestRenderSummaryMissingFields(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).RenderSummary(&sweep.ResultSet{})
	out := buf.String()

	assert.Contains(t, out, "N/A")
	assert.NotContains(t, out, "N/A/N/A", "fully-missing test counts collapse to one N/A")
	assert.NotContains(t, out, "0.000", "missing score must not render as zero")
}

func TestRenderSummaryPartialTestCounts(t *testing.T) {
	valid := 3
	res := &sweep.ResultSet{}
	res.BestConfig.ValidTests = &valid

	var buf bytes.Buffer
	New(&buf).RenderSummary(res)

	assert.Contains(t, buf.String(), "3/N/A", "a present count keeps the v/t form")
}

func TestRenderTablePreservesOrderAndMarksBest(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).RenderTable(rankedSet(t))
	out := buf.String()

	first := strings.Index(out, "openai/gpt-4o-mini")
	second := strings.Index(out, "anthropic/claude-3-5-haiku")
	third := strings.Index(out, "mistral/mistral-large")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)

	marked := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, bestMarker) {
			marked++
			assert.Contains(t, line, "openai/gpt-4o-mini")
		}
	}
	assert.Equal(t, 1, marked, "exactly the rank-1 row is marked")
}

func TestRenderTableTopTen(t *testing.T) {
	res := &sweep.ResultSet{}
	for i := 1; i <= 25; i++ {
		res.AllResults = append(res.AllResults, sweep.ResultRow{
			Rank:      intp(i),
			ModelName: "provider/model",
		})
	}
	var buf bytes.Buffer
	New(&buf).RenderTable(res)

	lines := strings.Count(buf.String(), "\n")
	assert.Equal(t, 11, lines, "header plus ten rows")
}

func TestRenderTableMissingNumericFields(t *testing.T) {
	res := &sweep.ResultSet{
		AllResults: []sweep.ResultRow{
			{ModelName: "provider/model"},
		},
	}
	var buf bytes.Buffer
	assert.NotPanics(t, func() { New(&buf).RenderTable(res) })
	assert.Contains(t, buf.String(), "N/A")
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).RenderTable(&sweep.ResultSet{})
	assert.Contains(t, buf.String(), "No results")
}

func TestRenderRaw(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).RenderRaw(rankedSet(t))
	assert.Contains(t, buf.String(), `"total_combos"`)

	buf.Reset()
	New(&buf).RenderRaw(&sweep.ResultSet{})
	assert.Equal(t, "N/A\n", buf.String())
}

func TestRenderRawRoundTrip(t *testing.T) {
	res := rankedSet(t)
	var buf bytes.Buffer
	New(&buf).RenderRaw(res)

	var again sweep.ResultSet
	require.NoError(t, json.Unmarshal(buf.Bytes(), &again))
	assert.Equal(t, res.TotalCombos, again.TotalCombos)
}
