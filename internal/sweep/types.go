package sweep

import "encoding/json"

// Request is the body POSTed to the sweep-submission endpoint. Every array
// is nonempty at submission time; the combination space has
// |models|x|prompts|x|temperatures|x|max_tokens| entries.
type Request struct {
	Models       []string  `json:"models"`
	Prompts      []string  `json:"prompts"`
	Temperatures []float64 `json:"temperatures"`
	MaxTokens    []int     `json:"max_tokens"`
	Timestamp    string    `json:"timestamp"`
}

// Metrics carries per-combination measurement detail. Fields are pointers
// so an absent metric renders as "N/A" instead of a zero.
type Metrics struct {
	ResponseTimeSeconds *float64 `json:"response_time_seconds"`
}

// ResultRow is one ranked sweep combination. Numeric fields are pointers:
// the backend may omit any of them and presentation degrades to "N/A".
type ResultRow struct {
	Rank          *int     `json:"rank"`
	ModelName     string   `json:"model_name"`
	PromptName    string   `json:"prompt_name"`
	Temperature   *float64 `json:"temperature"`
	MaxTokens     *int     `json:"max_tokens"`
	WeightedScore *float64 `json:"weighted_score"`
	Metrics       Metrics  `json:"metrics"`
}

// BestConfig is the best-of-sweep record, a ResultRow plus test counts.
type BestConfig struct {
	ResultRow
	ValidTests *int `json:"valid_tests"`
	TotalTests *int `json:"total_tests"`
}

// ResultSet is the backend's ranked response to a sweep. AllResults is
// kept in server-assigned rank order; nothing here re-sorts it.
type ResultSet struct {
	BestConfig  BestConfig  `json:"best_config"`
	AllResults  []ResultRow `json:"all_results"`
	TotalCombos int         `json:"total_combos"`

	raw json.RawMessage
}

// Raw returns the unparsed response body for the debugging view.
func (r *ResultSet) Raw() []byte {
	return r.raw
}

// ParseResultSet decodes a backend response body, retaining the raw bytes
// for the debugging view.
func ParseResultSet(body []byte) (*ResultSet, error) {
	var res ResultSet
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	res.raw = body
	return &res, nil
}
