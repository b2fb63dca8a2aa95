package controller

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptsweep/sweepctl/internal/selection"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
	infos     []string
}

func (r *recordingNotifier) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, msg)
}

func (r *recordingNotifier) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func (r *recordingNotifier) Info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, msg)
}

// frontendStub stands in for the frontend service plus the backend.
func frontendStub(t *testing.T, backendURL string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/config", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"backendUrl":%q,"litellmUrl":"http://litellm:4000","frontendUrl":"http://localhost:8000"}`, backendURL)
	})
	mux.HandleFunc("GET /api/litellm/models", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"models":["openai/gpt-4o","anthropic/claude-3-5-sonnet","mistral/mistral-large"]}`)
	})
	return httptest.NewServer(mux)
}

func TestBootstrapJoinsConfigAndCatalog(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer backend.Close()
	front := frontendStub(t, backend.URL)
	defer front.Close()

	rec := &recordingNotifier{}
	c := New(Options{BaseURL: front.URL, Notifier: rec, HTTPClient: front.Client()})
	c.Bootstrap(context.Background())

	assert.Equal(t, backend.URL, c.Backend(), "backend comes from remote config")
	require.NotNil(t, c.Catalog())
	assert.False(t, c.Catalog().Degraded)
	assert.Len(t, c.Catalog().Entries, 3)

	sel := c.Selection()
	assert.Equal(t, []string{"openai/gpt-4o", "anthropic/claude-3-5-sonnet"}, sel.Models)
	assert.Equal(t, []float64{selection.DefaultTemperature}, sel.Temperatures)
	assert.Equal(t, []int{selection.DefaultMaxTokens}, sel.MaxTokens)
	assert.False(t, c.Ready(), "no prompts yet")
}

func TestBootstrapConfigFailureFallsBackToOwnOrigin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/litellm/models", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["openai/gpt-4o"]`)
	})
	front := httptest.NewServer(mux) // no /api/config route
	defer front.Close()

	rec := &recordingNotifier{}
	c := New(Options{BaseURL: front.URL, Notifier: rec, HTTPClient: front.Client()})
	c.Bootstrap(context.Background())

	assert.Equal(t, front.URL, c.Backend(), "same-origin fallback")
	assert.False(t, c.Catalog().Degraded, "config failure must not fail the catalog")
	// ConfigUnavailable is silent: no user-facing error notice.
	assert.Empty(t, rec.errors)
}

func TestBootstrapCatalogFailureFallsBackToFixedModels(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/config", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"backendUrl":"http://backend:8001"}`)
	})
	front := httptest.NewServer(mux) // no catalog route
	defer front.Close()

	rec := &recordingNotifier{}
	c := New(Options{BaseURL: front.URL, Notifier: rec, HTTPClient: front.Client()})
	c.Bootstrap(context.Background())

	assert.Equal(t, "http://backend:8001", c.Backend(), "catalog failure must not fail the config")
	require.True(t, c.Catalog().Degraded)
	assert.Len(t, c.Catalog().Entries, 2)
	assert.Len(t, c.Selection().Models, 2, "fallback entries arrive pre-selected")
	assert.Len(t, rec.infos, 1, "degradation is informational")
	assert.Empty(t, rec.errors)
}

func TestRunRendersResults(t *testing.T) {
	backendMux := http.NewServeMux()
	backendMux.HandleFunc("POST /api/experiments", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"best_config": {"model_name":"openai/gpt-4o","weighted_score":0.95},
			"all_results": [{"rank":1,"model_name":"openai/gpt-4o","weighted_score":0.95}],
			"total_combos": 1
		}`)
	})
	backend := httptest.NewServer(backendMux)
	defer backend.Close()
	front := frontendStub(t, backend.URL)
	defer front.Close()

	c := New(Options{BaseURL: front.URL, Notifier: &recordingNotifier{}, HTTPClient: front.Client()})
	c.Bootstrap(context.Background())

	sel := c.Selection()
	sel.Models = sel.Models[:1]
	sel.Prompts = []string{"  Summarize this  "}
	c.SetSelection(sel)
	require.True(t, c.Ready())
	assert.Equal(t, []string{"Summarize this"}, c.Selection().Prompts)

	var buf bytes.Buffer
	res, err := c.Run(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalCombos)
	assert.Contains(t, buf.String(), "Best configuration")
	assert.Contains(t, buf.String(), "openai/gpt-4o")
}

func TestRunNotReady(t *testing.T) {
	front := frontendStub(t, "http://backend:1")
	defer front.Close()

	c := New(Options{BaseURL: front.URL, Notifier: &recordingNotifier{}, HTTPClient: front.Client()})
	c.Bootstrap(context.Background())

	var buf bytes.Buffer
	_, err := c.Run(context.Background(), &buf)
	require.Error(t, err)
	assert.Empty(t, buf.String(), "nothing rendered on failure")
}
