package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RemoteConfig is the frontend service's /api/config response.
type RemoteConfig struct {
	BackendURL  string `json:"backendUrl"`
	LiteLLMURL  string `json:"litellmUrl"`
	FrontendURL string `json:"frontendUrl"`
}

// fetchRemoteConfig fetches /api/config from base. Failure is never fatal:
// the caller substitutes base itself for subsequent requests.
func fetchRemoteConfig(ctx context.Context, client *http.Client, base string) (*RemoteConfig, error) {
	url := strings.TrimRight(base, "/") + "/api/config"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building config request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching config: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("config endpoint returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading config response: %w", err)
	}
	var cfg RemoteConfig
	if err := json.Unmarshal(body, &cfg); err != nil {
		return nil, fmt.Errorf("decoding config response: %w", err)
	}
	return &cfg, nil
}
