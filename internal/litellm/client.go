// Package litellm is a thin client for a LiteLLM proxy's model-info
// endpoint. Failures are reported as a soft error string inside the result
// rather than an error return, so the frontend service can always answer
// with a well-formed body.
package litellm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds the upstream round-trip when the caller does not
// override it.
const DefaultTimeout = 5 * time.Second

// Result is the outcome of a model listing, matching the shape the
// frontend API hands to the browser.
type Result struct {
	Service string   `json:"service"`
	BaseURL string   `json:"base_url"`
	Models  []string `json:"models"`
	Error   string   `json:"error,omitempty"`
}

// modelInfo mirrors the /v1/model/info response.
type modelInfo struct {
	Data []struct {
		ModelName string `json:"model_name"`
		ModelInfo struct {
			Mode string `json:"mode"`
		} `json:"model_info"`
	} `json:"data"`
}

// Client fetches chat models from a LiteLLM proxy.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New returns a Client for the proxy at baseURL. apiKey may be empty; when
// set it is sent as a bearer token.
func New(baseURL, apiKey string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// FetchModels lists chat-mode models. apiKey overrides the client's
// configured key for this request when nonempty. The returned Result
// always has Service and BaseURL populated; on failure Models is empty
// and Error carries the detail.
func (c *Client) FetchModels(ctx context.Context, apiKey string, timeout time.Duration) Result {
	res := Result{Service: "litellm", BaseURL: c.baseURL, Models: []string{}}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/model/info", nil)
	if err != nil {
		res.Error = fmt.Sprintf("building request: %v", err)
		return res
	}
	req.Header.Set("Accept", "application/json")
	if apiKey == "" {
		apiKey = c.apiKey
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		res.Error = fmt.Sprintf("connection failed: %v", err)
		return res
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		res.Error = fmt.Sprintf("reading response: %v", err)
		return res
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := string(body)
		if len(detail) > 200 {
			detail = detail[:200]
		}
		res.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, detail)
		return res
	}

	var info modelInfo
	if err := json.Unmarshal(body, &info); err != nil {
		res.Error = fmt.Sprintf("decoding response: %v", err)
		return res
	}
	for _, m := range info.Data {
		if m.ModelInfo.Mode == "chat" && m.ModelName != "" {
			res.Models = append(res.Models, m.ModelName)
		}
	}
	return res
}
