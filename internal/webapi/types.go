package webapi

// ConfigResponse tells the browser-side controller where its backend and
// model proxy live. Field names match what the page script expects.
type ConfigResponse struct {
	BackendURL  string `json:"backendUrl"`
	LiteLLMURL  string `json:"litellmUrl"`
	FrontendURL string `json:"frontendUrl"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is returned for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
