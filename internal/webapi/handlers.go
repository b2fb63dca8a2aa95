package webapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/promptsweep/sweepctl/internal/projectconfig"
)

// Version is set at build time or defaults to dev.
var Version = "0.1.0"

// Handlers holds the HTTP handler methods for the frontend API.
type Handlers struct {
	cfg    *projectconfig.ProjectConfig
	source ModelSource
}

// NewHandlers creates a new Handlers with the given config and model source.
func NewHandlers(cfg *projectconfig.ProjectConfig, source ModelSource) *Handlers {
	return &Handlers{cfg: cfg, source: source}
}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// HandleConfig tells the page where the sweep backend and model proxy live.
func (h *Handlers) HandleConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ConfigResponse{
		BackendURL:  h.cfg.BackendURL,
		LiteLLMURL:  h.cfg.LiteLLMURL,
		FrontendURL: h.cfg.FrontendURL(),
	})
}

// HandleModels proxies the upstream model listing. An api_key query param
// overrides the configured key; a timeout query param (seconds) overrides
// the configured upstream timeout.
func (h *Handlers) HandleModels(w http.ResponseWriter, r *http.Request) {
	apiKey := r.URL.Query().Get("api_key")

	timeout := time.Duration(h.cfg.UpstreamTimeoutSeconds) * time.Second
	if raw := r.URL.Query().Get("timeout"); raw != "" {
		secs, err := strconv.ParseFloat(raw, 64)
		if err != nil || secs <= 0 {
			writeError(w, http.StatusBadRequest, "timeout must be a positive number of seconds")
			return
		}
		timeout = time.Duration(secs * float64(time.Second))
	}

	res := h.source.FetchModels(r.Context(), apiKey, timeout)
	if res.Error != "" {
		writeError(w, http.StatusInternalServerError, res.Error)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// RegisterRoutes registers all frontend API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, cfg *projectconfig.ProjectConfig, source ModelSource) {
	h := NewHandlers(cfg, source)
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("GET /api/config", h.HandleConfig)
	mux.HandleFunc("GET /api/litellm/models", h.HandleModels)
}

// CORSMiddleware wraps a handler with CORS headers.
// If allowedOrigins is empty, no CORS header is set (same-origin only).
// Otherwise, the request Origin is checked against the allowed list.
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) > 0 && origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
