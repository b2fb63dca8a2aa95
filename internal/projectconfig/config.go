// Package projectconfig provides the ProjectConfig struct and loader for
// .sweepctl.yaml project-level configuration files. Precedence, lowest to
// highest: built-in defaults, environment variables, the config file;
// command-line flags are applied on top by the CLI layer.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultBackendURL = "http://localhost:8001"
	DefaultLiteLLMURL = "http://localhost:4000"

	DefaultServerPort = 8000

	DefaultSubmitTimeoutSeconds = 120
	DefaultUpstreamTimeoutSecs  = 5
)

// ServerConfig holds frontend-service settings.
type ServerConfig struct {
	Port      int    `yaml:"port,omitempty"`
	StaticDir string `yaml:"static_dir,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .sweepctl.yaml.
type ProjectConfig struct {
	BackendURL    string       `yaml:"backend_url,omitempty"`
	LiteLLMURL    string       `yaml:"litellm_url,omitempty"`
	LiteLLMAPIKey string       `yaml:"litellm_api_key,omitempty"`
	Server        ServerConfig `yaml:"server,omitempty"`

	SubmitTimeoutSeconds   int `yaml:"submit_timeout_seconds,omitempty"`
	UpstreamTimeoutSeconds int `yaml:"upstream_timeout_seconds,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated,
// overlaid with any environment overrides (BACKEND_URL, LITELLM_URL,
// LITELLM_API_KEY, FRONTEND_PORT).
func New() *ProjectConfig {
	cfg := &ProjectConfig{
		BackendURL: DefaultBackendURL,
		LiteLLMURL: DefaultLiteLLMURL,
		Server: ServerConfig{
			Port: DefaultServerPort,
		},
		SubmitTimeoutSeconds:   DefaultSubmitTimeoutSeconds,
		UpstreamTimeoutSeconds: DefaultUpstreamTimeoutSecs,
	}
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("LITELLM_URL"); v != "" {
		cfg.LiteLLMURL = v
	}
	if v := os.Getenv("LITELLM_API_KEY"); v != "" {
		cfg.LiteLLMAPIKey = v
	}
	if v := os.Getenv("FRONTEND_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	return cfg
}

// FrontendURL is the service's own origin, derived from the configured
// port. It doubles as the same-origin fallback when the remote config
// fetch fails.
func (c *ProjectConfig) FrontendURL() string {
	return fmt.Sprintf("http://localhost:%d", c.Server.Port)
}

// Load finds .sweepctl.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults and environment
// overrides. If no config file is found, returns defaults with a nil
// error. Real I/O errors (e.g. permission denied) are returned to the
// caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading .sweepctl.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .sweepctl.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .sweepctl.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors (e.g. permission denied) instead of silently swallowing
// them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".sweepctl.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.BackendURL != "" {
		dst.BackendURL = src.BackendURL
	}
	if src.LiteLLMURL != "" {
		dst.LiteLLMURL = src.LiteLLMURL
	}
	if src.LiteLLMAPIKey != "" {
		dst.LiteLLMAPIKey = src.LiteLLMAPIKey
	}
	if src.Server.Port > 0 {
		dst.Server.Port = src.Server.Port
	}
	if src.Server.StaticDir != "" {
		dst.Server.StaticDir = src.Server.StaticDir
	}
	if src.SubmitTimeoutSeconds > 0 {
		dst.SubmitTimeoutSeconds = src.SubmitTimeoutSeconds
	}
	if src.UpstreamTimeoutSeconds > 0 {
		dst.UpstreamTimeoutSeconds = src.UpstreamTimeoutSeconds
	}
}
