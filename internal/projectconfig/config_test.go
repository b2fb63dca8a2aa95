package projectconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func assertEqual(t *testing.T, field, want, got string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", field, got, want)
	}
}

func assertEqualInt(t *testing.T, field string, want, got int) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %d, want %d", field, got, want)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNew_ReturnsAllDefaults(t *testing.T) {
	cfg := New()

	assertEqual(t, "BackendURL", "http://localhost:8001", cfg.BackendURL)
	assertEqual(t, "LiteLLMURL", "http://localhost:4000", cfg.LiteLLMURL)
	assertEqual(t, "LiteLLMAPIKey", "", cfg.LiteLLMAPIKey)
	assertEqualInt(t, "Server.Port", 8000, cfg.Server.Port)
	assertEqual(t, "Server.StaticDir", "", cfg.Server.StaticDir)
	assertEqualInt(t, "SubmitTimeoutSeconds", 120, cfg.SubmitTimeoutSeconds)
	assertEqualInt(t, "UpstreamTimeoutSeconds", 5, cfg.UpstreamTimeoutSeconds)
	assertEqual(t, "FrontendURL", "http://localhost:8000", cfg.FrontendURL())
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend:9001")
	t.Setenv("LITELLM_URL", "http://litellm:4100")
	t.Setenv("LITELLM_API_KEY", "sk-env")
	t.Setenv("FRONTEND_PORT", "8800")

	cfg := New()
	assertEqual(t, "BackendURL", "http://backend:9001", cfg.BackendURL)
	assertEqual(t, "LiteLLMURL", "http://litellm:4100", cfg.LiteLLMURL)
	assertEqual(t, "LiteLLMAPIKey", "sk-env", cfg.LiteLLMAPIKey)
	assertEqualInt(t, "Server.Port", 8800, cfg.Server.Port)
}

func TestNew_BadFrontendPortIgnored(t *testing.T) {
	t.Setenv("FRONTEND_PORT", "not-a-port")
	cfg := New()
	assertEqualInt(t, "Server.Port", 8000, cfg.Server.Port)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".sweepctl.yaml", `
backend_url: "http://backend.internal:8001"
litellm_url: "http://litellm.internal:4000"
litellm_api_key: "sk-file"
server:
  port: 8080
  static_dir: "web/"
submit_timeout_seconds: 300
upstream_timeout_seconds: 10
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "BackendURL", "http://backend.internal:8001", cfg.BackendURL)
	assertEqual(t, "LiteLLMURL", "http://litellm.internal:4000", cfg.LiteLLMURL)
	assertEqual(t, "LiteLLMAPIKey", "sk-file", cfg.LiteLLMAPIKey)
	assertEqualInt(t, "Server.Port", 8080, cfg.Server.Port)
	assertEqual(t, "Server.StaticDir", "web/", cfg.Server.StaticDir)
	assertEqualInt(t, "SubmitTimeoutSeconds", 300, cfg.SubmitTimeoutSeconds)
	assertEqualInt(t, "UpstreamTimeoutSeconds", 10, cfg.UpstreamTimeoutSeconds)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".sweepctl.yaml", "backend_url: \"http://only-this:8001\"\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "BackendURL", "http://only-this:8001", cfg.BackendURL)
	assertEqual(t, "LiteLLMURL", DefaultLiteLLMURL, cfg.LiteLLMURL)
	assertEqualInt(t, "Server.Port", DefaultServerPort, cfg.Server.Port)
}

func TestLoad_FileOverridesEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://from-env:1")
	dir := t.TempDir()
	writeFile(t, dir, ".sweepctl.yaml", "backend_url: \"http://from-file:2\"\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "BackendURL", "http://from-file:2", cfg.BackendURL)
}

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "BackendURL", DefaultBackendURL, cfg.BackendURL)
}

func TestLoad_WalksUpToParent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".sweepctl.yaml", "backend_url: \"http://parent:8001\"\n")
	child := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(child)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "BackendURL", "http://parent:8001", cfg.BackendURL)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".sweepctl.yaml", "backend_url: [unclosed\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}
