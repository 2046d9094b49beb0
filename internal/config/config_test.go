package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jashwanth-cse/Dream-Destiny/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Amadeus.Configured() {
		t.Error("expected unconfigured credentials by default")
	}
	if cfg.Amadeus.IdentityURL == "" {
		t.Error("expected identity URL derived from base URL")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
server:
  port: 9090
amadeus:
  baseURL: https://api.amadeus.com
  apiKey: key
  apiSecret: secret
  timeoutSeconds: 10
cache:
  ttlSeconds: 30
rateLimit:
  perMinute: 5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if !cfg.Amadeus.Configured() {
		t.Error("expected configured credentials")
	}
	if cfg.Amadeus.IdentityURL != "https://api.amadeus.com/v1/security/oauth2/token" {
		t.Errorf("unexpected identity URL: %s", cfg.Amadeus.IdentityURL)
	}
	if cfg.Cache.TTL().Seconds() != 30 {
		t.Errorf("expected 30s TTL, got %v", cfg.Cache.TTL())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AMADEUS_API_KEY", "env-key")
	t.Setenv("AMADEUS_API_SECRET", "env-secret")
	t.Setenv("PORT", "7070")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Amadeus.APIKey != "env-key" || cfg.Amadeus.APISecret != "env-secret" {
		t.Error("expected credentials from environment")
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected port 7070, got %d", cfg.Server.Port)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("server:\n  port: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for negative port")
	}
}
