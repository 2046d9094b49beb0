package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0,lte=65535"`
}

// AmadeusConfig contains upstream provider configuration. APIKey and
// APISecret may be empty, in which case the service runs on mock data.
type AmadeusConfig struct {
	BaseURL        string `yaml:"baseURL" validate:"omitempty,url"`
	IdentityURL    string `yaml:"identityURL" validate:"omitempty,url"`
	APIKey         string `yaml:"apiKey"`
	APISecret      string `yaml:"apiSecret"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" validate:"gte=0"`
}

// CacheConfig contains bundle cache configuration.
type CacheConfig struct {
	TTLSeconds int `yaml:"ttlSeconds" validate:"gte=0"`
}

// RateLimitConfig contains per-client rate limit configuration.
type RateLimitConfig struct {
	PerMinute int `yaml:"perMinute" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Amadeus   AmadeusConfig   `yaml:"amadeus"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
}

// Timeout returns the provider HTTP timeout.
func (c AmadeusConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TTL returns the bundle cache TTL.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Configured reports whether provider credentials are present.
func (c AmadeusConfig) Configured() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// Default returns the configuration used when no config file exists.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 8080},
		Amadeus: AmadeusConfig{
			BaseURL:        "https://test.api.amadeus.com",
			IdentityURL:    "https://test.api.amadeus.com/v1/security/oauth2/token",
			TimeoutSeconds: 15,
		},
		Cache:     CacheConfig{TTLSeconds: 60},
		RateLimit: RateLimitConfig{PerMinute: 30},
	}
}

// Load reads the configuration from path, applies environment overrides and
// validates the result. A missing file is not an error; defaults apply.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Run on defaults, typically mock mode.
	default:
		return AppConfig{}, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.Amadeus.IdentityURL == "" && cfg.Amadeus.BaseURL != "" {
		cfg.Amadeus.IdentityURL = cfg.Amadeus.BaseURL + "/v1/security/oauth2/token"
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides file values with environment variables. Secrets are
// usually injected this way rather than written to disk.
func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("AMADEUS_API_KEY"); v != "" {
		cfg.Amadeus.APIKey = v
	}
	if v := os.Getenv("AMADEUS_API_SECRET"); v != "" {
		cfg.Amadeus.APISecret = v
	}
	if v := os.Getenv("AMADEUS_BASE_URL"); v != "" {
		cfg.Amadeus.BaseURL = v
		cfg.Amadeus.IdentityURL = v + "/v1/security/oauth2/token"
	}
	if v := os.Getenv("PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
}
