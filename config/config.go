// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Recurly  RecurlyConfig  `yaml:"recurly"`
	Server   ServerConfig   `yaml:"server"`
	Webhooks WebhooksConfig `yaml:"webhooks"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// RecurlyConfig configures the API client.
type RecurlyConfig struct {
	APIKey         string        `yaml:"api_key"`
	AcceptLanguage string        `yaml:"accept_language,omitempty"`
	Region         string        `yaml:"region"`             // "us" or "eu"
	BaseURL        string        `yaml:"base_url,omitempty"` // overrides region
	Timeout        time.Duration `yaml:"timeout"`
	// CheckReadiness makes /health/ready list one site with the client.
	CheckReadiness bool `yaml:"check_readiness"`
}

// ServerConfig configures the webhook receiver's HTTP server.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// WebhooksConfig configures notification verification.
type WebhooksConfig struct {
	Secret    string        `yaml:"secret"`
	Tolerance time.Duration `yaml:"tolerance"`
	Path      string        `yaml:"path"`
}

// DatabaseConfig configures the notification store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // default: /metrics
}

// ClientConfig converts the recurly section into client settings.
func (c *Config) ClientConfig() recurly.Config {
	return recurly.Config{
		APIKey:         c.Recurly.APIKey,
		AcceptLanguage: c.Recurly.AcceptLanguage,
		Region:         recurly.Region(c.Recurly.Region),
		BaseURL:        c.Recurly.BaseURL,
		Timeout:        c.Recurly.Timeout,
	}
}

// Addr returns the host:port the receiver listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv creates configuration entirely from environment variables.
//
// Environment variables:
//
//	RECURLY_API_KEY           - Private API key (required)
//	RECURLY_REGION            - us or eu (default: us)
//	RECURLY_BASE_URL          - Override the regional endpoint
//	RECURLY_ACCEPT_LANGUAGE   - Accept-Language sent with every request
//	RECURLY_TIMEOUT           - Request timeout (default: 30s)
//	RECURLY_SERVER_HOST       - Receiver host (default: 0.0.0.0)
//	RECURLY_SERVER_PORT       - Receiver port (default: 8080)
//	RECURLY_WEBHOOK_SECRET    - Signing secret for notifications
//	RECURLY_WEBHOOK_TOLERANCE - Allowed signature age (default: 5m)
//	RECURLY_WEBHOOK_PATH      - Receiver path (default: /webhooks/recurly)
//	RECURLY_CHECK_READINESS   - List one site from /health/ready (default: false)
//	RECURLY_DATABASE_DSN      - SQLite path (default: recurly.db)
//	RECURLY_LOG_LEVEL         - debug, info, warn, error (default: info)
//	RECURLY_LOG_FORMAT        - json or console (default: json)
//	RECURLY_METRICS_ENABLED   - Enable the metrics endpoint (default: false)
//	RECURLY_METRICS_PATH      - Metrics path (default: /metrics)
func LoadFromEnv() (*Config, error) {
	var cfg Config

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadWithFallback tries to load from file, falls back to environment variables.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	if HasEnvConfig() {
		return LoadFromEnv()
	}

	return nil, fmt.Errorf("no configuration found: provide config file or set RECURLY_API_KEY")
}

// HasEnvConfig returns true if essential environment variables are set.
func HasEnvConfig() bool {
	return os.Getenv("RECURLY_API_KEY") != ""
}

// applyEnvOverrides applies RECURLY_* environment variables to the config.
// Environment variables always override file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RECURLY_API_KEY"); v != "" {
		cfg.Recurly.APIKey = v
	}
	if v := os.Getenv("RECURLY_REGION"); v != "" {
		cfg.Recurly.Region = strings.ToLower(v)
	}
	if v := os.Getenv("RECURLY_BASE_URL"); v != "" {
		cfg.Recurly.BaseURL = v
	}
	if v := os.Getenv("RECURLY_ACCEPT_LANGUAGE"); v != "" {
		cfg.Recurly.AcceptLanguage = v
	}
	if v := os.Getenv("RECURLY_CHECK_READINESS"); v != "" {
		cfg.Recurly.CheckReadiness = parseBool(v)
	}
	if v := os.Getenv("RECURLY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Recurly.Timeout = d
		}
	}

	if v := os.Getenv("RECURLY_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("RECURLY_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("RECURLY_SERVER_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if v := os.Getenv("RECURLY_SERVER_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}

	if v := os.Getenv("RECURLY_WEBHOOK_SECRET"); v != "" {
		cfg.Webhooks.Secret = v
	}
	if v := os.Getenv("RECURLY_WEBHOOK_TOLERANCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Webhooks.Tolerance = d
		}
	}
	if v := os.Getenv("RECURLY_WEBHOOK_PATH"); v != "" {
		cfg.Webhooks.Path = v
	}

	if v := os.Getenv("RECURLY_DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}

	if v := os.Getenv("RECURLY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RECURLY_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	if v := os.Getenv("RECURLY_METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
	if v := os.Getenv("RECURLY_METRICS_PATH"); v != "" {
		cfg.Metrics.Path = v
	}
}

// parseBool parses a boolean from common string values.
func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func setDefaults(cfg *Config) {
	if cfg.Recurly.Region == "" {
		cfg.Recurly.Region = string(recurly.RegionUS)
	}
	if cfg.Recurly.Timeout == 0 {
		cfg.Recurly.Timeout = 30 * time.Second
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60 * time.Second
	}

	if cfg.Webhooks.Tolerance == 0 {
		cfg.Webhooks.Tolerance = 5 * time.Minute
	}
	if cfg.Webhooks.Path == "" {
		cfg.Webhooks.Path = "/webhooks/recurly"
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "recurly.db"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func validate(cfg *Config) error {
	if err := cfg.ClientConfig().Validate(); err != nil {
		return fmt.Errorf("recurly: %w", err)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if !strings.HasPrefix(cfg.Webhooks.Path, "/") {
		return fmt.Errorf("webhooks.path must start with '/', got %q", cfg.Webhooks.Path)
	}
	if cfg.Webhooks.Tolerance < 0 {
		return fmt.Errorf("webhooks.tolerance must not be negative")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == cfg.Webhooks.Path {
		return fmt.Errorf("metrics.path and webhooks.path must differ")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", cfg.Logging.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", cfg.Logging.Format)
	}

	return nil
}
