// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultUpstreamURL is where the analysis service runs in local development.
const DefaultUpstreamURL = "http://localhost:8080"

// Config represents configuration that can be loaded from a JSON file or the
// environment. All fields are optional; missing values use defaults or must
// be provided via CLI flags.
type Config struct {
	// Upstream analysis service
	UpstreamURL    string `json:"upstream_url,omitempty"`    // Base URL of the analysis service
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Upstream call timeout

	// Server
	Port int `json:"port,omitempty"` // Port for the REST API

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Headless browser fallback for SPA job boards
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information

	// Rate limiting
	RateLimit       int `json:"rate_limit,omitempty"`        // Requests per window per client (0 = default)
	RateLimitWindow int `json:"rate_limit_window,omitempty"` // Window in seconds (0 = default)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills a config from environment variables. Values already set on
// the receiver win; the environment only supplies what is missing.
func (c *Config) FromEnv() {
	if c.UpstreamURL == "" {
		c.UpstreamURL = os.Getenv("UPSTREAM_URL")
	}
	if c.TimeoutSeconds == 0 {
		if v, err := strconv.Atoi(os.Getenv("UPSTREAM_TIMEOUT_SECONDS")); err == nil {
			c.TimeoutSeconds = v
		}
	}
	if c.Port == 0 {
		if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = v
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config error: 'rate_limit' must be non-negative")
	}
	if c.RateLimitWindow < 0 {
		return fmt.Errorf("config error: 'rate_limit_window' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.UpstreamURL == "" {
		result.UpstreamURL = defaults.UpstreamURL
	}
	if result.UpstreamURL == "" {
		result.UpstreamURL = DefaultUpstreamURL
	}

	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimit == 0 {
		result.RateLimit = defaults.RateLimit
	}
	if result.RateLimitWindow == 0 {
		result.RateLimitWindow = defaults.RateLimitWindow
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Timeout returns the upstream timeout as a duration, zero meaning "use the
// client default".
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
