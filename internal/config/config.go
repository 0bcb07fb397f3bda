// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-tailor/internal/boosting"
	"github.com/jonathan/resume-tailor/internal/gateway"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; zero values fall back to defaults or env vars.
type Config struct {
	// Provider
	APIKey  string `json:"api_key,omitempty"` // Gemini API key (defaults to GEMINI_API_KEY env var)
	Model   string `json:"model,omitempty"`   // Gemini model name
	Offline bool   `json:"offline,omitempty"` // Skip the AI source entirely; use the deterministic fallback

	// Gateway tunables
	MaxConcurrent    int `json:"max_concurrent,omitempty"`     // Simultaneous in-flight generation calls
	MaxAttempts      int `json:"max_attempts,omitempty"`       // Attempts per request
	TimeoutSeconds   int `json:"timeout_seconds,omitempty"`    // Per-attempt timeout
	FailureWindowSec int `json:"failure_window_sec,omitempty"` // Circuit-breaker failure window
	FailureThreshold int `json:"failure_threshold,omitempty"`  // Failures within the window that open the circuit
	OpenDurationSec  int `json:"open_duration_sec,omitempty"`  // How long the circuit stays open

	// Booster tunables
	BoostMinGain   int `json:"boost_min_gain,omitempty"`   // Minimum score gain over the baseline
	BoostFloor     int `json:"boost_floor,omitempty"`      // Absolute score floor
	BoostMaxPasses int `json:"boost_max_passes,omitempty"` // Injection pass budget

	// Behavior
	Verbose bool `json:"verbose,omitempty"`  // Print detailed debug information
	LogJSON bool `json:"log_json,omitempty"` // Emit JSON logs instead of console
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxConcurrent < 0 {
		return fmt.Errorf("config error: 'max_concurrent' must be non-negative")
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("config error: 'max_attempts' must be non-negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.FailureThreshold < 0 {
		return fmt.Errorf("config error: 'failure_threshold' must be non-negative")
	}
	if c.BoostFloor < 0 || c.BoostFloor > 100 {
		return fmt.Errorf("config error: 'boost_floor' must be between 0 and 100")
	}
	if c.BoostMinGain < 0 || c.BoostMinGain > 100 {
		return fmt.Errorf("config error: 'boost_min_gain' must be between 0 and 100")
	}
	return nil
}

// GatewayConfig materializes the gateway tuning, applying defaults for unset
// fields.
func (c *Config) GatewayConfig() gateway.Config {
	cfg := gateway.DefaultConfig()
	if c.MaxConcurrent > 0 {
		cfg.MaxConcurrent = c.MaxConcurrent
	}
	if c.MaxAttempts > 0 {
		cfg.MaxAttempts = c.MaxAttempts
	}
	if c.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	if c.FailureWindowSec > 0 {
		cfg.FailureWindow = time.Duration(c.FailureWindowSec) * time.Second
	}
	if c.FailureThreshold > 0 {
		cfg.FailureThreshold = c.FailureThreshold
	}
	if c.OpenDurationSec > 0 {
		cfg.OpenDuration = time.Duration(c.OpenDurationSec) * time.Second
	}
	return cfg
}

// BoostConfig materializes the booster tuning, applying defaults for unset
// fields.
func (c *Config) BoostConfig() boosting.Config {
	cfg := boosting.DefaultConfig()
	if c.BoostMinGain > 0 {
		cfg.MinGain = c.BoostMinGain
	}
	if c.BoostFloor > 0 {
		cfg.Floor = c.BoostFloor
	}
	if c.BoostMaxPasses > 0 {
		cfg.MaxPasses = c.BoostMaxPasses
	}
	return cfg
}

// ResolveAPIKey returns the configured API key, falling back to the
// GEMINI_API_KEY environment variable.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}
