// Package config holds the adrename configuration: Marketing API
// credentials and run settings, loaded from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Placeholder credential values. A config still carrying one of these
// has never been set up and must not reach the network.
const (
	PlaceholderToken     = "YOUR_ACCESS_TOKEN_HERE"
	PlaceholderAppID     = "YOUR_APP_ID_HERE"
	PlaceholderAppSecret = "YOUR_APP_SECRET_HERE"
)

// Config holds all adrename configuration.
type Config struct {
	// Marketing API credentials
	AccessToken string `yaml:"access_token"`
	AppID       string `yaml:"app_id"`
	AppSecret   string `yaml:"app_secret"`

	// Graph API selection
	APIVersion string `yaml:"api_version"`
	BaseURL    string `yaml:"base_url"` // overrides the Graph host (tests, sandboxes)

	// Pause after each live rename
	UpdateDelay string `yaml:"update_delay"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		AccessToken: PlaceholderToken,
		AppID:       PlaceholderAppID,
		AppSecret:   PlaceholderAppSecret,
		APIVersion:  "v19.0",
		UpdateDelay: "1s",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment variables override either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides lets environment variables win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ADRENAME_ACCESS_TOKEN"); v != "" {
		c.AccessToken = v
	}
	if v := os.Getenv("ADRENAME_APP_ID"); v != "" {
		c.AppID = v
	}
	if v := os.Getenv("ADRENAME_APP_SECRET"); v != "" {
		c.AppSecret = v
	}
	if v := os.Getenv("ADRENAME_BASE_URL"); v != "" {
		c.BaseURL = v
	}
}

// Validate checks that real credentials are present. It fails on empty
// or placeholder tokens so a fresh config aborts before any network
// call, with guidance instead of an API error.
func (c *Config) Validate() error {
	if c.AccessToken == "" || c.AccessToken == PlaceholderToken {
		return fmt.Errorf("access token is not configured: set access_token in the config file or ADRENAME_ACCESS_TOKEN in the environment")
	}
	return nil
}

// UpdateDelayDuration parses the configured delay, defaulting to 1s on
// empty or malformed values.
func (c *Config) UpdateDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.UpdateDelay)
	if err != nil || d < 0 {
		return time.Second
	}
	return d
}
