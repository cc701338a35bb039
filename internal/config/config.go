// Package config provides configuration management for the pipeline commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputPath   = errors.New("input.path is required")
	ErrInvalidInputFormat = errors.New("input.format must be 'json' or 'csv'")
	ErrMissingOutputPath  = errors.New("output.path is required")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrMissingShop        = errors.New("shopify.shop is required")
	ErrMissingTokenEnv    = errors.New("shopify.access_token_env is required")
	ErrInvalidTimeout     = errors.New("shopify.timeout_sec must be at least 1")
	ErrInvalidMaxAttempts = errors.New("shopify.max_attempts must be at least 1")
	ErrInvalidConcurrency = errors.New("shopify.max_concurrent must be at least 1")
	ErrMissingAccessToken = errors.New("shopify access token environment variable is empty")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Shopify ShopifyConfig `yaml:"shopify"`
}

// InputConfig defines where the event catalog comes from.
type InputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// OutputConfig defines where results are written.
type OutputConfig struct {
	Path        string `yaml:"path"`
	ReportPath  string `yaml:"report_path"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ShopifyConfig defines the Admin API connection. The access token is read
// from the environment variable named by AccessTokenEnv, never from the
// config file itself.
type ShopifyConfig struct {
	Shop           string `yaml:"shop"`
	APIVersion     string `yaml:"api_version"`
	AccessTokenEnv string `yaml:"access_token_env"`
	TimeoutSec     int    `yaml:"timeout_sec"`
	MaxAttempts    int    `yaml:"max_attempts"`
	MaxConcurrent  int    `yaml:"max_concurrent"`
}

// AccessToken resolves the access token from the environment.
func (s *ShopifyConfig) AccessToken() (string, error) {
	token := os.Getenv(s.AccessTokenEnv)
	if token == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingAccessToken, s.AccessTokenEnv)
	}

	return token, nil
}

// LoadConfig loads configuration from a YAML file, applies defaults, and
// validates the parts every command needs. Shopify settings are validated
// separately by ValidateShopify because only the fulfill command uses them.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Input.Format == "" {
		c.Input.Format = "json"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Shopify.APIVersion == "" {
		c.Shopify.APIVersion = "2024-01"
	}

	if c.Shopify.AccessTokenEnv == "" {
		c.Shopify.AccessTokenEnv = "SHOPIFY_ACCESS_TOKEN"
	}

	if c.Shopify.TimeoutSec == 0 {
		c.Shopify.TimeoutSec = 30
	}

	if c.Shopify.MaxAttempts == 0 {
		c.Shopify.MaxAttempts = 3
	}

	if c.Shopify.MaxConcurrent == 0 {
		c.Shopify.MaxConcurrent = 5
	}
}

// Validate validates the input, output, and logging sections.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return ErrMissingInputPath
	}

	if c.Input.Format != "json" && c.Input.Format != "csv" {
		return ErrInvalidInputFormat
	}

	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}

// ValidateShopify validates the Shopify section. Called by commands that
// talk to the Admin API.
func (c *Config) ValidateShopify() error {
	if c.Shopify.Shop == "" {
		return ErrMissingShop
	}

	if c.Shopify.AccessTokenEnv == "" {
		return ErrMissingTokenEnv
	}

	if c.Shopify.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Shopify.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Shopify.MaxConcurrent < 1 {
		return ErrInvalidConcurrency
	}

	return nil
}
