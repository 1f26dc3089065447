// Package config provides configuration for the extraction pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL       = errors.New("site.base_url is required")
	ErrMissingRestURL       = errors.New("site.rest_url is required")
	ErrInvalidTimeout       = errors.New("fetch.timeout_sec must be at least 1")
	ErrInvalidMaxAttempts   = errors.New("fetch.retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay  = errors.New("fetch.retry.initial_delay_ms must be non-negative")
	ErrInvalidMultiplier    = errors.New("fetch.retry.backoff_multiplier must be >= 1.0")
	ErrInvalidLookupTimeout = errors.New("resolve.timeout_sec must be at least 1")
	ErrInvalidWorkers       = errors.New("resolve.workers must be at least 1")
	ErrInvalidCacheSize     = errors.New("resolve.cache_size must be non-negative")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Resolve ResolveConfig `yaml:"resolve"`
	Logging LoggingConfig `yaml:"logging"`
}

// SiteConfig identifies the encyclopedia being scraped.
type SiteConfig struct {
	BaseURL   string `yaml:"base_url"`
	RestURL   string `yaml:"rest_url"`
	UserAgent string `yaml:"user_agent"`
}

// FetchConfig controls the primary day-page fetch.
type FetchConfig struct {
	TimeoutSec int         `yaml:"timeout_sec"`
	Retry      RetryPolicy `yaml:"retry"`
}

// RetryPolicy defines retry behavior for the primary fetch. Secondary
// lookups are never retried.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
}

// ResolveConfig controls secondary per-link lookups.
type ResolveConfig struct {
	TimeoutSec int `yaml:"timeout_sec"`
	Workers    int `yaml:"workers"`
	CacheSize  int `yaml:"cache_size"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL:   "https://en.wikipedia.org",
			RestURL:   "https://en.wikipedia.org/w/rest.php/v1/page",
			UserAgent: "onthisday/1.0 (github.com/wikigeo/onthisday)",
		},
		Fetch: FetchConfig{
			TimeoutSec: 30,
			Retry: RetryPolicy{
				MaxAttempts:       3,
				InitialDelayMs:    500,
				MaxDelayMs:        5000,
				BackoffMultiplier: 2.0,
			},
		},
		Resolve: ResolveConfig{
			TimeoutSec: 10,
			Workers:    4,
			CacheSize:  256,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML configuration file, applying defaults for any
// settings the file leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Site.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.Site.RestURL == "" {
		return ErrMissingRestURL
	}
	if c.Fetch.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if c.Fetch.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}
	if c.Fetch.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}
	if c.Fetch.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidMultiplier
	}
	if c.Resolve.TimeoutSec < 1 {
		return ErrInvalidLookupTimeout
	}
	if c.Resolve.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.Resolve.CacheSize < 0 {
		return ErrInvalidCacheSize
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// FetchTimeout returns the primary fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSec) * time.Second
}

// LookupTimeout returns the secondary lookup timeout as a duration.
func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.Resolve.TimeoutSec) * time.Second
}
