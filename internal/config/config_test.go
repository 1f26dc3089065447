package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
	if cfg.Site.BaseURL == "" {
		t.Error("default base URL should not be empty")
	}
	if cfg.Resolve.Workers < 1 {
		t.Error("default worker count should be at least 1")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
site:
  base_url: https://example.org
  rest_url: https://example.org/w/rest.php/v1/page
fetch:
  timeout_sec: 5
resolve:
  workers: 2
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Site.BaseURL != "https://example.org" {
		t.Errorf("base URL = %q, want https://example.org", cfg.Site.BaseURL)
	}
	if cfg.Fetch.TimeoutSec != 5 {
		t.Errorf("fetch timeout = %d, want 5", cfg.Fetch.TimeoutSec)
	}
	if cfg.Resolve.Workers != 2 {
		t.Errorf("workers = %d, want 2", cfg.Resolve.Workers)
	}
	// Unset values fall back to defaults.
	if cfg.Fetch.Retry.MaxAttempts != 3 {
		t.Errorf("retry max attempts = %d, want default 3", cfg.Fetch.Retry.MaxAttempts)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.Site.BaseURL = "" },
			wantErr: ErrMissingBaseURL,
		},
		{
			name:    "missing rest url",
			mutate:  func(c *Config) { c.Site.RestURL = "" },
			wantErr: ErrMissingRestURL,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Fetch.TimeoutSec = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "zero retry attempts",
			mutate:  func(c *Config) { c.Fetch.Retry.MaxAttempts = 0 },
			wantErr: ErrInvalidMaxAttempts,
		},
		{
			name:    "sub-unity backoff multiplier",
			mutate:  func(c *Config) { c.Fetch.Retry.BackoffMultiplier = 0.5 },
			wantErr: ErrInvalidMultiplier,
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Resolve.Workers = 0 },
			wantErr: ErrInvalidWorkers,
		},
		{
			name:    "negative cache size",
			mutate:  func(c *Config) { c.Resolve.CacheSize = -1 },
			wantErr: ErrInvalidCacheSize,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		month   string
		day     int
		wantErr bool
	}{
		{"January", 1, false},
		{"January", 31, false},
		{"February", 29, false}, // day page exists every year
		{"February", 30, true},
		{"April", 31, true},
		{"December", 0, true},
		{"Smarch", 1, true},
		{"january", 1, true}, // month names are case-sensitive
	}

	for _, tt := range tests {
		err := ValidateDate(tt.month, tt.day)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDate(%q, %d) error = %v, wantErr %v", tt.month, tt.day, err, tt.wantErr)
		}
	}
}
