package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file
	content := `server:
  host: "127.0.0.1"
  port: 8080
  writeTimeout: 45
dictionaries:
  longFile: "words/dictionary.txt"
  shortFile: "words/short_dictionary.txt"
solver:
  filterLettersOnBoard: 3
  maxWordsToCheck: 100000
rateLimit:
  requestsPerSecond: 10
  burst: 20`

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify loaded values
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Expected Host = 127.0.0.1, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected Port = 8080, got %d", cfg.Server.Port)
	}
	if cfg.Dictionaries.LongFile != "words/dictionary.txt" {
		t.Errorf("Expected LongFile = words/dictionary.txt, got %s", cfg.Dictionaries.LongFile)
	}
	if cfg.Solver.MaxWordsToCheck != 100000 {
		t.Errorf("Expected MaxWordsToCheck = 100000, got %d", cfg.Solver.MaxWordsToCheck)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("Expected Addr() = 127.0.0.1:8080, got %s", cfg.Addr())
	}

	// Verify defaults filled in for omitted values
	if cfg.Server.ReadTimeout != 5 {
		t.Errorf("Expected default ReadTimeout = 5, got %d", cfg.Server.ReadTimeout)
	}
	if cfg.Fetch.MaxRetries != 3 {
		t.Errorf("Expected default MaxRetries = 3, got %d", cfg.Fetch.MaxRetries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	// A missing config file is not an error; the original service ran with
	// no configuration at all.
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Expected default Port = 5000, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Expected default Host = 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Dictionaries.LongFile != "dictionary.txt" {
		t.Errorf("Expected default LongFile = dictionary.txt, got %s", cfg.Dictionaries.LongFile)
	}
	if cfg.Dictionaries.ShortFile != "short_dictionary.txt" {
		t.Errorf("Expected default ShortFile = short_dictionary.txt, got %s", cfg.Dictionaries.ShortFile)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "negative port",
			mutate:  func(c *Config) { c.Server.Port = -1 },
			wantErr: true,
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "missing long dictionary",
			mutate:  func(c *Config) { c.Dictionaries.LongFile = "" },
			wantErr: true,
		},
		{
			name:    "missing short dictionary",
			mutate:  func(c *Config) { c.Dictionaries.ShortFile = "" },
			wantErr: true,
		},
		{
			name:    "negative board letter filter",
			mutate:  func(c *Config) { c.Solver.FilterLettersOnBoard = -2 },
			wantErr: true,
		},
		{
			name:    "non-positive word budget",
			mutate:  func(c *Config) { c.Solver.MaxWordsToCheck = -5 },
			wantErr: true,
		},
		{
			name:    "non-positive rate limit",
			mutate:  func(c *Config) { c.RateLimit.RequestsPerSecond = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			setDefaults(&cfg)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
