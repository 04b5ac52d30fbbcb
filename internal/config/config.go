// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		ReadTimeout     int    `yaml:"readTimeout"`
		WriteTimeout    int    `yaml:"writeTimeout"`
		IdleTimeout     int    `yaml:"idleTimeout"`
		ShutdownTimeout int    `yaml:"shutdownTimeout"`
	} `yaml:"server"`

	Dictionaries struct {
		LongFile  string `yaml:"longFile"`
		ShortFile string `yaml:"shortFile"`
	} `yaml:"dictionaries"`

	Solver struct {
		FilterLettersOnBoard int `yaml:"filterLettersOnBoard"`
		MaxWordsToCheck      int `yaml:"maxWordsToCheck"`
	} `yaml:"solver"`

	RateLimit struct {
		RequestsPerSecond int `yaml:"requestsPerSecond"`
		Burst             int `yaml:"burst"`
	} `yaml:"rateLimit"`

	Fetch struct {
		Timeout    int    `yaml:"timeout"`
		MaxRetries int    `yaml:"maxRetries"`
		UserAgent  string `yaml:"userAgent"`
	} `yaml:"fetch"`
}

// Load reads and parses the configuration from path. An empty path means
// "config.yaml", and a missing file yields the defaults, matching the
// original service which ran with no configuration at all.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}

	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error opening config file: %w", err)
		}
	} else {
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("error decoding config: %w", err)
		}
	}

	// Set default values
	setDefaults(&cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 5
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Dictionaries.LongFile == "" {
		cfg.Dictionaries.LongFile = "dictionary.txt"
	}
	if cfg.Dictionaries.ShortFile == "" {
		cfg.Dictionaries.ShortFile = "short_dictionary.txt"
	}
	if cfg.Solver.FilterLettersOnBoard == 0 {
		cfg.Solver.FilterLettersOnBoard = 2
	}
	if cfg.Solver.MaxWordsToCheck == 0 {
		cfg.Solver.MaxWordsToCheck = 500000
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 50
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 100
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30
	}
	if cfg.Fetch.MaxRetries == 0 {
		cfg.Fetch.MaxRetries = 3
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}
	if c.Dictionaries.LongFile == "" {
		return fmt.Errorf("long dictionary file is required")
	}
	if c.Dictionaries.ShortFile == "" {
		return fmt.Errorf("short dictionary file is required")
	}
	if c.Solver.FilterLettersOnBoard < 0 {
		return fmt.Errorf("filterLettersOnBoard must not be negative")
	}
	if c.Solver.MaxWordsToCheck <= 0 {
		return fmt.Errorf("maxWordsToCheck must be positive")
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("requestsPerSecond must be positive")
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
