package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// Config holds tool settings read from the environment.
type Config struct {
	Workers int
	Quality int
	LogFile string
	Debug   bool
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Workers: runtime.NumCPU(),
		Quality: 95,
	}

	if v := getenv("PFTOOL_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PFTOOL_WORKERS: %w", err)
		}
		cfg.Workers = n
	}

	if v := getenv("PFTOOL_QUALITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PFTOOL_QUALITY: %w", err)
		}
		cfg.Quality = n
	}

	cfg.LogFile = getenv("PFTOOL_LOG_FILE")

	if v := getenv("PFTOOL_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PFTOOL_DEBUG: %w", err)
		}
		cfg.Debug = b
	}

	return cfg, cfg.Validate()
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be within 1..100")
	}
	return nil
}
