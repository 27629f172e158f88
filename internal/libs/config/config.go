// Package config provides application configuration management from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	CorpusPath         string
	DatabaseURL        string // optional; overrides CorpusPath when set
	APIPort            string
	APIHost            string
	LogLevel           string
	ReportInterval     time.Duration
	StrictHashAlphabet bool
	FoldDiacritics     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		CorpusPath:  getEnv("CORPUS_PATH", "data.json"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		APIPort:     getEnv("API_PORT", "8080"),
		APIHost:     getEnv("API_HOST", "0.0.0.0"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.ReportInterval, err = time.ParseDuration(getEnv("REPORT_INTERVAL", "1s")); err != nil {
		return nil, fmt.Errorf("invalid REPORT_INTERVAL: %w", err)
	}
	if cfg.ReportInterval <= 0 {
		return nil, fmt.Errorf("REPORT_INTERVAL must be positive, got %s", cfg.ReportInterval)
	}
	if cfg.StrictHashAlphabet, err = getBool("STRICT_HASH_ALPHABET", false); err != nil {
		return nil, err
	}
	if cfg.FoldDiacritics, err = getBool("FOLD_DIACRITICS", false); err != nil {
		return nil, err
	}

	if cfg.CorpusPath == "" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("CORPUS_PATH or DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
