// Package config loads the advisory tools' runtime settings from the
// environment, with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the CLIs need to reach the completion service.
type Config struct {
	// Model is the generative model identifier.
	Model string
	// Region selects the remote service's deployment region. Falls back to
	// us-central1 when unset.
	Region string
	// MaxOutputTokens caps the completion size (the retry budget's ceiling).
	MaxOutputTokens int32
	// Attempts is the internal retry budget for schema-constrained decoding.
	Attempts int
	// RequestTimeout bounds one remote call.
	RequestTimeout time.Duration
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables win over file values.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Model:  getEnv("LEDGERWISE_MODEL", "gemini-2.0-flash"),
		Region: getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
	}

	maxTokens, err := parseIntEnv("LEDGERWISE_MAX_TOKENS", 2048)
	if err != nil {
		return cfg, err
	}
	cfg.MaxOutputTokens = int32(maxTokens)

	if cfg.Attempts, err = parseIntEnv("LEDGERWISE_ATTEMPTS", 3); err != nil {
		return cfg, err
	}

	timeoutSec, err := parseIntEnv("LEDGERWISE_TIMEOUT_SECONDS", 90)
	if err != nil {
		return cfg, err
	}
	cfg.RequestTimeout = time.Duration(timeoutSec) * time.Second

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
