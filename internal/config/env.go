package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with ADMINCTL_* environment variables. A .env file
// in the working directory is loaded first when present; real environment
// variables are not overridden by it.
//
// Recognized variables:
//
//	ADMINCTL_BASE_URL    backend API root
//	ADMINCTL_LOCALE      interface locale
//	ADMINCTL_TIMEOUT     request timeout in seconds
//	ADMINCTL_LOG_LEVEL   minimum log level
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADMINCTL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ADMINCTL_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("ADMINCTL_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("ADMINCTL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
