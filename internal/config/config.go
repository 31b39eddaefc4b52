// Package config assembles the runtime configuration of the admin console.
//
// Sources are applied in order, later ones winning:
// defaults -> .env / environment -> JSON file (-c/-config) -> command-line flags.
package config

import "time"

// Config holds runtime settings for the admin console.
//
// Fields:
//   - BaseURL: root of the backend REST API, without a trailing slash.
//   - Locale: initial interface/data locale ("ru", "uz" or "en").
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel: minimum log level ("debug", "info", "warn", "error").
type Config struct {
	BaseURL        string
	Locale         string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.Locale = "ru"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON file (if given)
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
