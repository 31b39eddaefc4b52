package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/uyhome/adminctl/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is
// expressed in seconds to keep config files simple.
type JsonConfig struct {
	BaseURL        string `json:"base_url"`
	Locale         string `json:"locale"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	LogLevel       string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Only non-zero fields are copied, so a sparse file keeps earlier sources.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.Locale != "" {
		cfg.Locale = jc.Locale
	}
	if jc.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.TimeoutSeconds) * time.Second
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
