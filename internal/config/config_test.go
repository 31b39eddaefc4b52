package config

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    *Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "https://api.example.com", "-l", "uz", "-t", "30", "-v", "debug"},
			expected: &Config{
				BaseURL:        "https://api.example.com",
				Locale:         "uz",
				RequestTimeout: 30 * time.Second,
				LogLevel:       "debug",
			},
		},
		{
			name:        "incorrect timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func Test_parseJson_OverlaysOnlyGivenFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"base_url":        "https://api.example.com",
		"timeout_seconds": 30,
	})
	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// untouched fields keep their defaults
	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
}

func Test_parseJson_NoFileGiven(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()

	require.NotPanics(t, func() { parseJson(cfg) })
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("ADMINCTL_BASE_URL", "https://env.example.com")
	t.Setenv("ADMINCTL_LOCALE", "en")
	t.Setenv("ADMINCTL_TIMEOUT", "45")
	t.Setenv("ADMINCTL_LOG_LEVEL", "warn")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}
