package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	ai "github.com/spetersoncode/egglens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"EGGLENS_PORT", "EGGLENS_BIND", "EGGLENS_LOG_LEVEL", "EGGLENS_PROVIDER",
	"EGGLENS_MODEL", "GOOGLE_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	"TMDB_API_KEY", "EGGLENS_LLM_TIMEOUT", "EGGLENS_POSTER_TIMEOUT",
	"EGGLENS_TITLE_EXTRACTION", "EGGLENS_POSTERS", "EGGLENS_SESSION_TTL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ai.ProviderGoogle, cfg.ProviderName())
	assert.Equal(t, "g-key", cfg.APIKey())
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 8*time.Second, cfg.PosterTimeout)
	assert.True(t, cfg.TitleExtraction)
	assert.True(t, cfg.Posters)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.TMDbKey)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("EGGLENS_PROVIDER", "claude")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("EGGLENS_PORT", "9090")
	t.Setenv("EGGLENS_BIND", "127.0.0.1")
	t.Setenv("EGGLENS_LLM_TIMEOUT", "5s")
	t.Setenv("EGGLENS_TITLE_EXTRACTION", "false")
	t.Setenv("EGGLENS_POSTERS", "0")
	t.Setenv("TMDB_API_KEY", "t-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ai.ProviderAnthropic, cfg.ProviderName())
	assert.Equal(t, "a-key", cfg.APIKey())
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
	assert.False(t, cfg.TitleExtraction)
	assert.False(t, cfg.Posters)
	assert.Equal(t, "t-key", cfg.TMDbKey)
}

func TestLoad_InvalidEnvValues(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr string
	}{
		{"EGGLENS_PORT", "eighty", `EGGLENS_PORT: invalid integer "eighty"`},
		{"EGGLENS_POSTER_TIMEOUT", "8", `EGGLENS_POSTER_TIMEOUT: invalid duration "8"`},
		{"EGGLENS_LLM_TIMEOUT", "soon", `EGGLENS_LLM_TIMEOUT: invalid duration "soon"`},
		{"EGGLENS_SESSION_TTL", "1 day", `EGGLENS_SESSION_TTL: invalid duration "1 day"`},
		{"EGGLENS_POSTERS", "maybe", `EGGLENS_POSTERS: invalid boolean "maybe"`},
		{"EGGLENS_TITLE_EXTRACTION", "nope", `EGGLENS_TITLE_EXTRACTION: invalid boolean "nope"`},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GOOGLE_API_KEY", "g-key")
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidEnvValuesReportedTogether(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("EGGLENS_PORT", "x")
	t.Setenv("EGGLENS_POSTER_TIMEOUT", "8")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EGGLENS_PORT")
	assert.Contains(t, err.Error(), "EGGLENS_POSTER_TIMEOUT")
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	t.Setenv("MY_OPENAI_KEY", "from-file-env")
	t.Setenv("EGGLENS_PORT", "7000")

	path := writeFile(t, `
provider: openai
model: gpt-5-nano
openai_api_key: ${MY_OPENAI_KEY}
port: 9999
poster_timeout: 3s
posters: false
session_ttl: 2h
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ai.ProviderOpenAI, cfg.ProviderName())
	assert.Equal(t, "gpt-5-nano", cfg.Model)
	assert.Equal(t, "from-file-env", cfg.APIKey())
	assert.Equal(t, 7000, cfg.Port, "env overrides file")
	assert.Equal(t, 3*time.Second, cfg.PosterTimeout)
	assert.False(t, cfg.Posters)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.TitleExtraction, "unset keys keep defaults")
}

func TestLoad_FileErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeFile(t, "port: [not, a, port]"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"google ok", func(c *Config) { c.GoogleKey = "k" }, ""},
		{"google missing key", func(c *Config) {}, "GOOGLE_API_KEY is required for google provider"},
		{"openai missing key", func(c *Config) { c.Provider = "openai"; c.GoogleKey = "k" }, "OPENAI_API_KEY is required for openai provider"},
		{"anthropic missing key", func(c *Config) { c.Provider = "anthropic" }, "ANTHROPIC_API_KEY is required for anthropic provider"},
		{"unknown provider", func(c *Config) { c.Provider = "llama" }, "unknown provider: llama"},
		{"bad port", func(c *Config) { c.GoogleKey = "k"; c.Port = 70000 }, "invalid port 70000"},
		{"bad log level", func(c *Config) { c.GoogleKey = "k"; c.LogLevel = "loud" }, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		err  bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{" DEBUG ", slog.LevelDebug, false},
		{"trace", LevelTrace, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_TraceName(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelTrace)
	logger.Log(t.Context(), LevelTrace, "payload")
	assert.Contains(t, buf.String(), "level=TRACE")
	assert.Contains(t, buf.String(), "msg=payload")
}
