// Package config loads egglens configuration from an optional YAML file,
// a .env file, and environment variables, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	ai "github.com/spetersoncode/egglens"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration.
type Config struct {
	// Server
	Port     int    `yaml:"port"`
	Bind     string `yaml:"bind"` // empty = all interfaces
	LogLevel string `yaml:"log_level"`

	// Provider selection
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`

	// API keys
	GoogleKey    string `yaml:"google_api_key"`
	OpenAIKey    string `yaml:"openai_api_key"`
	AnthropicKey string `yaml:"anthropic_api_key"`
	TMDbKey      string `yaml:"tmdb_api_key"`

	// Timeouts
	LLMTimeout    time.Duration `yaml:"llm_timeout"`
	PosterTimeout time.Duration `yaml:"poster_timeout"`

	// Pipeline steps
	TitleExtraction bool `yaml:"title_extraction"`
	Posters         bool `yaml:"posters"`

	SessionTTL time.Duration `yaml:"session_ttl"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:            8080,
		LogLevel:        "info",
		Provider:        string(ai.ProviderGoogle),
		LLMTimeout:      30 * time.Second,
		PosterTimeout:   8 * time.Second,
		TitleExtraction: true,
		Posters:         true,
		SessionTTL:      24 * time.Hour,
	}
}

// Load builds the configuration. If path is non-empty the YAML file there
// is read first, with ${VAR} references expanded. A .env file in the
// working directory is loaded if present, then environment variables
// override both. Malformed environment values and a failed validation are
// errors.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides c with any set environment variables. Values that do
// not parse are reported together; the previous value is kept for them.
func (c *Config) applyEnv() error {
	var env envReader
	c.Port = env.intOr("EGGLENS_PORT", c.Port)
	c.Bind = getEnvOrDefault("EGGLENS_BIND", c.Bind)
	c.LogLevel = getEnvOrDefault("EGGLENS_LOG_LEVEL", c.LogLevel)
	c.Provider = getEnvOrDefault("EGGLENS_PROVIDER", c.Provider)
	c.Model = getEnvOrDefault("EGGLENS_MODEL", c.Model)
	c.GoogleKey = getEnvOrDefault("GOOGLE_API_KEY", c.GoogleKey)
	c.OpenAIKey = getEnvOrDefault("OPENAI_API_KEY", c.OpenAIKey)
	c.AnthropicKey = getEnvOrDefault("ANTHROPIC_API_KEY", c.AnthropicKey)
	c.TMDbKey = getEnvOrDefault("TMDB_API_KEY", c.TMDbKey)
	c.LLMTimeout = env.durationOr("EGGLENS_LLM_TIMEOUT", c.LLMTimeout)
	c.PosterTimeout = env.durationOr("EGGLENS_POSTER_TIMEOUT", c.PosterTimeout)
	c.TitleExtraction = env.boolOr("EGGLENS_TITLE_EXTRACTION", c.TitleExtraction)
	c.Posters = env.boolOr("EGGLENS_POSTERS", c.Posters)
	c.SessionTTL = env.durationOr("EGGLENS_SESSION_TTL", c.SessionTTL)
	return errors.Join(env.errs...)
}

// Validate checks that the selected provider is known and has a key.
func (c *Config) Validate() error {
	p, err := ai.ParseProvider(c.Provider)
	if err != nil {
		return err
	}
	if c.APIKey() == "" {
		return fmt.Errorf("%s is required for %s provider", keyEnvVar(p), p)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ProviderName returns the normalized provider. It assumes Validate passed.
func (c *Config) ProviderName() ai.Provider {
	p, _ := ai.ParseProvider(c.Provider)
	return p
}

// APIKey returns the key for the selected provider.
func (c *Config) APIKey() string {
	p, err := ai.ParseProvider(c.Provider)
	if err != nil {
		return ""
	}
	switch p {
	case ai.ProviderOpenAI:
		return c.OpenAIKey
	case ai.ProviderAnthropic:
		return c.AnthropicKey
	default:
		return c.GoogleKey
	}
}

// Addr returns the listen address for the web server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}

func keyEnvVar(p ai.Provider) string {
	switch p {
	case ai.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ai.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "GOOGLE_API_KEY"
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envReader parses typed environment variables and collects the errors.
type envReader struct {
	errs []error
}

func (r *envReader) intOr(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid integer %q", key, value))
		return defaultValue
	}
	return i
}

func (r *envReader) durationOr(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid duration %q (use a unit, e.g. 8s)", key, value))
		return defaultValue
	}
	return d
}

func (r *envReader) boolOr(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid boolean %q", key, value))
		return defaultValue
	}
	return b
}
