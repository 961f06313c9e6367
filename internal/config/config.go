// Package config loads the service configuration from an optional .env file,
// a JSON file and the environment, in that order of increasing precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Recipe sources.
const (
	SourcePurna  = "purna"
	SourceGemini = "gemini"
)

// Duration is a time.Duration that reads from JSON as a string like "45s".
type Duration time.Duration

// UnmarshalJSON implements the json.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config represents the application configuration.
type Config struct {
	APIBaseURL     string   `json:"api_base_url"`
	ListenAddr     string   `json:"listen_addr"`
	RecipeSource   string   `json:"recipe_source"`
	GeminiAPIKey   string   `json:"gemini_api_key"`
	GeminiModel    string   `json:"gemini_model"`
	DemoFixtures   bool     `json:"demo_fixtures"`
	FixturesPath   string   `json:"fixtures_path"`
	AllowedOrigins []string `json:"allowed_origins"`
	RequestTimeout Duration `json:"request_timeout"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		APIBaseURL:     "https://purna-backend.vercel.app",
		ListenAddr:     ":8080",
		RecipeSource:   SourcePurna,
		DemoFixtures:   true,
		AllowedOrigins: []string{"http://localhost:8081"},
		RequestTimeout: Duration(45 * time.Second),
	}
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout)
}

// Load builds the configuration. A .env file in the working directory and
// the JSON file at path are both optional; a path that exists but does not
// parse is an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		configData, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
		default:
			if err := json.Unmarshal(configData, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to unmarshal %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("PURNA_API_BASE"); ok {
		c.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("PURNA_LISTEN_ADDR"); ok {
		c.ListenAddr = v
	}
	if v, ok := os.LookupEnv("PURNA_RECIPE_SOURCE"); ok {
		c.RecipeSource = v
	}
	if v, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
		c.GeminiAPIKey = v
	}
	if v, ok := os.LookupEnv("PURNA_FIXTURES_PATH"); ok {
		c.FixturesPath = v
	}
	if v, ok := os.LookupEnv("PURNA_DEMO_FIXTURES"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid PURNA_DEMO_FIXTURES: %w", err)
		}
		c.DemoFixtures = b
	}
	if v, ok := os.LookupEnv("PURNA_ALLOWED_ORIGINS"); ok {
		c.AllowedOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("PURNA_REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PURNA_REQUEST_TIMEOUT: %w", err)
		}
		c.RequestTimeout = Duration(d)
	}
	return nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch c.RecipeSource {
	case SourcePurna:
		if c.APIBaseURL == "" {
			return errors.New("api_base_url is required for the purna recipe source")
		}
	case SourceGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("gemini_api_key is required for the gemini recipe source")
		}
	default:
		return fmt.Errorf("unknown recipe_source %q", c.RecipeSource)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
