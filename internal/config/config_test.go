package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "https://purna-backend.vercel.app", cfg.APIBaseURL)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, SourcePurna, cfg.RecipeSource)
	assert.True(t, cfg.DemoFixtures)
	assert.Equal(t, []string{"http://localhost:8081"}, cfg.AllowedOrigins)
	assert.Equal(t, 45*time.Second, cfg.Timeout())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `{
		"api_base_url": "http://localhost:3000",
		"recipe_source": "gemini",
		"gemini_api_key": "file-key",
		"demo_fixtures": false,
		"request_timeout": "10s"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, SourceGemini, cfg.RecipeSource)
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
	assert.False(t, cfg.DemoFixtures)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"listen_addr": ":9000", "demo_fixtures": true}`)
	t.Setenv("PURNA_LISTEN_ADDR", ":7000")
	t.Setenv("PURNA_DEMO_FIXTURES", "false")
	t.Setenv("PURNA_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("PURNA_REQUEST_TIMEOUT", "2m")
	t.Setenv("PURNA_FIXTURES_PATH", "/etc/purna/stores.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.False(t, cfg.DemoFixtures)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Minute, cfg.Timeout())
	assert.Equal(t, "/etc/purna/stores.yaml", cfg.FixturesPath)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("MalformedFile", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"listen_addr":`))
		assert.Error(t, err)
	})

	t.Run("BadTimeoutInFile", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"request_timeout": "soon"}`))
		assert.Error(t, err)
	})

	t.Run("UnknownSource", func(t *testing.T) {
		t.Setenv("PURNA_RECIPE_SOURCE", "openai")
		_, err := Load("")
		assert.ErrorContains(t, err, "unknown recipe_source")
	})

	t.Run("GeminiWithoutKey", func(t *testing.T) {
		t.Setenv("PURNA_RECIPE_SOURCE", "gemini")
		t.Setenv("GEMINI_API_KEY", "")
		_, err := Load("")
		assert.ErrorContains(t, err, "gemini_api_key")
	})

	t.Run("BadFixturesFlag", func(t *testing.T) {
		t.Setenv("PURNA_DEMO_FIXTURES", "sometimes")
		_, err := Load("")
		assert.Error(t, err)
	})
}
