package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CARNET_LANG", "")
	t.Setenv("CARNET_DARK_MODE", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Language)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, ResponderKeyword, cfg.Responder.Mode)
}

func TestLoad_ParsesFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CARNET_LANG", "")
	t.Setenv("CARNET_DARK_MODE", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "language: ar\ntheme: dark\nresponder:\n  mode: gemini\n  api_key: file-key\n  model: gemini-2.0-flash\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ar", cfg.Language)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, ResponderGemini, cfg.Responder.Mode)
	assert.Equal(t, "file-key", cfg.Responder.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Responder.Model)
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GEMINI_API_KEY sets key and promotes mode", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "env-key")

		cfg := Default()
		cfg.applyEnvOverrides()

		assert.Equal(t, "env-key", cfg.Responder.APIKey)
		assert.Equal(t, ResponderGemini, cfg.Responder.Mode)
	})

	t.Run("GEMINI_API_KEY keeps an explicit non-default mode", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "env-key")

		cfg := Config{Responder: ResponderConfig{Mode: ResponderGemini, Model: "custom"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, ResponderGemini, cfg.Responder.Mode)
		assert.Equal(t, "custom", cfg.Responder.Model)
	})

	t.Run("CARNET_LANG overrides language", func(t *testing.T) {
		t.Setenv("CARNET_LANG", "ar")

		cfg := Default()
		cfg.applyEnvOverrides()

		assert.Equal(t, "ar", cfg.Language)
	})

	t.Run("CARNET_DARK_MODE flips theme", func(t *testing.T) {
		t.Setenv("CARNET_DARK_MODE", "1")

		cfg := Default()
		cfg.applyEnvOverrides()

		assert.Equal(t, "dark", cfg.Theme)
	})
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CARNET_LANG", "")
	t.Setenv("CARNET_DARK_MODE", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Config{
		Language:  "ar",
		Theme:     "dark",
		Responder: ResponderConfig{Mode: ResponderKeyword},
		Logging:   LoggingConfig{Debug: true},
	}
	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
