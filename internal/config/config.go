// Package config loads user preferences from a YAML file with
// environment overrides on top. Everything has a working default: the
// app runs with no config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user-tunable settings.
type Config struct {
	// Language is the startup interface language: "fr" or "ar".
	Language string `yaml:"language"`
	// Theme is "light" or "dark".
	Theme string `yaml:"theme"`

	Responder ResponderConfig `yaml:"responder"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ResponderConfig selects and configures the chat responder.
type ResponderConfig struct {
	// Mode is "keyword" (local rule table) or "gemini" (remote).
	Mode   string `yaml:"mode"`
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// LoggingConfig configures the file-backed debug log.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

const (
	ResponderKeyword = "keyword"
	ResponderGemini  = "gemini"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Language: "fr",
		Theme:    "light",
		Responder: ResponderConfig{
			Mode: ResponderKeyword,
		},
	}
}

// Dir returns the directory configuration and logs live in.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".carnet"), nil
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Default(), err
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// applyEnvOverrides layers environment variables over the file values.
// GEMINI_API_KEY also switches the responder mode when the file left
// it at the default.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Responder.APIKey = key
		if c.Responder.Mode == "" || c.Responder.Mode == ResponderKeyword {
			c.Responder.Mode = ResponderGemini
		}
	}
	if lang := os.Getenv("CARNET_LANG"); lang != "" {
		c.Language = lang
	}
	if os.Getenv("CARNET_DARK_MODE") == "1" {
		c.Theme = "dark"
	}
}
