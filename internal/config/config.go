// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the veneer configuration.
type Config struct {
	Themes ThemesConfig `toml:"themes"`
	Server ServerConfig `toml:"server"`
}

// ThemesConfig locates the theme trees and tunes activation.
type ThemesConfig struct {
	Root       string `toml:"root"`        // per-theme source directories
	PublicRoot string `toml:"public_root"` // web-servable directory for asset links
	Default    string `toml:"default"`     // theme activated by serve
	ConfigTTL  string `toml:"config_ttl"`  // cache validity for config.json reads
}

// ServerConfig holds the serve command settings.
type ServerConfig struct {
	Listen string `toml:"listen"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Themes: ThemesConfig{
			Root:       "themes",
			PublicRoot: filepath.Join("public", "themes"),
			Default:    "",
			ConfigTTL:  "24h",
		},
		Server: ServerConfig{
			Listen: ":8080",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "veneer", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// TTL parses the configured config_ttl duration.
func (t *ThemesConfig) TTL() (time.Duration, error) {
	return time.ParseDuration(t.ConfigTTL)
}
