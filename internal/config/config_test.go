package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "themes", cfg.Themes.Root)
	assert.Equal(t, filepath.Join("public", "themes"), cfg.Themes.PublicRoot)
	assert.Empty(t, cfg.Themes.Default)
	assert.Equal(t, "24h", cfg.Themes.ConfigTTL)
	assert.Equal(t, ":8080", cfg.Server.Listen)
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	// Use a path that doesn't exist
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Themes.Root, cfg.Themes.Root)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[themes]
root = "/srv/app/themes"
public_root = "/srv/app/public/themes"
default = "dark"
config_ttl = "1h"

[server]
listen = ":9090"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/app/themes", cfg.Themes.Root)
	assert.Equal(t, "/srv/app/public/themes", cfg.Themes.PublicRoot)
	assert.Equal(t, "dark", cfg.Themes.Default)
	assert.Equal(t, "1h", cfg.Themes.ConfigTTL)
	assert.Equal(t, ":9090", cfg.Server.Listen)
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[themes]
default = "light"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Overridden field
	assert.Equal(t, "light", cfg.Themes.Default)
	// Untouched fields keep defaults
	assert.Equal(t, "themes", cfg.Themes.Root)
	assert.Equal(t, ":8080", cfg.Server.Listen)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	err := os.WriteFile(path, []byte("[themes\nroot ="), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Themes.Default = "dark"
	cfg.Server.Listen = ":3000"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Themes.Default)
	assert.Equal(t, ":3000", loaded.Server.Listen)
}

func TestThemesConfig_TTL(t *testing.T) {
	cfg := DefaultConfig()
	ttl, err := cfg.Themes.TTL()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)

	cfg.Themes.ConfigTTL = "not-a-duration"
	_, err = cfg.Themes.TTL()
	assert.Error(t, err)
}
