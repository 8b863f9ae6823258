package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("SALARYINTEL_CONFIG", "")
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.UI.Locale)
	assert.Equal(t, "USD", cfg.UI.Currency)
	assert.Equal(t, "overview", cfg.UI.DefaultView)
	assert.Equal(t, "data", cfg.UI.DefaultTrack)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Log.Path)
}

func TestLoadReadsTOMLFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[ui]
locale = "de-DE"
currency = "eur"
default_view = "predictor"
default_track = "cloud"

[log]
level = "debug"
path = "/tmp/salaryintel-test.log"
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de-DE", cfg.UI.Locale)
	assert.Equal(t, "EUR", cfg.UI.Currency)
	assert.Equal(t, "predictor", cfg.UI.DefaultView)
	assert.Equal(t, "cloud", cfg.UI.DefaultTrack)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/salaryintel-test.log", cfg.Log.Path)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ndefault_view = \"education\"\n"), 0o600))
	t.Setenv("SALARYINTEL_CONFIG", path)
	t.Setenv("SALARYINTEL_UI_DEFAULT_TRACK", "web")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "education", cfg.UI.DefaultView)
	assert.Equal(t, "web", cfg.UI.DefaultTrack)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[ui]
locale = "not a locale!"
currency = "XXXX"
default_view = "settings"
default_track = "mobile"

[log]
level = "verbose"
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultLocale, cfg.UI.Locale)
	assert.Equal(t, DefaultCurrency, cfg.UI.Currency)
	assert.Equal(t, DefaultView, cfg.UI.DefaultView)
	assert.Equal(t, DefaultTrack, cfg.UI.DefaultTrack)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadMalformedFileFails(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nlocale = "), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultView, cfg.UI.DefaultView)
	assert.Equal(t, DefaultCurrency, cfg.UI.Currency)
}
