package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"tab width zero", func(c *Config) { c.UI.TabWidth = 0 }, "ui.tab_width"},
		{"tab width too large", func(c *Config) { c.UI.TabWidth = 17 }, "ui.tab_width"},
		{"negative timeout", func(c *Config) { c.UI.MessageTimeout = -time.Second }, "ui.message_timeout"},
		{"negative scroll off", func(c *Config) { c.UI.ScrollOff = -1 }, "ui.scroll_off"},
		{"unknown preset", func(c *Config) { c.Theme.Preset = "neon" }, "theme.preset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.UI.TabWidth = 0
	cfg.Theme.Preset = "neon"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.tab_width")
	assert.Contains(t, err.Error(), "theme.preset")
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	fs := afero.NewMemMapFs()

	cfg, err := Load(NewViper(fs), fs, "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadExplicitFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/modaledit.yaml", []byte(`
ui:
  tab_width: 8
  relative_numbers: true
  message_timeout: 2s
theme:
  preset: mono
  syntax: ""
`), 0o644))

	cfg, err := Load(NewViper(fs), fs, "/etc/modaledit.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.UI.TabWidth)
	assert.True(t, cfg.UI.RelativeNumbers)
	assert.Equal(t, 2*time.Second, cfg.UI.MessageTimeout)
	assert.Equal(t, "mono", cfg.Theme.Preset)
	assert.Empty(t, cfg.Theme.Syntax)
	assert.True(t, cfg.UI.LineNumbers, "unset keys keep their defaults")
}

func TestLoadXDGFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/xdg/modaledit/config.yaml", []byte("editor:\n  clipboard: false\n"), 0o644))

	cfg, err := Load(NewViper(fs), fs, "")
	require.NoError(t, err)
	assert.False(t, cfg.Editor.Clipboard)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(NewViper(fs), fs, "/nope.yaml")
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c.yaml", []byte("ui:\n  tab_width: 99\n"), 0o644))

	_, err := Load(NewViper(fs), fs, "/c.yaml")
	require.ErrorContains(t, err, "invalid config")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("MODALEDIT_UI_TAB_WIDTH", "2")
	fs := afero.NewMemMapFs()

	cfg, err := Load(NewViper(fs), fs, "")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.UI.TabWidth)
}
