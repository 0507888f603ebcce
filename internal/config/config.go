// Package config provides configuration types, defaults and loading for modaledit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/ionut-t/modaledit/internal/log"
)

// Config holds all configuration options.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Editor EditorConfig `mapstructure:"editor"`
	Log    LogConfig    `mapstructure:"log"`
}

// UIConfig holds terminal presentation options.
type UIConfig struct {
	LineNumbers     bool          `mapstructure:"line_numbers"`
	RelativeNumbers bool          `mapstructure:"relative_numbers"`
	StatusLine      bool          `mapstructure:"status_line"`
	TabWidth        int           `mapstructure:"tab_width"`
	MessageTimeout  time.Duration `mapstructure:"message_timeout"`
	ScrollOff       int           `mapstructure:"scroll_off"`
}

// ThemeConfig selects colours.
type ThemeConfig struct {
	// Preset is "default" or "mono".
	Preset string `mapstructure:"preset"`
	// Syntax is a chroma style name; empty disables highlighting.
	Syntax string `mapstructure:"syntax"`
}

// EditorConfig holds editing behaviour options.
type EditorConfig struct {
	Clipboard bool `mapstructure:"clipboard"` // mirror yanks to the system clipboard
}

// LogConfig controls the debug log.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
	Debug bool   `mapstructure:"debug"`
}

var validPresets = []string{"default", "mono"}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			LineNumbers:    true,
			StatusLine:     true,
			TabWidth:       4,
			MessageTimeout: 5 * time.Second,
		},
		Theme: ThemeConfig{
			Preset: "default",
			Syntax: "dracula",
		},
		Editor: EditorConfig{
			Clipboard: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers every default with v so unset keys unmarshal to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("ui.line_numbers", d.UI.LineNumbers)
	v.SetDefault("ui.relative_numbers", d.UI.RelativeNumbers)
	v.SetDefault("ui.status_line", d.UI.StatusLine)
	v.SetDefault("ui.tab_width", d.UI.TabWidth)
	v.SetDefault("ui.message_timeout", d.UI.MessageTimeout)
	v.SetDefault("ui.scroll_off", d.UI.ScrollOff)
	v.SetDefault("theme.preset", d.Theme.Preset)
	v.SetDefault("theme.syntax", d.Theme.Syntax)
	v.SetDefault("editor.clipboard", d.Editor.Clipboard)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.debug", d.Log.Debug)
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.UI.TabWidth < 1 || c.UI.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("ui.tab_width: %d not in [1, 16]", c.UI.TabWidth))
	}
	if c.UI.MessageTimeout < 0 {
		errs = append(errs, fmt.Errorf("ui.message_timeout: must not be negative"))
	}
	if c.UI.ScrollOff < 0 {
		errs = append(errs, fmt.Errorf("ui.scroll_off: must not be negative"))
	}
	if !slices.Contains(validPresets, c.Theme.Preset) {
		errs = append(errs, fmt.Errorf("theme.preset: %q must be one of %s", c.Theme.Preset, strings.Join(validPresets, ", ")))
	}
	return errors.Join(errs...)
}

// NewViper returns a viper instance with defaults and MODALEDIT_ env
// overrides wired up.
func NewViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	SetDefaults(v)
	v.SetEnvPrefix("MODALEDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration into a Config.
// Lookup order: explicit path, ./.modaledit.yaml, $XDG_CONFIG_HOME/modaledit/config.yaml,
// ~/.config/modaledit/config.yaml. A missing file is not an error.
func Load(v *viper.Viper, fs afero.Fs, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else if ok, _ := afero.Exists(fs, ".modaledit.yaml"); ok {
		v.SetConfigFile(".modaledit.yaml")
	} else {
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.ErrorErr(log.CatConfig, "failed to read config", err, "path", path)
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "no config file, using defaults")
	} else {
		log.Info(log.CatConfig, "loaded config", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func configDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "modaledit"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "modaledit"))
	}
	return dirs
}
