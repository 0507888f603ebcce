package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	adapter "github.com/ionut-t/modaledit/adapter-bubbletea"
	"github.com/ionut-t/modaledit/adapter-bubbletea/highlighter"
	"github.com/ionut-t/modaledit/core"
	"github.com/ionut-t/modaledit/internal/config"
	"github.com/ionut-t/modaledit/internal/log"
	"github.com/ionut-t/modaledit/internal/storage"
)

func init() {
	// Query the terminal background before bubbletea owns stdin so the
	// OSC 11 reply does not land in the document.
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	fs      = afero.NewOsFs()
	v       = config.NewViper(fs)
)

var rootCmd = &cobra.Command{
	Use:     "modaledit [file]",
	Short:   "A modal terminal text editor",
	Long:    `modaledit is a small vi-style editor with Normal, Insert and Command modes.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/modaledit/config.yaml)")
	rootCmd.Flags().Bool("debug", false, "write a debug log")
	rootCmd.Flags().String("log-file", "", "debug log path (default: modaledit.log)")
	rootCmd.Flags().Bool("no-syntax", false, "disable syntax highlighting")
	rootCmd.Flags().String("theme", "", `colour preset: "default" or "mono"`)

	_ = v.BindPFlag("log.debug", rootCmd.Flags().Lookup("debug"))
	_ = v.BindPFlag("log.file", rootCmd.Flags().Lookup("log-file"))
	_ = v.BindPFlag("theme.preset", rootCmd.Flags().Lookup("theme"))
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v, fs, cfgFile)
	if err != nil {
		return err
	}

	if noSyntax, _ := cmd.Flags().GetBool("no-syntax"); noSyntax {
		cfg.Theme.Syntax = ""
	}

	if cfg.Log.Debug || cfg.Log.File != "" {
		path := cfg.Log.File
		if path == "" {
			path = "modaledit.log"
		}
		cleanup, err := log.InitWithTeaLog(path, "modaledit")
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		defer cleanup()

		level := log.ParseLevel(cfg.Log.Level)
		if cfg.Log.Debug {
			level = log.LevelDebug
		}
		log.SetMinLevel(level)
	}

	var path string
	if len(args) == 1 {
		path, err = expandHome(args[0])
		if err != nil {
			return err
		}
	}

	var opts []adapter.Option
	if path != "" {
		unlock, notice := lockFile(path)
		defer unlock()
		if notice != "" {
			opts = append(opts, adapter.WithNotice(notice))
		}
	}

	model, err := buildModel(cfg, storage.New(fs), path, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// lockFile marks path as being edited. A file already held by another
// instance is still opened, with a warning.
func lockFile(path string) (unlock func(), notice string) {
	lock, err := storage.NewFileLock("", path)
	if err == nil {
		err = lock.TryLock()
	}
	switch {
	case errors.Is(err, storage.ErrLocked):
		log.Warn(log.CatFile, "file already open", "path", path)
		return func() {}, fmt.Sprintf("W: %q is open in another modaledit instance", path)
	case err != nil:
		log.ErrorErr(log.CatFile, "lock failed", err, "path", path)
		return func() {}, ""
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			log.ErrorErr(log.CatFile, "unlock failed", err, "path", path)
		}
	}, ""
}

// buildModel loads path and wires an engine into the terminal adapter.
func buildModel(cfg config.Config, store *storage.Store, path string, extra ...adapter.Option) (adapter.Model, error) {
	doc, err := store.Load(path)
	if err != nil {
		return adapter.Model{}, err
	}

	engine := core.New(doc.Content, core.WithScrollOff(cfg.UI.ScrollOff))

	opts := []adapter.Option{
		adapter.WithStore(store, path),
		adapter.WithTheme(adapter.ThemeByName(cfg.Theme.Preset)),
		adapter.WithLineNumbers(cfg.UI.LineNumbers, cfg.UI.RelativeNumbers),
		adapter.WithStatusLine(cfg.UI.StatusLine),
		adapter.WithTabWidth(cfg.UI.TabWidth),
		adapter.WithMessageTimeout(cfg.UI.MessageTimeout),
		adapter.WithHighlighter(highlighter.ForFile(path, cfg.Theme.Syntax)),
	}
	if cfg.Editor.Clipboard {
		opts = append(opts, adapter.WithClipboard(adapter.SystemClipboard()))
	}
	opts = append(opts, extra...)

	log.Info(log.CatUI, "starting", "path", path, "new", doc.New, "lines", engine.LineCount())
	return adapter.New(engine, 80, 24, opts...), nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	return filepath.Join(home, path[2:]), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(ver string) {
	version = ver
	rootCmd.Version = ver
}
