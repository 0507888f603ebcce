package adapter_bubbletea

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ionut-t/modaledit/core"
)

type Theme struct {
	NormalModeStyle        lipgloss.Style
	InsertModeStyle        lipgloss.Style
	CommandModeStyle       lipgloss.Style
	StatusLineStyle        lipgloss.Style
	CommandLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	PlaceholderStyle       lipgloss.Style
	DirtyStyle             lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	CommandModeStyle:       lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Right),
	PlaceholderStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	DirtyStyle:             lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("214")),
}

// MonoTheme avoids colour entirely and relies on reverse video.
var MonoTheme = Theme{
	NormalModeStyle:        lipgloss.NewStyle().Reverse(true),
	InsertModeStyle:        lipgloss.NewStyle().Reverse(true).Bold(true),
	CommandModeStyle:       lipgloss.NewStyle().Reverse(true).Underline(true),
	CommandLineStyle:       lipgloss.NewStyle(),
	StatusLineStyle:        lipgloss.NewStyle().Reverse(true),
	MessageStyle:           lipgloss.NewStyle(),
	ErrorStyle:             lipgloss.NewStyle().Bold(true),
	LineNumberStyle:        lipgloss.NewStyle().Faint(true).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Align(lipgloss.Right),
	PlaceholderStyle:       lipgloss.NewStyle().Faint(true),
	DirtyStyle:             lipgloss.NewStyle().Reverse(true).Bold(true),
}

// ThemeByName maps a config preset to a theme.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme
	}
	return DefaultTheme
}

// ModeStyle is the badge and cursor style for a mode.
func (t Theme) ModeStyle(mode core.Mode) lipgloss.Style {
	switch mode {
	case core.InsertMode:
		return t.InsertModeStyle
	case core.CommandMode:
		return t.CommandModeStyle
	default:
		return t.NormalModeStyle
	}
}
