package adapter_bubbletea

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/modaledit/core"
)

type clipboardImpl struct{}

// SystemClipboard returns the OS clipboard, or nil when none is available
// (e.g. no xclip/xsel on Linux).
func SystemClipboard() core.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return &clipboardImpl{}
}

func (c *clipboardImpl) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *clipboardImpl) Read() (string, error) {
	return clipboard.ReadAll()
}

type clipboardFailedMsg struct {
	Err error
}

// YankMsg is emitted after the register was mirrored to the clipboard.
type YankMsg struct {
	Content string
}

// copyCmd writes a yank to the clipboard off the update loop.
func (m *Model) copyCmd(ev core.YankEvent) tea.Cmd {
	if m.clipboard == nil {
		return nil
	}
	cb := m.clipboard
	return func() tea.Msg {
		if err := cb.Write(ev.Text); err != nil {
			return clipboardFailedMsg{Err: core.NewError(core.ErrFailedToYankId, err)}
		}
		return YankMsg{Content: ev.Text}
	}
}
