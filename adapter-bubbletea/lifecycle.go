package adapter_bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/modaledit/core"
	"github.com/ionut-t/modaledit/internal/log"
	"github.com/ionut-t/modaledit/internal/storage"
)

// savedMsg reports a completed write of the content at Revision.
type savedMsg struct {
	Message  string
	Revision uint64
	Quit     bool
}

type saveFailedMsg struct {
	Err error
}

// QuitMsg is sent right before the program exits so embedding models can
// observe it.
type QuitMsg struct {
	Forced bool
}

// quitAllowed applies the unsaved-changes policy: a plain quit is refused
// while the document is dirty, a forced quit never is.
func quitAllowed(result core.CommandResult, dirty bool) error {
	if result.Kind == core.CommandQuit && dirty {
		return core.NewError(core.ErrRefusedQuitId, core.ErrRefusedQuit)
	}
	return nil
}

// handleCommand carries out a command the engine asked for.
func (m *Model) handleCommand(ev core.CommandEvent) tea.Cmd {
	if ev.Err != nil {
		return m.DispatchError(ev.Err)
	}

	switch ev.Result.Kind {
	case core.CommandSave:
		return m.saveCmd(ev.Content, ev.Revision, false)
	case core.CommandSaveAndQuit:
		return m.saveCmd(ev.Content, ev.Revision, true)
	case core.CommandQuit, core.CommandForceQuit:
		if err := quitAllowed(ev.Result, m.engine.Dirty()); err != nil {
			log.Info(log.CatUI, "quit refused", "path", m.path)
			return m.DispatchError(err)
		}
		return m.quit(ev.Result.Kind == core.CommandForceQuit)
	}
	return nil
}

// saveCmd writes content outside the update loop and reports back with
// savedMsg or saveFailedMsg.
func (m *Model) saveCmd(content []string, revision uint64, quit bool) tea.Cmd {
	if m.store == nil {
		return m.DispatchError(storage.ErrNoFileName)
	}
	store, path := m.store, m.path
	return func() tea.Msg {
		msg, err := store.Save(path, content)
		if err != nil {
			return saveFailedMsg{Err: core.NewError(core.ErrFailedToSaveId, err)}
		}
		return savedMsg{Message: msg, Revision: revision, Quit: quit}
	}
}

// handleSaved acknowledges the write to the engine. A save-and-quit exits
// only if the acknowledged revision is still current.
func (m *Model) handleSaved(msg savedMsg) tea.Cmd {
	current := m.engine.MarkSaved(msg.Revision)
	if msg.Quit {
		if current {
			return m.quit(false)
		}
		return m.DispatchError(core.NewError(core.ErrRefusedQuitId, core.ErrRefusedQuit))
	}
	return m.DispatchMessage(msg.Message)
}

func (m *Model) quit(forced bool) tea.Cmd {
	m.quitting = true
	log.Info(log.CatUI, "quitting", "forced", forced, "dirty", m.engine.Dirty())
	return tea.Sequence(
		func() tea.Msg { return QuitMsg{Forced: forced} },
		tea.Quit,
	)
}
