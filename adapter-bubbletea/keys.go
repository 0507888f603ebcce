package adapter_bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/modaledit/core"
)

var specialKeys = map[tea.KeyType]core.KeyCode{
	tea.KeyEnter:     core.KeyEnter,
	tea.KeyEsc:       core.KeyEscape,
	tea.KeyBackspace: core.KeyBackspace,
	tea.KeyTab:       core.KeyTab,
	tea.KeyUp:        core.KeyUp,
	tea.KeyDown:      core.KeyDown,
	tea.KeyLeft:      core.KeyLeft,
	tea.KeyRight:     core.KeyRight,
	tea.KeyHome:      core.KeyHome,
	tea.KeyEnd:       core.KeyEnd,
	tea.KeyDelete:    core.KeyDelete,
	tea.KeyInsert:    core.KeyInsert,
	tea.KeyPgUp:      core.KeyPageUp,
	tea.KeyPgDown:    core.KeyPageDown,
}

// convertBubbleKey translates a bubbletea key into the engine's key event.
// Space arrives as a rune so it inserts like any other character.
func convertBubbleKey(msg tea.KeyMsg) core.KeyEvent {
	var key core.KeyEvent

	if msg.Alt {
		key.Modifiers |= core.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			key.Rune = msg.Runes[0]
		}
		return key
	case tea.KeySpace:
		key.Rune = ' '
		return key
	}

	if code, ok := specialKeys[msg.Type]; ok {
		key.Key = code
		return key
	}

	// Remaining key types are control chords; ctrl+a is KeyCtrlA == 1 and so on.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		key.Rune = 'a' + rune(msg.Type-tea.KeyCtrlA)
		key.Modifiers |= core.ModCtrl
		return key
	}

	key.Key = core.KeyUnknown
	return key
}

// keyEvents expands one bubbletea key message into engine keys. Runes read
// together arrive in a single message, with or without bracketed paste.
func keyEvents(msg tea.KeyMsg) []core.KeyEvent {
	if msg.Paste || (msg.Type == tea.KeyRunes && len(msg.Runes) > 1) {
		return pastedKeys(msg)
	}
	return []core.KeyEvent{convertBubbleKey(msg)}
}

// pastedKeys splits a bracketed paste into one event per rune so Insert
// mode handles newlines the same way as typed Enter.
func pastedKeys(msg tea.KeyMsg) []core.KeyEvent {
	keys := make([]core.KeyEvent, 0, len(msg.Runes))
	for i, r := range msg.Runes {
		switch r {
		case '\r':
			if i+1 < len(msg.Runes) && msg.Runes[i+1] == '\n' {
				continue
			}
			keys = append(keys, core.SpecialKey(core.KeyEnter))
		case '\n':
			keys = append(keys, core.SpecialKey(core.KeyEnter))
		case '\t':
			keys = append(keys, core.SpecialKey(core.KeyTab))
		default:
			keys = append(keys, core.RuneKey(r))
		}
	}
	return keys
}
