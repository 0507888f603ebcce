package adapter_bubbletea

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ionut-t/modaledit/core"
)

func TestConvertBubbleKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyEvent
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, core.RuneKey('j')},
		{"wide rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'世'}}, core.RuneKey('世')},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.RuneKey(' ')},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.SpecialKey(core.KeyEscape)},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.SpecialKey(core.KeyEnter)},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.SpecialKey(core.KeyBackspace)},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, core.SpecialKey(core.KeyPageDown)},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, core.KeyEvent{Rune: 'x', Modifiers: core.ModAlt}},
		{"ctrl chord", tea.KeyMsg{Type: tea.KeyCtrlW}, core.KeyEvent{Rune: 'w', Modifiers: core.ModCtrl}},
		{"unknown", tea.KeyMsg{Type: tea.KeyF5}, core.SpecialKey(core.KeyUnknown)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertBubbleKey(tt.msg))
		})
	}
}

func TestConvertedKeysArePrintableOnlyWithoutChords(t *testing.T) {
	assert.True(t, convertBubbleKey(tea.KeyMsg{Type: tea.KeySpace}).IsPrintable())
	assert.False(t, convertBubbleKey(tea.KeyMsg{Type: tea.KeyCtrlA}).IsPrintable())
}

func TestPastedKeys(t *testing.T) {
	got := pastedKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\tb\r\nc"), Paste: true})
	want := []core.KeyEvent{
		core.RuneKey('a'),
		core.SpecialKey(core.KeyTab),
		core.RuneKey('b'),
		core.SpecialKey(core.KeyEnter),
		core.RuneKey('c'),
	}
	assert.Equal(t, want, got)
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.KeyEvent
	}{
		{"single rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, []core.KeyEvent{core.RuneKey('h')}},
		{"batched runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé!")}, []core.KeyEvent{
			core.RuneKey('h'), core.RuneKey('é'), core.RuneKey('!'),
		}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\nb"), Paste: true}, []core.KeyEvent{
			core.RuneKey('a'), core.SpecialKey(core.KeyEnter), core.RuneKey('b'),
		}},
		{"special", tea.KeyMsg{Type: tea.KeyEsc}, []core.KeyEvent{core.SpecialKey(core.KeyEscape)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyEvents(tt.msg))
		})
	}
}

func TestQuitAllowed(t *testing.T) {
	assert.NoError(t, quitAllowed(core.Interpret("q"), false))
	assert.ErrorIs(t, quitAllowed(core.Interpret("q"), true), core.ErrRefusedQuit)
	assert.NoError(t, quitAllowed(core.Interpret("q!"), true))
}
