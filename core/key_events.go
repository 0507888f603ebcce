package core

import (
	"fmt"
	"strings"
	"unicode"
)

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyDelete
	KeyInsert
)

var keyNames = map[KeyCode]string{
	KeyUnknown:   "Unknown",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
}

func (c KeyCode) String() string {
	if name, ok := keyNames[c]; ok {
		return name
	}
	return fmt.Sprintf("SpecialKey(%d)", int(c))
}

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent is a single keystroke. Exactly one of Rune or Key is meaningful:
// a non-zero Rune is a character key, otherwise Key names the special key.
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

// RuneKey builds a character key event.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// SpecialKey builds a key event for a non-character key.
func SpecialKey(code KeyCode) KeyEvent {
	return KeyEvent{Key: code}
}

// Keys converts a plain string into the sequence of character key events
// that typing it would produce.
func Keys(s string) []KeyEvent {
	keys := make([]KeyEvent, 0, len(s))
	for _, r := range s {
		keys = append(keys, RuneKey(r))
	}
	return keys
}

// IsPrintable reports whether the event would produce text when typed.
func (k KeyEvent) IsPrintable() bool {
	if k.Modifiers&(ModCtrl|ModAlt) != 0 {
		return false
	}
	if k.Rune == 0 {
		return k.Key == KeySpace
	}
	return unicode.IsPrint(k.Rune)
}

// Text returns the text a printable key inserts.
func (k KeyEvent) Text() string {
	if k.Rune == 0 && k.Key == KeySpace {
		return " "
	}
	return string(k.Rune)
}

func (k KeyEvent) Is(code KeyCode) bool {
	return k.Rune == 0 && k.Key == code
}

func (k KeyEvent) String() string {
	var parts []string

	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	if k.Rune != 0 {
		parts = append(parts, string(k.Rune))
	} else {
		parts = append(parts, k.Key.String())
	}

	return strings.Join(parts, "+")
}

// FormatKeys renders a key sequence the way a status line shows pending input.
func FormatKeys(keys []KeyEvent) string {
	var sb strings.Builder
	for _, k := range keys {
		if k.Rune != 0 && k.Modifiers == ModNone {
			sb.WriteRune(k.Rune)
			continue
		}
		sb.WriteString("<" + k.String() + ">")
	}
	return sb.String()
}
