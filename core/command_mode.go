package core

import (
	"fmt"

	"github.com/ionut-t/modaledit/internal/log"
)

// CommandLine is the text typed after ':' in Command mode.
type CommandLine struct {
	runes []rune
}

func (c *CommandLine) Append(text string) {
	c.runes = append(c.runes, []rune(text)...)
}

// Backspace removes the last rune. It reports false on an empty line.
func (c *CommandLine) Backspace() bool {
	if len(c.runes) == 0 {
		return false
	}
	c.runes = c.runes[:len(c.runes)-1]
	return true
}

func (c *CommandLine) Clear() {
	c.runes = nil
}

func (c *CommandLine) String() string {
	return string(c.runes)
}

func (c *CommandLine) Len() int {
	return len(c.runes)
}

type commandMode struct{}

func (m *commandMode) Name() Mode { return CommandMode }

func (m *commandMode) Enter(e *Engine) {
	e.pending = nil
	e.commandLine.Clear()
}

func (m *commandMode) Exit(e *Engine) {
	e.commandLine.Clear()
}

var (
	ActCommandAppend    = Action{Name: "command-append", Run: commandAppend}
	ActCommandBackspace = Action{Name: "command-backspace", Run: commandBackspace}
	ActCommandExecute   = Action{Name: "command-execute", Run: commandExecute}
	ActCommandAbort     = Action{Name: "command-abort", Run: commandAbort}
)

func (m *commandMode) Resolve(_ []KeyEvent, key KeyEvent) Resolution {
	switch {
	case key.Is(KeyEscape):
		return resolved(ActCommandAbort)
	case key.Is(KeyEnter):
		return resolved(ActCommandExecute)
	case key.Is(KeyBackspace):
		return resolved(ActCommandBackspace)
	case key.IsPrintable():
		return resolved(ActCommandAppend)
	default:
		return unrecognizedResolution
	}
}

func commandAppend(e *Engine, key KeyEvent) Event {
	e.commandLine.Append(key.Text())
	return nil
}

func commandBackspace(e *Engine, _ KeyEvent) Event {
	e.commandLine.Backspace()
	return nil
}

func commandAbort(e *Engine, _ KeyEvent) Event {
	_ = e.setMode(NormalMode)
	return nil
}

// commandExecute interprets the command line after returning to Normal mode.
// Save and quit requests are handed back to the caller; the engine itself
// only tracks whether the document is dirty.
func commandExecute(e *Engine, _ KeyEvent) Event {
	text := e.commandLine.String()
	_ = e.setMode(NormalMode)

	result := Interpret(text)
	ev := CommandEvent{
		Result:   result,
		Revision: e.buffer.Revision(),
		Dirty:    e.dirty,
	}

	switch {
	case result.Kind == CommandUnknown:
		ev.Err = NewError(ErrUnknownCommandId, fmt.Errorf("%w: %s", ErrUnknownCommand, text))
		e.message = "Not an editor command: " + text
		log.Debug(log.CatCommand, "unknown command", "text", text)
	case result.Saves():
		ev.Content = e.buffer.Lines()
		log.Debug(log.CatCommand, "save requested", "command", result, "revision", ev.Revision)
	default:
		log.Debug(log.CatCommand, "quit requested", "command", result, "dirty", e.dirty)
	}
	return ev
}
