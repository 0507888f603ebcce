package core

type insertMode struct{}

func (m *insertMode) Name() Mode { return InsertMode }

func (m *insertMode) Enter(e *Engine) {
	e.pending = nil
}

func (m *insertMode) Exit(e *Engine) {}

var (
	ActExitInsert     = Action{Name: "exit-insert", Run: exitInsert}
	ActInsertText     = Action{Name: "insert-text", Run: insertText}
	ActInsertNewline  = Action{Name: "insert-newline", Run: insertNewline}
	ActInsertTab      = Action{Name: "insert-tab", Run: insertTab}
	ActBackspace      = Action{Name: "backspace", Run: backspace}
	ActDeleteForward  = Action{Name: "delete-forward", Run: deleteForward}
	ActInsertLeft     = Action{Name: "insert-left", Run: insertMove(0, -1)}
	ActInsertRight    = Action{Name: "insert-right", Run: insertMove(0, 1)}
	ActInsertUp       = Action{Name: "insert-up", Run: insertMove(-1, 0)}
	ActInsertDown     = Action{Name: "insert-down", Run: insertMove(1, 0)}
	ActInsertHome     = Action{Name: "insert-home", Run: lineStart}
	ActInsertLineEnd  = Action{Name: "insert-end", Run: insertEnd}
	ActInsertPageUp   = Action{Name: "insert-page-up", Run: page(-1)}
	ActInsertPageDown = Action{Name: "insert-page-down", Run: page(1)}
)

var insertSpecialKeys = map[KeyCode]Action{
	KeyEscape:    ActExitInsert,
	KeyEnter:     ActInsertNewline,
	KeyTab:       ActInsertTab,
	KeyBackspace: ActBackspace,
	KeyDelete:    ActDeleteForward,
	KeyLeft:      ActInsertLeft,
	KeyRight:     ActInsertRight,
	KeyUp:        ActInsertUp,
	KeyDown:      ActInsertDown,
	KeyHome:      ActInsertHome,
	KeyEnd:       ActInsertLineEnd,
	KeyPageUp:    ActInsertPageUp,
	KeyPageDown:  ActInsertPageDown,
}

// Resolve never leaves keys pending: every key is either a special key,
// printable text or ignored.
func (m *insertMode) Resolve(_ []KeyEvent, key KeyEvent) Resolution {
	if key.Rune == 0 {
		if a, ok := insertSpecialKeys[key.Key]; ok && key.Modifiers&(ModCtrl|ModAlt) == 0 {
			return resolved(a)
		}
	}
	if key.IsPrintable() {
		return resolved(ActInsertText)
	}
	return unrecognizedResolution
}

// exitInsert returns to Normal mode and steps back onto the last typed
// character.
func exitInsert(e *Engine, _ KeyEvent) Event {
	_ = e.setMode(NormalMode)
	if e.cursor.Position.Col > 0 {
		e.cursor.MoveBy(e.buffer, 0, -1)
	}
	return nil
}

func insertText(e *Engine, key KeyEvent) Event {
	e.insertAtCursor(key.Text())
	return nil
}

func insertNewline(e *Engine, _ KeyEvent) Event {
	e.insertAtCursor("\n")
	return nil
}

func insertTab(e *Engine, _ KeyEvent) Event {
	e.insertAtCursor("\t")
	return nil
}

// backspace deletes the scalar before the cursor. At column 0 it joins the
// line with the previous one and leaves the cursor at the join point. At the
// very start of the buffer it does nothing.
func backspace(e *Engine, _ KeyEvent) Event {
	off := e.cursorOffset()
	if off == 0 {
		return nil
	}
	e.deleteRange(off-1, off)
	pos, err := e.buffer.PositionOf(off - 1)
	if err == nil {
		e.cursor.MoveTo(e.buffer, pos)
	}
	return nil
}

func deleteForward(e *Engine, _ KeyEvent) Event {
	off := e.cursorOffset()
	if off >= e.buffer.Len() {
		return nil
	}
	e.deleteRange(off, off+1)
	return nil
}

func insertMove(dRow, dCol int) ActionFunc {
	return func(e *Engine, _ KeyEvent) Event {
		e.cursor.MoveBy(e.buffer, dRow, dCol)
		return nil
	}
}

func insertEnd(e *Engine, _ KeyEvent) Event {
	e.cursor.MoveToAfterLineEnd(e.buffer)
	return nil
}
