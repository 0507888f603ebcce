package core

type normalMode struct {
	keymap *Keymap
}

func (m *normalMode) Name() Mode { return NormalMode }

func (m *normalMode) Enter(e *Engine) {
	e.pending = nil
}

func (m *normalMode) Exit(e *Engine) {
	e.pending = nil
}

// Resolve walks the keymap with the pending keys plus key. An exact binding
// wins even when longer bindings share the prefix.
func (m *normalMode) Resolve(pending []KeyEvent, key KeyEvent) Resolution {
	seq := make([]KeyEvent, 0, len(pending)+1)
	seq = append(seq, pending...)
	seq = append(seq, key)

	action, exact, prefix := m.keymap.Lookup(seq)
	switch {
	case exact:
		return resolved(action)
	case prefix:
		return pendingResolution
	default:
		return unrecognizedResolution
	}
}

// Normal mode actions. Exported so callers can build their own keymaps.
var (
	ActMoveLeft        = Action{Name: "move-left", Run: moveLeft}
	ActMoveRight       = Action{Name: "move-right", Run: moveRight}
	ActMoveUp          = Action{Name: "move-up", Run: moveVertical(-1)}
	ActMoveDown        = Action{Name: "move-down", Run: moveVertical(1)}
	ActLineStart       = Action{Name: "line-start", Run: lineStart}
	ActLineEnd         = Action{Name: "line-end", Run: lineEnd}
	ActBufferStart     = Action{Name: "buffer-start", Run: bufferStart}
	ActBufferEnd       = Action{Name: "buffer-end", Run: bufferEnd}
	ActPageUp          = Action{Name: "page-up", Run: page(-1)}
	ActPageDown        = Action{Name: "page-down", Run: page(1)}
	ActInsert          = Action{Name: "insert", Run: enterInsert}
	ActAppend          = Action{Name: "append", Run: appendAfterCursor}
	ActAppendLineEnd   = Action{Name: "append-line-end", Run: appendLineEnd}
	ActOpenBelow       = Action{Name: "open-below", Run: openLine(false)}
	ActOpenAbove       = Action{Name: "open-above", Run: openLine(true)}
	ActCommandLine     = Action{Name: "command-line", Run: enterCommand}
	ActDeleteChar      = Action{Name: "delete-char", Run: deleteChar}
	ActDeleteLine      = Action{Name: "delete-line", Run: deleteLine}
	ActYankLine        = Action{Name: "yank-line", Run: yankLine}
	ActPutAfter        = Action{Name: "put-after", Run: put(false)}
	ActPutBefore       = Action{Name: "put-before", Run: put(true)}
	ActCancel          = Action{Name: "cancel", Run: func(e *Engine, _ KeyEvent) Event { return nil }}
	ActFirstNonBlank   = Action{Name: "first-non-blank", Run: firstNonBlank}
	ActInsertLineStart = Action{Name: "insert-line-start", Run: insertLineStart}
)

// DefaultNormalKeymap returns the built-in Normal mode bindings.
func DefaultNormalKeymap() *Keymap {
	km := NewKeymap()

	km.BindString("h", ActMoveLeft)
	km.BindString("j", ActMoveDown)
	km.BindString("k", ActMoveUp)
	km.BindString("l", ActMoveRight)
	km.Bind([]KeyEvent{SpecialKey(KeyLeft)}, ActMoveLeft)
	km.Bind([]KeyEvent{SpecialKey(KeyDown)}, ActMoveDown)
	km.Bind([]KeyEvent{SpecialKey(KeyUp)}, ActMoveUp)
	km.Bind([]KeyEvent{SpecialKey(KeyRight)}, ActMoveRight)

	km.BindString("0", ActLineStart)
	km.Bind([]KeyEvent{SpecialKey(KeyHome)}, ActLineStart)
	km.BindString("^", ActFirstNonBlank)
	km.BindString("$", ActLineEnd)
	km.Bind([]KeyEvent{SpecialKey(KeyEnd)}, ActLineEnd)
	km.BindString("gg", ActBufferStart)
	km.BindString("G", ActBufferEnd)
	km.Bind([]KeyEvent{SpecialKey(KeyPageUp)}, ActPageUp)
	km.Bind([]KeyEvent{SpecialKey(KeyPageDown)}, ActPageDown)

	km.BindString("i", ActInsert)
	km.BindString("I", ActInsertLineStart)
	km.BindString("a", ActAppend)
	km.BindString("A", ActAppendLineEnd)
	km.BindString("o", ActOpenBelow)
	km.BindString("O", ActOpenAbove)
	km.BindString(":", ActCommandLine)

	km.BindString("x", ActDeleteChar)
	km.Bind([]KeyEvent{SpecialKey(KeyDelete)}, ActDeleteChar)
	km.BindString("dd", ActDeleteLine)
	km.BindString("yy", ActYankLine)
	km.BindString("p", ActPutAfter)
	km.BindString("P", ActPutBefore)

	km.Bind([]KeyEvent{SpecialKey(KeyEscape)}, ActCancel)

	return km
}

func moveLeft(e *Engine, _ KeyEvent) Event {
	e.cursor.MoveBy(e.buffer, 0, -1)
	return nil
}

// moveRight stops on the last character of the line.
func moveRight(e *Engine, _ KeyEvent) Event {
	if e.cursor.Position.Col < LastCharCol(e.buffer, e.cursor.Position.Row) {
		e.cursor.MoveBy(e.buffer, 0, 1)
	}
	return nil
}

func moveVertical(dRow int) ActionFunc {
	return func(e *Engine, _ KeyEvent) Event {
		e.cursor.MoveBy(e.buffer, dRow, 0)
		return nil
	}
}

func page(dir int) ActionFunc {
	return func(e *Engine, _ KeyEvent) Event {
		e.cursor.MoveBy(e.buffer, dir*e.viewportHeight, 0)
		return nil
	}
}

func lineStart(e *Engine, _ KeyEvent) Event {
	e.cursor.MoveToLineStart()
	return nil
}

func lineEnd(e *Engine, _ KeyEvent) Event {
	e.cursor.MoveToLineEnd(e.buffer)
	return nil
}

func firstNonBlank(e *Engine, _ KeyEvent) Event {
	e.cursor.MoveToFirstNonBlank(e.buffer)
	return nil
}

func bufferStart(e *Engine, _ KeyEvent) Event {
	e.cursor.MoveToBufferStart()
	return nil
}

func bufferEnd(e *Engine, _ KeyEvent) Event {
	e.cursor.MoveToBufferEnd(e.buffer)
	return nil
}

func enterInsert(e *Engine, _ KeyEvent) Event {
	_ = e.setMode(InsertMode)
	return nil
}

func insertLineStart(e *Engine, _ KeyEvent) Event {
	if _, ok := firstNonBlankCol(e.buffer, e.cursor.Position.Row); ok {
		e.cursor.MoveToFirstNonBlank(e.buffer)
	} else {
		e.cursor.MoveToAfterLineEnd(e.buffer)
	}
	_ = e.setMode(InsertMode)
	return nil
}

func appendAfterCursor(e *Engine, _ KeyEvent) Event {
	if e.buffer.LineRuneCount(e.cursor.Position.Row) > 0 {
		e.cursor.MoveBy(e.buffer, 0, 1)
	}
	_ = e.setMode(InsertMode)
	return nil
}

func appendLineEnd(e *Engine, _ KeyEvent) Event {
	e.cursor.MoveToAfterLineEnd(e.buffer)
	_ = e.setMode(InsertMode)
	return nil
}

func openLine(above bool) ActionFunc {
	return func(e *Engine, _ KeyEvent) Event {
		row := e.cursor.Position.Row
		if above {
			e.cursor.MoveTo(e.buffer, Position{Row: row})
			e.insertAtCursor("\n")
			e.cursor.MoveTo(e.buffer, Position{Row: row})
		} else {
			e.cursor.MoveToAfterLineEnd(e.buffer)
			e.insertAtCursor("\n")
		}
		_ = e.setMode(InsertMode)
		return nil
	}
}

func enterCommand(e *Engine, _ KeyEvent) Event {
	_ = e.setMode(CommandMode)
	return nil
}

func deleteChar(e *Engine, _ KeyEvent) Event {
	pos := e.cursor.Position
	lineLen := e.buffer.LineRuneCount(pos.Row)
	if lineLen == 0 {
		return nil
	}
	if pos.Col >= lineLen {
		pos.Col = lineLen - 1
		e.cursor.MoveTo(e.buffer, pos)
	}
	off := e.cursorOffset()
	removed := e.deleteRange(off, off+1)
	e.register = register{text: removed}
	e.cursor.MoveTo(e.buffer, Position{Row: pos.Row, Col: min(pos.Col, LastCharCol(e.buffer, pos.Row))})
	return nil
}

// deleteLine removes the cursor's line into the register. The last remaining
// line is emptied rather than removed.
func deleteLine(e *Engine, _ KeyEvent) Event {
	row := e.cursor.Position.Row
	line := string(e.buffer.lines[row])

	start, _ := e.buffer.OffsetOf(Position{Row: row})
	end := start + e.buffer.LineRuneCount(row)
	switch {
	case row+1 < e.buffer.LineCount():
		end++
	case row > 0:
		start--
	}
	e.deleteRange(start, end)
	e.register = register{text: line, linewise: true}

	e.cursor.MoveTo(e.buffer, Position{Row: row})
	e.cursor.MoveToFirstNonBlank(e.buffer)
	return nil
}

func yankLine(e *Engine, _ KeyEvent) Event {
	line := string(e.buffer.lines[e.cursor.Position.Row])
	e.register = register{text: line, linewise: true}
	return YankEvent{Text: line + "\n", Linewise: true}
}

func put(before bool) ActionFunc {
	return func(e *Engine, _ KeyEvent) Event {
		reg := e.register
		if reg.text == "" && !reg.linewise {
			return nil
		}

		if !reg.linewise {
			pos := e.cursor.Position
			if !before && e.buffer.LineRuneCount(pos.Row) > 0 {
				e.cursor.MoveBy(e.buffer, 0, 1)
			}
			e.insertAtCursor(reg.text)
			// Rest on the last pasted character.
			e.cursor.MoveBy(e.buffer, 0, -1)
			return nil
		}

		row := e.cursor.Position.Row
		if before {
			e.cursor.MoveTo(e.buffer, Position{Row: row})
			e.insertAtCursor(reg.text + "\n")
			e.cursor.MoveTo(e.buffer, Position{Row: row})
		} else {
			e.cursor.MoveToAfterLineEnd(e.buffer)
			e.insertAtCursor("\n" + reg.text)
			e.cursor.MoveTo(e.buffer, Position{Row: row + 1})
		}
		e.cursor.MoveToFirstNonBlank(e.buffer)
		return nil
	}
}
