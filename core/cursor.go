package core

import "unicode"

// Cursor represents the current position for editing operations
type Cursor struct {
	Position  Position // Current position (row, column)
	Preferred int      // Preferred column for vertical movement (sticky column)
}

// clampRow keeps the row inside the buffer.
func (c *Cursor) clampRow(buffer Buffer) {
	last := max(buffer.LineCount()-1, 0)
	c.Position.Row = max(0, min(c.Position.Row, last))
}

// clampCol keeps the column in [0, len(line)]. The position after the last
// character is valid so inserts can append.
func (c *Cursor) clampCol(buffer Buffer) {
	lineLen := buffer.LineRuneCount(c.Position.Row)
	c.Position.Col = max(0, min(c.Position.Col, lineLen))
}

// MoveBy moves the cursor by a row and column delta. It never fails; the
// result is clamped to the buffer. Vertical moves aim for the preferred
// column without changing it, horizontal moves reset it.
func (c *Cursor) MoveBy(buffer Buffer, dRow, dCol int) Position {
	if dRow != 0 {
		c.Position.Row += dRow
		c.clampRow(buffer)
		c.Position.Col = c.Preferred
		c.clampCol(buffer)
	}
	if dCol != 0 {
		c.Position.Col += dCol
		c.clampRow(buffer)
		c.clampCol(buffer)
		c.Preferred = c.Position.Col
	}
	c.Reconcile(buffer)
	return c.Position
}

// Reconcile re-clamps the cursor after the buffer changed underneath it.
func (c *Cursor) Reconcile(buffer Buffer) {
	c.clampRow(buffer)
	c.clampCol(buffer)
}

// MoveTo places the cursor explicitly, clamping it and resetting the
// preferred column.
func (c *Cursor) MoveTo(buffer Buffer, pos Position) {
	c.Position = pos
	c.Reconcile(buffer)
	c.Preferred = c.Position.Col
}

// LastCharCol is the rightmost column Normal mode may rest on.
func LastCharCol(buffer Buffer, row int) int {
	return max(buffer.LineRuneCount(row)-1, 0)
}

func (c *Cursor) MoveToLineStart() {
	c.Position.Col = 0
	c.Preferred = 0
}

// MoveToLineEnd moves the cursor to the *last character* of the current line
func (c *Cursor) MoveToLineEnd(buffer Buffer) {
	c.Position.Col = LastCharCol(buffer, c.Position.Row)
	c.Preferred = c.Position.Col
}

// MoveToAfterLineEnd moves the cursor *after* the last character of the current line
func (c *Cursor) MoveToAfterLineEnd(buffer Buffer) {
	c.Position.Col = buffer.LineRuneCount(c.Position.Row)
	c.Preferred = c.Position.Col
}

// MoveToFirstNonBlank moves the cursor to the first non-whitespace character.
// A blank line leaves it on the last character.
func (c *Cursor) MoveToFirstNonBlank(buffer Buffer) {
	c.clampRow(buffer)
	col, ok := firstNonBlankCol(buffer, c.Position.Row)
	if !ok {
		col = LastCharCol(buffer, c.Position.Row)
	}
	c.Position.Col = col
	c.Preferred = col
}

// firstNonBlankCol reports the column of the first non-whitespace character
// on row, or false when the line is blank or out of range.
func firstNonBlankCol(buffer Buffer, row int) (int, bool) {
	line, err := buffer.LineText(row)
	if err != nil {
		return 0, false
	}
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return i, true
		}
	}
	return 0, false
}

func (c *Cursor) MoveToBufferStart() {
	c.Position = Position{}
	c.Preferred = 0
}

// MoveToBufferEnd moves to the first non-blank of the last line, like vim's G.
func (c *Cursor) MoveToBufferEnd(buffer Buffer) {
	c.Position.Row = max(buffer.LineCount()-1, 0)
	c.MoveToFirstNonBlank(buffer)
}
