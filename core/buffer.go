package core

import (
	"strings"
)

// Buffer represents the text content being edited. Offsets and columns count
// Unicode scalar values; a newline between two lines occupies one offset.
type Buffer interface {
	// Content access
	LineCount() int
	LineText(line int) ([]rune, error) // copy of the line, without its newline
	LineRuneCount(line int) int        // 0 for lines outside the buffer
	Lines() []string
	String() string
	Len() int
	IsEmpty() bool
	Revision() uint64

	// Modification
	Insert(offset int, text string) error
	Delete(start, end int) (string, error)

	// Addressing
	OffsetOf(pos Position) (int, error)
	PositionOf(offset int) (Position, error)
}

// TextBuffer stores the document as rune lines with a lazily maintained
// line-start index.
type TextBuffer struct {
	lines    [][]rune
	index    lineIndex
	revision uint64
}

// NewBuffer splits content on "\n". An empty string yields a single empty line.
func NewBuffer(content string) *TextBuffer {
	parts := strings.Split(content, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}

	b := &TextBuffer{lines: lines}
	b.index.build(b.lines)
	return b
}

func (b *TextBuffer) LineCount() int {
	return len(b.lines)
}

func (b *TextBuffer) LineText(line int) ([]rune, error) {
	if line < 0 || line >= len(b.lines) {
		return nil, outOfRange("LineText", "line %d not in [0, %d)", line, len(b.lines))
	}
	out := make([]rune, len(b.lines[line]))
	copy(out, b.lines[line])
	return out, nil
}

func (b *TextBuffer) LineRuneCount(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

func (b *TextBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

func (b *TextBuffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

func (b *TextBuffer) Len() int {
	b.ensureIndex()
	return b.index.prefix(len(b.lines)) - 1
}

func (b *TextBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Revision increases by one on every mutation that changes content.
func (b *TextBuffer) Revision() uint64 {
	return b.revision
}

func (b *TextBuffer) ensureIndex() {
	if b.index.stale || b.index.n != len(b.lines) {
		b.index.build(b.lines)
	}
}

func (b *TextBuffer) OffsetOf(pos Position) (int, error) {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return 0, outOfRange("OffsetOf", "row %d not in [0, %d)", pos.Row, len(b.lines))
	}
	if pos.Col < 0 {
		return 0, outOfRange("OffsetOf", "negative column %d", pos.Col)
	}
	b.ensureIndex()
	col := min(pos.Col, len(b.lines[pos.Row]))
	return b.index.prefix(pos.Row) + col, nil
}

func (b *TextBuffer) PositionOf(offset int) (Position, error) {
	n := b.Len()
	if offset < 0 || offset > n {
		return Position{}, outOfRange("PositionOf", "offset %d not in [0, %d]", offset, n)
	}
	row := b.index.find(offset)
	return Position{Row: row, Col: offset - b.index.prefix(row)}, nil
}

func (b *TextBuffer) Insert(offset int, text string) error {
	pos, err := b.PositionOf(offset)
	if err != nil {
		return outOfRange("Insert", "offset %d not in [0, %d]", offset, b.Len())
	}
	if text == "" {
		return nil
	}

	line := b.lines[pos.Row]
	parts := strings.Split(text, "\n")

	if len(parts) == 1 {
		ins := []rune(text)
		updated := make([]rune, 0, len(line)+len(ins))
		updated = append(updated, line[:pos.Col]...)
		updated = append(updated, ins...)
		updated = append(updated, line[pos.Col:]...)
		b.lines[pos.Row] = updated
		b.index.add(pos.Row, len(ins))
		b.revision++
		return nil
	}

	head := append([]rune{}, line[:pos.Col]...)
	tail := append([]rune{}, line[pos.Col:]...)

	added := make([][]rune, len(parts))
	added[0] = append(head, []rune(parts[0])...)
	for i := 1; i < len(parts)-1; i++ {
		added[i] = []rune(parts[i])
	}
	last := []rune(parts[len(parts)-1])
	added[len(parts)-1] = append(last, tail...)

	lines := make([][]rune, 0, len(b.lines)+len(parts)-1)
	lines = append(lines, b.lines[:pos.Row]...)
	lines = append(lines, added...)
	lines = append(lines, b.lines[pos.Row+1:]...)
	b.lines = lines
	b.index.stale = true
	b.revision++
	return nil
}

// Delete removes the half-open range [start, end) and returns the removed text.
func (b *TextBuffer) Delete(start, end int) (string, error) {
	n := b.Len()
	if start < 0 || end > n || start > end {
		return "", outOfRange("Delete", "range [%d, %d) not within [0, %d]", start, end, n)
	}
	if start == end {
		return "", nil
	}

	from, _ := b.PositionOf(start)
	to, _ := b.PositionOf(end)

	if from.Row == to.Row {
		line := b.lines[from.Row]
		removed := string(line[from.Col:to.Col])
		updated := make([]rune, 0, len(line)-(to.Col-from.Col))
		updated = append(updated, line[:from.Col]...)
		updated = append(updated, line[to.Col:]...)
		b.lines[from.Row] = updated
		b.index.add(from.Row, -(to.Col - from.Col))
		b.revision++
		return removed, nil
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[from.Row][from.Col:]))
	for row := from.Row + 1; row < to.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[row]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[to.Row][:to.Col]))

	merged := make([]rune, 0, from.Col+len(b.lines[to.Row])-to.Col)
	merged = append(merged, b.lines[from.Row][:from.Col]...)
	merged = append(merged, b.lines[to.Row][to.Col:]...)

	lines := make([][]rune, 0, len(b.lines)-(to.Row-from.Row))
	lines = append(lines, b.lines[:from.Row]...)
	lines = append(lines, merged)
	lines = append(lines, b.lines[to.Row+1:]...)
	b.lines = lines
	b.index.stale = true
	b.revision++
	return sb.String(), nil
}
