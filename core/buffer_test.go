package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewBuffer_EmptyIsOneLine(t *testing.T) {
	b := NewBuffer("")
	require.Equal(t, 1, b.LineCount())
	require.True(t, b.IsEmpty())
	require.Equal(t, 0, b.Len())
	require.Equal(t, []string{""}, b.Lines())
}

func TestNewBuffer_SplitsOnNewline(t *testing.T) {
	b := NewBuffer("abc\nde\n")
	require.Equal(t, []string{"abc", "de", ""}, b.Lines())
	require.Equal(t, 7, b.Len())
}

func TestBuffer_InsertWithinLine(t *testing.T) {
	b := NewBuffer("ac")
	require.NoError(t, b.Insert(1, "b"))
	require.Equal(t, "abc", b.String())
	require.Equal(t, uint64(1), b.Revision())
}

func TestBuffer_InsertMultiline(t *testing.T) {
	b := NewBuffer("hello world")
	require.NoError(t, b.Insert(5, ",\nbig\n"))
	require.Equal(t, []string{"hello,", "big", " world"}, b.Lines())

	pos, err := b.PositionOf(11)
	require.NoError(t, err)
	require.Equal(t, Position{Row: 2, Col: 0}, pos)
}

func TestBuffer_InsertEmptyTextIsNotAMutation(t *testing.T) {
	b := NewBuffer("x")
	require.NoError(t, b.Insert(0, ""))
	require.Equal(t, uint64(0), b.Revision())
}

func TestBuffer_InsertOutOfRange(t *testing.T) {
	b := NewBuffer("ab")
	err := b.Insert(3, "x")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))

	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, ErrOutOfRangeId, e.ID())
	require.Equal(t, "ab", b.String())
}

func TestBuffer_DeleteAcrossLines(t *testing.T) {
	b := NewBuffer("abc\ndef\nghi")
	removed, err := b.Delete(2, 9)
	require.NoError(t, err)
	require.Equal(t, "c\ndef\ng", removed)
	require.Equal(t, []string{"abhi"}, b.Lines())
}

func TestBuffer_DeleteNewlineJoinsLines(t *testing.T) {
	b := NewBuffer("ab\ncd")
	removed, err := b.Delete(2, 3)
	require.NoError(t, err)
	require.Equal(t, "\n", removed)
	require.Equal(t, "abcd", b.String())
}

func TestBuffer_DeleteInvalidRanges(t *testing.T) {
	b := NewBuffer("abc")
	for _, r := range [][2]int{{2, 1}, {-1, 1}, {0, 4}} {
		_, err := b.Delete(r[0], r[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "range %v", r)
	}
	require.Equal(t, uint64(0), b.Revision())
}

func TestBuffer_LineText(t *testing.T) {
	b := NewBuffer("héllo\nwörld")
	line, err := b.LineText(1)
	require.NoError(t, err)
	require.Equal(t, "wörld", string(line))

	line[0] = 'X'
	again, _ := b.LineText(1)
	require.Equal(t, "wörld", string(again), "LineText must return a copy")

	_, err = b.LineText(2)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestBuffer_OffsetOfClampsColumn(t *testing.T) {
	b := NewBuffer("abc\nde")
	off, err := b.OffsetOf(Position{Row: 1, Col: 10})
	require.NoError(t, err)
	require.Equal(t, 6, off)

	_, err = b.OffsetOf(Position{Row: 2})
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.OffsetOf(Position{Row: 0, Col: -1})
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestBuffer_PositionOfBounds(t *testing.T) {
	b := NewBuffer("abc\nde")
	pos, err := b.PositionOf(3)
	require.NoError(t, err)
	require.Equal(t, Position{Row: 0, Col: 3}, pos)

	pos, err = b.PositionOf(b.Len())
	require.NoError(t, err)
	require.Equal(t, Position{Row: 1, Col: 2}, pos)

	_, err = b.PositionOf(b.Len() + 1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

// genText draws text over a small alphabet that includes newlines and
// multi-byte runes.
func genText(t *rapid.T, label string) string {
	runes := rapid.SliceOfN(rapid.SampledFrom([]rune("ab é世\n")), 0, 20).Draw(t, label)
	return string(runes)
}

func TestBuffer_OffsetRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBuffer(genText(t, "content"))
		row := rapid.IntRange(0, b.LineCount()-1).Draw(t, "row")
		col := rapid.IntRange(0, b.LineRuneCount(row)).Draw(t, "col")
		p := Position{Row: row, Col: col}

		off, err := b.OffsetOf(p)
		require.NoError(t, err)
		got, err := b.PositionOf(off)
		require.NoError(t, err)
		require.Equal(t, p, got)
	})
}

// TestBuffer_EditsMatchReference applies random edits to both the buffer
// and a plain rune slice and checks they agree, including the line index.
func TestBuffer_EditsMatchReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := genText(t, "initial")
		b := NewBuffer(initial)
		ref := []rune(initial)

		steps := rapid.IntRange(1, 15).Draw(t, "steps")
		for range steps {
			if rapid.Bool().Draw(t, "insert") {
				off := rapid.IntRange(0, len(ref)).Draw(t, "off")
				text := genText(t, "text")
				require.NoError(t, b.Insert(off, text))
				ref = append(ref[:off:off], append([]rune(text), ref[off:]...)...)
			} else {
				start := rapid.IntRange(0, len(ref)).Draw(t, "start")
				end := rapid.IntRange(start, len(ref)).Draw(t, "end")
				removed, err := b.Delete(start, end)
				require.NoError(t, err)
				require.Equal(t, string(ref[start:end]), removed)
				ref = append(ref[:start:start], ref[end:]...)
			}

			require.Equal(t, string(ref), b.String())
			require.Equal(t, len(ref), b.Len())
			require.Equal(t, strings.Count(string(ref), "\n")+1, b.LineCount())
		}

		off := rapid.IntRange(0, len(ref)).Draw(t, "probe")
		pos, err := b.PositionOf(off)
		require.NoError(t, err)
		before := string(ref[:off])
		require.Equal(t, strings.Count(before, "\n"), pos.Row)
		require.Equal(t, len([]rune(before))-len([]rune(before[:strings.LastIndex(before, "\n")+1])), pos.Col)
	})
}
