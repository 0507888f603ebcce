package core

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLineIndex_PrefixAndFind(t *testing.T) {
	var ix lineIndex
	ix.build([][]rune{[]rune("abc"), []rune(""), []rune("de")})

	require.Equal(t, 0, ix.prefix(0))
	require.Equal(t, 4, ix.prefix(1))
	require.Equal(t, 5, ix.prefix(2))
	require.Equal(t, 8, ix.prefix(3))

	require.Equal(t, 0, ix.find(3))
	require.Equal(t, 1, ix.find(4))
	require.Equal(t, 2, ix.find(5))
	require.Equal(t, 2, ix.find(7))
}

func TestLineIndex_AddMatchesRebuild(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		widths := rapid.SliceOfN(rapid.IntRange(0, 6), 1, 30).Draw(t, "widths")
		lines := make([][]rune, len(widths))
		for i, w := range widths {
			lines[i] = make([]rune, w)
		}

		var ix lineIndex
		ix.build(lines)

		i := rapid.IntRange(0, len(lines)-1).Draw(t, "line")
		grow := rapid.IntRange(0, 5).Draw(t, "grow")
		lines[i] = append(lines[i], make([]rune, grow)...)
		ix.add(i, grow)

		var fresh lineIndex
		fresh.build(lines)
		for j := 0; j <= len(lines); j++ {
			require.Equal(t, fresh.prefix(j), ix.prefix(j), "prefix(%d)", j)
		}

		total := fresh.prefix(len(lines))
		off := rapid.IntRange(0, total-1).Draw(t, "off")
		row := ix.find(off)
		require.LessOrEqual(t, ix.prefix(row), off)
		require.Greater(t, ix.prefix(row+1), off)
	})
}
