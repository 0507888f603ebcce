package core

// lineIndex is a Fenwick tree over line widths, where a line's width is its
// rune count plus one for the terminating newline. prefix(i) is therefore the
// offset at which line i starts.
type lineIndex struct {
	tree  []int // 1-based
	n     int
	stale bool
}

func (ix *lineIndex) build(lines [][]rune) {
	n := len(lines)
	if cap(ix.tree) >= n+1 {
		ix.tree = ix.tree[:n+1]
		clear(ix.tree)
	} else {
		ix.tree = make([]int, n+1)
	}
	ix.n = n

	for i, line := range lines {
		ix.tree[i+1] = len(line) + 1
	}
	for i := 1; i <= n; i++ {
		if j := i + (i & -i); j <= n {
			ix.tree[j] += ix.tree[i]
		}
	}
	ix.stale = false
}

// add adjusts the width of line i by delta.
func (ix *lineIndex) add(i, delta int) {
	for j := i + 1; j <= ix.n; j += j & -j {
		ix.tree[j] += delta
	}
}

// prefix returns the summed width of lines [0, i).
func (ix *lineIndex) prefix(i int) int {
	sum := 0
	for j := i; j > 0; j -= j & -j {
		sum += ix.tree[j]
	}
	return sum
}

// find returns the line containing offset. offset must be below the total
// width of all lines.
func (ix *lineIndex) find(offset int) int {
	pos, rem := 0, offset
	step := 1
	for step<<1 <= ix.n {
		step <<= 1
	}
	for ; step > 0; step >>= 1 {
		if next := pos + step; next <= ix.n && ix.tree[next] <= rem {
			pos = next
			rem -= ix.tree[next]
		}
	}
	return pos
}
