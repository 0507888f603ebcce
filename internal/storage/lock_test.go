package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockName(t *testing.T) {
	assert.Equal(t, "home--me--notes.txt.lock", lockName("/home/me/notes.txt"))
	assert.Equal(t, "default.lock", lockName("/"))
}

func TestFileLock(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileLock(dir, "/tmp/doc.txt")
	require.NoError(t, err)
	require.NoError(t, first.TryLock())
	assert.Equal(t, filepath.Join(dir, "tmp--doc.txt.lock"), first.Path())

	// A second handle on the same file conflicts with the first.
	second, err := NewFileLock(dir, "/tmp/doc.txt")
	require.NoError(t, err)
	require.ErrorIs(t, second.TryLock(), ErrLocked)

	require.NoError(t, first.Unlock())
	require.NoError(t, second.TryLock())
	require.NoError(t, second.Unlock())
}
