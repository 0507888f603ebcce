package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/ionut-t/modaledit/internal/log"
)

var ErrLocked = errors.New("file is open in another modaledit instance")

// FileLock is an advisory lock marking a file as being edited. It lives in
// the OS temp directory, not next to the file.
type FileLock struct {
	lock *flock.Flock
	path string
}

// lockName turns an absolute path into a flat file name.
func lockName(path string) string {
	name := strings.NewReplacer("/", "--", "\\", "--", ":", "--").Replace(path)
	name = strings.Trim(name, ".-")
	if name == "" {
		name = "default"
	}
	return name + ".lock"
}

// NewFileLock prepares a lock for path inside dir. An empty dir means
// $TMPDIR/modaledit.
func NewFileLock(dir, path string) (*FileLock, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "modaledit")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	lockPath := filepath.Join(dir, lockName(abs))
	return &FileLock{lock: flock.New(lockPath), path: lockPath}, nil
}

// TryLock takes the lock without blocking. It returns ErrLocked when another
// process holds it.
func (l *FileLock) TryLock() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("locking %s: %w", l.path, err)
	}
	if !ok {
		return ErrLocked
	}
	log.Debug(log.CatFile, "lock acquired", "lock", l.path)
	return nil
}

// Unlock releases the lock and removes the lock file.
func (l *FileLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("unlocking %s: %w", l.path, err)
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", l.path, err)
	}
	return nil
}

func (l *FileLock) Path() string {
	return l.path
}
