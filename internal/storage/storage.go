// Package storage reads and writes documents for the editor. The engine never
// touches the filesystem; the terminal adapter calls into this package from
// tea commands.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/ionut-t/modaledit/internal/log"
)

var ErrNoFileName = errors.New("document has no file name")

// Store performs document I/O on an afero filesystem.
type Store struct {
	fs afero.Fs

	mu sync.Mutex
	// paths whose file held exactly one empty line ("\n")
	blankLine map[string]bool
}

// New returns a Store over fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs, blankLine: make(map[string]bool)}
}

// Document is a loaded file.
type Document struct {
	Path    string
	Content string
	New     bool // the file did not exist yet
}

// Load reads path. A missing file yields an empty new document. Line endings
// are normalized to "\n" and a single trailing newline is dropped, since the
// editor models lines rather than terminators.
func (s *Store) Load(path string) (Document, error) {
	if path == "" {
		return Document{New: true}, nil
	}

	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info(log.CatFile, "new file", "path", path)
		s.setBlankLine(path, false)
		return Document{Path: path, New: true}, nil
	}
	if err != nil {
		log.ErrorErr(log.CatFile, "read failed", err, "path", path)
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	s.setBlankLine(path, content == "\n")
	content = strings.TrimSuffix(content, "\n")
	log.Debug(log.CatFile, "loaded", "path", path, "bytes", len(data))
	return Document{Path: path, Content: content}, nil
}

// Save writes lines to path, each followed by "\n", and returns a summary
// such as `"main.go" 3L, 42B written`. A document that is a single empty
// line is written as an empty file, unless path was loaded as one blank
// line. The write goes to a temporary file that is renamed over path.
func (s *Store) Save(path string, lines []string) (string, error) {
	if path == "" {
		return "", ErrNoFileName
	}
	if len(lines) == 1 && lines[0] == "" && !s.isBlankLine(path) {
		lines = nil
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	data := []byte(sb.String())

	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	tmp := path + ".modaledit.tmp"
	if err := afero.WriteFile(s.fs, tmp, data, fileMode(s.fs, path)); err != nil {
		log.ErrorErr(log.CatFile, "write failed", err, "path", tmp)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		log.ErrorErr(log.CatFile, "rename failed", err, "path", path)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	s.setBlankLine(path, len(lines) == 1 && lines[0] == "")

	msg := fmt.Sprintf("%q %dL, %dB written", path, len(lines), len(data))
	log.Info(log.CatFile, "saved", "path", path, "lines", len(lines), "bytes", len(data))
	return msg, nil
}

func (s *Store) setBlankLine(path string, blank bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if blank {
		s.blankLine[path] = true
	} else {
		delete(s.blankLine, path)
	}
}

func (s *Store) isBlankLine(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blankLine[path]
}

// fileMode keeps the permissions of an existing file.
func fileMode(fs afero.Fs, path string) os.FileMode {
	if info, err := fs.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
