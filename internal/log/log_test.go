package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	got := format(ts, LevelError, CatFile, "save failed", "path", "a.txt", "lines", 3)
	require.Equal(t, "2025-12-06T10:45:00 [ERROR] [file] save failed path=a.txt lines=3\n", got)

	got = format(ts, LevelDebug, CatMode, "odd", "from")
	require.Equal(t, "2025-12-06T10:45:00 [DEBUG] [mode] odd from=<missing>\n", got)
}

func TestSetOutputAndLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Debug(CatEngine, "key", "key", "j")
	require.Contains(t, buf.String(), "[DEBUG] [engine] key key=j")

	buf.Reset()
	SetMinLevel(LevelWarn)
	Info(CatEngine, "hidden")
	Warn(CatConfig, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN] [config] shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatUI, "muted")
	require.Empty(t, buf.String())
}

func TestErrorErr(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	ErrorErr(CatFile, "write", errors.New("disk full"), "path", "x")
	require.Contains(t, buf.String(), "write path=x error=disk full")
}

func TestNoLoggerIsSilent(t *testing.T) {
	SetOutput(nil)
	require.NotPanics(t, func() {
		Info(CatEngine, "nobody listens")
		SetMinLevel(LevelError)
		SetEnabled(true)
	})
}

func TestInitFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	closeLog, err := InitFs(fs, "/tmp/modaledit.log")
	require.NoError(t, err)
	t.Cleanup(func() { SetOutput(nil) })

	Info(CatFile, "opened", "path", "doc.txt")
	closeLog()

	data, err := afero.ReadFile(fs, "/tmp/modaledit.log")
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [file] opened path=doc.txt")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelDebug, ParseLevel("debug"))
	require.Equal(t, LevelWarn, ParseLevel("warn"))
	require.Equal(t, LevelError, ParseLevel("error"))
	require.Equal(t, LevelInfo, ParseLevel("verbose"))
	require.Equal(t, "WARN", LevelWarn.String())
}
