package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range testCases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.With("input", "#fff").WithGroup("rgba").Info("parsed", "a", 255)

	line := buf.String()
	assert.NotContains(t, line, "hidden")
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "[INFO] parsed | rgba.input=#fff, rgba.a=255")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csscolor.log")
	log, closer := NewFile(path, slog.LevelDebug, 1)
	log.Debug("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] written")
}
