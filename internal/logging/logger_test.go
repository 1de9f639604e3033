package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewWithFormat_ErrorKey(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, slog.LevelInfo, "json")
	l.Error("boom", "error", errors.New("bad"))

	out := buf.String()
	assert.True(t, strings.Contains(out, `"err":"bad"`), out)
	assert.False(t, strings.Contains(out, `"error":`), out)
}

func TestNewWithFormat_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, slog.LevelWarn, "text")
	l.Info("hidden")
	assert.Empty(t, buf.String())
}
