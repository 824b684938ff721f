package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"loud":    slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	slog.New(Logger{Level: "debug", Format: "JSON"}.Handler(&buf)).Debug("hello", slog.Int("n", 1))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])

	buf.Reset()
	slog.New(Logger{Format: "yaml"}.Handler(&buf)).Debug("dropped")
	assert.Zero(t, buf.Len())
	slog.New(Logger{Format: "yaml"}.Handler(&buf)).Info("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}
