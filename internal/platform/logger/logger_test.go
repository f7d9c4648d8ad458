package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
	assert.Equal(t, "error", Error.String())

	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestNew_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "veterinaria-api", Output: zapcore.AddSync(&buf)})

	log.Debug("no sale", nil)
	log.With(map[string]any{"request_id": "abc"}).Error("fallo", map[string]any{
		"entity": "clientes",
		"error":  errors.New("boom"),
		"":       "ignorado",
	})
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "fallo", entry["msg"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "veterinaria-api", entry["app"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "clientes", entry["entity"])
	assert.Equal(t, "boom", entry["error"])
	assert.NotContains(t, entry, "")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nada", map[string]any{"k": 1})
	assert.Same(t, log, log.With(nil))
}
