package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Format: "json", Writer: &buf})

	logger.Info("command received", "command", "points", tint.Err(errors.New("boom")))
	logger.Debug("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "command received", line["msg"])
	assert.Equal(t, "points", line["command"])
	assert.Equal(t, "boom", line["err"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_TextFormat_NoColorOnBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Format: "text", Writer: &buf, Debug: true})

	logger.Debug("visible in debug", "user_id", 7)

	out := buf.String()
	assert.Contains(t, out, "visible in debug")
	assert.Contains(t, out, "user_id=7")
	assert.NotContains(t, out, "\x1b[")
}
