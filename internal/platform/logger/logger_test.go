package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "user-service", slog.LevelInfo)

	log.Debug("hidden")
	log.Info("visible", "user_id", 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "expected exactly one JSON line")
	assert.Equal(t, "user-service", entry["service"])
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, float64(1), entry["user_id"])
}
