package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)
	log.now = fixedClock

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	log.Warn("warned")

	assert.Equal(t, "[03:04:05.006 INFO] shown 2\n[03:04:05.006 WARN] warned\n", buf.String())
}

func TestLogger_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, false)
	log.now = fixedClock

	log.Debug("Skipping binary file: %s", "a.png")

	assert.True(t, log.VerboseMode)
	assert.Equal(t, "[03:04:05.006 DEBUG] Skipping binary file: a.png\n", buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, false)

	log.SetLevel("error")
	log.Warn("dropped")
	log.Info("dropped")
	assert.Empty(t, buf.String())
	assert.False(t, log.VerboseMode)

	log.SetLevel("bogus")
	assert.Equal(t, LevelInfo, log.Level())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"off", LevelNone},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
