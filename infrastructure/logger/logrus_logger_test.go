package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Options{Level: "info", Format: FormatJSON, Output: &buf})

	log.Info("Job created", "job_id", uint64(7), "error", errors.New("boom"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Job created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(7), entry["job_id"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Options{Level: "warn", Format: FormatText, Output: &buf})

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown", "referral_id", 3)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "referral_id=3")
}

func TestLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Options{Level: "loud", Output: &buf})

	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseFields(t *testing.T) {
	fields := parseFields("a", 1, 2, "b", "dangling")
	assert.Equal(t, 1, fields["a"])
	assert.Equal(t, "b", fields["2"])
	assert.Equal(t, "dangling", fields["extra"])
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Options{Level: "info", Format: FormatJSON, Output: &buf}).
		WithFields(map[string]interface{}{"component": "engine"})

	log.Info("ready")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "engine", entry["component"])
}
