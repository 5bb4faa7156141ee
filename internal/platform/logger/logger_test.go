package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_PRETTY", "")
	assert.Equal(t, Config{Level: "info", Pretty: false}, LoadConfig())

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	assert.Equal(t, Config{Level: "debug", Pretty: true}, LoadConfig())
}

func TestSetupWriter_JSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	l, err := SetupWriter(Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	l.Info().Msg("dropped")
	l.Warn().Str("k", "v").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Equal(t, "cryptobot", entry["service"])
}

func TestSetupWriter_InvalidLevel(t *testing.T) {
	_, err := SetupWriter(Config{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
