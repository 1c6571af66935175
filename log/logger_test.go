package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "json", slog.LevelInfo)

	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	logger.Info("fetched nfts", slog.String("wallet", "0xabc"), slog.Int("count", 3))

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "fetched nfts", line["message"])
	assert.Equal(t, "0xabc", line["wallet"])
	assert.EqualValues(t, 3, line["count"])
}

func TestNewLogger_Plain(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "plain", slog.LevelWarn)

	logger.Warn("upstream slow")
	assert.Contains(t, buf.String(), "upstream slow")
}
