package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "json", slog.LevelInfo)

	logger.Debug("dropped")
	logger.Info("upstream fallback", slog.String("action", "sol-price"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	require.Equal(t, "upstream fallback", record["message"])
	require.Equal(t, "sol-price", record["action"])
	require.Equal(t, "info", record["level"])
}
