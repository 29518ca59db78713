package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citydash.app/internal/ports"
	"citydash.app/pkg/logger"
)

func TestSlogLoggerAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithWriter(&buf, slog.LevelDebug).Logger)

	adapter.Info("Upstream request completed",
		ports.F("upstream", "newsapi"),
		ports.F("bytes", 512))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Upstream request completed", entry["msg"])
	assert.Equal(t, "newsapi", entry["upstream"])
	assert.Equal(t, float64(512), entry["bytes"])
}

func TestSlogLoggerAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithWriter(&buf, slog.LevelWarn).Logger)

	adapter.Debug("hidden")
	adapter.Info("hidden")
	adapter.Warn("shown")
	adapter.Error("shown too", ports.F("error", "boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"WARN"`)
	assert.Contains(t, lines[1], `"error":"boom"`)
}

func TestSlogLoggerAdapter_NilUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(logger.NewWithWriter(&buf, slog.LevelInfo).Logger)
	defer slog.SetDefault(previous)

	NewSlogLoggerAdapter(nil).Info("through default", ports.F("city", "Paris"))

	assert.Contains(t, buf.String(), `"msg":"through default"`)
	assert.Contains(t, buf.String(), `"city":"Paris"`)
}
