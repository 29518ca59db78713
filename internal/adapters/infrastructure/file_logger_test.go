package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citydash.app/internal/ports"
)

func readLogLines(t *testing.T, logPath string) []map[string]interface{} {
	t.Helper()

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return nil
	}

	var entries []map[string]interface{}
	for i, line := range strings.Split(trimmed, "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %d should be valid JSON: %s", i, line)
		entries = append(entries, entry)
	}
	return entries
}

func newTestFileLogger(t *testing.T, minLevel slog.Level) (*FileLoggerAdapter, string) {
	t.Helper()

	logPath := filepath.Join(t.TempDir(), "gateway.log")
	logger, err := NewFileLoggerAdapter(logPath, minLevel)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, logPath
}

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	tests := []struct {
		name        string
		logPath     func(dir string) string
		expectError bool
		errorMsg    string
	}{
		{
			name:    "valid_path",
			logPath: func(dir string) string { return filepath.Join(dir, "gateway.log") },
		},
		{
			name:    "nested_path",
			logPath: func(dir string) string { return filepath.Join(dir, "nested", "deep", "gateway.log") },
		},
		{
			name:        "empty_path",
			logPath:     func(string) string { return "" },
			expectError: true,
			errorMsg:    "log file path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := tt.logPath(t.TempDir())

			logger, err := NewFileLoggerAdapter(logPath, slog.LevelDebug)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, logger)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.FileExists(t, logPath)
			assert.NoError(t, logger.Close())
		})
	}
}

func TestFileLoggerAdapter_LogLevels(t *testing.T) {
	tests := []struct {
		level   string
		message string
		fields  []ports.Field
	}{
		{
			level:   "DEBUG",
			message: "Debug message",
			fields:  []ports.Field{ports.F("key", "value")},
		},
		{
			level:   "INFO",
			message: "Upstream request started",
			fields:  []ports.Field{ports.F("upstream", "openweathermap")},
		},
		{
			level:   "WARN",
			message: "Warning message",
			fields:  []ports.Field{ports.F("city", "London"), ports.F("error", "timeout")},
		},
		{
			level:   "ERROR",
			message: "Upstream request failed",
			fields:  []ports.Field{ports.F("upstream", "newsapi"), ports.F("duration_ms", 5000)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, logPath := newTestFileLogger(t, slog.LevelDebug)

			switch tt.level {
			case "DEBUG":
				logger.Debug(tt.message, tt.fields...)
			case "INFO":
				logger.Info(tt.message, tt.fields...)
			case "WARN":
				logger.Warn(tt.message, tt.fields...)
			case "ERROR":
				logger.Error(tt.message, tt.fields...)
			}

			entries := readLogLines(t, logPath)
			require.Len(t, entries, 1)
			entry := entries[0]

			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.message, entry["message"])

			timestamp, ok := entry["timestamp"].(string)
			require.True(t, ok)
			_, err := time.Parse(time.RFC3339, timestamp)
			assert.NoError(t, err)

			for _, field := range tt.fields {
				// JSON unmarshaling converts all numbers to float64
				if expectedInt, ok := field.Value.(int); ok {
					assert.Equal(t, float64(expectedInt), entry[field.Key])
				} else {
					assert.Equal(t, field.Value, entry[field.Key])
				}
			}
		})
	}
}

func TestFileLoggerAdapter_MinLevel(t *testing.T) {
	logger, logPath := newTestFileLogger(t, slog.LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "ERROR", entries[1]["level"])
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	logger, logPath := newTestFileLogger(t, slog.LevelInfo)

	numGoroutines := 10
	messagesPerGoroutine := 5

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				logger.Info(fmt.Sprintf("Message from goroutine %d", goroutineID),
					ports.F("goroutine_id", goroutineID),
					ports.F("message_id", j))
			}
		}(i)
	}
	wg.Wait()

	entries := readLogLines(t, logPath)
	assert.Len(t, entries, numGoroutines*messagesPerGoroutine)
	for _, entry := range entries {
		assert.Equal(t, "INFO", entry["level"])
		assert.Contains(t, entry["message"], "Message from goroutine")
		assert.Contains(t, entry, "goroutine_id")
		assert.Contains(t, entry, "message_id")
	}
}

func TestFileLoggerAdapter_FilePermissions(t *testing.T) {
	logger, logPath := newTestFileLogger(t, slog.LevelInfo)

	logger.Info("Test message")

	fileInfo, err := os.Stat(logPath)
	require.NoError(t, err)

	if runtime.GOOS == "windows" {
		assert.False(t, fileInfo.IsDir())
		assert.Greater(t, fileInfo.Size(), int64(0))
	} else {
		assert.Equal(t, os.FileMode(0644), fileInfo.Mode().Perm())
	}
}

func TestFileLoggerAdapter_AppendsAcrossReopen(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "append.log")

	first, err := NewFileLoggerAdapter(logPath, slog.LevelInfo)
	require.NoError(t, err)
	first.Info("First message")
	require.NoError(t, first.Close())

	second, err := NewFileLoggerAdapter(logPath, slog.LevelInfo)
	require.NoError(t, err)
	second.Info("Second message")
	require.NoError(t, second.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 2)
	assert.Equal(t, "First message", entries[0]["message"])
	assert.Equal(t, "Second message", entries[1]["message"])
}

func TestFileLoggerAdapter_InvalidJSONHandling(t *testing.T) {
	logger, logPath := newTestFileLogger(t, slog.LevelInfo)

	// channels can't be marshaled to JSON
	logger.Info("Test message", ports.F("channel", make(chan int)))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "failed to marshal log entry", entries[0]["message"])
	assert.Equal(t, "Test message", entries[0]["original_message"])
	assert.Equal(t, "ERROR", entries[0]["level"])
}

func BenchmarkFileLoggerAdapter_Info(b *testing.B) {
	logPath := filepath.Join(b.TempDir(), "benchmark.log")

	logger, err := NewFileLoggerAdapter(logPath, slog.LevelInfo)
	require.NoError(b, err)
	defer func() { _ = logger.Close() }()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("Benchmark message",
			ports.F("iteration", i),
			ports.F("upstream", "openweathermap"))
	}
}
