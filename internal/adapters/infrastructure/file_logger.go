package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"citydash.app/internal/ports"
)

// FileLoggerAdapter appends one JSON object per entry to a log file
type FileLoggerAdapter struct {
	file     *os.File
	minLevel slog.Level
	mutex    sync.Mutex
}

// NewFileLoggerAdapter opens logPath for appending, creating parent directories.
// Entries below minLevel are dropped.
func NewFileLoggerAdapter(logPath string, minLevel slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLoggerAdapter{
		file:     file,
		minLevel: minLevel,
	}, nil
}

var _ ports.Logger = (*FileLoggerAdapter)(nil)

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelDebug, msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelInfo, msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelWarn, msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelError, msg, fields)
}

// Close flushes and closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.file.Close()
}

func (f *FileLoggerAdapter) writeLogEntry(level slog.Level, msg string, fields []ports.Field) {
	if level < f.minLevel {
		return
	}

	timestamp := time.Now().Format(time.RFC3339)
	logEntry := map[string]interface{}{
		"timestamp": timestamp,
		"level":     level.String(),
		"message":   msg,
	}
	for _, field := range fields {
		logEntry[field.Key] = field.Value
	}

	line, err := json.Marshal(logEntry)
	if err != nil {
		// fall back to an entry that is guaranteed to marshal
		line, _ = json.Marshal(map[string]string{
			"timestamp":        timestamp,
			"level":            slog.LevelError.String(),
			"message":          "failed to marshal log entry",
			"error":            err.Error(),
			"original_message": msg,
		})
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
