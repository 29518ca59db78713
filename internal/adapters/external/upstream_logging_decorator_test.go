package external

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citydash.app/internal/ports"
)

func TestUpstreamLoggingDecorator_Success(t *testing.T) {
	provider := &testUpstream{name: "openweathermap", payload: json.RawMessage(`{"list":[]}`)}
	logger := &testLogger{}

	decorator := NewUpstreamLoggingDecorator(provider, logger)
	payload, err := decorator.Fetch(context.Background(), "Paris")

	require.NoError(t, err)
	assert.JSONEq(t, `{"list":[]}`, string(payload))
	require.Len(t, logger.entries, 2)

	requestLog := logger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Upstream request started", requestLog.message)
	assert.Equal(t, "openweathermap", requestLog.fields["provider"])
	assert.Equal(t, "Paris", requestLog.fields["city"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := logger.entries[1]
	assert.Equal(t, "Upstream request completed", responseLog.message)
	assert.Equal(t, 11, responseLog.fields["bytes"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	assert.Equal(t, "openweathermap", decorator.GetProviderName())
}

func TestUpstreamLoggingDecorator_Error(t *testing.T) {
	provider := &testUpstream{name: "newsapi", err: errors.New("newsapi returned status 429")}
	logger := &testLogger{}

	decorator := NewUpstreamLoggingDecorator(provider, logger)
	payload, err := decorator.Fetch(context.Background(), "Berlin")

	assert.Nil(t, payload)
	assert.EqualError(t, err, "newsapi returned status 429")
	require.Len(t, logger.entries, 2)

	errorLog := logger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Upstream request failed", errorLog.message)
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, "newsapi returned status 429", errorLog.fields["error"])
}

type testUpstream struct {
	name    string
	payload json.RawMessage
	err     error
	calls   []string
}

func (p *testUpstream) Fetch(ctx context.Context, city string) (json.RawMessage, error) {
	p.calls = append(p.calls, city)
	if p.err != nil {
		return nil, p.err
	}
	return p.payload, nil
}

func (p *testUpstream) GetProviderName() string {
	return p.name
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.addEntry("DEBUG", msg, fields...) }
func (l *testLogger) Info(msg string, fields ...ports.Field)  { l.addEntry("INFO", msg, fields...) }
func (l *testLogger) Warn(msg string, fields ...ports.Field)  { l.addEntry("WARN", msg, fields...) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.addEntry("ERROR", msg, fields...) }

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	entry := logEntry{level: level, message: message, fields: make(map[string]interface{})}
	for _, field := range fields {
		entry.fields[field.Key] = field.Value
	}
	l.entries = append(l.entries, entry)
}
