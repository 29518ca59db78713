package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citydash.app/pkg/errors"
)

func TestNewsAPI_Fetch_Success(t *testing.T) {
	body := `{"status":"ok","totalResults":1,"articles":[{"title":"t","description":"d","url":"https://example.com/a"}]}`
	requests := 0
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/everything", r.URL.Path)
		assert.Equal(t, "New York", r.URL.Query().Get("q"))
		assert.Equal(t, "news-key", r.URL.Query().Get("apiKey"))
		assert.Contains(t, r.URL.RawQuery, "q=New+York")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer mockServer.Close()

	provider := NewNewsAPIAdapter(NewsAPIProviderParams{
		APIKey:  "news-key",
		BaseURL: mockServer.URL,
	})

	payload, err := provider.Fetch(context.Background(), "New York")

	require.NoError(t, err)
	assert.Equal(t, body, string(payload))
	assert.Equal(t, 1, requests)
	assert.Equal(t, "newsapi", provider.GetProviderName())
}

func TestNewsAPI_Fetch_Unauthorized(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`))
	}))
	defer mockServer.Close()

	provider := NewNewsAPIAdapter(NewsAPIProviderParams{
		APIKey:  "bad-key",
		BaseURL: mockServer.URL,
	})

	payload, err := provider.Fetch(context.Background(), "London")

	assert.Nil(t, payload)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.UpstreamUnavailableError, appErr.Type)
	assert.Equal(t, "newsapi returned status 401", appErr.Message)
}

func TestNewsAPI_Fetch_ContextCanceled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	provider := NewNewsAPIAdapter(NewsAPIProviderParams{
		APIKey:  "k",
		BaseURL: mockServer.URL,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	payload, err := provider.Fetch(ctx, "London")

	assert.Nil(t, payload)
	assert.True(t, errors.IsUpstreamError(err))
	assert.ErrorIs(t, err, context.Canceled)
}
