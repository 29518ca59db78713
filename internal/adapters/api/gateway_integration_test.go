package api

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"citydash.app/internal/adapters/external"
	"citydash.app/internal/core/gateway"
	"citydash.app/internal/mocks"
	"citydash.app/internal/ports"
)

const secretKey = "super-secret-key"

// setupGatewayStack wires the real use case and upstream adapters against fake upstreams
func setupGatewayStack(t *testing.T, weather, news http.HandlerFunc) *HTTPServerAdapter {
	gin.SetMode(gin.TestMode)

	weatherServer := httptest.NewServer(weather)
	t.Cleanup(weatherServer.Close)
	newsServer := httptest.NewServer(news)
	t.Cleanup(newsServer.Close)

	client := external.NewUpstreamHTTPClient(0)

	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Run(func(msg string, fields ...ports.Field) {
		for _, field := range fields {
			if text, ok := field.Value.(string); ok {
				assert.NotContains(t, text, secretKey)
			}
		}
	}).Maybe()

	metrics := mocks.NewUpstreamMetrics(t)
	metrics.EXPECT().RecordUpstreamCall(mock.Anything, mock.Anything, mock.Anything).Maybe()

	useCase, err := gateway.NewUseCase(gateway.UseCaseDependencies{
		WeatherUpstream: external.NewOpenWeatherMapForecastAdapter(external.OpenWeatherMapProviderParams{
			APIKey: secretKey, BaseURL: weatherServer.URL, Client: client,
		}),
		NewsUpstream: external.NewNewsAPIAdapter(external.NewsAPIProviderParams{
			APIKey: secretKey, BaseURL: newsServer.URL, Client: client,
		}),
		Logger:  logger,
		Metrics: metrics,
	})
	require.NoError(t, err)

	health := mocks.NewSystemHealthChecker(t)
	server, err := NewHTTPServerAdapter(ServerOptions{
		Gateway:        useCase,
		HealthChecker:  health,
		MetricsHandler: http.NotFoundHandler(),
		Logger:         logger,
	})
	require.NoError(t, err)
	return server
}

func TestGatewayStack_ExactlyOneUpstreamRequestWithEncodedCity(t *testing.T) {
	var weatherCalls, newsCalls int32
	server := setupGatewayStack(t,
		func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&weatherCalls, 1)
			assert.Equal(t, "/forecast", r.URL.Path)
			assert.Equal(t, "Rio de Janeiro", r.URL.Query().Get("q"))
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			assert.Equal(t, secretKey, r.URL.Query().Get("appid"))
			_, _ = w.Write([]byte(`{"city":{"name":"Rio de Janeiro"},"list":[]}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&newsCalls, 1)
			assert.Equal(t, "/everything", r.URL.Path)
			assert.Equal(t, "Rio de Janeiro", r.URL.Query().Get("q"))
			assert.Equal(t, secretKey, r.URL.Query().Get("apiKey"))
			_, _ = w.Write([]byte(`{"status":"ok","articles":[]}`))
		},
	)

	w := serve(server, "/api/weather?city=Rio+de+Janeiro")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"city":{"name":"Rio de Janeiro"},"list":[]}`, w.Body.String())

	w = serve(server, "/api/news?city=Rio%20de%20Janeiro")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, int32(1), atomic.LoadInt32(&weatherCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&newsCalls))
}

func TestGatewayStack_UpstreamFailureLeaksNothing(t *testing.T) {
	var weatherCalls int32
	server := setupGatewayStack(t,
		func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&weatherCalls, 1)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key ` + secretKey + `"}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		},
	)

	w := serve(server, "/api/weather?city=Paris")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch weather data"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), secretKey)
	assert.Equal(t, int32(1), atomic.LoadInt32(&weatherCalls), "no retry")

	w = serve(server, "/api/news?city=Paris")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch news data"}`, w.Body.String())
}

func TestGatewayStack_WhitespaceCityIsForwarded(t *testing.T) {
	var weatherCalls, newsCalls int32
	server := setupGatewayStack(t,
		func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&weatherCalls, 1)
			assert.Equal(t, "  ", r.URL.Query().Get("q"))
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&newsCalls, 1)
			assert.Equal(t, "\t", r.URL.Query().Get("q"))
			_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
		},
	)

	w := serve(server, "/api/weather?city=%20%20")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch weather data"}`, w.Body.String())

	w = serve(server, "/api/news?city=%09")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","totalResults":0,"articles":[]}`, w.Body.String())

	assert.Equal(t, int32(1), atomic.LoadInt32(&weatherCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&newsCalls))
}
