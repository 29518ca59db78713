package external

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"citydash.app/internal/ports"
	"citydash.app/pkg/errors"
)

const defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapForecastAdapter proxies the 5 day / 3 hour forecast endpoint
type OpenWeatherMapForecastAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
}

// NewOpenWeatherMapForecastAdapter creates a new OpenWeatherMap forecast adapter
func NewOpenWeatherMapForecastAdapter(params OpenWeatherMapProviderParams) ports.UpstreamProvider {
	baseURL := strings.TrimSuffix(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.Client
	if client == nil {
		client = NewUpstreamHTTPClient(0)
	}

	return &OpenWeatherMapForecastAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
	}
}

// Fetch retrieves the metric forecast for city
func (p *OpenWeatherMapForecastAdapter) Fetch(ctx context.Context, city string) (json.RawMessage, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("units", "metric")
	query.Set("appid", p.apiKey)

	return fetchJSON(ctx, p.client, p.baseURL+"/forecast", query, p.GetProviderName())
}

// GetProviderName returns the name of this upstream
func (p *OpenWeatherMapForecastAdapter) GetProviderName() string {
	return "openweathermap"
}
