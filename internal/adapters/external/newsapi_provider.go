package external

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"citydash.app/internal/ports"
	"citydash.app/pkg/errors"
)

const defaultNewsAPIBaseURL = "https://newsapi.org/v2"

// NewsAPIAdapter proxies the NewsAPI "everything" search endpoint
type NewsAPIAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
}

// NewsAPIProviderParams holds parameters for creating the NewsAPI provider
type NewsAPIProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
}

// NewNewsAPIAdapter creates a new NewsAPI adapter
func NewNewsAPIAdapter(params NewsAPIProviderParams) ports.UpstreamProvider {
	baseURL := strings.TrimSuffix(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultNewsAPIBaseURL
	}

	client := params.Client
	if client == nil {
		client = NewUpstreamHTTPClient(0)
	}

	return &NewsAPIAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
	}
}

// Fetch searches articles mentioning city
func (p *NewsAPIAdapter) Fetch(ctx context.Context, city string) (json.RawMessage, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("apiKey", p.apiKey)

	return fetchJSON(ctx, p.client, p.baseURL+"/everything", query, p.GetProviderName())
}

// GetProviderName returns the name of this upstream
func (p *NewsAPIAdapter) GetProviderName() string {
	return "newsapi"
}
