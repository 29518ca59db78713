package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"citydash.app/internal/ports"
	"citydash.app/pkg/errors"
)

// GatewayClientAdapter implements the Gateway port against a running gateway's HTTP surface
type GatewayClientAdapter struct {
	client *resty.Client
}

// GatewayClientParams holds parameters for creating the gateway client
type GatewayClientParams struct {
	BaseURL string
	// HTTPClient overrides the transport, mostly for tests
	HTTPClient *http.Client
}

type gatewayErrorBody struct {
	Error string `json:"error"`
}

// NewGatewayClientAdapter creates a new gateway client.
// No timeout and no retries are configured: the caller's context decides.
func NewGatewayClientAdapter(params GatewayClientParams) (*GatewayClientAdapter, error) {
	baseURL := strings.TrimSuffix(params.BaseURL, "/")
	if baseURL == "" {
		return nil, errors.NewConfigurationError("gateway base URL is required", nil)
	}

	var client *resty.Client
	if params.HTTPClient != nil {
		client = resty.NewWithClient(params.HTTPClient)
	} else {
		client = resty.New()
	}
	client.SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &GatewayClientAdapter{client: client}, nil
}

var _ ports.Gateway = (*GatewayClientAdapter)(nil)

// GetWeather calls GET /api/weather?city=
func (g *GatewayClientAdapter) GetWeather(ctx context.Context, city string) (json.RawMessage, error) {
	return g.get(ctx, "/api/weather", city)
}

// GetNews calls GET /api/news?city=
func (g *GatewayClientAdapter) GetNews(ctx context.Context, city string) (json.RawMessage, error) {
	return g.get(ctx, "/api/news", city)
}

func (g *GatewayClientAdapter) get(ctx context.Context, path, city string) (json.RawMessage, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("city", city).
		SetError(&gatewayErrorBody{}).
		Get(path)
	if err != nil {
		return nil, errors.NewUpstreamError("gateway request failed", err)
	}

	if resp.StatusCode() != http.StatusOK {
		message := fmt.Sprintf("gateway returned status %d", resp.StatusCode())
		if body, ok := resp.Error().(*gatewayErrorBody); ok && body.Error != "" {
			message = body.Error
		}
		if resp.StatusCode() == http.StatusBadRequest {
			return nil, errors.NewValidationError(message)
		}
		return nil, errors.NewUpstreamError(message, nil)
	}

	return json.RawMessage(resp.Body()), nil
}
