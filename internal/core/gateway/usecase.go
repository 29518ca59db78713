package gateway

import (
	"context"
	"encoding/json"
	"time"

	"citydash.app/internal/ports"
	"citydash.app/pkg/errors"
)

// UseCase forwards city queries to the weather and news upstreams.
// It keeps no state between calls: no cache, no retry.
// Any non-empty city is forwarded as given, whitespace included.
type UseCase struct {
	weather ports.UpstreamProvider
	news    ports.UpstreamProvider
	logger  ports.Logger
	metrics ports.UpstreamMetrics
}

type UseCaseDependencies struct {
	WeatherUpstream ports.UpstreamProvider
	NewsUpstream    ports.UpstreamProvider
	Logger          ports.Logger
	Metrics         ports.UpstreamMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherUpstream == nil {
		return nil, errors.NewValidationError("weather upstream is required")
	}
	if deps.NewsUpstream == nil {
		return nil, errors.NewValidationError("news upstream is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		weather: deps.WeatherUpstream,
		news:    deps.NewsUpstream,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}, nil
}

var _ ports.Gateway = (*UseCase)(nil)

// GetWeather returns the raw forecast payload for city
func (uc *UseCase) GetWeather(ctx context.Context, city string) (json.RawMessage, error) {
	return uc.forward(ctx, uc.weather, city)
}

// GetNews returns the raw news search payload for city
func (uc *UseCase) GetNews(ctx context.Context, city string) (json.RawMessage, error) {
	return uc.forward(ctx, uc.news, city)
}

func (uc *UseCase) forward(ctx context.Context, upstream ports.UpstreamProvider, city string) (json.RawMessage, error) {
	if city == "" {
		return nil, errors.NewValidationError("city parameter is required")
	}

	name := upstream.GetProviderName()
	start := time.Now()
	payload, err := upstream.Fetch(ctx, city)
	uc.metrics.RecordUpstreamCall(name, err == nil, time.Since(start))

	if err != nil {
		uc.logger.Error("Upstream fetch failed",
			ports.F("upstream", name),
			ports.F("error", err.Error()))
		if errors.IsUpstreamError(err) {
			return nil, err
		}
		return nil, errors.NewUpstreamError(name+" upstream unavailable", err)
	}

	return payload, nil
}
