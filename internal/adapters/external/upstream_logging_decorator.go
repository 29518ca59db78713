package external

import (
	"context"
	"encoding/json"
	"time"

	"citydash.app/internal/ports"
)

// UpstreamLoggingDecorator decorates upstream providers with structured logging.
// The city is logged; the request URL and credentials never are.
type UpstreamLoggingDecorator struct {
	provider ports.UpstreamProvider
	logger   ports.Logger
}

// NewUpstreamLoggingDecorator creates a new logging decorator for an upstream provider
func NewUpstreamLoggingDecorator(provider ports.UpstreamProvider, logger ports.Logger) ports.UpstreamProvider {
	return &UpstreamLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// Fetch wraps the provider call with structured logging
func (d *UpstreamLoggingDecorator) Fetch(ctx context.Context, city string) (json.RawMessage, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Upstream request started",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "request"))

	startTime := time.Now()
	payload, err := d.provider.Fetch(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Upstream request failed",
			ports.F("provider", providerName),
			ports.F("city", city),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Upstream request completed",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("bytes", len(payload)))

	return payload, nil
}

// GetProviderName returns the wrapped provider's name so metric labels stay stable
func (d *UpstreamLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
