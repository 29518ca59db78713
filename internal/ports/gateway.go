package ports

import (
	"context"
	"encoding/json"
	"time"
)

// Gateway is the read-only proxy contract consumed by the dashboard pipeline.
// Both operations return the upstream JSON payload unmodified.
type Gateway interface {
	GetWeather(ctx context.Context, city string) (json.RawMessage, error)
	GetNews(ctx context.Context, city string) (json.RawMessage, error)
}

// UpstreamProvider performs a single best-effort round trip to one third-party API
type UpstreamProvider interface {
	Fetch(ctx context.Context, city string) (json.RawMessage, error)
	GetProviderName() string
}

// UpstreamMetrics records the outcome of upstream round trips
type UpstreamMetrics interface {
	RecordUpstreamCall(upstream string, success bool, duration time.Duration)
}
