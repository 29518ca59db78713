package infrastructure

import (
	"context"

	"citydash.app/internal/ports"
)

// UpstreamHealthChecker reports whether an upstream is configured.
// It never calls the upstream, so a health probe cannot spend API quota.
type UpstreamHealthChecker struct {
	name     string
	baseURL  string
	keySet   bool
	provider ports.UpstreamProvider
}

// UpstreamHealthCheckerConfig holds what the checker reports on
type UpstreamHealthCheckerConfig struct {
	Name     string
	BaseURL  string
	APIKey   string
	Provider ports.UpstreamProvider
}

func NewUpstreamHealthChecker(config UpstreamHealthCheckerConfig) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{
		name:     config.Name,
		baseURL:  config.BaseURL,
		keySet:   config.APIKey != "",
		provider: config.Provider,
	}
}

// Check verifies the upstream has a provider and a credential
func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: u.name,
		Status:    "healthy",
		Details: map[string]interface{}{
			"base_url":       u.baseURL,
			"key_configured": u.keySet,
		},
	}

	switch {
	case u.provider == nil:
		status.Status = "unhealthy"
		status.Error = "upstream provider is not available"
	case !u.keySet:
		status.Status = "unhealthy"
		status.Error = "upstream credential is not configured"
	}

	return status
}
