package infrastructure

import (
	"context"

	"citydash.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// NewSystemHealthChecker creates a checker keyed by component name; nil checkers are skipped
func NewSystemHealthChecker(checkers map[string]ports.HealthChecker) *SystemHealthChecker {
	filtered := make(map[string]ports.HealthChecker, len(checkers))
	for name, checker := range checkers {
		if checker != nil {
			filtered[name] = checker
		}
	}
	return &SystemHealthChecker{checkers: filtered}
}

var _ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}
	return results
}
