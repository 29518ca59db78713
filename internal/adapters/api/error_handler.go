package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"citydash.app/internal/ports"
	errorspkg "citydash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// handleError maps validation errors to 400 and everything else to 500 with the route's fixed message
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error, failureMessage string) {
	var appErr *errorspkg.AppError
	if errors.As(err, &appErr) && appErr.Type == errorspkg.ValidationError {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
		return
	}

	s.logger.Error("Proxy request failed",
		ports.F("path", c.Request.URL.Path),
		ports.F("error_type", errorspkg.TypeOf(err).String()),
		ports.F("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: failureMessage})
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	if !allHealthy(components) {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Components: components})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Components: components})
}

func allHealthy(components map[string]ports.HealthStatus) bool {
	for _, status := range components {
		if status.Status != "healthy" {
			return false
		}
	}
	return true
}
