package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"citydash.app/pkg/errors"
)

const (
	weatherFailureMessage = "Failed to fetch weather data"
	newsFailureMessage    = "Failed to fetch news data"
	cityRequiredMessage   = "city parameter is required"
)

// cityQuery is the only input either proxy route accepts
type cityQuery struct {
	City string `form:"city" binding:"required"`
}

type fetchFunc func(ctx context.Context, city string) (json.RawMessage, error)

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	s.proxy(c, s.gateway.GetWeather, weatherFailureMessage)
}

// getNews handles GET /api/news requests
func (s *HTTPServerAdapter) getNews(c *gin.Context) {
	s.proxy(c, s.gateway.GetNews, newsFailureMessage)
}

// proxy writes the upstream payload byte for byte on success
func (s *HTTPServerAdapter) proxy(c *gin.Context, fetch fetchFunc, failureMessage string) {
	var query cityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError(cityRequiredMessage), failureMessage)
		return
	}

	payload, err := fetch(c.Request.Context(), query.City)
	if err != nil {
		s.handleError(c, err, failureMessage)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
