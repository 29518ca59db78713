// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"citydash.app/internal/ports"
	"citydash.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	// StaticDir holds the front-end assets; skipped when it does not exist
	StaticDir string
}

// HTTPServerAdapter implements the gateway's HTTP surface using Gin
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	gateway        ports.Gateway
	healthChecker  ports.SystemHealthChecker
	metricsHandler http.Handler
	logger         ports.Logger
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	Gateway        ports.Gateway
	HealthChecker  ports.SystemHealthChecker
	MetricsHandler http.Handler
	Logger         ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		gateway:        opts.Gateway,
		healthChecker:  opts.HealthChecker,
		metricsHandler: opts.MetricsHandler,
		logger:         opts.Logger,
	}
	router.Use(server.requestLogger())

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Gateway == nil {
		return errors.NewValidationError("gateway is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/news", s.getNews)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	s.setupStaticFiles()
}

// GetRouter returns the router
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// setupStaticFiles serves the front end for every path no route claims
func (s *HTTPServerAdapter) setupStaticFiles() {
	if s.config.StaticDir == "" {
		return
	}
	info, err := os.Stat(s.config.StaticDir)
	if err != nil || !info.IsDir() {
		s.logger.Warn("Static directory not found, front end disabled",
			ports.F("static_dir", s.config.StaticDir))
		return
	}

	s.router.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.config.StaticDir))))
}

// requestLogger logs method, path and status; the query string is left out
func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.Request.URL.Path),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}
