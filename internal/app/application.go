package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"citydash.app/internal/adapters/api"
	"citydash.app/internal/config"
	"citydash.app/internal/core/gateway"
)

type Application struct {
	config *config.Config

	// Use Cases
	gatewayUseCase *gateway.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps *DependencyContainer
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig wires the gateway from an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config: cfg,
		deps:   deps,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	gatewayUseCase, err := gateway.NewUseCase(gateway.UseCaseDependencies{
		WeatherUpstream: a.deps.WeatherUpstream(),
		NewsUpstream:    a.deps.NewsUpstream(),
		Logger:          a.deps.Logger(),
		Metrics:         a.deps.Metrics(),
	})
	if err != nil {
		return fmt.Errorf("create gateway use case: %w", err)
	}
	a.gatewayUseCase = gatewayUseCase
	return nil
}

func (a *Application) initializeAdapters() error {
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			StaticDir: a.config.Server.StaticDir,
		},
		Gateway:        a.gatewayUseCase,
		HealthChecker:  a.deps.HealthChecker(),
		MetricsHandler: a.deps.Metrics().Handler(),
		Logger:         a.deps.Logger(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	// WriteTimeout stays zero: the upstream timeout is configurable and may be disabled
	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetGatewayUseCase returns the gateway use case for testing
func (a *Application) GetGatewayUseCase() *gateway.UseCase {
	return a.gatewayUseCase
}
