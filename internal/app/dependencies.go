package app

import (
	"fmt"
	"io"
	"log/slog"

	"citydash.app/internal/adapters/external"
	"citydash.app/internal/adapters/infrastructure"
	"citydash.app/internal/config"
	"citydash.app/internal/ports"
	"citydash.app/pkg/logger"
)

// DependencyContainer builds and owns the gateway's adapters
type DependencyContainer struct {
	config  *config.Config
	logger  ports.Logger
	closers []io.Closer

	weatherUpstream ports.UpstreamProvider
	newsUpstream    ports.UpstreamProvider
	metrics         *infrastructure.MetricsCollectorAdapter
	health          *infrastructure.SystemHealthChecker
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	container := &DependencyContainer{config: cfg}

	if err := container.initializeLogger(); err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	container.initializeUpstreams()
	container.initializeInfrastructure()

	return container, nil
}

func (c *DependencyContainer) initializeLogger() error {
	var log ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)

	if c.config.Logging.EnableLogging && c.config.Logging.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(
			c.config.Logging.LogFilePath,
			logger.ParseLevel(c.config.Logging.Level),
		)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			log = fileLogger
			c.closers = append(c.closers, fileLogger)
			slog.Info("File logging enabled", "path", c.config.Logging.LogFilePath)
		}
	}

	c.logger = log
	return nil
}

func (c *DependencyContainer) initializeUpstreams() {
	client := external.NewUpstreamHTTPClient(c.config.Upstream.Timeout())

	c.weatherUpstream = external.NewOpenWeatherMapForecastAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  c.config.Upstream.OpenWeatherKey,
		BaseURL: c.config.Upstream.OpenWeatherBaseURL,
		Client:  client,
	})
	c.newsUpstream = external.NewNewsAPIAdapter(external.NewsAPIProviderParams{
		APIKey:  c.config.Upstream.NewsKey,
		BaseURL: c.config.Upstream.NewsBaseURL,
		Client:  client,
	})

	if c.config.Logging.EnableLogging {
		c.weatherUpstream = external.NewUpstreamLoggingDecorator(c.weatherUpstream, c.logger)
		c.newsUpstream = external.NewUpstreamLoggingDecorator(c.newsUpstream, c.logger)
		slog.Info("Upstream request logging enabled")
	}
}

func (c *DependencyContainer) initializeInfrastructure() {
	c.metrics = infrastructure.NewMetricsCollectorAdapter()

	c.health = infrastructure.NewSystemHealthChecker(map[string]ports.HealthChecker{
		c.weatherUpstream.GetProviderName(): infrastructure.NewUpstreamHealthChecker(infrastructure.UpstreamHealthCheckerConfig{
			Name:     c.weatherUpstream.GetProviderName(),
			BaseURL:  c.config.Upstream.OpenWeatherBaseURL,
			APIKey:   c.config.Upstream.OpenWeatherKey,
			Provider: c.weatherUpstream,
		}),
		c.newsUpstream.GetProviderName(): infrastructure.NewUpstreamHealthChecker(infrastructure.UpstreamHealthCheckerConfig{
			Name:     c.newsUpstream.GetProviderName(),
			BaseURL:  c.config.Upstream.NewsBaseURL,
			APIKey:   c.config.Upstream.NewsKey,
			Provider: c.newsUpstream,
		}),
	})
}

func (c *DependencyContainer) Logger() ports.Logger {
	return c.logger
}

func (c *DependencyContainer) WeatherUpstream() ports.UpstreamProvider {
	return c.weatherUpstream
}

func (c *DependencyContainer) NewsUpstream() ports.UpstreamProvider {
	return c.newsUpstream
}

func (c *DependencyContainer) Metrics() *infrastructure.MetricsCollectorAdapter {
	return c.metrics
}

func (c *DependencyContainer) HealthChecker() *infrastructure.SystemHealthChecker {
	return c.health
}

// Cleanup releases resources such as the log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
