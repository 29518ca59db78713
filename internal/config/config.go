package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"citydash.app/pkg/errors"
)

const (
	maxPortNumber          = 65535
	maxUpstreamTimeoutSecs = 300
)

// Config represents the gateway process configuration
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Upstream UpstreamConfig `split_words:"true"`
	Logging  LoggingConfig  `split_words:"true"`
}

type ServerConfig struct {
	Port      int    `envconfig:"PORT" default:"3000"`
	StaticDir string `envconfig:"STATIC_DIR" default:"public"`
}

// UpstreamConfig holds the credentials and endpoints of the two proxied providers
type UpstreamConfig struct {
	OpenWeatherKey     string `envconfig:"OPENWEATHER_API_KEY" required:"true"`
	OpenWeatherBaseURL string `envconfig:"OPENWEATHER_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	NewsKey            string `envconfig:"NEWS_API_KEY" required:"true"`
	NewsBaseURL        string `envconfig:"NEWS_API_BASE_URL" default:"https://newsapi.org/v2"`
	TimeoutSeconds     int    `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"10"`
}

// Timeout returns the outbound HTTP client timeout; zero disables it
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

type LoggingConfig struct {
	Level         string `envconfig:"LOG_LEVEL" default:"info"`
	EnableLogging bool   `envconfig:"GATEWAY_ENABLE_LOGGING" default:"true"`
	LogFilePath   string `envconfig:"GATEWAY_LOG_FILE_PATH" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Upstream.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (u *UpstreamConfig) Validate() error {
	if strings.TrimSpace(u.OpenWeatherKey) == "" {
		return errors.NewConfigurationError("OPENWEATHER_API_KEY cannot be empty", nil)
	}
	if strings.TrimSpace(u.NewsKey) == "" {
		return errors.NewConfigurationError("NEWS_API_KEY cannot be empty", nil)
	}
	if err := validateBaseURL("OPENWEATHER_API_BASE_URL", u.OpenWeatherBaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("NEWS_API_BASE_URL", u.NewsBaseURL); err != nil {
		return err
	}
	if u.TimeoutSeconds < 0 || u.TimeoutSeconds > maxUpstreamTimeoutSecs {
		return errors.NewConfigurationError(
			fmt.Sprintf("UPSTREAM_TIMEOUT_SECONDS must be between 0 and %d", maxUpstreamTimeoutSecs), nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, level := range validLevels {
		if strings.ToLower(l.Level) == level {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLevels, ", ")), nil)
}

func validateBaseURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}
