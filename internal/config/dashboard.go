package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"citydash.app/pkg/errors"
)

// OutputFormat selects how the dashboard CLI prints the rendered page
type OutputFormat int

const (
	OutputFormatUnknown OutputFormat = iota
	OutputFormatText
	OutputFormatYAML
)

// String returns the string representation of the output format
func (o OutputFormat) String() string {
	switch o {
	case OutputFormatText:
		return "text"
	case OutputFormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// IsValid checks if the output format is valid
func (o OutputFormat) IsValid() bool {
	return o == OutputFormatText || o == OutputFormatYAML
}

// OutputFormatFromString converts string to OutputFormat enum
func OutputFormatFromString(s string) OutputFormat {
	switch s {
	case "text":
		return OutputFormatText
	case "yaml":
		return OutputFormatYAML
	default:
		return OutputFormatUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (o *OutputFormat) UnmarshalText(text []byte) error {
	*o = OutputFormatFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (o OutputFormat) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// DashboardConfig configures the terminal dashboard that drives the pipeline
type DashboardConfig struct {
	GatewayURL  string       `envconfig:"DASHBOARD_GATEWAY_URL" default:"http://localhost:3000"`
	DefaultCity string       `envconfig:"DASHBOARD_DEFAULT_CITY" default:"London"`
	Timezone    string       `envconfig:"DASHBOARD_TIMEZONE" default:"Local"`
	Output      OutputFormat `envconfig:"DASHBOARD_OUTPUT" default:"text"`
	LogLevel    string       `envconfig:"LOG_LEVEL" default:"warn"`
}

func LoadDashboardConfig() (*DashboardConfig, error) {
	var config DashboardConfig
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing dashboard config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (d *DashboardConfig) Validate() error {
	if err := validateBaseURL("DASHBOARD_GATEWAY_URL", d.GatewayURL); err != nil {
		return err
	}
	if d.DefaultCity == "" {
		return errors.NewConfigurationError("DASHBOARD_DEFAULT_CITY cannot be empty", nil)
	}
	if !d.Output.IsValid() {
		return errors.NewConfigurationError("DASHBOARD_OUTPUT must be one of: text, yaml", nil)
	}
	if _, err := d.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured time zone used for dates and times
func (d *DashboardConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, errors.NewConfigurationError("DASHBOARD_TIMEZONE is not a known time zone", err)
	}
	return loc, nil
}
