// Package cli implements the citydash terminal dashboard
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"citydash.app/internal/adapters/external"
	"citydash.app/internal/adapters/render"
	"citydash.app/internal/config"
	"citydash.app/internal/core/dashboard"
	"citydash.app/internal/ports"
	"citydash.app/pkg/errors"
	"citydash.app/pkg/validation"
)

// Dependencies lets callers replace the HTTP gateway client
type Dependencies struct {
	Config *config.DashboardConfig
	Logger ports.Logger
	// Gateway overrides the client built from --gateway
	Gateway ports.Gateway
}

type options struct {
	gatewayURL string
	output     string
	timezone   string
	watch      time.Duration
}

// flagValues mirrors options with exported fields for struct validation
type flagValues struct {
	GatewayURL string        `validate:"required,url"`
	Output     string        `validate:"oneof=text yaml"`
	Watch      time.Duration `validate:"gte=0"`
}

var flagNames = map[string]string{
	"GatewayURL": "--gateway",
	"Output":     "--output",
	"Watch":      "--watch",
}

func (o options) validate() error {
	return validation.Struct(flagValues{
		GatewayURL: o.gatewayURL,
		Output:     o.output,
		Watch:      o.watch,
	}, func(field string) string { return flagNames[field] })
}

func New(deps Dependencies) (*cobra.Command, error) {
	if deps.Config == nil {
		return nil, errors.NewValidationError("dashboard config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	opts := options{
		gatewayURL: deps.Config.GatewayURL,
		output:     deps.Config.Output.String(),
		timezone:   deps.Config.Timezone,
	}

	cmd := &cobra.Command{
		Use:   "citydash [city]",
		Short: "Terminal dashboard for a city's weather forecast and news",
		Long: "Fetches the forecast and news for a city through the citydash gateway " +
			"and prints the rendered dashboard. Without a city the configured default is loaded.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.gatewayURL, "gateway", opts.gatewayURL, "base URL of the citydash gateway")
	flags.StringVarP(&opts.output, "output", "o", opts.output, "output format: text or yaml")
	flags.StringVar(&opts.timezone, "timezone", opts.timezone, "IANA time zone for dates and times")
	flags.DurationVar(&opts.watch, "watch", 0, "refresh the current city at this interval until interrupted")

	return cmd, nil
}

func run(cmd *cobra.Command, deps Dependencies, opts options, args []string) error {
	if err := opts.validate(); err != nil {
		return err
	}

	format := config.OutputFormatFromString(opts.output)
	printer, err := render.NewTerminalPrinter(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}

	location, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("unknown time zone %q", opts.timezone), err)
	}

	gateway := deps.Gateway
	if gateway == nil {
		client, err := external.NewGatewayClientAdapter(external.GatewayClientParams{BaseURL: opts.gatewayURL})
		if err != nil {
			return err
		}
		gateway = client
	}

	view := render.NewViewModel()
	pipeline, err := dashboard.NewPipeline(dashboard.PipelineDependencies{
		Gateway:     gateway,
		Sink:        view,
		Logger:      deps.Logger,
		Location:    location,
		DefaultCity: deps.Config.DefaultCity,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) == 1 {
		pipeline.Search(ctx, args[0])
	} else {
		pipeline.Start(ctx)
	}
	if err := printer.Print(view.Snapshot()); err != nil {
		return err
	}

	if opts.watch == 0 {
		return nil
	}
	return watch(ctx, watchParams{
		interval: opts.watch,
		location: location,
		pipeline: pipeline,
		view:     view,
		printer:  printer,
		logger:   deps.Logger,
		out:      cmd.OutOrStdout(),
	})
}

