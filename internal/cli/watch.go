package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-co-op/gocron"

	"citydash.app/internal/adapters/render"
	"citydash.app/internal/core/dashboard"
	"citydash.app/internal/ports"
)

const watchSeparator = "----"

type watchParams struct {
	interval time.Duration
	location *time.Location
	pipeline *dashboard.Pipeline
	view     *render.ViewModel
	printer  *render.TerminalPrinter
	logger   ports.Logger
	out      io.Writer
}

// watch refreshes the current city on a schedule and reprints the page until ctx is done
func watch(ctx context.Context, p watchParams) error {
	scheduler := gocron.NewScheduler(p.location)
	scheduler.SingletonModeAll()

	_, err := scheduler.Every(p.interval).WaitForSchedule().Do(func() {
		p.pipeline.Refresh(ctx)
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintln(p.out, watchSeparator)
		if err := p.printer.Print(p.view.Snapshot()); err != nil {
			p.logger.Error("Failed to print dashboard", ports.F("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}

	p.logger.Info("Watching city", ports.F("interval", p.interval.String()))
	scheduler.StartAsync()
	<-ctx.Done()
	scheduler.Stop()
	return nil
}
