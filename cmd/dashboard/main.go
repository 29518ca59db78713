package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"citydash.app/internal/adapters/infrastructure"
	"citydash.app/internal/cli"
	"citydash.app/internal/config"
	"citydash.app/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadDashboardConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// stdout carries the rendered page, logs go to stderr
	log := logger.NewWithWriter(os.Stderr, logger.ParseLevel(cfg.LogLevel)).
		WithField("component", "dashboard")

	cmd, err := cli.New(cli.Dependencies{
		Config: cfg,
		Logger: infrastructure.NewSlogLoggerAdapter(log.Logger),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
