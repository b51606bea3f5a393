package cmd

import (
	"fmt"
	"os"

	"github.com/Digital-Shane/show-scout/internal/catalog"
	"github.com/Digital-Shane/show-scout/internal/config"
	"github.com/Digital-Shane/show-scout/internal/display"
	"github.com/Digital-Shane/show-scout/internal/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app bundles what every command needs: settings, the run's logger and a
// catalog client.
type app struct {
	cfg     *config.Config
	session *log.Session
	logger  zerolog.Logger
	fetcher catalog.Fetcher
}

// newFetcher builds the catalog client from the user's settings. Tests swap it
// for a client pointed at a fake server.
var newFetcher = func(cfg *config.Config, logger zerolog.Logger) (catalog.Fetcher, error) {
	opts := []catalog.Option{
		catalog.WithUserAgent(cfg.UserAgent),
		catalog.WithRateLimit(cfg.RateLimit.Requests, cfg.RateWindow()),
		catalog.WithLogger(logger),
	}
	if cfg.Cache.Enabled {
		opts = append(opts, catalog.WithCache(cfg.CacheTTL()))
	}
	return catalog.New(opts...)
}

func setup(cmd *cobra.Command, args []string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	session, err := log.Initialize(log.Options{
		Enabled:       cfg.EnableLogging,
		Level:         cfg.LogLevel,
		RetentionDays: cfg.LogRetentionDays,
		Command:       cmd.Name(),
		Args:          args,
	})
	if err != nil {
		// Logging problems never stop the program.
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		session = &log.Session{Logger: zerolog.Nop()}
	}
	logger := session.Logger
	for _, w := range cfg.Warnings {
		logger.Warn().Msg(w)
	}

	fetcher, err := newFetcher(cfg, logger)
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}

	return &app{cfg: cfg, session: session, logger: logger, fetcher: fetcher}, nil
}

func (a *app) regions() *display.Regions {
	return display.NewRegions(display.WithSummaryWidth(a.cfg.SummaryWidth))
}

func (a *app) close() {
	if err := a.session.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log: %v\n", err)
	}
}
