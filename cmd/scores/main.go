package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/sports-dashboard/internal/app"
	"github.com/riskibarqy/sports-dashboard/internal/config"
	"github.com/riskibarqy/sports-dashboard/internal/interfaces/terminal"
	"github.com/riskibarqy/sports-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	leagueID := flag.String("league", cfg.DashboardDefaultLeague, "league to show (nhl, nba, nfl, epl)")
	timezone := flag.String("tz", cfg.DashboardDefaultTimezone, "IANA timezone for start times")
	newsLimit := flag.Int("news", cfg.DashboardNewsLimit, "number of headlines to show")
	flag.Parse()

	logger := logging.NewConsole(os.Stderr, cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	services, err := app.NewServices(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	req := usecase.RenderRequest{
		LeagueID:  *leagueID,
		Timezone:  *timezone,
		NewsLimit: *newsLimit,
	}
	render := func(ctx context.Context) (usecase.Dashboard, error) {
		return services.Dashboard.Render(ctx, req)
	}

	if err := terminal.Run(ctx, os.Stdin, os.Stdout, render, logger); err != nil {
		logger.Error("render dashboard", "error", err)
		os.Exit(1)
	}
}
