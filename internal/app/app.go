package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/sports-dashboard/external/espn"
	"github.com/riskibarqy/sports-dashboard/internal/config"
	"github.com/riskibarqy/sports-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sports-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/sports-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
)

// Services is the wired usecase layer shared by the API server and the terminal renderer.
type Services struct {
	Leagues   *usecase.LeagueService
	Dashboard *usecase.DashboardService
}

func NewServices(cfg config.Config, logger *logging.Logger) (Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	leagueRepo, err := memory.NewLeagueRepository(memory.SeedLeagues())
	if err != nil {
		return Services{}, fmt.Errorf("build league catalog: %w", err)
	}

	espnClient, err := espn.NewClient(espn.ClientConfig{
		SiteBaseURL:    cfg.ESPNSiteBaseURL,
		LeadersBaseURL: cfg.ESPNLeadersBaseURL,
		Timeout:        cfg.ESPNTimeout,
		MaxBodyBytes:   cfg.ESPNMaxBodyBytes,
		UserAgent:      cfg.ServiceName + "/" + cfg.ServiceVersion,
		Logger:         logger,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build espn client: %w", err)
	}

	return Services{
		Leagues: usecase.NewLeagueService(leagueRepo),
		Dashboard: usecase.NewDashboardService(leagueRepo, espnClient, usecase.DashboardServiceConfig{
			DefaultLeagueID: cfg.DashboardDefaultLeague,
			DefaultTimezone: cfg.DashboardDefaultTimezone,
			NewsLimit:       cfg.DashboardNewsLimit,
			Logger:          logger,
		}),
	}, nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	services, err := NewServices(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(services.Leagues, services.Dashboard, cfg.DashboardTimezones, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
