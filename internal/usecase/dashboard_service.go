package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/sports-dashboard/internal/domain/game"
	"github.com/riskibarqy/sports-dashboard/internal/domain/leaderboard"
	"github.com/riskibarqy/sports-dashboard/internal/domain/league"
	"github.com/riskibarqy/sports-dashboard/internal/domain/news"
	"github.com/riskibarqy/sports-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sports-dashboard/internal/platform/timefmt"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultNewsLimit   = 5
	defaultSeasonLabel = "Season"

	SectionGames   = "games"
	SectionNews    = "news"
	SectionLeaders = "leaders"
)

type RenderRequest struct {
	LeagueID  string
	Timezone  string
	NewsLimit int
}

// Warning reports a dashboard section that could not be rendered.
type Warning struct {
	Section string
	Message string
}

type GameView struct {
	game.Summary
	// Kickoff is the start time on the viewer's clock, e.g. "7:00 PM".
	Kickoff string
}

type LeaderSection struct {
	Key string
	leaderboard.Table
}

type Dashboard struct {
	League       league.League
	Timezone     string
	SeasonLabel  string
	RenderedAt   time.Time
	Games        []GameView
	SkippedGames int
	News         []news.Article
	Leaders      []LeaderSection
	Warnings     []Warning
}

func (d Dashboard) HasWarnings() bool {
	return len(d.Warnings) > 0
}

type DashboardServiceConfig struct {
	DefaultLeagueID string
	DefaultTimezone string
	NewsLimit       int
	Logger          *logging.Logger
	Now             func() time.Time
}

type DashboardService struct {
	leagueRepo league.Repository
	provider   SportDataProvider
	cfg        DashboardServiceConfig
	logger     *logging.Logger
}

func NewDashboardService(leagueRepo league.Repository, provider SportDataProvider, cfg DashboardServiceConfig) *DashboardService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.NewsLimit <= 0 {
		cfg.NewsLimit = defaultNewsLimit
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	cfg.DefaultLeagueID = strings.TrimSpace(cfg.DefaultLeagueID)
	cfg.DefaultTimezone = strings.TrimSpace(cfg.DefaultTimezone)

	return &DashboardService{
		leagueRepo: leagueRepo,
		provider:   provider,
		cfg:        cfg,
		logger:     logger.Named("dashboard"),
	}
}

// Render runs one full render pass: scoreboard, news, every leader category and
// the season label, in that order. Upstream failures never fail the render; each
// one is logged and reported as a Warning for its section.
func (s *DashboardService) Render(ctx context.Context, req RenderRequest) (Dashboard, error) {
	lg, err := s.resolveLeague(ctx, req.LeagueID)
	if err != nil {
		return Dashboard{}, err
	}

	zoneName := strings.TrimSpace(req.Timezone)
	if zoneName == "" {
		zoneName = s.cfg.DefaultTimezone
	}
	loc, err := timefmt.LoadZone(zoneName)
	if err != nil {
		return Dashboard{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	newsLimit := req.NewsLimit
	if newsLimit < 0 {
		return Dashboard{}, fmt.Errorf("%w: news limit must not be negative", ErrInvalidInput)
	}
	if newsLimit == 0 {
		newsLimit = s.cfg.NewsLimit
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Render",
		attribute.String("league.id", lg.ID),
		attribute.String("timezone", loc.String()),
	)
	defer span.End()

	pass := NewRenderPass()
	out := Dashboard{
		League:     lg,
		Timezone:   loc.String(),
		RenderedAt: s.cfg.Now().UTC(),
	}

	board, err := s.provider.FetchGames(ctx, pass, lg)
	if err != nil {
		out.warn(ctx, s.logger, SectionGames, lg, err)
	} else {
		out.Games = buildGameViews(board.Games, loc)
		out.SkippedGames = board.Skipped
	}

	articles, err := s.provider.FetchNews(ctx, pass, lg)
	if err != nil {
		out.warn(ctx, s.logger, SectionNews, lg, err)
	} else {
		out.News = news.Limit(articles, newsLimit)
	}

	for _, category := range lg.Categories {
		entries, err := s.provider.FetchLeaders(ctx, pass, lg, category)
		if err != nil {
			out.warn(ctx, s.logger, SectionLeaders+":"+category.Key, lg, err)
			continue
		}
		out.Leaders = append(out.Leaders, LeaderSection{
			Key:   category.Key,
			Table: leaderboard.Rank(entries, category.Label, category.AscendingIsBetter),
		})
	}

	out.SeasonLabel = defaultSeasonLabel
	if len(lg.Categories) > 0 {
		label, err := s.provider.FetchSeasonLabel(ctx, pass, lg)
		switch {
		case err != nil:
			s.logger.DebugContext(ctx, "season label unavailable", "league", lg.ID, "error", err)
		case strings.TrimSpace(label) != "":
			out.SeasonLabel = strings.TrimSpace(label)
		}
	}

	s.logger.InfoContext(ctx, "dashboard rendered",
		"league", lg.ID,
		"games", len(out.Games),
		"news", len(out.News),
		"leader_tables", len(out.Leaders),
		"warnings", len(out.Warnings),
		"fetches", pass.Fetches(),
	)
	return out, nil
}

func (s *DashboardService) resolveLeague(ctx context.Context, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		leagueID = s.cfg.DefaultLeagueID
	}
	if leagueID == "" {
		leagues, err := s.leagueRepo.List(ctx)
		if err != nil {
			return league.League{}, fmt.Errorf("list leagues: %w", err)
		}
		for _, l := range leagues {
			if l.IsDefault {
				return l, nil
			}
		}
		if len(leagues) == 0 {
			return league.League{}, fmt.Errorf("%w: no leagues available", ErrNotFound)
		}
		return leagues[0], nil
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return lg, nil
}

func (d *Dashboard) warn(ctx context.Context, logger *logging.Logger, section string, lg league.League, err error) {
	logger.WarnContext(ctx, "dashboard section unavailable", "league", lg.ID, "section", section, "error", err)
	d.Warnings = append(d.Warnings, Warning{
		Section: section,
		Message: warningMessage(section, lg, err),
	})
}

func warningMessage(section string, lg league.League, err error) string {
	what := section
	if i := strings.IndexByte(section, ':'); i >= 0 {
		what = section[:i]
		if category, ok := lg.Category(section[i+1:]); ok {
			what = category.Label + " leaders"
		}
	}

	switch {
	case errors.Is(err, ErrStructuralMismatch):
		return fmt.Sprintf("%s %s data is not in the expected format", lg.Name, what)
	case IsUpstreamError(err):
		return fmt.Sprintf("unable to load %s %s right now", lg.Name, what)
	default:
		return fmt.Sprintf("%s %s failed to load", lg.Name, what)
	}
}

func buildGameViews(games []game.Summary, loc *time.Location) []GameView {
	out := make([]GameView, 0, len(games))
	for _, g := range games {
		kickoff := "TBD"
		if !g.StartsAt.IsZero() {
			kickoff = timefmt.FormatTime(g.StartsAt, loc)
		}
		out = append(out, GameView{Summary: g, Kickoff: kickoff})
	}
	return out
}
