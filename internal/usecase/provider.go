package usecase

import (
	"context"

	"github.com/riskibarqy/sports-dashboard/internal/domain/game"
	"github.com/riskibarqy/sports-dashboard/internal/domain/leaderboard"
	"github.com/riskibarqy/sports-dashboard/internal/domain/league"
	"github.com/riskibarqy/sports-dashboard/internal/domain/news"
)

// SportDataProvider reads one league's feeds from the upstream sports API.
// Every method reads through pass so a payload is fetched at most once per render.
type SportDataProvider interface {
	FetchGames(ctx context.Context, pass *RenderPass, lg league.League) (game.Board, error)
	FetchNews(ctx context.Context, pass *RenderPass, lg league.League) ([]news.Article, error)
	FetchLeaders(ctx context.Context, pass *RenderPass, lg league.League, category league.StatCategory) ([]leaderboard.Entry, error)
	FetchSeasonLabel(ctx context.Context, pass *RenderPass, lg league.League) (string, error)
}
