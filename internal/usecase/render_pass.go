package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/sports-dashboard/internal/platform/cache"
)

// Feed names one upstream endpoint family.
type Feed string

const (
	FeedScoreboard Feed = "scoreboard"
	FeedNews       Feed = "news"
	FeedLeaders    Feed = "leaders"
	FeedStatistics Feed = "statistics"
)

func (f Feed) String() string {
	return string(f)
}

// fetchOutcome keeps failures memoized as well, so a broken feed is requested
// once per pass no matter how many sections read it.
type fetchOutcome struct {
	body []byte
	err  error
}

// RenderPass memoizes raw payloads for the lifetime of one dashboard render.
// A new pass must be created for every render; nothing carries over.
type RenderPass struct {
	payloads *cache.Store[fetchOutcome]
}

func NewRenderPass() *RenderPass {
	return &RenderPass{payloads: cache.NewStore[fetchOutcome](0)}
}

// Payload returns the memoized payload for (feed, league) or calls load once.
// A nil pass performs no memoization.
func (p *RenderPass) Payload(ctx context.Context, feed Feed, leagueID string, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if p == nil || p.payloads == nil {
		return load(ctx)
	}

	outcome, err := p.payloads.GetOrLoad(ctx, passKey(feed, leagueID), func(ctx context.Context) (fetchOutcome, error) {
		body, loadErr := load(ctx)
		return fetchOutcome{body: body, err: loadErr}, nil
	})
	if err != nil {
		return nil, err
	}
	return outcome.body, outcome.err
}

// Fetches reports how many upstream loads this pass has performed.
func (p *RenderPass) Fetches() int {
	if p == nil || p.payloads == nil {
		return 0
	}
	return int(p.payloads.Stats().Misses)
}

func passKey(feed Feed, leagueID string) string {
	return string(feed) + ":" + strings.ToLower(strings.TrimSpace(leagueID))
}
