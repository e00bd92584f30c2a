package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/sports-dashboard/internal/domain/league"
)

// LeagueRepository is the static catalog of supported leagues.
type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	orders []string
}

func NewLeagueRepository(leagues []league.League) (*LeagueRepository, error) {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("seed league: %w", err)
		}
		id := normalizeID(l.ID)
		if _, dup := items[id]; dup {
			return nil, fmt.Errorf("seed league: duplicate id %s", l.ID)
		}
		items[id] = l
		orders = append(orders, id)
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
	}, nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

// GetByID looks a league up case-insensitively, so "NHL" and "nhl" both resolve.
func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[normalizeID(leagueID)]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
