package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/sports-dashboard/internal/domain/league"
)

func TestLeagueRepository_SeedCatalog(t *testing.T) {
	repo, err := NewLeagueRepository(SeedLeagues())
	if err != nil {
		t.Fatalf("build repository: %v", err)
	}

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 leagues, got %d", len(items))
	}
	if items[0].ID != LeagueIDNHL || !items[0].IsDefault {
		t.Fatalf("expected nhl first and default, got %+v", items[0])
	}

	nhl, ok, err := repo.GetByID(context.Background(), " NHL ")
	if err != nil || !ok {
		t.Fatalf("expected nhl lookup to succeed, ok=%v err=%v", ok, err)
	}
	gaa, ok := nhl.Category("gaa")
	if !ok || !gaa.AscendingIsBetter {
		t.Fatalf("expected gaa to rank ascending, got %+v", gaa)
	}
	if !gaa.Matches("GoalsAgainstAverage") {
		t.Fatalf("expected case-insensitive name match")
	}

	epl, ok, _ := repo.GetByID(context.Background(), LeagueIDPremierLeague)
	if !ok || epl.LeadersSource != league.LeadersSourceStatistics {
		t.Fatalf("expected epl to read the statistics feed, got %+v", epl)
	}
}

func TestLeagueRepository_UnknownLeague(t *testing.T) {
	repo, err := NewLeagueRepository(SeedLeagues())
	if err != nil {
		t.Fatalf("build repository: %v", err)
	}

	_, ok, err := repo.GetByID(context.Background(), "mlb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected unknown league to miss")
	}
}

func TestLeagueRepository_RejectsInvalidSeed(t *testing.T) {
	_, err := NewLeagueRepository([]league.League{
		{ID: "x", Name: "X", SportPath: "nope", LeadersSource: league.LeadersSourceLeaders},
	})
	if err == nil {
		t.Fatalf("expected invalid sport path to be rejected")
	}
}
