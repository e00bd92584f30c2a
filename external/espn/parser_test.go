package espn

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/sports-dashboard/internal/domain/game"
	"github.com/riskibarqy/sports-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
)

const sampleEvent = `{
  "id": "401559",
  "date": "2025-01-15T00:00Z",
  "name": "Toronto Maple Leafs at Boston Bruins",
  "status": {
    "period": 2,
    "displayClock": "12:34",
    "type": {"state": "in", "description": "In Progress", "detail": "12:34 - 2nd Period"}
  },
  "competitions": [{
    "competitors": [
      {"homeAway": "home", "score": "3", "team": {"displayName": "Boston Bruins"}},
      {"homeAway": "away", "score": 2, "team": {"displayName": "Toronto Maple Leafs"}}
    ],
    "odds": [{"details": "BOS -150"}],
    "broadcasts": [
      {"market": "national", "names": ["ESPN+", "Hulu"]},
      {"market": "home", "names": ["NESN"]}
    ]
  }]
}`

func TestNormalizeEvent_FullEvent(t *testing.T) {
	t.Parallel()

	got, err := NormalizeEvent([]byte(sampleEvent))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if got.State != game.StateInProgress {
		t.Fatalf("unexpected state %q", got.State)
	}
	if got.HomeTeam != "Boston Bruins" || got.AwayTeam != "Toronto Maple Leafs" {
		t.Fatalf("home/away must follow competitor order: %+v", got)
	}
	if got.HomeScore != "3" || got.AwayScore != "2" {
		t.Fatalf("unexpected scores %q-%q", got.HomeScore, got.AwayScore)
	}
	if got.Odds != "BOS -150" {
		t.Fatalf("unexpected odds %q", got.Odds)
	}
	if want := "ESPN+, Hulu (National) | NESN (Home)"; got.Broadcast != want {
		t.Fatalf("broadcast: got %q want %q", got.Broadcast, want)
	}
	if !got.StartsAt.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", got.StartsAt)
	}
	if got.Detail != "12:34 - 2nd Period" || got.Clock != "12:34" || got.Period != 2 {
		t.Fatalf("unexpected status fields: %+v", got)
	}
}

func TestNormalizeEvent_OptionalFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		competition   string
		wantOdds      string
		wantBroadcast string
	}{
		{
			name:        "no odds and no broadcasts",
			competition: `"competitors": [{"team":{"displayName":"A"}},{"team":{"displayName":"B"}}]`,
		},
		{
			name:        "odds entry without details",
			competition: `"competitors": [{"team":{"displayName":"A"}},{"team":{"displayName":"B"}}], "odds": [{"provider": {"name": "x"}}], "broadcasts": []`,
			wantOdds:    "N/A",
		},
		{
			name:        "null odds entry",
			competition: `"competitors": [{"team":{"displayName":"A"}},{"team":{"displayName":"B"}}], "odds": [null]`,
		},
		{
			name:          "market object",
			competition:   `"competitors": [{"team":{"displayName":"A"}},{"team":{"displayName":"B"}}], "broadcasts": [{"market": {"type": "away"}, "names": ["SN"]}]`,
			wantBroadcast: "SN (Away)",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			raw := `{"id":"1","status":{"type":{"state":"pre"}},"competitions":[{` + tc.competition + `}]}`
			got, err := NormalizeEvent([]byte(raw))
			if err != nil {
				t.Fatalf("optional fields must not fail: %v", err)
			}
			if got.Odds != tc.wantOdds {
				t.Fatalf("odds: got %q want %q", got.Odds, tc.wantOdds)
			}
			if got.Broadcast != tc.wantBroadcast {
				t.Fatalf("broadcast: got %q want %q", got.Broadcast, tc.wantBroadcast)
			}
			if got.HomeScore != "" || !got.StartsAt.IsZero() {
				t.Fatalf("missing score/date should stay empty: %+v", got)
			}
		})
	}
}

func TestNormalizeEvent_StructuralMismatch(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"missing status":       `{"id":"1","competitions":[{"competitors":[{"team":{"displayName":"A"}},{"team":{"displayName":"B"}}]}]}`,
		"empty state":          `{"id":"1","status":{"type":{"state":""}},"competitions":[{"competitors":[{"team":{"displayName":"A"}},{"team":{"displayName":"B"}}]}]}`,
		"unknown state":        `{"id":"1","status":{"type":{"state":"delayed"}},"competitions":[{"competitors":[{"team":{"displayName":"A"}},{"team":{"displayName":"B"}}]}]}`,
		"no competitions":      `{"id":"1","status":{"type":{"state":"pre"}},"competitions":[]}`,
		"single competitor":    `{"id":"1","status":{"type":{"state":"pre"}},"competitions":[{"competitors":[{"team":{"displayName":"A"}}]}]}`,
		"missing team name":    `{"id":"1","status":{"type":{"state":"pre"}},"competitions":[{"competitors":[{"team":{"displayName":"A"}},{"team":{}}]}]}`,
		"wrong shape entirely": `{"id":"1","status":"final"}`,
	}

	for name, raw := range tests {
		raw := raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := NormalizeEvent([]byte(raw))
			if !errors.Is(err, usecase.ErrStructuralMismatch) {
				t.Fatalf("expected structural mismatch, got %v", err)
			}
		})
	}
}

func TestParseScoreboard_SkipsBrokenEvents(t *testing.T) {
	t.Parallel()

	raw := `{"events": [` + sampleEvent + `, {"id":"bad","status":{"type":{"state":"post"}},"competitions":[]}]}`
	board, err := ParseScoreboard([]byte(raw), "nhl", logging.NewNop())
	if err != nil {
		t.Fatalf("parse scoreboard: %v", err)
	}
	if len(board.Games) != 1 || board.Skipped != 1 {
		t.Fatalf("expected 1 game and 1 skipped, got %d/%d", len(board.Games), board.Skipped)
	}
	if board.Games[0].LeagueID != "nhl" {
		t.Fatalf("expected league id stamped, got %q", board.Games[0].LeagueID)
	}
}

func TestParseScoreboard_EmptyAndMissing(t *testing.T) {
	t.Parallel()

	board, err := ParseScoreboard([]byte(`{"events": []}`), "nba", logging.NewNop())
	if err != nil || len(board.Games) != 0 {
		t.Fatalf("empty events must be an empty board, got %+v %v", board, err)
	}

	_, err = ParseScoreboard([]byte(`{"leagues": []}`), "nba", logging.NewNop())
	if !errors.Is(err, usecase.ErrStructuralMismatch) {
		t.Fatalf("expected structural mismatch, got %v", err)
	}
}

func TestExtractArticles(t *testing.T) {
	t.Parallel()

	raw := `{"articles": [
		{"headline": "Trade deadline", "description": "Moves", "published": "2025-01-14T18:00:00Z", "links": {"web": {"href": "https://espn.com/a"}}},
		{"headline": "No description", "links": {"web": {"href": "https://espn.com/b"}}},
		{"description": "no headline"}
	]}`

	got, err := ExtractArticles([]byte(raw))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(got))
	}
	if got[0].URL != "https://espn.com/a" || got[0].Published != "2025-01-14T18:00:00Z" {
		t.Fatalf("unexpected first article: %+v", got[0])
	}
	if got[1].Description != "" || got[1].Published != "" {
		t.Fatalf("missing optional fields should default to empty: %+v", got[1])
	}

	if _, err := ExtractArticles([]byte(`{"headlines": []}`)); !errors.Is(err, usecase.ErrStructuralMismatch) {
		t.Fatalf("expected structural mismatch, got %v", err)
	}
}
