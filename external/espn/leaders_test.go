package espn

import (
	"errors"
	"testing"

	"github.com/riskibarqy/sports-dashboard/internal/domain/league"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
)

var hockey = league.League{
	ID:            "nhl",
	Name:          "NHL",
	SportPath:     "hockey/nhl",
	LeadersSource: league.LeadersSourceLeaders,
	Categories: []league.StatCategory{
		{Key: "goals", Label: "Goals", Names: []string{"goals"}, Index: 0},
		{Key: "gaa", Label: "GAA", Names: []string{"goalsAgainstAverage", "GAA"}, Index: 1, AscendingIsBetter: true},
	},
}

var soccer = league.League{
	ID:            "epl",
	Name:          "Premier League",
	SportPath:     "soccer/eng.1",
	LeadersSource: league.LeadersSourceStatistics,
	Categories: []league.StatCategory{
		{
			Key: "goals", Label: "Goals", Names: []string{"goalsLeaders"}, Index: 0,
			ValueStat: "totalGoals", ValueIndex: 1,
			Extras: []league.ExtraStat{{Label: "Matches Played", Stat: "appearances", Index: 0}},
		},
		{
			Key: "assists", Label: "Assists", Names: []string{"assistsLeaders"}, Index: 1,
			ValueStat: "goalAssists", ValueIndex: 2,
		},
	},
}

const leadersPayload = `{
  "currentSeason": {"type": {"name": "Regular Season"}},
  "leaders": {"categories": [
    {"name": "goalsAgainstAverage", "abbreviation": "GAA", "leaders": [
      {"displayValue": "2.10", "athlete": {"displayName": "Goalie One"}, "team": {"displayName": "Winnipeg Jets"}}
    ]},
    {"name": "goals", "abbreviation": "G", "leaders": [
      {"displayValue": "30", "athlete": {"displayName": "Sniper"}, "team": {"displayName": "Toronto Maple Leafs"}},
      {"displayValue": 28, "athlete": {"displayName": "Winger"}},
      {"displayValue": "27", "team": {"displayName": "Nobody"}}
    ]}
  ]}
}`

const statisticsPayload = `{
  "season": {"displayName": "2024-25 English Premier League"},
  "stats": [
    {"name": "goalsLeaders", "leaders": [
      {"athlete": {"displayName": "Striker", "team": {"displayName": "Liverpool"},
        "statistics": [{"name": "appearances", "displayValue": "20"}, {"name": "totalGoals", "displayValue": "18"}]}}
    ]},
    {"name": "assistsLeaders", "leaders": [
      {"athlete": {"displayName": "Playmaker", "team": {"displayName": "Arsenal"},
        "statistics": [{"displayValue": "19"}, {"displayValue": "4"}, {"displayValue": "9"}]}}
    ]}
  ]
}`

func TestSelectCategory(t *testing.T) {
	t.Parallel()

	goals := league.StatCategory{Key: "goals", Label: "Goals", Names: []string{"goals"}, Index: 1}

	tests := []struct {
		name    string
		refs    []CategoryRef
		want    int
		wantErr bool
	}{
		{name: "matches by name after reorder", refs: []CategoryRef{{Name: "assists"}, {Name: "points"}, {Name: "GOALS"}}, want: 2},
		{name: "matches by display name", refs: []CategoryRef{{DisplayName: "goals"}}, want: 0},
		{name: "falls back to index for unnamed categories", refs: []CategoryRef{{}, {}}, want: 1},
		{name: "refuses index when slot is named", refs: []CategoryRef{{Name: "assists"}, {Name: "points"}}, wantErr: true},
		{name: "refuses index out of range", refs: []CategoryRef{{}}, wantErr: true},
		{name: "no categories", refs: nil, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := SelectCategory(tc.refs, goals)
			if tc.wantErr {
				if !errors.Is(err, usecase.ErrCategoryNotFound) || !errors.Is(err, usecase.ErrStructuralMismatch) {
					t.Fatalf("expected category not found, got %d %v", got, err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("got %d %v want %d", got, err, tc.want)
			}
		})
	}
}

func TestExtractLeaders_LeadersFeed(t *testing.T) {
	t.Parallel()

	goals, _ := hockey.Category("goals")
	got, err := ExtractLeaders([]byte(leadersPayload), hockey, goals)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected entries without athletes to be dropped, got %d", len(got))
	}
	if got[0].Player != "Sniper" || got[0].Team != "Toronto Maple Leafs" || got[0].Value != "30" {
		t.Fatalf("unexpected first entry %+v", got[0])
	}
	if got[1].Value != "28" || got[1].Team != "" {
		t.Fatalf("numeric display value and missing team: %+v", got[1])
	}

	gaa, _ := hockey.Category("gaa")
	got, err = ExtractLeaders([]byte(leadersPayload), hockey, gaa)
	if err != nil || len(got) != 1 || got[0].Value != "2.10" {
		t.Fatalf("expected gaa by name, got %+v %v", got, err)
	}
}

func TestExtractLeaders_MissingLeadersKey(t *testing.T) {
	t.Parallel()

	goals, _ := hockey.Category("goals")
	for _, raw := range []string{`{}`, `{"leaders": {}}`, `{"leaders": {"categories": {}}}`, `[]`} {
		got, err := ExtractLeaders([]byte(raw), hockey, goals)
		if !errors.Is(err, usecase.ErrStructuralMismatch) {
			t.Fatalf("%s: expected structural mismatch, got %v", raw, err)
		}
		if got != nil {
			t.Fatalf("%s: expected no entries, got %+v", raw, got)
		}
	}
}

func TestExtractLeaders_StatisticsFeed(t *testing.T) {
	t.Parallel()

	goals, _ := soccer.Category("goals")
	got, err := ExtractLeaders([]byte(statisticsPayload), soccer, goals)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	entry := got[0]
	if entry.Player != "Striker" || entry.Team != "Liverpool" || entry.Value != "18" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if len(entry.Extras) != 1 || entry.Extras[0].Label != "Matches Played" || entry.Extras[0].Value != "20" {
		t.Fatalf("unexpected extras %+v", entry.Extras)
	}

	assists, _ := soccer.Category("assists")
	got, err = ExtractLeaders([]byte(statisticsPayload), soccer, assists)
	if err != nil || len(got) != 1 || got[0].Value != "9" {
		t.Fatalf("expected unnamed statistics to resolve by index, got %+v %v", got, err)
	}

	if _, err := ExtractLeaders([]byte(`{"season": {}}`), soccer, goals); !errors.Is(err, usecase.ErrStructuralMismatch) {
		t.Fatalf("expected structural mismatch without stats, got %v", err)
	}
}

func TestSeasonLabel(t *testing.T) {
	t.Parallel()

	if got, ok := SeasonLabel([]byte(leadersPayload), hockey); !ok || got != "Regular Season" {
		t.Fatalf("leaders label: %q %v", got, ok)
	}
	if got, ok := SeasonLabel([]byte(statisticsPayload), soccer); !ok || got != "2024-25 English Premier League" {
		t.Fatalf("statistics label: %q %v", got, ok)
	}
	if _, ok := SeasonLabel([]byte(`{}`), hockey); ok {
		t.Fatalf("expected no label")
	}
}
