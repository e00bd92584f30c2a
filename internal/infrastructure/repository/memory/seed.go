package memory

import "github.com/riskibarqy/sports-dashboard/internal/domain/league"

const (
	LeagueIDNHL           = "nhl"
	LeagueIDNBA           = "nba"
	LeagueIDNFL           = "nfl"
	LeagueIDPremierLeague = "epl"
)

// SeedLeagues returns the supported leagues. Category indices mirror the order
// the upstream feeds have historically used and only matter when upstream
// categories arrive without names.
func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:            LeagueIDNHL,
			Name:          "NHL",
			Sport:         "hockey",
			SportPath:     "hockey/nhl",
			Icon:          "🏒",
			IsDefault:     true,
			LeadersSource: league.LeadersSourceLeaders,
			Categories: []league.StatCategory{
				{Key: "goals", Label: "Goals", Names: []string{"goals", "G"}, Index: 0},
				{Key: "assists", Label: "Assists", Names: []string{"assists", "A"}, Index: 1},
				{Key: "points", Label: "Points", Names: []string{"points", "PTS"}, Index: 2},
				{Key: "plus-minus", Label: "+/-", Names: []string{"plusMinus", "+/-", "Plus/Minus"}, Index: 3},
				{Key: "gaa", Label: "GAA", Names: []string{"goalsAgainstAverage", "avgGoalsAgainst", "GAA"}, Index: 4, AscendingIsBetter: true},
				{Key: "pim", Label: "PIM", Names: []string{"penaltyMinutes", "PIM"}, Index: 5},
			},
		},
		{
			ID:            LeagueIDNBA,
			Name:          "NBA",
			Sport:         "basketball",
			SportPath:     "basketball/nba",
			Icon:          "🏀",
			LeadersSource: league.LeadersSourceLeaders,
			Categories: []league.StatCategory{
				{Key: "ppg", Label: "PPG", Names: []string{"pointsPerGame", "avgPoints", "PTS"}, Index: 0},
				{Key: "apg", Label: "APG", Names: []string{"assistsPerGame", "avgAssists", "AST"}, Index: 1},
				{Key: "fg-pct", Label: "FG%", Names: []string{"fieldGoalPercentage", "fieldGoalPct", "FG%"}, Index: 2},
				{Key: "rpg", Label: "RPG", Names: []string{"reboundsPerGame", "avgRebounds", "REB"}, Index: 3},
				{Key: "spg", Label: "SPG", Names: []string{"stealsPerGame", "avgSteals", "STL"}, Index: 4},
				{Key: "ft-pct", Label: "FT%", Names: []string{"freeThrowPercentage", "freeThrowPct", "FT%"}, Index: 6},
				{Key: "3pt-pct", Label: "3PT%", Names: []string{"threePointPercentage", "threePointFieldGoalPct", "3P%", "3PT%"}, Index: 7},
			},
		},
		{
			ID:            LeagueIDNFL,
			Name:          "NFL",
			Sport:         "football",
			SportPath:     "football/nfl",
			Icon:          "🏈",
			LeadersSource: league.LeadersSourceLeaders,
			Categories: []league.StatCategory{
				{Key: "passing-yards", Label: "Passing Yards", Names: []string{"passingYards", "PYDS"}, Index: 0},
				{Key: "rushing-yards", Label: "Rushing Yards", Names: []string{"rushingYards", "RYDS"}, Index: 1},
				{Key: "receiving-yards", Label: "Receiving Yards", Names: []string{"receivingYards", "RECYDS"}, Index: 2},
				{Key: "tackles", Label: "Tackles", Names: []string{"totalTackles", "TOT"}, Index: 3},
				{Key: "sacks", Label: "Sacks", Names: []string{"sacks", "SACK"}, Index: 4},
			},
		},
		{
			ID:            LeagueIDPremierLeague,
			Name:          "Premier League",
			Sport:         "soccer",
			SportPath:     "soccer/eng.1",
			Icon:          "⚽",
			LeadersSource: league.LeadersSourceStatistics,
			Categories: []league.StatCategory{
				{
					Key:        "goals",
					Label:      "Goals",
					Names:      []string{"goalsLeaders", "totalGoals", "Top Scorers"},
					Index:      0,
					ValueStat:  "totalGoals",
					ValueIndex: 1,
					Extras:     []league.ExtraStat{{Label: "Matches Played", Stat: "appearances", Index: 0}},
				},
				{
					Key:        "assists",
					Label:      "Assists",
					Names:      []string{"assistsLeaders", "goalAssists", "Top Assists"},
					Index:      1,
					ValueStat:  "goalAssists",
					ValueIndex: 2,
					Extras:     []league.ExtraStat{{Label: "Matches Played", Stat: "appearances", Index: 0}},
				},
			},
		},
	}
}
