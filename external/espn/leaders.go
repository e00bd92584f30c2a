package espn

import (
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-dashboard/internal/domain/leaderboard"
	"github.com/riskibarqy/sports-dashboard/internal/domain/league"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
	"github.com/tidwall/gjson"
)

// CategoryRef is how an upstream stat category identifies itself.
type CategoryRef struct {
	Name         string
	Abbreviation string
	DisplayName  string
}

func (r CategoryRef) anonymous() bool {
	return strings.TrimSpace(r.Name) == "" &&
		strings.TrimSpace(r.Abbreviation) == "" &&
		strings.TrimSpace(r.DisplayName) == ""
}

// SelectCategory finds the upstream category for a stat category by name. The
// legacy index is only trusted when nothing matches by name and the category
// sitting at that index has no identifiers of its own, which means upstream
// stopped naming categories rather than reordering them.
func SelectCategory(refs []CategoryRef, category league.StatCategory) (int, error) {
	for i, ref := range refs {
		if category.Matches(ref.Name, ref.Abbreviation, ref.DisplayName) {
			return i, nil
		}
	}
	if category.Index >= 0 && category.Index < len(refs) && refs[category.Index].anonymous() {
		return category.Index, nil
	}
	return -1, crerr.Wrapf(usecase.ErrCategoryNotFound, "category %s (%s) among %d upstream categories", category.Key, category.Label, len(refs))
}

// ExtractLeaders reads the leader rows for one category from a leaders or
// statistics payload, depending on where the league publishes leaders.
func ExtractLeaders(raw []byte, lg league.League, category league.StatCategory) ([]leaderboard.Entry, error) {
	if lg.LeadersSource == league.LeadersSourceStatistics {
		return extractStatisticsLeaders(raw, lg, category)
	}
	return extractFeedLeaders(raw, lg, category)
}

func extractFeedLeaders(raw []byte, lg league.League, category league.StatCategory) ([]leaderboard.Entry, error) {
	if !gjson.GetBytes(raw, "leaders.categories").IsArray() {
		return nil, crerr.Wrapf(usecase.ErrStructuralMismatch, "leaders %s: missing leaders.categories", lg.ID)
	}

	var envelope leadersEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, crerr.Wrapf(usecase.ErrStructuralMismatch, "leaders %s: decode: %v", lg.ID, err)
	}
	categories := envelope.Leaders.Categories

	refs := make([]CategoryRef, 0, len(categories))
	for _, c := range categories {
		refs = append(refs, CategoryRef{
			Name:         c.Name,
			Abbreviation: c.Abbreviation,
			DisplayName:  firstNonEmpty(c.DisplayName, c.ShortDisplayName),
		})
	}
	idx, err := SelectCategory(refs, category)
	if err != nil {
		return nil, crerr.Wrapf(err, "leaders %s", lg.ID)
	}

	leaders := categories[idx].Leaders
	out := make([]leaderboard.Entry, 0, len(leaders))
	for _, l := range leaders {
		if l.Athlete == nil || strings.TrimSpace(l.Athlete.DisplayName) == "" {
			continue
		}
		entry := leaderboard.Entry{
			Player: strings.TrimSpace(l.Athlete.DisplayName),
			Value:  l.DisplayValue.String(),
		}
		if l.Team != nil {
			entry.Team = strings.TrimSpace(l.Team.DisplayName)
		}
		out = append(out, entry)
	}
	return out, nil
}

func extractStatisticsLeaders(raw []byte, lg league.League, category league.StatCategory) ([]leaderboard.Entry, error) {
	stats := gjson.GetBytes(raw, "stats")
	if !stats.IsArray() {
		return nil, crerr.Wrapf(usecase.ErrStructuralMismatch, "statistics %s: missing stats", lg.ID)
	}

	groups := stats.Array()
	refs := make([]CategoryRef, 0, len(groups))
	for _, g := range groups {
		refs = append(refs, CategoryRef{
			Name:         g.Get("name").String(),
			Abbreviation: g.Get("abbreviation").String(),
			DisplayName:  g.Get("displayName").String(),
		})
	}
	idx, err := SelectCategory(refs, category)
	if err != nil {
		return nil, crerr.Wrapf(err, "statistics %s", lg.ID)
	}

	leaders := groups[idx].Get("leaders").Array()
	out := make([]leaderboard.Entry, 0, len(leaders))
	for _, l := range leaders {
		athlete := l.Get("athlete")
		player := strings.TrimSpace(athlete.Get("displayName").String())
		if player == "" {
			continue
		}
		team := athlete.Get("team.displayName").String()
		if team == "" {
			team = l.Get("team.displayName").String()
		}

		athleteStats := athlete.Get("statistics").Array()
		value, ok := statDisplayValue(athleteStats, category.ValueStat, category.ValueIndex)
		if !ok {
			value = l.Get("displayValue").String()
		}

		entry := leaderboard.Entry{
			Player: player,
			Team:   strings.TrimSpace(team),
			Value:  strings.TrimSpace(value),
		}
		for _, extra := range category.Extras {
			v, _ := statDisplayValue(athleteStats, extra.Stat, extra.Index)
			entry.Extras = append(entry.Extras, leaderboard.Field{Label: extra.Label, Value: strings.TrimSpace(v)})
		}
		out = append(out, entry)
	}
	return out, nil
}

// statDisplayValue looks an athlete statistic up by name, then by position.
func statDisplayValue(stats []gjson.Result, name string, index int) (string, bool) {
	if name != "" {
		for _, s := range stats {
			if strings.EqualFold(s.Get("name").String(), name) {
				return s.Get("displayValue").String(), true
			}
		}
	}
	if index >= 0 && index < len(stats) {
		v := stats[index].Get("displayValue")
		if v.Exists() {
			return v.String(), true
		}
	}
	return "", false
}

// SeasonLabel reads the season name published alongside the league's leaders,
// e.g. "Regular Season" or "2024-25 English Premier League". ok is false when
// the payload carries none.
func SeasonLabel(raw []byte, lg league.League) (string, bool) {
	paths := []string{"currentSeason.type.name", "season.type.name", "season.displayName"}
	if lg.LeadersSource == league.LeadersSourceStatistics {
		paths = []string{"season.displayName", "season.name"}
	}
	for _, p := range paths {
		if v := strings.TrimSpace(gjson.GetBytes(raw, p).String()); v != "" {
			return v, true
		}
	}
	return "", false
}
