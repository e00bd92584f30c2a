package league

import (
	"fmt"
	"strings"
)

// LeadersSource tells the fetcher which upstream feed carries stat leaders.
type LeadersSource string

const (
	// LeadersSourceLeaders reads leaders.categories[].leaders[] from the v3 leaders feed.
	LeadersSourceLeaders LeadersSource = "leaders"
	// LeadersSourceStatistics reads stats[].leaders[] from the v2 statistics feed (soccer).
	LeadersSourceStatistics LeadersSource = "statistics"
)

// League is one competition the dashboard can render.
type League struct {
	ID            string
	Name          string
	Sport         string
	SportPath     string
	Icon          string
	IsDefault     bool
	LeadersSource LeadersSource
	Categories    []StatCategory
}

// StatCategory names one leaderboard and how to find it upstream.
//
// Names are matched against the upstream category name, abbreviation and display
// name. Index is the position the category historically occupied and is only used
// when upstream categories carry no identifying names at all.
type StatCategory struct {
	Key               string
	Label             string
	Names             []string
	Index             int
	AscendingIsBetter bool

	// ValueStat and ValueIndex select the athlete statistic holding the ranked
	// value for statistics-sourced leagues.
	ValueStat  string
	ValueIndex int
	// Extras are additional athlete statistics shown next to the value.
	Extras []ExtraStat
}

// ExtraStat is a secondary column read from athlete statistics.
type ExtraStat struct {
	Label string
	Stat  string
	Index int
}

func (l League) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("league id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if strings.Count(l.SportPath, "/") != 1 {
		return fmt.Errorf("league %s sport path must look like sport/league, got %q", l.ID, l.SportPath)
	}
	switch l.LeadersSource {
	case LeadersSourceLeaders, LeadersSourceStatistics:
	default:
		return fmt.Errorf("league %s has unknown leaders source %q", l.ID, l.LeadersSource)
	}

	seen := make(map[string]struct{}, len(l.Categories))
	for _, category := range l.Categories {
		if category.Key == "" || category.Label == "" {
			return fmt.Errorf("league %s has a category without key or label", l.ID)
		}
		if _, dup := seen[category.Key]; dup {
			return fmt.Errorf("league %s has duplicate category %s", l.ID, category.Key)
		}
		seen[category.Key] = struct{}{}
		if category.Index < 0 {
			return fmt.Errorf("league %s category %s has negative index", l.ID, category.Key)
		}
	}

	return nil
}

// Category returns the stat category with the given key.
func (l League) Category(key string) (StatCategory, bool) {
	for _, category := range l.Categories {
		if category.Key == key {
			return category, true
		}
	}
	return StatCategory{}, false
}

// Matches reports whether any of the upstream identifiers names this category.
func (c StatCategory) Matches(identifiers ...string) bool {
	for _, id := range identifiers {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		for _, name := range c.Names {
			if strings.EqualFold(id, name) {
				return true
			}
		}
	}
	return false
}
