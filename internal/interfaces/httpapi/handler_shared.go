package httpapi

import (
	"time"

	"github.com/riskibarqy/sports-dashboard/internal/domain/leaderboard"
	"github.com/riskibarqy/sports-dashboard/internal/domain/league"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
)

type statCategoryDTO struct {
	Key               string `json:"key"`
	Label             string `json:"label"`
	AscendingIsBetter bool   `json:"ascendingIsBetter"`
}

type leagueDTO struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Sport      string            `json:"sport"`
	Icon       string            `json:"icon,omitempty"`
	IsDefault  bool              `json:"isDefault"`
	Categories []statCategoryDTO `json:"categories"`
}

type gameDTO struct {
	ID          string `json:"id"`
	State       string `json:"state"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	Period      int    `json:"period"`
	Clock       string `json:"clock"`
	StartsAt    string `json:"startsAt,omitempty"`
	Kickoff     string `json:"kickoff"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	HomeScore   string `json:"homeScore"`
	AwayScore   string `json:"awayScore"`
	Odds        string `json:"odds"`
	Broadcast   string `json:"broadcast,omitempty"`
}

type articleDTO struct {
	Headline    string `json:"headline"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Published   string `json:"published,omitempty"`
}

type fieldDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type leaderRowDTO struct {
	Rank        int        `json:"rank"`
	RankDisplay string     `json:"rankDisplay"`
	Tied        bool       `json:"tied"`
	Player      string     `json:"player"`
	Team        string     `json:"team"`
	Value       string     `json:"value"`
	Extras      []fieldDTO `json:"extras,omitempty"`
}

type leaderTableDTO struct {
	Key               string         `json:"key"`
	StatName          string         `json:"statName"`
	AscendingIsBetter bool           `json:"ascendingIsBetter"`
	Rows              []leaderRowDTO `json:"rows"`
}

type warningDTO struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

type dashboardDTO struct {
	LeagueID     string           `json:"leagueId"`
	LeagueName   string           `json:"leagueName"`
	Timezone     string           `json:"timezone"`
	SeasonLabel  string           `json:"seasonLabel"`
	RenderedAt   string           `json:"renderedAt"`
	Games        []gameDTO        `json:"games"`
	SkippedGames int              `json:"skippedGames"`
	News         []articleDTO     `json:"news"`
	Leaders      []leaderTableDTO `json:"leaders"`
	Warnings     []warningDTO     `json:"warnings"`
}

func leagueToDTO(v league.League) leagueDTO {
	categories := make([]statCategoryDTO, 0, len(v.Categories))
	for _, c := range v.Categories {
		categories = append(categories, statCategoryDTO{
			Key:               c.Key,
			Label:             c.Label,
			AscendingIsBetter: c.AscendingIsBetter,
		})
	}

	return leagueDTO{
		ID:         v.ID,
		Name:       v.Name,
		Sport:      v.Sport,
		Icon:       v.Icon,
		IsDefault:  v.IsDefault,
		Categories: categories,
	}
}

func dashboardToDTO(d usecase.Dashboard) dashboardDTO {
	out := dashboardDTO{
		LeagueID:     d.League.ID,
		LeagueName:   d.League.Name,
		Timezone:     d.Timezone,
		SeasonLabel:  d.SeasonLabel,
		RenderedAt:   d.RenderedAt.Format(time.RFC3339),
		Games:        make([]gameDTO, 0, len(d.Games)),
		SkippedGames: d.SkippedGames,
		News:         make([]articleDTO, 0, len(d.News)),
		Leaders:      make([]leaderTableDTO, 0, len(d.Leaders)),
		Warnings:     make([]warningDTO, 0, len(d.Warnings)),
	}

	for _, g := range d.Games {
		item := gameDTO{
			ID:          g.ID,
			State:       g.State.String(),
			Description: g.Description,
			Detail:      g.Detail,
			Period:      g.Period,
			Clock:       g.Clock,
			Kickoff:     g.Kickoff,
			HomeTeam:    g.HomeTeam,
			AwayTeam:    g.AwayTeam,
			HomeScore:   g.HomeScore,
			AwayScore:   g.AwayScore,
			Odds:        g.Odds,
			Broadcast:   g.Broadcast,
		}
		if !g.StartsAt.IsZero() {
			item.StartsAt = g.StartsAt.UTC().Format(time.RFC3339)
		}
		out.Games = append(out.Games, item)
	}

	for _, a := range d.News {
		out.News = append(out.News, articleDTO{
			Headline:    a.Headline,
			URL:         a.URL,
			Description: a.Description,
			Published:   a.Published,
		})
	}

	for _, section := range d.Leaders {
		out.Leaders = append(out.Leaders, leaderTableDTO{
			Key:               section.Key,
			StatName:          section.StatName,
			AscendingIsBetter: section.AscendingIsBetter,
			Rows:              leaderRowsToDTO(section.Rows),
		})
	}

	for _, w := range d.Warnings {
		out.Warnings = append(out.Warnings, warningDTO{Section: w.Section, Message: w.Message})
	}

	return out
}

func leaderRowsToDTO(rows []leaderboard.Row) []leaderRowDTO {
	out := make([]leaderRowDTO, 0, len(rows))
	for _, row := range rows {
		item := leaderRowDTO{
			Rank:        row.Rank,
			RankDisplay: row.RankDisplay,
			Tied:        row.Tied,
			Player:      row.Player,
			Team:        row.Team,
			Value:       row.Value,
		}
		for _, extra := range row.Extras {
			item.Extras = append(item.Extras, fieldDTO{Label: extra.Label, Value: extra.Value})
		}
		out = append(out, item)
	}
	return out
}
