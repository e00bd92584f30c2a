package espn

import (
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-dashboard/internal/domain/game"
	"github.com/riskibarqy/sports-dashboard/internal/domain/news"
	"github.com/riskibarqy/sports-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sports-dashboard/internal/platform/timefmt"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const oddsUnavailable = "N/A"


// ParseScoreboard decodes a scoreboard payload. Events that break the upstream
// contract are logged and counted in Board.Skipped; the rest of the board is kept.
func ParseScoreboard(raw []byte, leagueID string, logger *logging.Logger) (game.Board, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if !gjson.GetBytes(raw, "events").IsArray() {
		return game.Board{}, crerr.Wrapf(usecase.ErrStructuralMismatch, "scoreboard %s: missing events array", leagueID)
	}

	var envelope scoreboardEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return game.Board{}, crerr.Wrapf(usecase.ErrStructuralMismatch, "scoreboard %s: decode: %v", leagueID, err)
	}

	board := game.Board{Games: make([]game.Summary, 0, len(envelope.Events))}
	for i, rawEvent := range envelope.Events {
		summary, err := NormalizeEvent(rawEvent)
		if err != nil {
			board.Skipped++
			logger.Warn("skipping scoreboard event",
				"league", leagueID,
				"position", i,
				"event_id", gjson.GetBytes(rawEvent, "id").String(),
				"error", err,
			)
			continue
		}
		summary.LeagueID = leagueID
		board.Games = append(board.Games, summary)
	}

	return board, nil
}

// NormalizeEvent converts one scoreboard event into a game summary.
// Competitor 0 is the home side and competitor 1 the away side.
func NormalizeEvent(raw []byte) (game.Summary, error) {
	var ev eventPayload
	if err := sonic.Unmarshal(raw, &ev); err != nil {
		return game.Summary{}, crerr.Wrapf(usecase.ErrStructuralMismatch, "decode event: %v", err)
	}
	return normalizeEvent(ev)
}

func normalizeEvent(ev eventPayload) (game.Summary, error) {
	if ev.Status == nil || ev.Status.Type == nil || strings.TrimSpace(ev.Status.Type.State) == "" {
		return game.Summary{}, crerr.Wrapf(usecase.ErrStructuralMismatch, "event %s: missing status state", ev.ID)
	}
	state, ok := game.ParseState(ev.Status.Type.State)
	if !ok {
		return game.Summary{}, crerr.Wrapf(usecase.ErrStructuralMismatch, "event %s: unknown state %q", ev.ID, ev.Status.Type.State)
	}
	if len(ev.Competitions) == 0 {
		return game.Summary{}, crerr.Wrapf(usecase.ErrStructuralMismatch, "event %s: no competitions", ev.ID)
	}

	comp := ev.Competitions[0]
	if len(comp.Competitors) < 2 {
		return game.Summary{}, crerr.Wrapf(usecase.ErrStructuralMismatch, "event %s: expected 2 competitors, got %d", ev.ID, len(comp.Competitors))
	}
	home, away := comp.Competitors[0], comp.Competitors[1]
	homeName, awayName := teamName(home.Team), teamName(away.Team)
	if homeName == "" || awayName == "" {
		return game.Summary{}, crerr.Wrapf(usecase.ErrStructuralMismatch, "event %s: missing team display name", ev.ID)
	}

	out := game.Summary{
		ID:          ev.ID,
		State:       state,
		Description: ev.Status.Type.Description,
		Detail:      firstNonEmpty(ev.Status.Type.Detail, ev.Status.Type.ShortDetail),
		Period:      ev.Status.Period,
		Clock:       ev.Status.DisplayClock,
		RawDate:     ev.Date,
		HomeTeam:    homeName,
		AwayTeam:    awayName,
		HomeScore:   home.Score.String(),
		AwayScore:   away.Score.String(),
		Odds:        oddsText(comp.Odds),
		Broadcast:   broadcastText(comp.Broadcasts),
	}
	if out.Clock == "" {
		out.Clock = "0:00"
	}
	if ev.Date != "" {
		if startsAt, err := timefmt.ParseUTC(ev.Date); err == nil {
			out.StartsAt = startsAt
		}
	}

	return out, nil
}

func teamName(team *teamPayload) string {
	if team == nil {
		return ""
	}
	return strings.TrimSpace(team.DisplayName)
}

// oddsText reads the first odds entry. An entry without details reads "N/A".
func oddsText(odds []*oddsPayload) string {
	if len(odds) == 0 || odds[0] == nil {
		return ""
	}
	if odds[0].Details == nil {
		return oddsUnavailable
	}
	return strings.TrimSpace(*odds[0].Details)
}

// broadcastText renders "ESPN, TNT (National) | NESN (Home)".
func broadcastText(broadcasts []broadcastPayload) string {
	parts := make([]string, 0, len(broadcasts))
	for _, b := range broadcasts {
		names := make([]string, 0, len(b.Names))
		for _, n := range b.Names {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		if len(names) == 0 {
			continue
		}
		entry := strings.Join(names, ", ")
		if market := b.Market.String(); market != "" {
			entry += " (" + cases.Title(language.English).String(market) + ")"
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, " | ")
}

// ExtractArticles reads articles[] from a news payload. Articles without a
// headline are dropped; description defaults to "" and published is verbatim.
func ExtractArticles(raw []byte) ([]news.Article, error) {
	if !gjson.GetBytes(raw, "articles").IsArray() {
		return nil, crerr.Wrapf(usecase.ErrStructuralMismatch, "news: missing articles array")
	}

	var envelope newsEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, crerr.Wrapf(usecase.ErrStructuralMismatch, "news: decode: %v", err)
	}

	out := make([]news.Article, 0, len(envelope.Articles))
	for _, a := range envelope.Articles {
		headline := strings.TrimSpace(a.Headline)
		if headline == "" {
			continue
		}
		item := news.Article{
			Headline:    headline,
			Description: a.Description,
			Published:   a.Published,
		}
		if a.Links != nil && a.Links.Web != nil {
			item.URL = a.Links.Web.Href
		}
		out = append(out, item)
	}
	return out, nil
}
