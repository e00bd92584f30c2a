// Package terminal draws a rendered dashboard as plain text and drives the
// refresh loop of the scores command.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/riskibarqy/sports-dashboard/internal/domain/game"
	"github.com/riskibarqy/sports-dashboard/internal/domain/leaderboard"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// Write renders d into w in one write.
func Write(w io.Writer, d usecase.Dashboard) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeHeader(buf, d)
	writeGames(buf, d)
	writeNews(buf, d)
	if err := writeLeaders(buf, d); err != nil {
		return err
	}
	writeWarnings(buf, d)

	_, err := w.Write(buf.B)
	return err
}

func writeHeader(buf *bytebufferpool.ByteBuffer, d usecase.Dashboard) {
	title := strings.TrimSpace(d.League.Icon + " " + d.League.Name)
	fmt.Fprintf(buf, "%s | %s | %s | %s\n",
		title, d.SeasonLabel, d.Timezone, d.RenderedAt.Format("2006-01-02 15:04 MST"))
}

func writeGames(buf *bytebufferpool.ByteBuffer, d usecase.Dashboard) {
	fmt.Fprintf(buf, "\n%s Scores\n", d.League.Name)
	if len(d.Games) == 0 {
		buf.WriteString("  no games scheduled\n")
	}
	for _, g := range d.Games {
		buf.WriteString("  " + gameLine(g) + "\n")
		if g.HasBroadcast() {
			buf.WriteString("    TV: " + g.Broadcast + "\n")
		}
	}
	if d.SkippedGames > 0 {
		fmt.Fprintf(buf, "  (%d games could not be read)\n", d.SkippedGames)
	}
}

func gameLine(g usecase.GameView) string {
	switch g.State {
	case game.StatePreGame:
		return fmt.Sprintf("%s @ %s - %s  Odds: %s", g.AwayTeam, g.HomeTeam, g.Kickoff, g.Odds)
	case game.StateInProgress:
		return fmt.Sprintf("%s %s @ %s %s  %s", g.AwayTeam, g.AwayScore, g.HomeTeam, g.HomeScore, g.Detail)
	default:
		return fmt.Sprintf("%s %s @ %s %s - %s", g.AwayTeam, g.AwayScore, g.HomeTeam, g.HomeScore, g.Detail)
	}
}

func writeNews(buf *bytebufferpool.ByteBuffer, d usecase.Dashboard) {
	fmt.Fprintf(buf, "\n%s News\n", d.League.Name)
	if len(d.News) == 0 {
		buf.WriteString("  no headlines\n")
	}
	for i, a := range d.News {
		fmt.Fprintf(buf, "  %d. %s\n", i+1, a.Headline)
		if a.Description != "" {
			buf.WriteString("     " + a.Description + "\n")
		}
		if a.URL != "" {
			buf.WriteString("     " + a.URL + "\n")
		}
	}
}

func writeLeaders(buf *bytebufferpool.ByteBuffer, d usecase.Dashboard) error {
	for _, section := range d.Leaders {
		fmt.Fprintf(buf, "\n%s %s Leaders\n", d.SeasonLabel, section.StatName)
		if section.IsEmpty() {
			buf.WriteString("  no leaders yet\n")
			continue
		}
		if err := writeTable(buf, section.Table); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(buf *bytebufferpool.ByteBuffer, t leaderboard.Table) error {
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)

	header := []string{"RANK", "PLAYER", "TEAM", strings.ToUpper(t.StatName)}
	for _, extra := range t.Rows[0].Extras {
		header = append(header, strings.ToUpper(extra.Label))
	}
	fmt.Fprintln(tw, "  "+strings.Join(header, "\t"))

	for _, row := range t.Rows {
		cols := []string{row.RankDisplay, row.Player, row.Team, row.Value}
		for _, extra := range row.Extras {
			cols = append(cols, extra.Value)
		}
		fmt.Fprintln(tw, "  "+strings.Join(cols, "\t"))
	}

	return tw.Flush()
}

func writeWarnings(buf *bytebufferpool.ByteBuffer, d usecase.Dashboard) {
	if !d.HasWarnings() {
		return
	}
	buf.WriteString("\n")
	for _, w := range d.Warnings {
		buf.WriteString("! " + w.Message + "\n")
	}
}
