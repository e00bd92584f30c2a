package game

import (
	"strings"
	"time"
)

// State is the lifecycle phase of a game as reported upstream.
type State string

const (
	StatePreGame    State = "pre"
	StateInProgress State = "in"
	StateFinal      State = "post"
)

// ParseState maps the upstream status.type.state value.
func ParseState(raw string) (State, bool) {
	switch State(strings.ToLower(strings.TrimSpace(raw))) {
	case StatePreGame:
		return StatePreGame, true
	case StateInProgress:
		return StateInProgress, true
	case StateFinal:
		return StateFinal, true
	default:
		return "", false
	}
}

func (s State) String() string {
	switch s {
	case StatePreGame:
		return "pre-game"
	case StateInProgress:
		return "in-progress"
	case StateFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Summary is one parsed scoreboard event.
type Summary struct {
	ID          string
	LeagueID    string
	State       State
	Description string
	Detail      string
	Period      int
	Clock       string
	StartsAt    time.Time
	RawDate     string
	HomeTeam    string
	AwayTeam    string
	HomeScore   string
	AwayScore   string
	Odds        string
	Broadcast   string
}

func (s Summary) HasOdds() bool {
	return s.Odds != ""
}

func (s Summary) HasBroadcast() bool {
	return s.Broadcast != ""
}

// Board is the parsed scoreboard for one league.
type Board struct {
	Games []Summary
	// Skipped counts events dropped because mandatory fields were missing.
	Skipped int
}
