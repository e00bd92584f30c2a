package espn

import (
	"bytes"
	"encoding/json"
	"strings"

	sonic "github.com/bytedance/sonic"
)

type scoreboardEnvelope struct {
	Events []json.RawMessage `json:"events"`
}

type eventPayload struct {
	ID           string               `json:"id"`
	Date         string               `json:"date"`
	Name         string               `json:"name"`
	Status       *statusPayload       `json:"status"`
	Competitions []competitionPayload `json:"competitions"`
}

type statusPayload struct {
	Period       int                `json:"period"`
	DisplayClock string             `json:"displayClock"`
	Type         *statusTypePayload `json:"type"`
}

type statusTypePayload struct {
	State       string `json:"state"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
}

type competitionPayload struct {
	Competitors []competitorPayload `json:"competitors"`
	Odds        []*oddsPayload      `json:"odds"`
	Broadcasts  []broadcastPayload  `json:"broadcasts"`
}

type competitorPayload struct {
	HomeAway string       `json:"homeAway"`
	Score    flexString   `json:"score"`
	Team     *teamPayload `json:"team"`
}

type teamPayload struct {
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

type oddsPayload struct {
	Details *string `json:"details"`
}

type broadcastPayload struct {
	Market flexString `json:"market"`
	Names  []string   `json:"names"`
}

type newsEnvelope struct {
	Articles []articlePayload `json:"articles"`
}

type articlePayload struct {
	Headline    string      `json:"headline"`
	Description string      `json:"description"`
	Published   string      `json:"published"`
	Links       *linksBlock `json:"links"`
}

type linksBlock struct {
	Web *struct {
		Href string `json:"href"`
	} `json:"web"`
}

type leadersEnvelope struct {
	Leaders *struct {
		Categories []leaderCategoryPayload `json:"categories"`
	} `json:"leaders"`
}

type leaderCategoryPayload struct {
	Name             string          `json:"name"`
	DisplayName      string          `json:"displayName"`
	ShortDisplayName string          `json:"shortDisplayName"`
	Abbreviation     string          `json:"abbreviation"`
	Leaders          []leaderPayload `json:"leaders"`
}

type leaderPayload struct {
	DisplayValue flexString    `json:"displayValue"`
	Athlete      *athleteBlock `json:"athlete"`
	Team         *teamPayload  `json:"team"`
}

type athleteBlock struct {
	DisplayName string `json:"displayName"`
}

// flexString accepts a JSON string, number or bool and keeps its text. Objects
// contribute their "name", "type" or "displayName" field. ESPN is inconsistent
// about scores ("3" vs 3) and broadcast markets ("national" vs {"type":"National"}).
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*f = ""
		return nil
	case trimmed[0] == '"':
		var s string
		if err := sonic.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	case trimmed[0] == '{':
		var obj struct {
			Name        string `json:"name"`
			Type        string `json:"type"`
			DisplayName string `json:"displayName"`
		}
		if err := sonic.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		*f = flexString(firstNonEmpty(obj.DisplayName, obj.Name, obj.Type))
		return nil
	case trimmed[0] == '[':
		*f = ""
		return nil
	default:
		*f = flexString(trimmed)
		return nil
	}
}

func (f flexString) String() string {
	return strings.TrimSpace(string(f))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
