// Package timefmt converts upstream UTC timestamps into wall-clock strings for
// a viewer's timezone.
package timefmt

import (
	"fmt"
	"strings"
	"time"
	// Embedded zone database so containers without /usr/share/zoneinfo still resolve zones.
	_ "time/tzdata"
)

// ClockLayout renders a 12-hour clock without a leading zero, e.g. "3:05 PM".
const ClockLayout = "3:04 PM"

// upstreamLayouts are the timestamp shapes seen in scoreboard payloads.
var upstreamLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z",
}

// ParseUTC parses an upstream ISO-8601 timestamp and returns it in UTC.
func ParseUTC(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range upstreamLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// LoadZone resolves an IANA zone name. An empty name means UTC.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// FormatTime renders t on the 12-hour clock of loc.
func FormatTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(ClockLayout)
}

// FormatKickoff converts a UTC ISO-8601 string into "3:00 PM" style local time.
func FormatKickoff(utcISO, zone string) (string, error) {
	t, err := ParseUTC(utcISO)
	if err != nil {
		return "", err
	}
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return FormatTime(t, loc), nil
}
