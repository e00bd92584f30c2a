package leaderboard

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TieMarker prefixes the display rank of every row that shares its rank.
const TieMarker = "T"

// ParseValue coerces an upstream display value into a number. It accepts
// integers and decimals with an optional sign, thousands separators and a
// trailing percent sign. ok is false for anything else ("N/A", "", "--").
func ParseValue(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	negative := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		negative = true
		s = s[1:]
	}
	if !validGrouping(s) {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || !isPlainNumber(s) {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		value = value.Neg()
	}
	return value, true
}

// isPlainNumber accepts digits with at most one decimal point and at least one digit.
func isPlainNumber(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// validGrouping rejects commas that are not thousands separators, e.g. "1,2".
func validGrouping(s string) bool {
	if !strings.Contains(s, ",") {
		return true
	}
	intPart := s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		if strings.Contains(s[i:], ",") {
			return false
		}
	}
	groups := strings.Split(intPart, ",")
	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}

type scored struct {
	entry   Entry
	value   decimal.Decimal
	numeric bool
}

// Rank orders entries with competition ranking: equal values share a rank
// and the next distinct value is ranked 1 + the number of strictly better
// entries. Non-numeric values rank after every numeric one and tie among
// themselves. Equal values keep their input order.
func Rank(entries []Entry, statName string, ascendingIsBetter bool) Table {
	table := Table{
		StatName:          statName,
		AscendingIsBetter: ascendingIsBetter,
		Rows:              []Row{},
	}
	if len(entries) == 0 {
		return table
	}

	items := make([]scored, 0, len(entries))
	for _, e := range entries {
		v, ok := ParseValue(e.Value)
		items = append(items, scored{entry: e, value: v, numeric: ok})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return better(items[i], items[j], ascendingIsBetter)
	})

	ranks := make([]int, len(items))
	counts := make(map[int]int, len(items))
	for i := range items {
		if i > 0 && !better(items[i-1], items[i], ascendingIsBetter) {
			ranks[i] = ranks[i-1]
		} else {
			ranks[i] = i + 1
		}
		counts[ranks[i]]++
	}

	table.Rows = make([]Row, 0, len(items))
	for i, item := range items {
		tied := counts[ranks[i]] > 1
		table.Rows = append(table.Rows, Row{
			Rank:        ranks[i],
			RankDisplay: displayRank(ranks[i], tied),
			Tied:        tied,
			Player:      item.entry.Player,
			Team:        item.entry.Team,
			Value:       item.entry.Value,
			Extras:      cloneFields(item.entry.Extras),
		})
	}
	return table
}

// better reports whether a strictly outranks b.
func better(a, b scored, ascendingIsBetter bool) bool {
	if a.numeric != b.numeric {
		return a.numeric
	}
	if !a.numeric {
		return false
	}
	if ascendingIsBetter {
		return a.value.LessThan(b.value)
	}
	return a.value.GreaterThan(b.value)
}

func displayRank(rank int, tied bool) string {
	if tied {
		return TieMarker + strconv.Itoa(rank)
	}
	return strconv.Itoa(rank)
}

func cloneFields(in []Field) []Field {
	if len(in) == 0 {
		return nil
	}
	out := make([]Field, len(in))
	copy(out, in)
	return out
}
