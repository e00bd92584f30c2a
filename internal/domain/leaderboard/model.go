package leaderboard

// Field is a labelled secondary column shown next to the ranked value.
type Field struct {
	Label string
	Value string
}

// Entry is one raw leader row as read from upstream.
type Entry struct {
	Player string
	Team   string
	Value  string
	Extras []Field
}

// Row is one ranked line of a Table.
type Row struct {
	Rank        int
	RankDisplay string
	Tied        bool
	Player      string
	Team        string
	Value       string
	Extras      []Field
}

// Table is the ranked view of a single stat category.
type Table struct {
	StatName          string
	AscendingIsBetter bool
	Rows              []Row
}

func (t Table) Len() int {
	return len(t.Rows)
}

func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}
