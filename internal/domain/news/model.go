package news

// Article is one news headline. Published is kept verbatim from upstream.
type Article struct {
	Headline    string
	URL         string
	Description string
	Published   string
}

// Limit returns at most n articles, preserving order.
func Limit(items []Article, n int) []Article {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
