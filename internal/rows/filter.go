package rows

import (
	"github.com/sahilm/fuzzy"
)

// source adapts rows to fuzzy.Source, matching on "title subtitle".
type source []Row

func (s source) String(i int) string {
	return s[i].Title() + " " + s[i].Subtitle()
}

func (s source) Len() int {
	return len(s)
}

// Filter returns the rows that fuzzily match query, best match first.
// Rows keep their Rank. An empty query returns rs unchanged.
func Filter(rs []Row, query string) []Row {
	if query == "" {
		return rs
	}

	matches := fuzzy.FindFrom(query, source(rs))
	out := make([]Row, len(matches))
	for i, m := range matches {
		out[i] = rs[m.Index]
	}
	return out
}
