package history

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Search returns records whose URL fuzzily matches query, newest first. Each
// URL appears once. An empty query returns every distinct URL.
func (h *History) Search(query string) []Record {
	seen := make(map[string]bool, len(h.records))
	var newestFirst []Record
	for i := len(h.records) - 1; i >= 0; i-- {
		r := h.records[i]
		if seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		newestFirst = append(newestFirst, r)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return newestFirst
	}
	targets := make([]string, len(newestFirst))
	for i, r := range newestFirst {
		targets[i] = r.URL
	}
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]Record, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, newestFirst[rank.OriginalIndex])
	}
	return out
}
