package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SuggestTypes returns up to limit candidates matching query. Exact and
// prefix matches come first, then fuzzy matches by distance. An empty query
// suggests nothing.
func SuggestTypes(query string, candidates []string, limit int) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || limit <= 0 {
		return nil
	}
	lower := strings.ToLower(trimmed)

	seen := make(map[int]struct{}, len(candidates))
	var out []string
	add := func(idx int) {
		if _, ok := seen[idx]; ok {
			return
		}
		seen[idx] = struct{}{}
		out = append(out, candidates[idx])
	}

	for i, c := range candidates {
		if strings.EqualFold(c, trimmed) {
			add(i)
		}
	}
	for i, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			add(i)
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, candidates)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	for _, rank := range ranks {
		add(rank.OriginalIndex)
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
