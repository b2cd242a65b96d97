package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// Match tiers, lower is better
const (
	tierExact = iota
	tierPrefix
	tierWordPrefix
	tierContains
	tierFuzzy
)

type candidate struct {
	item     domain.Item
	tier     int
	distance int
}

// Rank orders items by how well their name matches query and keeps at most limit.
// Substring hits rank by position of the match, then by edit distance to the
// query. Items without a substring hit are kept only when a word of their name is
// within a small edit distance of the query.
func Rank(query string, items []domain.Item, limit int) []domain.Item {
	q := Normalize(query)
	cands := make([]candidate, 0, len(items))
	for _, it := range items {
		name := Normalize(it.Name)
		c := candidate{item: it, distance: levenshtein.ComputeDistance(q, name)}
		switch {
		case name == q:
			c.tier = tierExact
		case strings.HasPrefix(name, q):
			c.tier = tierPrefix
		case hasWordPrefix(name, q):
			c.tier = tierWordPrefix
		case strings.Contains(name, q):
			c.tier = tierContains
		default:
			d, ok := closestWord(name, q)
			if !ok {
				continue
			}
			c.tier = tierFuzzy
			c.distance = d
		}
		cands = append(cands, c)
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].tier != cands[j].tier {
			return cands[i].tier < cands[j].tier
		}
		if cands[i].distance != cands[j].distance {
			return cands[i].distance < cands[j].distance
		}
		if cands[i].item.Name != cands[j].item.Name {
			return cands[i].item.Name < cands[j].item.Name
		}
		return cands[i].item.ID < cands[j].item.ID
	})

	if limit > 0 && len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]domain.Item, len(cands))
	for i, c := range cands {
		out[i] = c.item
	}
	return out
}

func hasWordPrefix(name, q string) bool {
	for _, w := range strings.Fields(name) {
		if strings.HasPrefix(w, q) {
			return true
		}
	}
	return false
}

// closestWord returns the smallest edit distance between q and any word of name,
// if it is within the tolerance for q's length.
func closestWord(name, q string) (int, bool) {
	if len(q) < minFuzzyLength {
		return 0, false
	}
	best := -1
	for _, w := range strings.Fields(name) {
		d := levenshtein.ComputeDistance(q, w)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 || best > levenshteinLimit(len(q)) {
		return 0, false
	}
	return best, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
