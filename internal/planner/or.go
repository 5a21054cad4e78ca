package planner

import (
	"sort"

	"github.com/leengari/tabframe/internal/predicate"
	"github.com/leengari/tabframe/internal/ref"
)

// planOr evaluates each disjunct independently via planAnd and unions the
// results, de-duplicating rows that satisfy more than one disjunct (§4.7).
func planOr(base ref.Frame, or *predicate.OrCond, cat Catalog, obs Observer) ([]int, error) {
	seen := make(map[int]bool)
	out := make([]int, 0)
	for _, and := range or.Children {
		rows, err := planAnd(base, and, cat, obs)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	sort.Ints(out)
	return out, nil
}
