package planner

import (
	"sort"

	"github.com/leengari/tabframe/internal/predicate"
	"github.com/leengari/tabframe/internal/ref"
)

// planAnd implements §4.7's two-phase AND algorithm.
//
// Phase A (fast): every leaf child is offered to candidateRows. A leaf
// whose index-derived candidate set is served maintains a running
// intersection with every other index-backed leaf's candidate set — not
// just the single smallest one — so two indexed leaves in the same
// conjunction narrow each other down before any row is evaluated per-row.
// An intersection that reaches empty ends the whole conjunction
// immediately (an empty set can never grow). The search stops early the
// moment the running intersection is at or under n/8 rows, since a set
// that selective is already fast enough to refine and narrowing it further
// has diminishing returns.
//
// Phase B (refine): every leaf the index phase could not consume is
// evaluated per-row against the running intersection.
//
// If no child leaf can be served by any index, the whole conjunction falls
// back to a full scan.
func planAnd(base ref.Frame, and *predicate.AndCond, cat Catalog, obs Observer) ([]int, error) {
	n := base.Rows()
	threshold := n / 8

	var intersection []int
	haveIndex := false
	consumed := make(map[int]bool, len(and.Children))
	var usedCols []string

	for i, leaf := range and.Children {
		rows, ok, err := candidateRows(leaf, cat)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		sort.Ints(rows)
		consumed[i] = true
		usedCols = append(usedCols, leaf.ColNames...)

		if !haveIndex {
			intersection = rows
			haveIndex = true
		} else {
			intersection = sortedIntersect(intersection, rows)
		}

		if len(intersection) == 0 {
			if obs != nil {
				obs.OnEmptyShortCircuit(leaf.ColNames)
			}
			return []int{}, nil
		}
		if threshold > 0 && len(intersection) <= threshold {
			break
		}
	}

	if !haveIndex {
		if obs != nil {
			obs.OnFullScan(n)
		}
		return scanAnd(base, and)
	}

	if obs != nil {
		obs.OnFastPath(usedCols, len(intersection))
	}

	out := make([]int, 0, len(intersection))
	for _, r := range intersection {
		matched := true
		for j, leaf := range and.Children {
			if consumed[j] {
				continue
			}
			ok, err := leaf.EvalAtRow(base, r)
			if err != nil {
				return nil, err
			}
			if !ok {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, r)
		}
	}
	if obs != nil {
		obs.OnRefinePath(len(intersection), len(out))
	}
	return out, nil
}

// sortedIntersect merges two ascending, deduplicated row-index vectors into
// their intersection in one linear pass.
func sortedIntersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
