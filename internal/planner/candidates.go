package planner

import (
	"sort"

	"github.com/leengari/tabframe/internal/index"
	"github.com/leengari/tabframe/internal/predicate"
	"github.com/leengari/tabframe/internal/value"
)

// candidateRows attempts to resolve leaf against an index in cat matching
// its column selector exactly (§4.7's dispatch table). ok is false when no
// index covers this leaf's operator/column combination and the caller must
// fall back to a scan.
func candidateRows(leaf *predicate.LeafCond, cat Catalog) (rows []int, ok bool, err error) {
	switch leaf.Op {
	case predicate.EQ:
		if h, found := cat.HashFor(leaf.ColNames); found {
			r, hit := h.Lookup(leaf.Rows[0])
			if !hit {
				return []int{}, true, nil
			}
			return append([]int(nil), r...), true, nil
		}
		if o, found := cat.OrderedFor(leaf.ColNames); found {
			first, last, err := o.FindEqualRange(leaf.Rows[0])
			if err != nil {
				return nil, false, err
			}
			return o.Rows(first, last), true, nil
		}
		return nil, false, nil

	case predicate.ISIN:
		if h, found := cat.HashFor(leaf.ColNames); found {
			var out []int
			for _, cand := range leaf.Rows {
				if r, hit := h.Lookup(cand); hit {
					out = append(out, r...)
				}
			}
			return dedupeSort(out), true, nil
		}
		if o, found := cat.OrderedFor(leaf.ColNames); found {
			var out []int
			for _, cand := range leaf.Rows {
				first, last, err := o.FindEqualRange(cand)
				if err != nil {
					return nil, false, err
				}
				out = append(out, o.Rows(first, last)...)
			}
			return dedupeSort(out), true, nil
		}
		return nil, false, nil

	case predicate.LT, predicate.LE, predicate.GT, predicate.GE:
		if o, found := cat.OrderedFor(leaf.ColNames); found {
			lo, hi, err := boundsFor(o, leaf.Op, leaf.Rows[0])
			if err != nil {
				return nil, false, err
			}
			return o.Rows(lo, hi), true, nil
		}
		return nil, false, nil

	case predicate.NE:
		if o, found := cat.OrderedFor(leaf.ColNames); found {
			rows, err := complementViaOrdered(o, leaf.Rows[:1])
			if err != nil {
				return nil, false, err
			}
			return rows, true, nil
		}
		// No ordered index over this selector: a hash lookup only returns
		// matches, not a complement, so there is nothing cheaper than a scan.
		return nil, false, nil

	case predicate.NOTIN:
		if o, found := cat.OrderedFor(leaf.ColNames); found {
			rows, err := complementViaOrdered(o, leaf.Rows)
			if err != nil {
				return nil, false, err
			}
			return rows, true, nil
		}
		return nil, false, nil

	default:
		return nil, false, nil
	}
}

// complementViaOrdered returns every row of o NOT covered by the equal-range
// of any tuple in valSets (§4.7's NE/NOTIN complement path, §9's "sorted
// exclusion vector, one pass of iota with gap-filling"): the excluded
// positions form disjoint sorted spans since o is sorted, so a single
// left-to-right walk collecting the gaps between spans yields the result.
func complementViaOrdered(o *index.Ordered, valSets [][]value.Value) ([]int, error) {
	type span struct{ lo, hi int }
	spans := make([]span, 0, len(valSets))
	for _, vals := range valSets {
		lo, hi, err := o.FindEqualRange(vals)
		if err != nil {
			return nil, err
		}
		if lo < hi {
			spans = append(spans, span{lo, hi})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	n := o.Len()
	out := make([]int, 0, n)
	pos := 0
	for _, sp := range spans {
		for pos < sp.lo {
			out = append(out, o.At(pos))
			pos++
		}
		if pos < sp.hi {
			pos = sp.hi
		}
	}
	for pos < n {
		out = append(out, o.At(pos))
		pos++
	}
	return out, nil
}

// boundsFor computes the [lo,hi) sorted-position range of o's rows
// satisfying op against vals. An ordered index sorts ascending by actual
// value when !o.Reverse() and descending when o.Reverse(); the four cases
// below translate the operator into the matching prefix/suffix of the
// index's own sorted sequence so the same table works for both directions.
func boundsFor(o *index.Ordered, op predicate.Op, vals []value.Value) (lo, hi int, err error) {
	ge, err := o.FindFirstGE(vals)
	if err != nil {
		return 0, 0, err
	}
	gt, err := o.FindFirstGT(vals)
	if err != nil {
		return 0, 0, err
	}
	n := o.Len()
	if !o.Reverse() {
		switch op {
		case predicate.LT:
			return 0, ge, nil
		case predicate.LE:
			return 0, gt, nil
		case predicate.GE:
			return ge, n, nil
		case predicate.GT:
			return gt, n, nil
		}
	} else {
		switch op {
		case predicate.GT:
			return 0, ge, nil
		case predicate.LE:
			return ge, n, nil
		case predicate.GE:
			return 0, gt, nil
		case predicate.LT:
			return gt, n, nil
		}
	}
	return 0, n, nil
}
