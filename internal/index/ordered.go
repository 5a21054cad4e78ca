package index

import (
	"sort"

	"github.com/leengari/tabframe/internal/errs"
	"github.com/leengari/tabframe/internal/ref"
	"github.com/leengari/tabframe/internal/value"
)

// Ordered is the ordered / reverse-ordered index shape from §3.6/§4.4: a
// row-index vector sorted by the selector, ascending or descending.
type Ordered struct {
	base    ref.Frame
	sel     Selector
	order   []int // sorted row indices
	reverse bool
}

// BuildOrdered constructs an ordered (or, if reverse is true,
// reverse-ordered) index over the named columns (§4.4). Build is O(n log n).
func BuildOrdered(base ref.Frame, columns []string, reverse bool) (*Ordered, error) {
	sel, err := resolveSelector(base, columns)
	if err != nil {
		return nil, err
	}
	n := base.Rows()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	var sortErr error
	sort.SliceStable(order, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		a := rowRef(base, order[i], sel)
		b := rowRef(base, order[j], sel)
		c, err := a.Compare(b)
		if err != nil {
			sortErr = err
			return false
		}
		if reverse {
			return c > 0
		}
		return c < 0
	})
	if sortErr != nil {
		return nil, errs.New("index.BuildOrdered", errs.KindIndexConstruction, sortErr.Error())
	}

	return &Ordered{base: base, sel: sel, order: order, reverse: reverse}, nil
}

// Selector returns the columns this index is keyed on.
func (o *Ordered) Selector() Selector { return o.sel }

// Reverse reports whether this is a reverse-ordered index.
func (o *Ordered) Reverse() bool { return o.reverse }

// Len returns the number of rows in the sorted sequence.
func (o *Ordered) Len() int { return len(o.order) }

// At returns the underlying row index at the nth sorted position (§4.4).
func (o *Ordered) At(nth int) int { return o.order[nth] }

// keyAt returns the RowRef handle at sorted position i.
func (o *Ordered) keyAt(i int) ref.RowRef { return rowRef(o.base, o.order[i], o.sel) }

// less reports whether the value at sorted position i sorts before probe,
// respecting this index's direction.
func (o *Ordered) less(i int, probe []value.Value) (bool, error) {
	c, err := o.compareAt(i, probe)
	if err != nil {
		return false, err
	}
	if o.reverse {
		return c > 0, nil
	}
	return c < 0, nil
}

func (o *Ordered) compareAt(i int, probe []value.Value) (int, error) {
	key := o.keyAt(i)
	n := key.Len()
	for k := 0; k < n; k++ {
		a, err := key.At(k)
		if err != nil {
			return 0, err
		}
		var b value.Value
		if k < len(probe) {
			b = probe[k]
		} else {
			b = value.NewNull()
		}
		c, err := value.Compare(a, b)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

// bound is a range within the sorted sequence, [lo, hi).
type bound struct{ lo, hi int }

func fullRange(o *Ordered) bound { return bound{0, o.Len()} }

// FindFirstGE returns the first sorted position whose key is >= value under
// this index's direction, or the end of the searched range if all elements
// are strictly less (reverse: strictly greater) than value (§4.4).
func (o *Ordered) FindFirstGE(vals []value.Value, r ...bound) (int, error) {
	b := boundOrFull(o, r)
	pos := sort.Search(b.hi-b.lo, func(i int) bool {
		lt, err := o.less(b.lo+i, vals)
		if err != nil {
			panic(err)
		}
		return !lt
	}) + b.lo
	return pos, nil
}

// FindFirstGT returns the first sorted position whose key is strictly
// greater than value under this index's direction (§4.4).
func (o *Ordered) FindFirstGT(vals []value.Value, r ...bound) (int, error) {
	b := boundOrFull(o, r)
	pos := sort.Search(b.hi-b.lo, func(i int) bool {
		c, err := o.compareAt(b.lo+i, vals)
		if err != nil {
			panic(err)
		}
		if o.reverse {
			return c < 0
		}
		return c > 0
	}) + b.lo
	return pos, nil
}

// FindFirst returns the lower bound of value's equal range (§4.4).
func (o *Ordered) FindFirst(vals []value.Value, r ...bound) (int, error) {
	return o.FindFirstGE(vals, r...)
}

// FindLast returns the upper bound (exclusive) of value's equal range
// (§4.4): the position just past the last element equal to value.
func (o *Ordered) FindLast(vals []value.Value, r ...bound) (int, error) {
	return o.FindFirstGT(vals, r...)
}

// FindEqualRange returns [first, last) — the half-open range of sorted
// positions equal to value — computed as two independent bounded searches
// per §4.4, so the contract holds identically for reverse-ordered indices.
// Returns (p, p) with p==first when no element equals value.
func (o *Ordered) FindEqualRange(vals []value.Value, r ...bound) (int, int, error) {
	b := boundOrFull(o, r)
	first, err := o.FindFirst(vals, b)
	if err != nil {
		return 0, 0, err
	}
	last, err := o.FindLast(vals, bound{first, b.hi})
	if err != nil {
		return 0, 0, err
	}
	return first, last, nil
}

func boundOrFull(o *Ordered, r []bound) bound {
	if len(r) == 0 {
		return fullRange(o)
	}
	return r[0]
}

// Rows materializes the underlying row indices within [lo,hi).
func (o *Ordered) Rows(lo, hi int) []int {
	out := make([]int, hi-lo)
	copy(out, o.order[lo:hi])
	return out
}
