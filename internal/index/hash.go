package index

import (
	"github.com/leengari/tabframe/internal/errs"
	"github.com/leengari/tabframe/internal/ref"
	"github.com/leengari/tabframe/internal/value"
)

// bucketEntry pairs a handle key with the row(s) that produced it. Multiple
// entries can share a hash bucket (hash collision); Contains/Lookup walk the
// bucket comparing keys by dereferencing through the base frame (§4.3).
type bucketEntry struct {
	key  ref.RowRef
	rows []int // insertion order
}

// Hash is the hash / hash-multi index shape from §3.6/§4.3. Uniqueness is
// observed, not enforced by the key type: a "hash" index is a "hash-multi"
// that rejected duplicates at build time.
type Hash struct {
	base     ref.Frame
	sel      Selector
	unique   bool
	multi    bool // set once any bucket grows past one row
	buckets  map[uint64][]bucketEntry
	size     int
}

// BuildHash constructs a hash index over the named columns (§4.3). If
// unique is true, construction fails on the first observed duplicate key
// (§7 kind 3), leaving no index published.
func BuildHash(base ref.Frame, columns []string, unique bool) (*Hash, error) {
	sel, err := resolveSelector(base, columns)
	if err != nil {
		return nil, err
	}
	h := &Hash{base: base, sel: sel, unique: unique, buckets: make(map[uint64][]bucketEntry)}
	n := base.Rows()
	for r := 0; r < n; r++ {
		key := rowRef(base, r, sel)
		hv, err := key.Hash()
		if err != nil {
			return nil, errs.New("index.BuildHash", errs.KindIndexConstruction, err.Error()).WithRow(r)
		}
		if err := h.insert(hv, key, r); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Hash) insert(hv uint64, key ref.RowRef, row int) error {
	bucket := h.buckets[hv]
	for i := range bucket {
		eq, err := bucket[i].key.Equal(key)
		if err != nil {
			return errs.New("index.Hash.insert", errs.KindIndexConstruction, err.Error()).WithRow(row)
		}
		if eq {
			if h.unique {
				vals, _ := key.Values()
				return errs.New("index.BuildHash", errs.KindIndexConstruction, "duplicate key for unique index").
					WithValue(renderKey(vals)).WithRow(row)
			}
			bucket[i].rows = append(bucket[i].rows, row)
			h.multi = true
			h.size++
			h.buckets[hv] = bucket
			return nil
		}
	}
	h.buckets[hv] = append(bucket, bucketEntry{key: key, rows: []int{row}})
	h.size++
	return nil
}

func renderKey(vals []value.Value) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v.Raw()
	}
	return out
}

// IsUnique reports whether this index was built with uniqueness enforced.
// Such a build fails on the first duplicate, so it never holds one; a
// non-unique build reports false even when its keys happen to be distinct.
func (h *Hash) IsUnique() bool { return h.unique && !h.multi }

// IsMulti reports whether any key holds more than one row.
func (h *Hash) IsMulti() bool { return h.multi }

// Selector returns the columns this index is keyed on.
func (h *Hash) Selector() Selector { return h.sel }

// Lookup returns every row whose key equals the values in vals, in
// ascending source (insertion) order (§8.1 "Hash-multi ordering"). Returns
// (nil, false) if the key is absent.
func (h *Hash) Lookup(vals []value.Value) ([]int, bool) {
	hv, ok := hashValues(vals)
	if !ok {
		return nil, false
	}
	for _, e := range h.buckets[hv] {
		ev, err := e.key.Values()
		if err != nil {
			continue
		}
		if valuesEqual(ev, vals) {
			return e.rows, true
		}
	}
	return nil, false
}

// At mirrors §4.7's "at(value)" dispatch entry: for a unique index it
// returns the single row; for hash-multi it returns the full row set.
func (h *Hash) At(vals []value.Value) ([]int, bool) {
	return h.Lookup(vals)
}

func hashValues(vals []value.Value) (uint64, bool) {
	var hv uint64 = 1469598103934665603
	for _, v := range vals {
		hv ^= value.Hash(v)
		hv *= 1099511628211
	}
	return hv, true
}

func valuesEqual(a, b []value.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !value.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Size returns the number of distinct keys stored.
func (h *Hash) Size() int {
	n := 0
	for _, b := range h.buckets {
		n += len(b)
	}
	return n
}
