package ref

import "github.com/leengari/tabframe/internal/value"

// RowRef is a borrowed (frame, row, column-selector) handle (§3.5). A nil or
// empty selector means "all columns in schema order". Row-refs are the
// handle keys stored inside single- and multi-column indices.
type RowRef struct {
	Base Frame
	Row  int
	Sel  []int // nil/empty => all columns
}

// Len returns the arity of the selector (1 or k), or Base.Cols() when the
// selector is absent.
func (r RowRef) Len() int {
	if len(r.Sel) > 0 {
		return len(r.Sel)
	}
	return r.Base.Cols()
}

// colAt maps a position within the selector to an absolute column index.
func (r RowRef) colAt(i int) int {
	if len(r.Sel) > 0 {
		return r.Sel[i]
	}
	return i
}

// At returns the i-th selected cell's value.
func (r RowRef) At(i int) (value.Value, error) {
	return r.Base.Cell(r.Row, r.colAt(i))
}

// Values materializes every selected cell into a slice.
func (r RowRef) Values() ([]value.Value, error) {
	n := r.Len()
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		v, err := r.At(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Compare orders two row-refs lexicographically across their selected
// columns, using value.Compare's Null/numeric rules at each position (§3.5).
// The two refs must have equal selector arity.
func (r RowRef) Compare(o RowRef) (int, error) {
	n := r.Len()
	for i := 0; i < n; i++ {
		a, err := r.At(i)
		if err != nil {
			return 0, err
		}
		b, err := o.At(i)
		if err != nil {
			return 0, err
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

// Equal reports row-ref equality position-by-position using value.Equal.
func (r RowRef) Equal(o RowRef) (bool, error) {
	n := r.Len()
	for i := 0; i < n; i++ {
		a, err := r.At(i)
		if err != nil {
			return false, err
		}
		b, err := o.At(i)
		if err != nil {
			return false, err
		}
		if !value.Equal(a, b) {
			return false, nil
		}
	}
	return true, nil
}

// Hash combines the hash of each selected cell into a single key hash,
// consistent with Equal: two row-refs that Equal reports equal always hash
// equal. Used by hash and hash-multi indices.
func (r RowRef) Hash() (uint64, error) {
	n := r.Len()
	var h uint64 = 1469598103934665603 // FNV offset basis, arbitrary seed
	for i := 0; i < n; i++ {
		v, err := r.At(i)
		if err != nil {
			return 0, err
		}
		h ^= value.Hash(v)
		h *= 1099511628211 // FNV prime
	}
	return h, nil
}
