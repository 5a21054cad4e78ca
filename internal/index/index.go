// Package index implements the hash, hash-multi, ordered, and
// reverse-ordered index shapes from §3.6/§4.3/§4.4, built over the borrowed
// reference handles in package ref rather than owned copies of cell data.
//
// Per §9's design note, selector back-references use option (b): every
// index stores its column selector once, by value, and handle keys carry
// (base, row, selector) rather than a pointer into the index's own storage.
// Moving or copying an index struct therefore never requires a fix-up pass.
package index

import (
	"github.com/leengari/tabframe/internal/errs"
	"github.com/leengari/tabframe/internal/ref"
)

// Category is the equivalence class the planner and the façade catalogue
// key indices by (GLOSSARY: "Category").
type Category int

const (
	CategoryHash Category = iota
	CategoryOrdered
)

func (c Category) String() string {
	switch c {
	case CategoryHash:
		return "hash"
	case CategoryOrdered:
		return "ordered"
	default:
		return "unknown"
	}
}

// Selector is the column-index list an index is keyed on (GLOSSARY:
// "Selector"). It is copied into every index at construction and never
// mutated afterward, so it is always safe to share across handle keys.
type Selector []int

// Key returns a Selector suitable for use as a Go map key alongside a
// Category to identify a catalogue entry (§3.7).
func (s Selector) Key() string {
	b := make([]byte, 0, len(s)*4)
	for _, c := range s {
		b = append(b, byte(c>>24), byte(c>>16), byte(c>>8), byte(c))
	}
	return string(b)
}

func resolveSelector(base ref.Frame, columns []string) (Selector, error) {
	sel := make(Selector, len(columns))
	for i, name := range columns {
		idx, err := base.ColIndex(name)
		if err != nil {
			return nil, errs.New("index.resolveSelector", errs.KindIndexConstruction, "unknown column").WithColumn(name)
		}
		sel[i] = idx
	}
	return sel, nil
}

func rowRef(base ref.Frame, row int, sel Selector) ref.RowRef {
	return ref.RowRef{Base: base, Row: row, Sel: sel}
}
