// Package table implements the frame-with-indices façade from §3.7/§4.8: a
// frame plus an index catalogue keyed by (category, column-selector) and a
// secondary name map, with append operations that invalidate the catalogue
// per §5's invalidation rule.
package table

import (
	"strings"

	"github.com/leengari/tabframe/internal/errs"
	"github.com/leengari/tabframe/internal/frame"
	"github.com/leengari/tabframe/internal/index"
	"github.com/leengari/tabframe/internal/value"
)

// Kind names the four concrete index shapes from §3.6, mapped onto the two
// index.Category implementations by a unique/reverse flag (§9 design note).
type Kind int

const (
	KindHash Kind = iota
	KindHashUnique
	KindOrdered
	KindReverseOrdered
)

func (k Kind) category() index.Category {
	if k == KindHash || k == KindHashUnique {
		return index.CategoryHash
	}
	return index.CategoryOrdered
}

type entry struct {
	category index.Category
	columns  []string
	hash     *index.Hash
	ordered  *index.Ordered
}

type catKey struct {
	category index.Category
	sel      string
}

func columnKey(columns []string) string { return strings.Join(columns, "\x00") }

// Indexed owns a frame and its index catalogue (§3.7). Every entry in the
// catalogue always refers to the owned frame; append operations performed
// through Indexed invalidate the whole catalogue.
type Indexed struct {
	f         *frame.Frame
	version   uint64
	catalogue map[catKey]*entry
	names     map[string]*entry
}

// New builds a façade over f. f is owned by the façade from this point on;
// callers should not mutate it directly (use Indexed's Append* methods).
// After a direct append, Select and AddIndex fail with KindStaleIndex while
// the catalogue still holds indices built before it; with an empty
// catalogue they proceed.
func New(f *frame.Frame) *Indexed {
	return &Indexed{
		f:         f,
		version:   f.Version(),
		catalogue: make(map[catKey]*entry),
		names:     make(map[string]*entry),
	}
}

// Frame returns the owned frame for read access (e.g. by a printer).
func (t *Indexed) Frame() *frame.Frame { return t.f }

func (t *Indexed) checkFresh(op string) error {
	if len(t.catalogue) > 0 && t.f.Version() != t.version {
		return errs.New(op, errs.KindStaleIndex, "frame was appended to after indices were built; rebuild or clear indices")
	}
	return nil
}

// AddIndex resolves columns, constructs the concrete index for kind, and
// inserts it into the catalogue and (if name != "") the name map (§4.8).
// Fails if name is already registered, if the (category, columns) key is
// already present, or if kind is hash-unique and a duplicate key is
// observed during construction.
func (t *Indexed) AddIndex(kind Kind, columns []string, name string) error {
	if err := t.checkFresh("table.AddIndex"); err != nil {
		return err
	}
	if name != "" {
		if _, exists := t.names[name]; exists {
			return errs.New("table.AddIndex", errs.KindIndexConstruction, "index name already registered").WithValue(name)
		}
	}
	key := catKey{category: kind.category(), sel: columnKey(columns)}
	if _, exists := t.catalogue[key]; exists {
		return errs.New("table.AddIndex", errs.KindIndexConstruction, "an index over this (category, columns) already exists").WithValue(columns)
	}

	e := &entry{category: key.category, columns: append([]string(nil), columns...)}
	switch kind {
	case KindHash, KindHashUnique:
		h, err := index.BuildHash(t.f, columns, kind == KindHashUnique)
		if err != nil {
			return err
		}
		e.hash = h
	case KindOrdered, KindReverseOrdered:
		o, err := index.BuildOrdered(t.f, columns, kind == KindReverseOrdered)
		if err != nil {
			return err
		}
		e.ordered = o
	default:
		return errs.New("table.AddIndex", errs.KindIndexConstruction, "unknown index kind")
	}

	t.catalogue[key] = e
	if name != "" {
		t.names[name] = e
	}
	t.version = t.f.Version()
	return nil
}

// RemoveIndex removes the named index from both the catalogue and the name
// map (§4.8).
func (t *Indexed) RemoveIndex(name string) error {
	e, ok := t.names[name]
	if !ok {
		return errs.New("table.RemoveIndex", errs.KindIndexConstruction, "no index registered under this name").WithValue(name)
	}
	delete(t.names, name)
	delete(t.catalogue, catKey{category: e.category, sel: columnKey(e.columns)})
	return nil
}

// ClearIndices empties both the catalogue and the name map.
func (t *Indexed) ClearIndices() {
	t.catalogue = make(map[catKey]*entry)
	t.names = make(map[string]*entry)
}

// HashFor implements planner.Catalog: exact-selector lookup among
// registered hash indices.
func (t *Indexed) HashFor(columns []string) (*index.Hash, bool) {
	e, ok := t.catalogue[catKey{category: index.CategoryHash, sel: columnKey(columns)}]
	if !ok || e.hash == nil {
		return nil, false
	}
	return e.hash, true
}

// OrderedFor implements planner.Catalog: exact-selector lookup among
// registered ordered indices (forward or reverse — the planner's bounds
// logic handles both directions transparently).
func (t *Indexed) OrderedFor(columns []string) (*index.Ordered, bool) {
	e, ok := t.catalogue[catKey{category: index.CategoryOrdered, sel: columnKey(columns)}]
	if !ok || e.ordered == nil {
		return nil, false
	}
	return e.ordered, true
}

// AppendRowStrings appends a string row and invalidates the catalogue on
// success (§5's façade invalidation rule).
func (t *Indexed) AppendRowStrings(raw []string) error {
	if err := t.f.AppendRowStrings(raw); err != nil {
		return err
	}
	t.ClearIndices()
	t.version = t.f.Version()
	return nil
}

// AppendValues appends a value row and invalidates the catalogue on
// success.
func (t *Indexed) AppendValues(vals []value.Value) error {
	if err := t.f.AppendValues(vals); err != nil {
		return err
	}
	t.ClearIndices()
	t.version = t.f.Version()
	return nil
}

// Append merges other into the owned frame and invalidates the catalogue on
// success.
func (t *Indexed) Append(other *frame.Frame) error {
	if err := t.f.Append(other); err != nil {
		return err
	}
	t.ClearIndices()
	t.version = t.f.Version()
	return nil
}
