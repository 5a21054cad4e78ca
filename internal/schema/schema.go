// Package schema implements the column descriptor and schema types from
// §3.2, grounded on the teacher's Column/TableSchema pair.
package schema

import (
	"fmt"

	"github.com/leengari/tabframe/internal/errs"
	"github.com/leengari/tabframe/internal/value"
)

// ColumnDef is a {tag, name} pair (§3.2).
type ColumnDef struct {
	Name string
	Tag  value.Tag
}

// Schema is an ordered sequence of column descriptors with unique names,
// plus the name->index map the frame maintains alongside it (§3.2, §3.3).
type Schema struct {
	cols    []ColumnDef
	byName  map[string]int
}

// New builds a schema from descriptors, failing on duplicate names.
func New(cols []ColumnDef) (*Schema, error) {
	byName := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := byName[c.Name]; dup {
			return nil, errs.New("schema.New", errs.KindSchemaViolation, "duplicate column name").WithColumn(c.Name)
		}
		byName[c.Name] = i
	}
	out := make([]ColumnDef, len(cols))
	copy(out, cols)
	return &Schema{cols: out, byName: byName}, nil
}

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.cols) }

// At returns the i-th column descriptor.
func (s *Schema) At(i int) ColumnDef { return s.cols[i] }

// Columns returns a defensive copy of the descriptor slice, preserving
// schema order.
func (s *Schema) Columns() []ColumnDef {
	out := make([]ColumnDef, len(s.cols))
	copy(out, s.cols)
	return out
}

// IndexOf resolves a column name to its position, failing if unknown.
func (s *Schema) IndexOf(name string) (int, error) {
	i, ok := s.byName[name]
	if !ok {
		return -1, errs.New("schema.IndexOf", errs.KindSchemaViolation, "unknown column").WithColumn(name)
	}
	return i, nil
}

// HasColumn reports whether name exists in the schema.
func (s *Schema) HasColumn(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Clone returns an independent copy of s.
func (s *Schema) Clone() *Schema {
	cp, _ := New(s.Columns())
	return cp
}

func (s *Schema) String() string {
	return fmt.Sprintf("Schema(%v)", s.cols)
}
