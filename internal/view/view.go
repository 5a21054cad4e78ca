// Package view implements the non-owning projection from §3.4/§4.5: a
// (row-index vector, column-index vector) pair over exactly one underlying
// base frame, collapsing views-of-views so every view always points to the
// ultimate non-view base.
package view

import (
	"github.com/leengari/tabframe/internal/errs"
	"github.com/leengari/tabframe/internal/frame"
	"github.com/leengari/tabframe/internal/index"
	"github.com/leengari/tabframe/internal/ref"
	"github.com/leengari/tabframe/internal/schema"
	"github.com/leengari/tabframe/internal/value"
)

// View is a non-owning pair of index vectors over a base ref.Frame (§3.4).
type View struct {
	base ref.Frame
	rows []int // nil means "all base rows, in base order"
	cols []int // nil means "all base columns, in schema order"
}

// New builds a view restricted to rows and cols. If base is itself a View,
// the new view collapses to the ultimate base and composes index vectors
// (§4.5).
func New(base ref.Frame, rows, cols []int) (*View, error) {
	if v, ok := base.(*View); ok {
		return composeView(v, rows, cols)
	}
	if err := checkBounds(base, rows, cols); err != nil {
		return nil, err
	}
	return &View{base: base, rows: rows, cols: cols}, nil
}

// NewRows builds a view over all columns restricted to rows.
func NewRows(base ref.Frame, rows []int) (*View, error) { return New(base, rows, nil) }

// NewCols builds a view over all rows restricted to cols.
func NewCols(base ref.Frame, cols []int) (*View, error) { return New(base, nil, cols) }

func composeView(v *View, rows, cols []int) (*View, error) {
	composedRows := rows
	if rows != nil {
		composedRows = make([]int, len(rows))
		for i, r := range rows {
			if r < 0 || r >= v.Rows() {
				return nil, errs.New("view.New", errs.KindRangeViolation, "row index out of range").WithValue(r)
			}
			composedRows[i] = v.underlyingRow(r)
		}
	} else if v.rows != nil {
		composedRows = append([]int(nil), v.rows...)
	}

	composedCols := cols
	if cols != nil {
		composedCols = make([]int, len(cols))
		for i, c := range cols {
			if c < 0 || c >= v.Cols() {
				return nil, errs.New("view.New", errs.KindRangeViolation, "column index out of range").WithValue(c)
			}
			composedCols[i] = v.underlyingCol(c)
		}
	} else if v.cols != nil {
		composedCols = append([]int(nil), v.cols...)
	}

	if err := checkBounds(v.base, composedRows, composedCols); err != nil {
		return nil, err
	}
	return &View{base: v.base, rows: composedRows, cols: composedCols}, nil
}

func checkBounds(base ref.Frame, rows, cols []int) error {
	for _, r := range rows {
		if r < 0 || r >= base.Rows() {
			return errs.New("view.New", errs.KindRangeViolation, "row index out of range").WithValue(r)
		}
	}
	for _, c := range cols {
		if c < 0 || c >= base.Cols() {
			return errs.New("view.New", errs.KindRangeViolation, "column index out of range").WithValue(c)
		}
	}
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		name, err := base.ColName(c)
		if err != nil {
			return err
		}
		if seen[name] {
			return errs.New("view.New", errs.KindSchemaViolation, "duplicate column name in view").WithColumn(name)
		}
		seen[name] = true
	}
	return nil
}

// Underlying returns the ultimate non-view base frame (§4.5).
func (v *View) Underlying() ref.Frame { return v.base }

// UnderlyingRow translates a view row index to the base's row index.
func (v *View) UnderlyingRow(i int) int { return v.underlyingRow(i) }

// UnderlyingCol translates a view column index to the base's column index.
func (v *View) UnderlyingCol(j int) int { return v.underlyingCol(j) }

func (v *View) underlyingRow(i int) int {
	if v.rows == nil {
		return i
	}
	return v.rows[i]
}

func (v *View) underlyingCol(j int) int {
	if v.cols == nil {
		return j
	}
	return v.cols[j]
}

// Rows returns the number of rows visible through the view.
func (v *View) Rows() int {
	if v.rows == nil {
		return v.base.Rows()
	}
	return len(v.rows)
}

// Cols returns the number of columns visible through the view.
func (v *View) Cols() int {
	if v.cols == nil {
		return v.base.Cols()
	}
	return len(v.cols)
}

// Shape returns (Rows(), Cols()).
func (v *View) Shape() (int, int) { return v.Rows(), v.Cols() }

// IsView always reports true.
func (v *View) IsView() bool { return true }

// Cell returns v.Base.Cell(v.UnderlyingRow(row), v.UnderlyingCol(col)),
// the view-composition invariant from §8.1.
func (v *View) Cell(row, col int) (value.Value, error) {
	if row < 0 || row >= v.Rows() || col < 0 || col >= v.Cols() {
		return value.Value{}, errs.New("view.Cell", errs.KindRangeViolation, "index out of range").WithValue([2]int{row, col})
	}
	return v.base.Cell(v.underlyingRow(row), v.underlyingCol(col))
}

// CellByName returns the value at (row, colname), colname resolved against
// the view's own visible name set.
func (v *View) CellByName(row int, name string) (value.Value, error) {
	col, err := v.ColIndex(name)
	if err != nil {
		return value.Value{}, err
	}
	return v.Cell(row, col)
}

// ColIndex resolves a column name against the view's visible columns.
func (v *View) ColIndex(name string) (int, error) {
	n := v.Cols()
	for i := 0; i < n; i++ {
		nm, err := v.ColName(i)
		if err != nil {
			return -1, err
		}
		if nm == name {
			return i, nil
		}
	}
	return -1, errs.New("view.ColIndex", errs.KindSchemaViolation, "unknown column").WithColumn(name)
}

// ColName returns the i-th visible column's name.
func (v *View) ColName(i int) (string, error) {
	if i < 0 || i >= v.Cols() {
		return "", errs.New("view.ColName", errs.KindRangeViolation, "column index out of range").WithValue(i)
	}
	return v.base.ColName(v.underlyingCol(i))
}

// ColDef returns the i-th visible column's descriptor.
func (v *View) ColDef(i int) (schema.ColumnDef, error) {
	if i < 0 || i >= v.Cols() {
		return schema.ColumnDef{}, errs.New("view.ColDef", errs.KindRangeViolation, "column index out of range").WithValue(i)
	}
	return v.base.ColDef(v.underlyingCol(i))
}

// ColDefByName returns the descriptor of the visible column named name.
func (v *View) ColDefByName(name string) (schema.ColumnDef, error) {
	i, err := v.ColIndex(name)
	if err != nil {
		return schema.ColumnDef{}, err
	}
	return v.ColDef(i)
}

// RowRef returns a borrowed handle over view row r spanning all visible
// columns, resolved against the ultimate base frame.
func (v *View) RowRef(r int) ref.RowRef {
	n := v.Cols()
	sel := make([]int, n)
	for i := 0; i < n; i++ {
		sel[i] = v.underlyingCol(i)
	}
	return ref.RowRef{Base: v.base, Row: v.underlyingRow(r), Sel: sel}
}

// ColRef returns a borrowed handle over view column c spanning all visible
// rows, resolved against the ultimate base frame.
func (v *View) ColRef(c int) ref.ColRef {
	n := v.Rows()
	sel := make([]int, n)
	for i := 0; i < n; i++ {
		sel[i] = v.underlyingRow(i)
	}
	return ref.ColRef{Base: v.base, Col: v.underlyingCol(c), Sel: sel}
}

// SortBy builds an ordered multi-column index over the view itself, then
// replaces the view's row-index vector with the index's row ordering
// composed with the view's previous row mapping (§4.5). The column
// projection is unchanged.
func (v *View) SortBy(colNames []string, reverse bool) (*View, error) {
	ord, err := index.BuildOrdered(v, colNames, reverse)
	if err != nil {
		return nil, err
	}
	newRows := make([]int, ord.Len())
	for i := 0; i < ord.Len(); i++ {
		newRows[i] = v.underlyingRow(ord.At(i))
	}
	return &View{base: v.base, rows: newRows, cols: v.cols}, nil
}

// DeepCopy materializes the view's visible rows and columns into a new
// owned frame, independent of the view's base (§4.5, §6.2). Schema and
// values are equal to the view's by value; mutating the result never
// affects the view or its base.
func (v *View) DeepCopy() (*frame.Frame, error) {
	cols := make([]schema.ColumnDef, v.Cols())
	for c := range cols {
		def, err := v.ColDef(c)
		if err != nil {
			return nil, err
		}
		cols[c] = def
	}
	sc, err := schema.New(cols)
	if err != nil {
		return nil, err
	}
	cp := frame.New(sc)
	for r := 0; r < v.Rows(); r++ {
		vals := make([]value.Value, v.Cols())
		for c := 0; c < v.Cols(); c++ {
			cell, err := v.Cell(r, c)
			if err != nil {
				return nil, err
			}
			vals[c] = cell
		}
		if err := cp.AppendValues(vals); err != nil {
			return nil, err
		}
	}
	return cp, nil
}

var _ ref.Frame = (*View)(nil)
