package ref

import "github.com/leengari/tabframe/internal/value"

// ColRef is a borrowed (frame, column, row-selector) handle (§3.5). A nil or
// empty selector means "all rows in frame order".
type ColRef struct {
	Base Frame
	Col  int
	Sel  []int // nil/empty => all rows
}

// Len returns the number of rows visible through this column reference.
func (c ColRef) Len() int {
	if len(c.Sel) > 0 {
		return len(c.Sel)
	}
	return c.Base.Rows()
}

func (c ColRef) rowAt(i int) int {
	if len(c.Sel) > 0 {
		return c.Sel[i]
	}
	return i
}

// At returns the value at the i-th selected row for this column.
func (c ColRef) At(i int) (value.Value, error) {
	return c.Base.Cell(c.rowAt(i), c.Col)
}
