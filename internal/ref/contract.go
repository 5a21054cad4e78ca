// Package ref implements the non-owning borrow handles (§3.5) that let
// indices and the planner store keys without copying frame data: row and
// (typed) column references, plus the Frame contract (§6.2) they
// are built against. Both frame.Frame and view.View implement Frame.
package ref

import (
	"github.com/leengari/tabframe/internal/schema"
	"github.com/leengari/tabframe/internal/value"
)

// Frame is the contract every consumer (index, planner, printer) programs
// against, satisfied by both an owned frame and a view over one (§6.2).
type Frame interface {
	Rows() int
	Cols() int
	Cell(row, col int) (value.Value, error)
	CellByName(row int, name string) (value.Value, error)
	ColIndex(name string) (int, error)
	ColName(i int) (string, error)
	ColDef(i int) (schema.ColumnDef, error)
	ColDefByName(name string) (schema.ColumnDef, error)
	IsView() bool
	Shape() (int, int)
}
