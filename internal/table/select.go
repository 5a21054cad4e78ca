package table

import (
	"github.com/leengari/tabframe/internal/errs"
	"github.com/leengari/tabframe/internal/obs"
	"github.com/leengari/tabframe/internal/planner"
	"github.com/leengari/tabframe/internal/predicate"
	"github.com/leengari/tabframe/internal/view"
)

// Select lowers expr against the owned frame's schema, asks the planner for
// the matching row set (consulting the index catalogue where possible), and
// returns a view restricted to columns (all columns if empty) (§4.8). sink
// receives planner tracing events for this call under a fresh query id; a
// nil sink disables tracing.
func (t *Indexed) Select(expr *predicate.Expr, sink obs.Observer, columns ...string) (*view.View, error) {
	if err := t.checkFresh("table.Select"); err != nil {
		return nil, err
	}
	cond, err := predicate.ToCondition(expr, t.f)
	if err != nil {
		return nil, err
	}
	po := obs.NewPlannerObserver(sink)
	rows, err := planner.Plan(t.f, cond, t, po)
	if err != nil {
		return nil, err
	}
	var colIdx []int
	if len(columns) > 0 {
		colIdx = make([]int, len(columns))
		for i, name := range columns {
			idx, err := t.f.ColIndex(name)
			if err != nil {
				return nil, errs.New("table.Select", errs.KindSchemaViolation, "unknown projection column").WithColumn(name)
			}
			colIdx[i] = idx
		}
	}
	return view.New(t.f, rows, colIdx)
}
