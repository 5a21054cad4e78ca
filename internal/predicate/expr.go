package predicate

import "github.com/leengari/tabframe/internal/errs"

// kind distinguishes leaf, conjunction, and disjunction shape within the
// single Expr node type (§9 design note: "prefer a single Expr node whose
// constructor normalises shape over a type-zoo").
type kind int

const (
	kindLeaf kind = iota
	kindAnd
	kindOr
)

// Expr is the one node type backing Col(...).EQ(...), &&, ||, and !. Its
// shape (leaf / AndExpr / OrExpr) is carried in kind rather than in the Go
// type, matching §9's design note.
type Expr struct {
	kind kind

	// leaf fields
	cols []string
	op   Op
	rows [][]any // one row per candidate; len(row) == len(cols)

	// kindAnd: children are leaves. kindOr: children are kindAnd nodes.
	children []*Expr
}

// ColSelector names one or more columns to build leaf expressions against
// (§4.6: Col("a") / Col("a","b")).
type ColSelector struct {
	cols []string
}

// Col names a single column, or a tuple of columns for multi-column
// comparisons and isin/notin.
func Col(names ...string) ColSelector {
	return ColSelector{cols: names}
}

func (c ColSelector) leaf(op Op, rows [][]any) *Expr {
	return &Expr{kind: kindLeaf, cols: c.cols, op: op, rows: rows}
}

// EQ / NE / LT / LE / GT / GE build a comparison leaf against a scalar
// value or, for a multi-column selector, a tuple carried as a single row
// (§4.6).
func (c ColSelector) EQ(vals ...any) *Expr { return c.leaf(EQ, [][]any{vals}) }
func (c ColSelector) NE(vals ...any) *Expr { return c.leaf(NE, [][]any{vals}) }
func (c ColSelector) LT(vals ...any) *Expr { return c.leaf(LT, [][]any{vals}) }
func (c ColSelector) LE(vals ...any) *Expr { return c.leaf(LE, [][]any{vals}) }
func (c ColSelector) GT(vals ...any) *Expr { return c.leaf(GT, [][]any{vals}) }
func (c ColSelector) GE(vals ...any) *Expr { return c.leaf(GE, [][]any{vals}) }

// In builds an isin leaf against a set of rows (tuples for a multi-column
// selector).
func (c ColSelector) In(rows ...[]any) *Expr { return c.leaf(ISIN, rows) }

// InValues is the single-column convenience form of In, wrapping each
// scalar as a one-element row.
func (c ColSelector) InValues(values ...any) *Expr {
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = []any{v}
	}
	return c.leaf(ISIN, rows)
}

// NotIn / NotInValues mirror In / InValues for the NOTIN operator.
func (c ColSelector) NotIn(rows ...[]any) *Expr { return c.leaf(NOTIN, rows) }

func (c ColSelector) NotInValues(values ...any) *Expr {
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = []any{v}
	}
	return c.leaf(NOTIN, rows)
}

// Not toggles a leaf's operator via the logical-opposite table, or
// distributes De Morgan's law over an AndExpr into an OrExpr of negated
// leaves. Negating an OrExpr is undefined and fails (§4.6).
func (e *Expr) Not() (*Expr, error) {
	switch e.kind {
	case kindLeaf:
		return &Expr{kind: kindLeaf, cols: e.cols, op: opposite(e.op), rows: e.rows}, nil
	case kindAnd:
		negated := make([]*Expr, len(e.children))
		for i, c := range e.children {
			nc, err := c.Not()
			if err != nil {
				return nil, err
			}
			negated[i] = &Expr{kind: kindAnd, children: []*Expr{nc}}
		}
		return &Expr{kind: kindOr, children: negated}, nil
	case kindOr:
		return nil, errs.New("Expr.Not", errs.KindExpressionValidation, "negation of an OrExpr is undefined")
	default:
		return nil, errs.New("Expr.Not", errs.KindExpressionValidation, "unknown expression kind")
	}
}

// And combines two leaf/AndExpr nodes into a flat AndExpr, appending on
// repeated chaining (§4.6). Combining with an OrExpr operand is not part of
// the builder surface (the source spec only defines leaf&&leaf and
// AndExpr&&leaf chaining) and returns an error rather than silently
// distributing AND over OR.
func (e *Expr) And(other *Expr) (*Expr, error) {
	if e.kind == kindOr || other.kind == kindOr {
		return nil, errs.New("Expr.And", errs.KindExpressionValidation, "cannot AND an OrExpr; combine leaves/AndExpr only")
	}
	var children []*Expr
	if e.kind == kindAnd {
		children = append(children, e.children...)
	} else {
		children = append(children, e)
	}
	if other.kind == kindAnd {
		children = append(children, other.children...)
	} else {
		children = append(children, other)
	}
	return &Expr{kind: kindAnd, children: children}, nil
}

// Or combines two nodes into an OrExpr — a flat vector of AndExpr — folding
// in an existing OrExpr's children rather than nesting (§4.6: "leaf || leaf
// (or any combination with AndExpr) produces an OrExpr").
func (e *Expr) Or(other *Expr) *Expr {
	list := append(asAndList(e), asAndList(other)...)
	return &Expr{kind: kindOr, children: list}
}

func asAndList(e *Expr) []*Expr {
	switch e.kind {
	case kindOr:
		out := make([]*Expr, len(e.children))
		copy(out, e.children)
		return out
	case kindAnd:
		return []*Expr{e}
	default: // kindLeaf
		return []*Expr{{kind: kindAnd, children: []*Expr{e}}}
	}
}

// IsLeaf, IsAnd, IsOr let callers branch on shape without exposing kind.
func (e *Expr) IsLeaf() bool { return e.kind == kindLeaf }
func (e *Expr) IsAnd() bool  { return e.kind == kindAnd }
func (e *Expr) IsOr() bool   { return e.kind == kindOr }
