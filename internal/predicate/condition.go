package predicate

import (
	"fmt"

	"github.com/leengari/tabframe/internal/errs"
	"github.com/leengari/tabframe/internal/ref"
	"github.com/leengari/tabframe/internal/value"
)

// LeafCond is a lowered, schema-resolved single comparison. Columns are
// resolved to indices and every literal has been converted to a value.Value
// compatible with its column's tag (§4.6 lowering step).
type LeafCond struct {
	ColNames []string
	ColIdx   []int
	Op       Op
	Rows     [][]value.Value
}

// Columns returns the resolved column indices this leaf reads.
func (l *LeafCond) Columns() []int { return l.ColIdx }

// Operator returns the leaf's comparison operator.
func (l *LeafCond) Operator() Op { return l.Op }

// EvalAtRow evaluates the leaf against row r of base.
func (l *LeafCond) EvalAtRow(base ref.Frame, r int) (bool, error) {
	got := make([]value.Value, len(l.ColIdx))
	for i, c := range l.ColIdx {
		v, err := base.Cell(r, c)
		if err != nil {
			return false, err
		}
		got[i] = v
	}
	switch l.Op {
	case ISIN, NOTIN:
		found := false
		for _, cand := range l.Rows {
			if tupleEqual(got, cand) {
				found = true
				break
			}
		}
		if l.Op == ISIN {
			return found, nil
		}
		return !found, nil
	default:
		want := l.Rows[0]
		return evalCompare(l.Op, got, want)
	}
}

func tupleEqual(a, b []value.Value) bool {
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

func evalCompare(op Op, got, want []value.Value) (bool, error) {
	// Multi-column comparisons compare lexicographically, matching
	// ref.RowRef.Compare's convention.
	cmp := 0
	for i := range got {
		c, err := value.Compare(got[i], want[i])
		if err != nil {
			return false, err
		}
		if c != 0 {
			cmp = c
			break
		}
	}
	switch op {
	case EQ:
		return cmp == 0, nil
	case NE:
		return cmp != 0, nil
	case LT:
		return cmp < 0, nil
	case LE:
		return cmp <= 0, nil
	case GT:
		return cmp > 0, nil
	case GE:
		return cmp >= 0, nil
	default:
		return false, errs.New("evalCompare", errs.KindExpressionValidation, "operator not valid for scalar comparison").WithValue(op.String())
	}
}

// AndCond is a lowered conjunction of LeafCond children (§4.7 planner input).
type AndCond struct {
	Children []*LeafCond
}

func (a *AndCond) EvalAtRow(base ref.Frame, r int) (bool, error) {
	for _, c := range a.Children {
		ok, err := c.EvalAtRow(base, r)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// OrCond is a lowered disjunction of AndCond children.
type OrCond struct {
	Children []*AndCond
}

func (o *OrCond) EvalAtRow(base ref.Frame, r int) (bool, error) {
	for _, c := range o.Children {
		ok, err := c.EvalAtRow(base, r)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Condition is the lowered result of ToCondition: exactly one of Leaf, And,
// Or is set.
type Condition struct {
	Leaf *LeafCond
	And  *AndCond
	Or   *OrCond
}

// EvalAtRow evaluates whichever shape is populated.
func (c *Condition) EvalAtRow(base ref.Frame, r int) (bool, error) {
	switch {
	case c.Leaf != nil:
		return c.Leaf.EvalAtRow(base, r)
	case c.And != nil:
		return c.And.EvalAtRow(base, r)
	case c.Or != nil:
		return c.Or.EvalAtRow(base, r)
	default:
		return false, errs.New("Condition.EvalAtRow", errs.KindExpressionValidation, "empty condition")
	}
}

// ToCondition resolves e's column names against base's schema, converts
// every builder-supplied literal to a value.Value compatible with its
// column's tag, and produces a planner-ready Condition.
func ToCondition(e *Expr, base ref.Frame) (*Condition, error) {
	switch {
	case e.IsLeaf():
		leaf, err := lowerLeaf(e, base)
		if err != nil {
			return nil, err
		}
		return &Condition{Leaf: leaf}, nil
	case e.IsAnd():
		and, err := lowerAnd(e, base)
		if err != nil {
			return nil, err
		}
		return &Condition{And: and}, nil
	case e.IsOr():
		children := make([]*AndCond, len(e.children))
		for i, c := range e.children {
			and, err := lowerAnd(c, base)
			if err != nil {
				return nil, err
			}
			children[i] = and
		}
		return &Condition{Or: &OrCond{Children: children}}, nil
	default:
		return nil, errs.New("ToCondition", errs.KindExpressionValidation, "unknown expression kind")
	}
}

func lowerAnd(e *Expr, base ref.Frame) (*AndCond, error) {
	children := make([]*LeafCond, len(e.children))
	for i, c := range e.children {
		if !c.IsLeaf() {
			return nil, errs.New("ToCondition", errs.KindExpressionValidation, "AndExpr child must be a leaf")
		}
		leaf, err := lowerLeaf(c, base)
		if err != nil {
			return nil, err
		}
		children[i] = leaf
	}
	return &AndCond{Children: children}, nil
}

func lowerLeaf(e *Expr, base ref.Frame) (*LeafCond, error) {
	colIdx := make([]int, len(e.cols))
	tags := make([]value.Tag, len(e.cols))
	for i, name := range e.cols {
		idx, err := base.ColIndex(name)
		if err != nil {
			return nil, err
		}
		def, err := base.ColDef(idx)
		if err != nil {
			return nil, err
		}
		colIdx[i] = idx
		tags[i] = def.Tag
	}
	rows := make([][]value.Value, len(e.rows))
	for ri, raw := range e.rows {
		if len(raw) != len(e.cols) {
			return nil, errs.New("ToCondition", errs.KindExpressionValidation, "value arity does not match column selector")
		}
		row := make([]value.Value, len(raw))
		for i, lit := range raw {
			v, err := anyToValue(lit, tags[i])
			if err != nil {
				return nil, err
			}
			row[i] = v
		}
		rows[ri] = row
	}
	return &LeafCond{ColNames: e.cols, ColIdx: colIdx, Op: e.op, Rows: rows}, nil
}

// anyToValue converts a builder-supplied Go literal to a value.Value of the
// given tag, applying the same numeric-widening tolerance as value.Compare
// (an int literal is accepted against a Float64 column, etc).
func anyToValue(lit any, tag value.Tag) (value.Value, error) {
	if lit == nil {
		return value.NewNull(), nil
	}
	switch tag {
	case value.Str:
		s, ok := lit.(string)
		if !ok {
			return value.Value{}, badLiteral(lit, tag)
		}
		return value.NewStr(s), nil
	case value.Bool:
		b, ok := lit.(bool)
		if !ok {
			return value.Value{}, badLiteral(lit, tag)
		}
		return value.NewBool(b), nil
	case value.Char:
		switch x := lit.(type) {
		case byte:
			return value.NewChar(x), nil
		case rune:
			return value.NewChar(byte(x)), nil
		default:
			return value.Value{}, badLiteral(lit, tag)
		}
	case value.Int32:
		i, ok := toInt64(lit)
		if !ok {
			// A float literal stays a float so the comparison widens it.
			if f, fok := toFloat64(lit); fok {
				return value.NewFloat64(f), nil
			}
			return value.Value{}, badLiteral(lit, tag)
		}
		return value.NewInt32(int32(i)), nil
	case value.Int64:
		i, ok := toInt64(lit)
		if !ok {
			if f, fok := toFloat64(lit); fok {
				return value.NewFloat64(f), nil
			}
			return value.Value{}, badLiteral(lit, tag)
		}
		return value.NewInt64(i), nil
	case value.Float32:
		f, ok := toFloat64(lit)
		if !ok {
			return value.Value{}, badLiteral(lit, tag)
		}
		return value.NewFloat32(float32(f)), nil
	case value.Float64:
		f, ok := toFloat64(lit)
		if !ok {
			return value.Value{}, badLiteral(lit, tag)
		}
		return value.NewFloat64(f), nil
	case value.TagTimestamp:
		ts, ok := lit.(value.Timestamp)
		if !ok {
			return value.Value{}, badLiteral(lit, tag)
		}
		return value.NewTimestamp(ts), nil
	default:
		return value.Value{}, errs.New("anyToValue", errs.KindExpressionValidation, "unsupported column tag for predicate literal").WithValue(tag.String())
	}
}

func toInt64(lit any) (int64, bool) {
	switch x := lit.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	default:
		return 0, false
	}
}

func toFloat64(lit any) (float64, bool) {
	switch x := lit.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

func badLiteral(lit any, tag value.Tag) error {
	return errs.New("anyToValue", errs.KindExpressionValidation, fmt.Sprintf("literal %v (%T) is not compatible with column tag %s", lit, lit, tag))
}
