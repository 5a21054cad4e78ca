package predicate

import (
	"testing"

	"github.com/leengari/tabframe/internal/frame"
	"github.com/leengari/tabframe/internal/schema"
	"github.com/leengari/tabframe/internal/tsparse"
	"github.com/leengari/tabframe/internal/value"
)

func scenarioFrame(t *testing.T) *frame.Frame {
	t.Helper()
	sc, err := schema.New([]schema.ColumnDef{
		{Name: "Name", Tag: value.Str},
		{Name: "Age", Tag: value.Int32},
		{Name: "Level", Tag: value.Char},
		{Name: "Score", Tag: value.Float32},
		{Name: "BirthDate", Tag: value.TagTimestamp},
	})
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	cfg := value.DefaultParseConfig()
	cfg.ParseTS = tsparse.Parse
	f, err := frame.FromRows(sc, [][]string{
		{"John", "23", "A", "29.3", "2000-10-22"},
		{"Tom", "18", "B", "45.2", "N/A"},
		{"Jonathon", "24", "A", "23.3", "2010-10-22"},
		{"Jeff", "12", "C", "43.5", "2008-10-22"},
	}, frame.WithParseConfig(cfg))
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return f
}

func TestLeafEQLowersAndEvaluates(t *testing.T) {
	f := scenarioFrame(t)
	e := Col("Name").EQ("Tom")
	cond, err := ToCondition(e, f)
	if err != nil {
		t.Fatalf("ToCondition: %v", err)
	}
	for row, want := range map[int]bool{0: false, 1: true, 2: false, 3: false} {
		got, err := cond.EvalAtRow(f, row)
		if err != nil {
			t.Fatalf("EvalAtRow(%d): %v", row, err)
		}
		if got != want {
			t.Errorf("row %d: got %v want %v", row, got, want)
		}
	}
}

func TestLeafNumericCoercionInLiteral(t *testing.T) {
	f := scenarioFrame(t)
	// Age column is Int32; supply an untyped int literal.
	e := Col("Age").GE(20)
	cond, err := ToCondition(e, f)
	if err != nil {
		t.Fatalf("ToCondition: %v", err)
	}
	got, err := cond.EvalAtRow(f, 0) // John, 23
	if err != nil {
		t.Fatalf("EvalAtRow: %v", err)
	}
	if !got {
		t.Errorf("expected Age>=20 true for John (23)")
	}
}

func TestAndFlattensOnChaining(t *testing.T) {
	a := Col("Age").GE(18)
	b := Col("Level").EQ(byte('A'))
	and, err := a.And(b)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	c := Col("Score").LT(30.0)
	and2, err := and.And(c)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	if !and2.IsAnd() || len(and2.children) != 3 {
		t.Fatalf("expected flat AndExpr with 3 children, got kind=%v len=%d", and2.kind, len(and2.children))
	}
}

func TestOrFlattensAndExprList(t *testing.T) {
	a := Col("Level").EQ(byte('A'))
	b := Col("Level").EQ(byte('C'))
	or := a.Or(b)
	if !or.IsOr() || len(or.children) != 2 {
		t.Fatalf("expected OrExpr with 2 AndExpr children, got kind=%v len=%d", or.kind, len(or.children))
	}
	c := Col("Age").LT(15)
	or2 := or.Or(c)
	if len(or2.children) != 3 {
		t.Fatalf("expected Or to fold rather than nest, got %d children", len(or2.children))
	}
}

func TestNotOnLeafTogglesOperator(t *testing.T) {
	e := Col("Age").EQ(18)
	notE, err := e.Not()
	if err != nil {
		t.Fatalf("Not: %v", err)
	}
	if notE.op != NE {
		t.Errorf("expected NE, got %v", notE.op)
	}
}

func TestNotOnAndDistributesDeMorgan(t *testing.T) {
	a := Col("Age").GE(18)
	b := Col("Level").EQ(byte('A'))
	and, err := a.And(b)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	or, err := and.Not()
	if err != nil {
		t.Fatalf("Not: %v", err)
	}
	if !or.IsOr() || len(or.children) != 2 {
		t.Fatalf("expected De Morgan OrExpr with 2 children, got kind=%v len=%d", or.kind, len(or.children))
	}
	if or.children[0].children[0].op != LT {
		t.Errorf("expected opposite(GE)=LT, got %v", or.children[0].children[0].op)
	}
	if or.children[1].children[0].op != NE {
		t.Errorf("expected opposite(EQ)=NE, got %v", or.children[1].children[0].op)
	}
}

func TestNotOnOrFails(t *testing.T) {
	a := Col("Level").EQ(byte('A'))
	b := Col("Level").EQ(byte('C'))
	or := a.Or(b)
	if _, err := or.Not(); err == nil {
		t.Errorf("expected negating an OrExpr to fail")
	}
}

func TestOrConditionEvaluatesDisjunction(t *testing.T) {
	f := scenarioFrame(t)
	a := Col("Level").EQ(byte('A'))
	b := Col("Level").EQ(byte('C'))
	or := a.Or(b)
	cond, err := ToCondition(or, f)
	if err != nil {
		t.Fatalf("ToCondition: %v", err)
	}
	want := map[int]bool{0: true, 1: false, 2: true, 3: true}
	for row, w := range want {
		got, err := cond.EvalAtRow(f, row)
		if err != nil {
			t.Fatalf("EvalAtRow(%d): %v", row, err)
		}
		if got != w {
			t.Errorf("row %d: got %v want %v", row, got, w)
		}
	}
}

func TestInValuesLeaf(t *testing.T) {
	f := scenarioFrame(t)
	e := Col("Name").InValues("Tom", "Jeff")
	cond, err := ToCondition(e, f)
	if err != nil {
		t.Fatalf("ToCondition: %v", err)
	}
	want := map[int]bool{0: false, 1: true, 2: false, 3: true}
	for row, w := range want {
		got, err := cond.EvalAtRow(f, row)
		if err != nil {
			t.Fatalf("EvalAtRow(%d): %v", row, err)
		}
		if got != w {
			t.Errorf("row %d: got %v want %v", row, got, w)
		}
	}
}

func TestUnknownColumnFailsLowering(t *testing.T) {
	f := scenarioFrame(t)
	e := Col("NoSuchColumn").EQ("x")
	if _, err := ToCondition(e, f); err == nil {
		t.Errorf("expected lowering to fail on unknown column")
	}
}

func TestIncompatibleLiteralFailsLowering(t *testing.T) {
	f := scenarioFrame(t)
	e := Col("Age").EQ("not-a-number")
	if _, err := ToCondition(e, f); err == nil {
		t.Errorf("expected lowering to fail on incompatible literal")
	}
}
