package frame

import (
	"testing"

	"github.com/leengari/tabframe/internal/schema"
	"github.com/leengari/tabframe/internal/tsparse"
	"github.com/leengari/tabframe/internal/value"
)

func scenarioSchema(t *testing.T) *schema.Schema {
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
	return sc
}

func scenarioFrame(t *testing.T) *Frame {
	t.Helper()
	sc := scenarioSchema(t)
	cfg := value.DefaultParseConfig()
	cfg.ParseTS = tsparse.Parse
	f, err := FromRows(sc, [][]string{
		{"John", "23", "A", "29.3", "2000-10-22"},
		{"Tom", "18", "B", "45.2", "N/A"},
		{"Jonathon", "24", "A", "23.3", "2010-10-22"},
		{"Jeff", "12", "C", "43.5", "2008-10-22"},
	}, WithParseConfig(cfg))
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return f
}

func TestFromRowsBuildsScenario(t *testing.T) {
	f := scenarioFrame(t)
	if f.Rows() != 4 || f.Cols() != 5 {
		rows, cols := f.Shape()
		t.Fatalf("unexpected shape: (%d, %d)", rows, cols)
	}
	v, err := f.CellByName(1, "BirthDate")
	if err != nil {
		t.Fatalf("CellByName: %v", err)
	}
	if !v.IsNull() {
		t.Errorf("expected Tom's BirthDate to be Null")
	}
}

func TestFromRowsRejectsWrongArity(t *testing.T) {
	sc := scenarioSchema(t)
	_, err := FromRows(sc, [][]string{{"John", "23"}})
	if err == nil {
		t.Errorf("expected error for short row")
	}
}

func TestAppendRowStringsUnchangedOnFailure(t *testing.T) {
	f := scenarioFrame(t)
	before := f.Rows()
	err := f.AppendRowStrings([]string{"Bad", "notanumber", "A", "1.0", "N/A"})
	if err == nil {
		t.Fatalf("expected parse failure")
	}
	if f.Rows() != before {
		t.Errorf("expected frame unchanged after failed append, got %d rows", f.Rows())
	}
}

func TestDeepCopyIndependence(t *testing.T) {
	f := scenarioFrame(t)
	cp := f.DeepCopy()

	if err := cp.AppendRowStrings([]string{"Extra", "1", "A", "1.0", "N/A"}); err != nil {
		t.Fatalf("AppendRowStrings on copy: %v", err)
	}
	if f.Rows() == cp.Rows() {
		t.Errorf("expected copy mutation not to affect original")
	}

	r, c := f.Shape()
	_, c2 := cp.Shape()
	if c != c2 {
		t.Errorf("expected equal column counts")
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a, _ := f.Cell(i, j)
			b, _ := cp.Cell(i, j)
			if !value.Equal(a, b) {
				t.Errorf("cell (%d,%d) diverged before mutation", i, j)
			}
		}
	}
}

type scenarioTuple struct {
	Name      string
	Age       int32
	Level     byte
	Score     float32
	BirthDate value.Timestamp
}

func TestFromTuples(t *testing.T) {
	ts, _ := tsparse.Parse("2000-10-22")
	rows := []scenarioTuple{
		{Name: "John", Age: 23, Level: 'A', Score: 29.3, BirthDate: ts},
	}
	f, err := FromTuples(rows, []string{"Name", "Age", "Level", "Score", "BirthDate"})
	if err != nil {
		t.Fatalf("FromTuples: %v", err)
	}
	if f.Rows() != 1 {
		t.Fatalf("expected 1 row, got %d", f.Rows())
	}
	name, err := f.CellByName(0, "Name")
	if err != nil {
		t.Fatalf("CellByName: %v", err)
	}
	if name.AsStr() != "John" {
		t.Errorf("expected John, got %v", name.Raw())
	}
}

func TestFromTuplesDefaultNames(t *testing.T) {
	rows := []scenarioTuple{{Name: "A", Age: 1, Level: 'X', Score: 1.0}}
	f, err := FromTuples(rows, nil)
	if err != nil {
		t.Fatalf("FromTuples: %v", err)
	}
	if _, err := f.ColIndex("Col0"); err != nil {
		t.Errorf("expected default column name Col0, err=%v", err)
	}
}

func TestAppendCompat(t *testing.T) {
	f1 := scenarioFrame(t)
	f2 := scenarioFrame(t)
	if !f1.CanAppend(f2) {
		t.Fatalf("expected compatible append")
	}
	before := f1.Rows()
	if err := f1.Append(f2); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if f1.Rows() != before+f2.Rows() {
		t.Errorf("expected rows to accumulate")
	}
}

func TestAppendIntoEmptyClonesSchema(t *testing.T) {
	src := scenarioFrame(t)
	e2, err := schemaEmptyLike()
	if err != nil {
		t.Fatalf("schemaEmptyLike: %v", err)
	}
	if err := e2.Append(src); err != nil {
		t.Fatalf("Append into empty: %v", err)
	}
	if e2.Rows() != src.Rows() {
		t.Errorf("expected all rows copied into empty frame")
	}
}

func schemaEmptyLike() (*Frame, error) {
	empty, err := schema.New(nil)
	if err != nil {
		return nil, err
	}
	return New(empty), nil
}
