package view

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

func TestViewCellComposition(t *testing.T) {
	f := scenarioFrame(t)
	v, err := New(f, []int{3, 0}, []int{1, 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < v.Rows(); i++ {
		for j := 0; j < v.Cols(); j++ {
			got, err := v.Cell(i, j)
			if err != nil {
				t.Fatalf("v.Cell: %v", err)
			}
			want, err := f.Cell(v.UnderlyingRow(i), v.UnderlyingCol(j))
			if err != nil {
				t.Fatalf("f.Cell: %v", err)
			}
			if !value.Equal(got, want) {
				t.Errorf("cell (%d,%d) mismatch", i, j)
			}
		}
	}
}

func TestViewOfViewCollapsesToBase(t *testing.T) {
	f := scenarioFrame(t)
	v1, err := New(f, []int{1, 2, 3}, nil)
	if err != nil {
		t.Fatalf("New v1: %v", err)
	}
	v2, err := New(v1, []int{0, 2}, nil)
	if err != nil {
		t.Fatalf("New v2: %v", err)
	}
	base, ok := v2.Underlying().(*frame.Frame)
	if !ok || base != f {
		t.Errorf("expected v2's underlying to be the original frame")
	}
	// v1 rows [1,2,3] indexed [0,2] -> base rows 1 and 3
	if v2.UnderlyingRow(0) != 1 || v2.UnderlyingRow(1) != 3 {
		t.Errorf("expected composed rows [1,3], got [%d,%d]", v2.UnderlyingRow(0), v2.UnderlyingRow(1))
	}
}

func TestSortByAge(t *testing.T) {
	f := scenarioFrame(t)
	v, err := New(f, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sorted, err := v.SortBy([]string{"Age"}, false)
	if err != nil {
		t.Fatalf("SortBy: %v", err)
	}
	got := make([]int, sorted.Rows())
	for i := range got {
		got[i] = sorted.UnderlyingRow(i)
	}
	want := []int{3, 1, 0, 2} // Jeff(12), Tom(18), John(23), Jonathon(24)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected sorted rows %v, got %v", want, got)
			break
		}
	}
}

func TestViewRejectsOutOfRangeRow(t *testing.T) {
	f := scenarioFrame(t)
	if _, err := New(f, []int{100}, nil); err == nil {
		t.Errorf("expected range error for out-of-bounds row")
	}
}

func TestViewDeepCopyIsIndependent(t *testing.T) {
	f := scenarioFrame(t)
	v, err := New(f, []int{3, 0}, []int{1, 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cp, err := v.DeepCopy()
	if err != nil {
		t.Fatalf("DeepCopy: %v", err)
	}
	if cp.Rows() != v.Rows() || cp.Cols() != v.Cols() {
		t.Fatalf("expected shape %dx%d, got %dx%d", v.Rows(), v.Cols(), cp.Rows(), cp.Cols())
	}
	for i := 0; i < v.Rows(); i++ {
		for j := 0; j < v.Cols(); j++ {
			got, err := cp.Cell(i, j)
			if err != nil {
				t.Fatalf("cp.Cell: %v", err)
			}
			want, err := v.Cell(i, j)
			if err != nil {
				t.Fatalf("v.Cell: %v", err)
			}
			if !value.Equal(got, want) {
				t.Errorf("cell (%d,%d) mismatch: got %v want %v", i, j, got, want)
			}
		}
	}

	if err := f.AppendRowStrings([]string{"Zed", "40", "Z", "1.0", "N/A"}); err != nil {
		t.Fatalf("AppendRowStrings: %v", err)
	}
	if cp.Rows() != 2 {
		t.Errorf("expected copy unaffected by base append, got %d rows", cp.Rows())
	}
}
