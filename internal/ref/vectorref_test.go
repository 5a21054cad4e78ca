package ref_test

import (
	"testing"

	"github.com/leengari/tabframe/internal/frame"
	"github.com/leengari/tabframe/internal/ref"
	"github.com/leengari/tabframe/internal/schema"
	"github.com/leengari/tabframe/internal/value"
)

func vectorRefScenarioFrame(t *testing.T) *frame.Frame {
	t.Helper()
	sc, err := schema.New([]schema.ColumnDef{
		{Name: "Name", Tag: value.Str},
		{Name: "Age", Tag: value.Int32},
	})
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	f, err := frame.FromRows(sc, [][]string{
		{"John", "23"},
		{"Tom", "18"},
	})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return f
}

func TestColRefTypedMaterializesByName(t *testing.T) {
	f := vectorRefScenarioFrame(t)
	vec, err := ref.ColRefTyped[int32](f, "Age", value.Int32)
	if err != nil {
		t.Fatalf("ColRefTyped: %v", err)
	}
	got := vec.Materialize()
	want := []int32{23, 18}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestColRefTypedUnknownColumnFails(t *testing.T) {
	f := vectorRefScenarioFrame(t)
	if _, err := ref.ColRefTyped[int32](f, "Nonexistent", value.Int32); err == nil {
		t.Errorf("expected an error for an unknown column name")
	}
}
