package index

import (
	"testing"

	"github.com/leengari/tabframe/internal/frame"
	"github.com/leengari/tabframe/internal/schema"
	"github.com/leengari/tabframe/internal/tsparse"
	"github.com/leengari/tabframe/internal/value"
	"gotest.tools/v3/assert"
)

// scenarioFrame builds the §8.2 seed data:
//
//	0 John     23 A 29.3 2000-10-22
//	1 Tom      18 B 45.2 N/A
//	2 Jonathon 24 A 23.3 2010-10-22
//	3 Jeff     12 C 43.5 2008-10-22
func scenarioFrame(t *testing.T) *frame.Frame {
	t.Helper()
	sc, err := schema.New([]schema.ColumnDef{
		{Name: "Name", Tag: value.Str},
		{Name: "Age", Tag: value.Int32},
		{Name: "Level", Tag: value.Char},
		{Name: "Score", Tag: value.Float32},
		{Name: "BirthDate", Tag: value.TagTimestamp},
	})
	assert.NilError(t, err)
	cfg := value.DefaultParseConfig()
	cfg.ParseTS = tsparse.Parse
	f, err := frame.FromRows(sc, [][]string{
		{"John", "23", "A", "29.3", "2000-10-22"},
		{"Tom", "18", "B", "45.2", "N/A"},
		{"Jonathon", "24", "A", "23.3", "2010-10-22"},
		{"Jeff", "12", "C", "43.5", "2008-10-22"},
	}, frame.WithParseConfig(cfg))
	assert.NilError(t, err)
	return f
}

func TestHashUniqueLookup(t *testing.T) {
	f := scenarioFrame(t)
	h, err := BuildHash(f, []string{"Name"}, true)
	assert.NilError(t, err)

	rows, ok := h.Lookup([]value.Value{value.NewStr("Tom")})
	assert.Assert(t, ok)
	assert.DeepEqual(t, rows, []int{1})
}

func TestHashUniqueRejectsDuplicate(t *testing.T) {
	f := scenarioFrame(t)
	_, err := BuildHash(f, []string{"Level"}, true)
	if err == nil {
		t.Fatalf("expected duplicate 'A' in Level to fail unique build")
	}
}

func TestHashMultiLookup(t *testing.T) {
	f := scenarioFrame(t)
	h, err := BuildHash(f, []string{"Level"}, false)
	assert.NilError(t, err)
	assert.Assert(t, h.IsMulti())

	rows, ok := h.Lookup([]value.Value{value.NewChar('A')})
	assert.Assert(t, ok)
	assert.DeepEqual(t, rows, []int{0, 2})
}

func TestMultiColumnHashUnique(t *testing.T) {
	f := scenarioFrame(t)
	h, err := BuildHash(f, []string{"Level", "Age"}, true)
	assert.NilError(t, err)

	rows, ok := h.Lookup([]value.Value{value.NewChar('A'), value.NewInt32(24)})
	assert.Assert(t, ok)
	assert.DeepEqual(t, rows, []int{2})
}

func TestOrderedFindFirstOnName(t *testing.T) {
	f := scenarioFrame(t)
	o, err := BuildOrdered(f, []string{"Name"}, false)
	assert.NilError(t, err)

	pos, err := o.FindFirst([]value.Value{value.NewStr("Jeff")})
	assert.NilError(t, err)
	assert.Equal(t, pos, 0)
}

func TestMultiColumnOrderedPosition0(t *testing.T) {
	f := scenarioFrame(t)
	o, err := BuildOrdered(f, []string{"Level", "Score"}, false)
	assert.NilError(t, err)

	if o.At(0) != 2 {
		t.Errorf("expected row 2 (Jonathon: A, 23.3) at position 0, got row %d", o.At(0))
	}
}

func TestOrderedBirthDateNullFirstAscending(t *testing.T) {
	f := scenarioFrame(t)
	o, err := BuildOrdered(f, []string{"BirthDate"}, false)
	assert.NilError(t, err)

	if o.At(0) != 1 {
		t.Errorf("expected row 1 (Tom, Null) first ascending, got row %d", o.At(0))
	}
}

func TestOrderedBirthDateNullLastDescending(t *testing.T) {
	f := scenarioFrame(t)
	o, err := BuildOrdered(f, []string{"BirthDate"}, true)
	assert.NilError(t, err)

	if o.At(o.Len() - 1) != 1 {
		t.Errorf("expected row 1 (Tom, Null) last descending, got row %d", o.At(o.Len()-1))
	}
}

func TestOrderedMonotonicity(t *testing.T) {
	f := scenarioFrame(t)
	o, err := BuildOrdered(f, []string{"Score"}, false)
	assert.NilError(t, err)

	for i := 0; i < o.Len()-1; i++ {
		a := f.RowRefSel(o.At(i), []int{3})
		b := f.RowRefSel(o.At(i+1), []int{3})
		c, err := a.Compare(b)
		assert.NilError(t, err)
		if c > 0 {
			t.Errorf("monotonicity violated at position %d", i)
		}
	}
}

func TestFindEqualRangeOnLevel(t *testing.T) {
	f := scenarioFrame(t)
	o, err := BuildOrdered(f, []string{"Level"}, false)
	assert.NilError(t, err)

	first, last, err := o.FindEqualRange([]value.Value{value.NewChar('A')})
	assert.NilError(t, err)
	assert.Equal(t, last-first, 2)
}

func TestFindEqualRangeMissingKey(t *testing.T) {
	f := scenarioFrame(t)
	o, err := BuildOrdered(f, []string{"Level"}, false)
	assert.NilError(t, err)

	first, last, err := o.FindEqualRange([]value.Value{value.NewChar('Z')})
	assert.NilError(t, err)
	assert.Equal(t, first, last)
}
