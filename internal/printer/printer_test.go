package printer

import (
	"strings"
	"testing"

	"github.com/leengari/tabframe/internal/frame"
	"github.com/leengari/tabframe/internal/schema"
	"github.com/leengari/tabframe/internal/tsparse"
	"github.com/leengari/tabframe/internal/value"
)

func TestPrintWithHeaderAndNull(t *testing.T) {
	sc, err := schema.New([]schema.ColumnDef{
		{Name: "Name", Tag: value.Str},
		{Name: "BirthDate", Tag: value.TagTimestamp},
	})
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	cfg := value.DefaultParseConfig()
	cfg.ParseTS = tsparse.Parse
	f, err := frame.FromRows(sc, [][]string{
		{"Tom", "N/A"},
	}, frame.WithParseConfig(cfg))
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	out, err := Render(f, Config{WithHeader: true, Print: value.DefaultPrintConfig()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "Name|BirthDate" {
		t.Errorf("expected header line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Tom"`) || !strings.Contains(lines[1], "N/A") {
		t.Errorf("expected quoted name and null sentinel, got %q", lines[1])
	}
}

func TestPrintCustomSeparators(t *testing.T) {
	sc, _ := schema.New([]schema.ColumnDef{{Name: "A", Tag: value.Int32}})
	f, err := frame.FromRows(sc, [][]string{{"1"}, {"2"}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	out, err := Render(f, Config{FieldSep: ",", RowSep: ";"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "1;2;" {
		t.Errorf("expected %q, got %q", "1;2;", out)
	}
}
