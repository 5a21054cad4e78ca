// Command tabframe replays the ten numbered index/select scenarios from the
// frame/index/select walkthrough end to end against an in-process table:
// build the seed frame, register each index shape, run each scenario's
// lookup or query, and print results through the delimited-text printer
// while a logging observer traces the planner's fast/refine/scan decisions.
package main

import (
	"fmt"
	"os"

	"github.com/leengari/tabframe/internal/frame"
	"github.com/leengari/tabframe/internal/logging"
	"github.com/leengari/tabframe/internal/obs"
	"github.com/leengari/tabframe/internal/predicate"
	"github.com/leengari/tabframe/internal/printer"
	"github.com/leengari/tabframe/internal/ref"
	"github.com/leengari/tabframe/internal/schema"
	"github.com/leengari/tabframe/internal/table"
	"github.com/leengari/tabframe/internal/tsparse"
	"github.com/leengari/tabframe/internal/value"
)

// buildFrame constructs the seed table:
//
//	0 John     23 A 29.3 2000-10-22
//	1 Tom      18 B 45.2 N/A
//	2 Jonathon 24 A 23.3 2010-10-22
//	3 Jeff     12 C 43.5 2008-10-22
func buildFrame() (*frame.Frame, error) {
	sc, err := schema.New([]schema.ColumnDef{
		{Name: "Name", Tag: value.Str},
		{Name: "Age", Tag: value.Int32},
		{Name: "Level", Tag: value.Char},
		{Name: "Score", Tag: value.Float32},
		{Name: "BirthDate", Tag: value.TagTimestamp},
	})
	if err != nil {
		return nil, err
	}
	cfg := value.DefaultParseConfig()
	cfg.ParseTS = tsparse.Parse
	return frame.FromRows(sc, [][]string{
		{"John", "23", "A", "29.3", "2000-10-22"},
		{"Tom", "18", "B", "45.2", "N/A"},
		{"Jonathon", "24", "A", "23.3", "2010-10-22"},
		{"Jeff", "12", "C", "43.5", "2008-10-22"},
	}, frame.WithParseConfig(cfg))
}

func run() error {
	logger, closeFn := logging.Setup()
	defer closeFn()

	f, err := buildFrame()
	if err != nil {
		return fmt.Errorf("build frame: %w", err)
	}

	ages, err := ref.ColRefTyped[int32](f, "Age", value.Int32)
	if err != nil {
		return fmt.Errorf("col_ref_typed(Age): %w", err)
	}
	logger.Info("typed column materialized", "column", "Age", "values", ages.Materialize())

	tbl := table.New(f)

	// Scenario 1: hash-unique lookup on Name.
	if err := tbl.AddIndex(table.KindHashUnique, []string{"Name"}, "by_name_unique"); err != nil {
		return fmt.Errorf("scenario 1: add index: %w", err)
	}
	h, _ := tbl.HashFor([]string{"Name"})
	rows, _ := h.Lookup([]value.Value{value.NewStr("Tom")})
	fmt.Printf("--- scenario 1: hash-unique lookup Name=Tom -> rows %v ---\n", rows)

	// Scenario 2: hash-unique construction over a non-unique column fails.
	if err := tbl.AddIndex(table.KindHashUnique, []string{"Level"}, "by_level_unique"); err != nil {
		fmt.Printf("--- scenario 2: hash-unique on Level rejected: %v ---\n", err)
	} else {
		return fmt.Errorf("scenario 2: expected hash-unique construction over Level to fail")
	}

	// Scenario 3: ordered index on Name, first entry is Jeff.
	if err := tbl.AddIndex(table.KindOrdered, []string{"Name"}, "by_name_ordered"); err != nil {
		return fmt.Errorf("scenario 3: add index: %w", err)
	}
	nameOrd, _ := tbl.OrderedFor([]string{"Name"})
	fmt.Printf("--- scenario 3: ordered Name, position 0 -> row %d ---\n", nameOrd.At(0))

	// Scenario 4: multi-column ordered index on (Level, Score).
	if err := tbl.AddIndex(table.KindOrdered, []string{"Level", "Score"}, "by_level_score"); err != nil {
		return fmt.Errorf("scenario 4: add index: %w", err)
	}
	levelScoreOrd, _ := tbl.OrderedFor([]string{"Level", "Score"})
	fmt.Printf("--- scenario 4: ordered (Level,Score), position 0 -> row %d ---\n", levelScoreOrd.At(0))

	// Scenario 5: ordered index on BirthDate places Null first ascending.
	if err := tbl.AddIndex(table.KindOrdered, []string{"BirthDate"}, "by_birthdate"); err != nil {
		return fmt.Errorf("scenario 5: add index: %w", err)
	}
	birthOrd, _ := tbl.OrderedFor([]string{"BirthDate"})
	fmt.Printf("--- scenario 5: ordered BirthDate, position 0 (Null first) -> row %d ---\n", birthOrd.At(0))

	// Scenario 6: multi-column hash-unique index on (Level, Age).
	if err := tbl.AddIndex(table.KindHashUnique, []string{"Level", "Age"}, "by_level_age_unique"); err != nil {
		return fmt.Errorf("scenario 6: add index: %w", err)
	}
	levelAgeHash, _ := tbl.HashFor([]string{"Level", "Age"})
	rows, _ = levelAgeHash.Lookup([]value.Value{value.NewChar('A'), value.NewInt32(24)})
	fmt.Printf("--- scenario 6: hash-unique lookup (Level=A,Age=24) -> rows %v ---\n", rows)

	// Scenario 7: hash-multi index on Level.
	if err := tbl.AddIndex(table.KindHash, []string{"Level"}, "by_level"); err != nil {
		return fmt.Errorf("scenario 7: add index: %w", err)
	}
	levelHash, _ := tbl.HashFor([]string{"Level"})
	rows, _ = levelHash.Lookup([]value.Value{value.NewChar('A')})
	fmt.Printf("--- scenario 7: hash-multi lookup Level=A -> rows %v ---\n", rows)

	sink := obs.NewLoggingObserver(logger)

	// Scenario 8 needs an ordered index on Level alone for its fast path.
	if err := tbl.AddIndex(table.KindOrdered, []string{"Level"}, "by_level_ordered"); err != nil {
		return fmt.Errorf("scenario 8: add index: %w", err)
	}

	// Scenario 8: AND fast path (ordered Level>='B') then per-row refine
	// (Age>12).
	andExpr, err := predicate.Col("Level").GE(byte('B')).And(predicate.Col("Age").GT(12))
	if err != nil {
		return fmt.Errorf("scenario 8: build expr: %w", err)
	}
	if err := renderSelect(tbl, sink, "scenario 8: Level>='B' AND Age>12", andExpr); err != nil {
		return err
	}

	// Scenario 9: ISIN over the hash index on Name.
	if err := renderSelect(tbl, sink, "scenario 9: Name IN (John, Jeff)", predicate.Col("Name").InValues("John", "Jeff")); err != nil {
		return err
	}

	// Scenario 10: NE resolved via the ordered index on Name's complement
	// path, followed by a view-level sort on Age.
	notTom, err := tbl.Select(predicate.Col("Name").NE("Tom"), sink)
	if err != nil {
		return fmt.Errorf("scenario 10: select: %w", err)
	}
	sortedByAge, err := notTom.SortBy([]string{"Age"}, false)
	if err != nil {
		return fmt.Errorf("scenario 10: sort by age: %w", err)
	}
	out, err := printer.Render(sortedByAge, printer.Config{WithHeader: true, Print: value.DefaultPrintConfig()})
	if err != nil {
		return fmt.Errorf("scenario 10: render: %w", err)
	}
	fmt.Printf("--- scenario 10: Name!=Tom sorted by Age ---\n%s\n", out)

	return nil
}

func renderSelect(tbl *table.Indexed, sink obs.Observer, desc string, expr *predicate.Expr) error {
	v, err := tbl.Select(expr, sink)
	if err != nil {
		return fmt.Errorf("%s: select: %w", desc, err)
	}
	out, err := printer.Render(v, printer.Config{WithHeader: true, Print: value.DefaultPrintConfig()})
	if err != nil {
		return fmt.Errorf("%s: render: %w", desc, err)
	}
	fmt.Printf("--- %s ---\n%s\n", desc, out)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
