// Package frame implements the owning row store from §3.3-4.1: schema plus
// an append-only row sequence, string/tuple ingestion, and the Frame
// contract consumed by indices, views, and the planner. Grounded on the
// teacher's engine.Table, generalized from a map[string]interface{} row to
// a schema-typed value.Value row per the value substrate in package value.
package frame

import (
	"github.com/leengari/tabframe/internal/errs"
	"github.com/leengari/tabframe/internal/ref"
	"github.com/leengari/tabframe/internal/schema"
	"github.com/leengari/tabframe/internal/value"
)

// NullPolicy controls whether a Null cell is accepted at construction/append
// time (§3.3, §7 kind 6).
type NullPolicy int

const (
	// Allow accepts Null in any column (the default, §4.1).
	Allow NullPolicy = iota
	// Reject fails construction/append if any cell is Null.
	Reject
)

// Row is an ordered sequence of values whose length equals the schema's and
// whose i-th value is either Null or numerically compatible with the i-th
// column's tag (§3.2).
type Row []value.Value

// Frame owns a schema and an ordered, append-only sequence of rows (§3.3).
// Rows are never mutated in place; every append validates against the
// schema before committing so a failed append leaves the frame unchanged.
type Frame struct {
	sc         *schema.Schema
	rows       []Row
	nullPolicy NullPolicy
	parseCfg   value.ParseConfig
	printCfg   value.PrintConfig
	version    uint64
	diag       errs.Diag
}

// Option configures a new Frame.
type Option func(*Frame)

// WithNullPolicy overrides the default Allow policy.
func WithNullPolicy(p NullPolicy) Option {
	return func(f *Frame) { f.nullPolicy = p }
}

// WithParseConfig overrides the default cell-string parse configuration.
func WithParseConfig(cfg value.ParseConfig) Option {
	return func(f *Frame) { f.parseCfg = cfg }
}

// WithPrintConfig overrides the default value-rendering configuration.
func WithPrintConfig(cfg value.PrintConfig) Option {
	return func(f *Frame) { f.printCfg = cfg }
}

// WithDiag installs a diagnostic sink (§7); defaults to a no-op.
func WithDiag(d errs.Diag) Option {
	return func(f *Frame) { f.diag = d }
}

func newEmpty(sc *schema.Schema, opts ...Option) *Frame {
	f := &Frame{
		sc:         sc,
		nullPolicy: Allow,
		parseCfg:   value.DefaultParseConfig(),
		printCfg:   value.DefaultPrintConfig(),
		diag:       errs.NoopDiag,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// New builds an empty frame over the given schema.
func New(sc *schema.Schema, opts ...Option) *Frame {
	return newEmpty(sc, opts...)
}

// FromRows parses each cell of each string row via the schema's per-column
// parse hook (§4.1). Fails if any cell fails to parse or if a row's length
// does not equal the schema's length; on failure the returned frame is nil
// and no partial frame is published (§7 propagation rule).
func FromRows(sc *schema.Schema, rows [][]string, opts ...Option) (*Frame, error) {
	f := newEmpty(sc, opts...)
	built := make([]Row, 0, len(rows))
	for ri, raw := range rows {
		row, err := f.parseRow(raw, ri)
		if err != nil {
			errs.Report(f.diag, "frame.FromRows", err)
			return nil, err
		}
		built = append(built, row)
	}
	f.rows = built
	return f, nil
}

func (f *Frame) parseRow(raw []string, rowIndex int) (Row, error) {
	if len(raw) != f.sc.Len() {
		return nil, errs.New("frame.parseRow", errs.KindSchemaViolation, "row length does not match schema length").
			WithRow(rowIndex)
	}
	row := make(Row, f.sc.Len())
	for i, s := range raw {
		col := f.sc.At(i)
		v, err := value.Parse(s, col.Tag, f.parseCfg)
		if err != nil {
			return nil, errs.New("frame.parseRow", errs.KindParseFailure, err.Error()).
				WithColumn(col.Name).WithValue(s).WithRow(rowIndex)
		}
		if v.IsNull() && f.nullPolicy == Reject {
			return nil, errs.New("frame.parseRow", errs.KindNullPolicyViolation, "null rejected by policy").
				WithColumn(col.Name).WithRow(rowIndex)
		}
		row[i] = v
	}
	return row, nil
}

// AppendRowStrings extends the frame with a row parsed from strings,
// checking type compatibility before committing (§4.1). On failure the
// frame is unchanged.
func (f *Frame) AppendRowStrings(raw []string) error {
	row, err := f.parseRow(raw, len(f.rows))
	if err != nil {
		errs.Report(f.diag, "frame.AppendRowStrings", err)
		return err
	}
	f.rows = append(f.rows, row)
	f.version++
	return nil
}

// AppendValues extends the frame with a row of already-constructed values,
// validating each against the schema before committing (§4.1's
// append_tuple, generalized to accept Values directly rather than a static
// Go tuple type — see FromTuples/AppendTuple for the reflective shortcut).
func (f *Frame) AppendValues(vals []value.Value) error {
	if len(vals) != f.sc.Len() {
		err := errs.New("frame.AppendValues", errs.KindSchemaViolation, "row length does not match schema length").WithRow(len(f.rows))
		errs.Report(f.diag, "frame.AppendValues", err)
		return err
	}
	for i, v := range vals {
		col := f.sc.At(i)
		if v.IsNull() {
			if f.nullPolicy == Reject {
				err := errs.New("frame.AppendValues", errs.KindNullPolicyViolation, "null rejected by policy").
					WithColumn(col.Name).WithRow(len(f.rows))
				errs.Report(f.diag, "frame.AppendValues", err)
				return err
			}
			continue
		}
		if !value.TagCompatible(v.Tag(), col.Tag) {
			err := errs.New("frame.AppendValues", errs.KindSchemaViolation, "value tag incompatible with column tag").
				WithColumn(col.Name).WithValue(v.Raw()).WithRow(len(f.rows))
			errs.Report(f.diag, "frame.AppendValues", err)
			return err
		}
	}
	row := make(Row, len(vals))
	copy(row, vals)
	f.rows = append(f.rows, row)
	f.version++
	return nil
}

// CanAppend reports whether other could be merged into f via Append,
// without mutating either frame (§4.1).
func (f *Frame) CanAppend(other *Frame) bool {
	if f.sc.Len() == 0 && len(f.rows) == 0 {
		return true
	}
	for i := 0; i < f.sc.Len(); i++ {
		col := f.sc.At(i)
		oi, err := other.sc.IndexOf(col.Name)
		if err != nil {
			return false
		}
		if !value.TagCompatible(other.sc.At(oi).Tag, col.Tag) {
			return false
		}
	}
	return true
}

// Append merges other's rows into f. If f is empty, f's schema is first
// cloned from other's (§4.1). Fails (leaving f unchanged) if !CanAppend.
func (f *Frame) Append(other *Frame) error {
	if f.sc.Len() == 0 && len(f.rows) == 0 {
		f.sc = other.sc.Clone()
	}
	if !f.CanAppend(other) {
		err := errs.New("frame.Append", errs.KindSchemaViolation, "incompatible schema for append")
		errs.Report(f.diag, "frame.Append", err)
		return err
	}
	colMap := make([]int, f.sc.Len())
	for i := 0; i < f.sc.Len(); i++ {
		oi, _ := other.sc.IndexOf(f.sc.At(i).Name)
		colMap[i] = oi
	}
	appended := make([]Row, 0, len(other.rows))
	for _, orow := range other.rows {
		nrow := make(Row, f.sc.Len())
		for i, oi := range colMap {
			nrow[i] = orow[oi]
		}
		appended = append(appended, nrow)
	}
	f.rows = append(f.rows, appended...)
	f.version += uint64(len(appended))
	return nil
}

// Version returns the current append-generation counter, used by the
// façade to invalidate stale indices/views per §5's invalidation rule.
func (f *Frame) Version() uint64 { return f.version }

// DeepCopy returns an independent frame whose schema and rows are equal by
// value (§4.1, §8.1 deep-copy independence).
func (f *Frame) DeepCopy() *Frame {
	cp := &Frame{
		sc:         f.sc.Clone(),
		rows:       make([]Row, len(f.rows)),
		nullPolicy: f.nullPolicy,
		parseCfg:   f.parseCfg,
		printCfg:   f.printCfg,
		diag:       f.diag,
	}
	for i, r := range f.rows {
		nr := make(Row, len(r))
		copy(nr, r)
		cp.rows[i] = nr
	}
	return cp
}

// Rows returns the number of rows.
func (f *Frame) Rows() int { return len(f.rows) }

// Cols returns the number of columns.
func (f *Frame) Cols() int { return f.sc.Len() }

// Shape returns (Rows(), Cols()).
func (f *Frame) Shape() (int, int) { return f.Rows(), f.Cols() }

// IsView always reports false for an owned frame.
func (f *Frame) IsView() bool { return false }

// Cell returns the value at (row, col), range-checked (§7 kind 5).
func (f *Frame) Cell(row, col int) (value.Value, error) {
	if row < 0 || row >= len(f.rows) || col < 0 || col >= f.sc.Len() {
		return value.Value{}, errs.New("frame.Cell", errs.KindRangeViolation, "index out of range").
			WithValue([2]int{row, col})
	}
	return f.rows[row][col], nil
}

// CellByName returns the value at (row, colname).
func (f *Frame) CellByName(row int, name string) (value.Value, error) {
	i, err := f.sc.IndexOf(name)
	if err != nil {
		return value.Value{}, err
	}
	return f.Cell(row, i)
}

// ColIndex resolves a column name to its position.
func (f *Frame) ColIndex(name string) (int, error) { return f.sc.IndexOf(name) }

// ColName returns the i-th column's name.
func (f *Frame) ColName(i int) (string, error) {
	if i < 0 || i >= f.sc.Len() {
		return "", errs.New("frame.ColName", errs.KindRangeViolation, "column index out of range").WithValue(i)
	}
	return f.sc.At(i).Name, nil
}

// ColDef returns the i-th column's descriptor.
func (f *Frame) ColDef(i int) (schema.ColumnDef, error) {
	if i < 0 || i >= f.sc.Len() {
		return schema.ColumnDef{}, errs.New("frame.ColDef", errs.KindRangeViolation, "column index out of range").WithValue(i)
	}
	return f.sc.At(i), nil
}

// ColDefByName returns the descriptor of the column named name.
func (f *Frame) ColDefByName(name string) (schema.ColumnDef, error) {
	i, err := f.sc.IndexOf(name)
	if err != nil {
		return schema.ColumnDef{}, err
	}
	return f.sc.At(i), nil
}

// Schema returns the frame's schema.
func (f *Frame) Schema() *schema.Schema { return f.sc }

// PrintConfig returns the frame's configured value-rendering options.
func (f *Frame) PrintConfig() value.PrintConfig { return f.printCfg }

// RowRef returns a borrowed handle over row r spanning all columns (§6.2).
func (f *Frame) RowRef(r int) ref.RowRef {
	return ref.RowRef{Base: f, Row: r}
}

// RowRefSel returns a borrowed handle over row r restricted to sel.
func (f *Frame) RowRefSel(r int, sel []int) ref.RowRef {
	return ref.RowRef{Base: f, Row: r, Sel: sel}
}

// ColRef returns a borrowed handle over column c spanning all rows (§6.2).
func (f *Frame) ColRef(c int) ref.ColRef {
	return ref.ColRef{Base: f, Col: c}
}

var _ ref.Frame = (*Frame)(nil)
