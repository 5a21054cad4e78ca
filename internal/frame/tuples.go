package frame

import (
	"fmt"
	"reflect"

	"github.com/leengari/tabframe/internal/errs"
	"github.com/leengari/tabframe/internal/schema"
	"github.com/leengari/tabframe/internal/value"
)

// FromTuples builds a schema from the static field types of T and appends
// rows directly, without going through the string parser (§4.1's "static
// tuple-to-row ingestion shortcut", realized in Go via reflection over a
// struct type rather than a template — see SPEC_FULL.md §4.1). names may be
// nil, in which case columns are named Col0..Colk-1; if provided, len(names)
// must equal T's field count.
func FromTuples[T any](rows []T, names []string, opts ...Option) (*Frame, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt.Kind() != reflect.Struct {
		return nil, errs.New("frame.FromTuples", errs.KindSchemaViolation, "T must be a struct")
	}
	if names != nil && len(names) != rt.NumField() {
		return nil, errs.New("frame.FromTuples", errs.KindSchemaViolation, "names length does not match tuple arity")
	}

	cols := make([]schema.ColumnDef, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		tag, err := tagForGoType(rt.Field(i).Type)
		if err != nil {
			return nil, errs.New("frame.FromTuples", errs.KindSchemaViolation, err.Error()).WithColumn(rt.Field(i).Name)
		}
		name := fmt.Sprintf("Col%d", i)
		if names != nil {
			name = names[i]
		}
		cols[i] = schema.ColumnDef{Name: name, Tag: tag}
	}
	sc, err := schema.New(cols)
	if err != nil {
		return nil, err
	}

	f := newEmpty(sc, opts...)
	for ri, row := range rows {
		vals, err := valuesFromStruct(reflect.ValueOf(row), cols)
		if err != nil {
			errs.Report(f.diag, "frame.FromTuples", err)
			return nil, err
		}
		if err := f.AppendValues(vals); err != nil {
			return nil, fmt.Errorf("frame.FromTuples: row %d: %w", ri, err)
		}
	}
	return f, nil
}

// AppendTuple extends an existing frame with a single struct row, checking
// per-field type compatibility against the schema before committing (§4.1).
func AppendTuple[T any](f *Frame, row T) error {
	rv := reflect.ValueOf(row)
	if rv.Kind() != reflect.Struct {
		return errs.New("frame.AppendTuple", errs.KindSchemaViolation, "row must be a struct")
	}
	if rv.NumField() != f.sc.Len() {
		return errs.New("frame.AppendTuple", errs.KindSchemaViolation, "tuple arity does not match schema length")
	}
	vals, err := valuesFromStruct(rv, f.sc.Columns())
	if err != nil {
		errs.Report(f.diag, "frame.AppendTuple", err)
		return err
	}
	return f.AppendValues(vals)
}

func valuesFromStruct(rv reflect.Value, cols []schema.ColumnDef) ([]value.Value, error) {
	out := make([]value.Value, rv.NumField())
	for i := range out {
		v, err := valueFromField(rv.Field(i), cols[i].Tag)
		if err != nil {
			return nil, errs.New("frame.valuesFromStruct", errs.KindSchemaViolation, err.Error()).WithColumn(cols[i].Name)
		}
		out[i] = v
	}
	return out, nil
}

func valueFromField(fv reflect.Value, tag value.Tag) (value.Value, error) {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return value.NewNull(), nil
		}
		fv = fv.Elem()
	}
	iface := fv.Interface()
	switch tag {
	case value.Str:
		return value.NewStr(iface.(string)), nil
	case value.Bool:
		return value.NewBool(iface.(bool)), nil
	case value.Char:
		return value.NewChar(iface.(byte)), nil
	case value.Int32:
		return value.NewInt32(iface.(int32)), nil
	case value.Int64:
		if i, ok := iface.(int); ok {
			return value.NewInt64(int64(i)), nil
		}
		return value.NewInt64(iface.(int64)), nil
	case value.Float32:
		return value.NewFloat32(iface.(float32)), nil
	case value.Float64:
		return value.NewFloat64(iface.(float64)), nil
	case value.TagTimestamp:
		return value.NewTimestamp(iface.(value.Timestamp)), nil
	case value.VecStr:
		return value.NewVecStr(iface.([]string)), nil
	case value.VecBool:
		return value.NewVecBool(iface.([]bool)), nil
	case value.VecChar:
		return value.NewVecChar(iface.([]byte)), nil
	case value.VecInt32:
		return value.NewVecInt32(iface.([]int32)), nil
	case value.VecInt64:
		return value.NewVecInt64(iface.([]int64)), nil
	case value.VecFloat32:
		return value.NewVecFloat32(iface.([]float32)), nil
	case value.VecFloat64:
		return value.NewVecFloat64(iface.([]float64)), nil
	case value.VecTimestamp:
		return value.NewVecTimestamp(iface.([]value.Timestamp)), nil
	default:
		return value.Value{}, fmt.Errorf("unsupported tag %s", tag)
	}
}

// tagForGoType maps a Go struct field's static type to a value.Tag, the
// reflection-based equivalent of the source's static_invoke_for_type
// dispatch (§9 design note).
func tagForGoType(t reflect.Type) (value.Tag, error) {
	if t == reflect.TypeOf(value.Timestamp{}) {
		return value.TagTimestamp, nil
	}
	if t.Kind() == reflect.Slice {
		elem, err := tagForGoType(t.Elem())
		if err != nil {
			return 0, err
		}
		return elem.AsVec(), nil
	}
	switch t.Kind() {
	case reflect.String:
		return value.Str, nil
	case reflect.Bool:
		return value.Bool, nil
	case reflect.Uint8:
		return value.Char, nil
	case reflect.Int32:
		return value.Int32, nil
	case reflect.Int, reflect.Int64:
		return value.Int64, nil
	case reflect.Float32:
		return value.Float32, nil
	case reflect.Float64:
		return value.Float64, nil
	default:
		return 0, fmt.Errorf("no value.Tag mapping for Go type %s", t)
	}
}
