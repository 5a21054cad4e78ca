package value

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintConfig controls value rendering (§6.1), threaded explicitly instead
// of read from process-global state per the §9 design note.
type PrintConfig struct {
	NullString string
	FormatTS   func(ts Timestamp) string
}

// DefaultPrintConfig renders Null as "N/A" and timestamps as their raw
// UnixNano; callers with a real formatter hook (package tsparse) should
// override FormatTS.
func DefaultPrintConfig() PrintConfig {
	return PrintConfig{
		NullString: "N/A",
		FormatTS:   func(ts Timestamp) string { return strconv.FormatInt(ts.UnixNano, 10) },
	}
}

// Render implements §6.1's per-variant rendering rules.
func Render(v Value, cfg PrintConfig) string {
	if v.IsNull() {
		return cfg.NullString
	}
	switch v.tag {
	case Str:
		return `"` + v.AsStr() + `"`
	case Char:
		return "'" + string(v.AsChar()) + "'"
	case Bool:
		return strconv.FormatBool(v.AsBool())
	case Int32:
		return strconv.FormatInt(int64(v.AsInt32()), 10)
	case Int64:
		return strconv.FormatInt(v.AsInt64(), 10)
	case Float32:
		return strconv.FormatFloat(float64(v.AsFloat32()), 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.AsFloat64(), 'g', -1, 64)
	case TagTimestamp:
		return cfg.FormatTS(v.AsTimestamp())
	default:
		if v.tag.IsVec() {
			return renderVec(v, cfg)
		}
		return fmt.Sprintf("<%s>", v.tag)
	}
}

func renderVec(v Value, cfg PrintConfig) string {
	elem := v.tag.Elem()
	n := vecLen(v)
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = Render(vecAt(v, elem, i), cfg)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func vecLen(v Value) int {
	switch v.tag {
	case VecStr:
		return len(v.data.([]string))
	case VecBool:
		return len(v.data.([]bool))
	case VecChar:
		return len(v.data.([]byte))
	case VecInt32:
		return len(v.data.([]int32))
	case VecInt64:
		return len(v.data.([]int64))
	case VecFloat32:
		return len(v.data.([]float32))
	case VecFloat64:
		return len(v.data.([]float64))
	case VecTimestamp:
		return len(v.data.([]Timestamp))
	default:
		return 0
	}
}

func vecAt(v Value, elem Tag, i int) Value {
	switch v.tag {
	case VecStr:
		return NewStr(v.data.([]string)[i])
	case VecBool:
		return NewBool(v.data.([]bool)[i])
	case VecChar:
		return NewChar(v.data.([]byte)[i])
	case VecInt32:
		return NewInt32(v.data.([]int32)[i])
	case VecInt64:
		return NewInt64(v.data.([]int64)[i])
	case VecFloat32:
		return NewFloat32(v.data.([]float32)[i])
	case VecFloat64:
		return NewFloat64(v.data.([]float64)[i])
	case VecTimestamp:
		return NewTimestamp(v.data.([]Timestamp)[i])
	default:
		_ = elem
		return NewNull()
	}
}
