package value

import "fmt"

// Compare implements §3.1's ordering rules in one place, used by both direct
// value comparison and index handle comparison so the rule is never
// duplicated per call site (§9 design note):
//
//   - Null equals only Null; Null is strictly less than every non-Null value.
//   - Numeric tags (Int32/Int64/Float32/Float64) compare by widening to a
//     common numeric domain: integer-integer compares as integers, any float
//     involvement compares as double.
//   - Any other cross-tag comparison of non-Null values is a hard error.
//
// Compare returns (-1, 0, 1, nil) or (0, 0, err) on an incomparable pair.
func Compare(a, b Value) (int, error) {
	if a.IsNull() && b.IsNull() {
		return 0, nil
	}
	if a.IsNull() {
		return -1, nil
	}
	if b.IsNull() {
		return 1, nil
	}

	if a.tag == b.tag {
		return compareSameTag(a, b)
	}

	if a.Tag().IsNumeric() && b.Tag().IsNumeric() {
		return compareNumeric(a, b), nil
	}

	return 0, fmt.Errorf("value: cannot order %s against %s", a.Tag(), b.Tag())
}

// compareNumeric widens both operands and compares. Two integer tags compare
// as int64; any float involvement compares as float64.
func compareNumeric(a, b Value) int {
	if !a.Tag().IsFloat() && !b.Tag().IsFloat() {
		x, y := a.AsInt64Numeric(), b.AsInt64Numeric()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
	x, y := a.AsFloat64Numeric(), b.AsFloat64Numeric()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func compareSameTag(a, b Value) (int, error) {
	switch a.tag {
	case Str:
		x, y := a.AsStr(), b.AsStr()
		return cmpOrdered(x, y), nil
	case Bool:
		x, y := a.AsBool(), b.AsBool()
		return cmpBool(x, y), nil
	case Char:
		x, y := a.AsChar(), b.AsChar()
		return cmpOrdered(x, y), nil
	case Int32:
		return cmpOrdered(a.AsInt32(), b.AsInt32()), nil
	case Int64:
		return cmpOrdered(a.AsInt64(), b.AsInt64()), nil
	case Float32:
		return cmpOrdered(a.AsFloat32(), b.AsFloat32()), nil
	case Float64:
		return cmpOrdered(a.AsFloat64(), b.AsFloat64()), nil
	case TagTimestamp:
		return a.AsTimestamp().Compare(b.AsTimestamp()), nil
	default:
		return 0, fmt.Errorf("value: %s is not orderable (vector or unsupported tag)", a.tag)
	}
}

func cmpOrdered[T interface {
	~string | ~byte | ~int32 | ~int64 | ~float32 | ~float64
}](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}

// Equal reports whether a and b compare equal under Compare's rules. An
// incomparable cross-tag pair is treated as not-equal rather than an error,
// matching the equality half of §3.1 (equality never needs to "order").
func Equal(a, b Value) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	if a.tag == b.tag {
		c, err := compareSameTag(a, b)
		if err != nil {
			return equalVec(a, b)
		}
		return c == 0
	}
	if a.Tag().IsNumeric() && b.Tag().IsNumeric() {
		return compareNumeric(a, b) == 0
	}
	return false
}

func equalVec(a, b Value) bool {
	if a.tag != b.tag || !a.tag.IsVec() {
		return false
	}
	switch a.tag {
	case VecStr:
		return equalSlice(a.data.([]string), b.data.([]string))
	case VecBool:
		return equalSlice(a.data.([]bool), b.data.([]bool))
	case VecChar:
		return equalSlice(a.data.([]byte), b.data.([]byte))
	case VecInt32:
		return equalSlice(a.data.([]int32), b.data.([]int32))
	case VecInt64:
		return equalSlice(a.data.([]int64), b.data.([]int64))
	case VecFloat32:
		return equalSlice(a.data.([]float32), b.data.([]float32))
	case VecFloat64:
		return equalSlice(a.data.([]float64), b.data.([]float64))
	case VecTimestamp:
		x, y := a.data.([]Timestamp), b.data.([]Timestamp)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i].Compare(y[i]) != 0 {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Less is a convenience wrapper over Compare for sort.Slice callers that
// already know the pair is comparable (e.g. inside an index built over a
// single numerically-consistent column).
func Less(a, b Value) bool {
	c, err := Compare(a, b)
	if err != nil {
		panic(err)
	}
	return c < 0
}
