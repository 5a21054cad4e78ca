package value

import "fmt"

// Value is a tagged sum over the closed variant set in Tag. The zero Value
// is Null. Construction always goes through one of the New* constructors so
// data's dynamic type is guaranteed to match tag.
type Value struct {
	tag  Tag
	data any
}

// NewNull returns the Null value.
func NewNull() Value { return Value{tag: Null} }

// IsNull reports whether v is the Null variant.
func (v Value) IsNull() bool { return v.tag == Null }

// Tag returns v's variant discriminator.
func (v Value) Tag() Tag { return v.tag }

func NewStr(s string) Value           { return Value{tag: Str, data: s} }
func NewBool(b bool) Value            { return Value{tag: Bool, data: b} }
func NewChar(c byte) Value            { return Value{tag: Char, data: c} }
func NewInt32(i int32) Value          { return Value{tag: Int32, data: i} }
func NewInt64(i int64) Value          { return Value{tag: Int64, data: i} }
func NewFloat32(f float32) Value      { return Value{tag: Float32, data: f} }
func NewFloat64(f float64) Value      { return Value{tag: Float64, data: f} }
func NewTimestamp(t Timestamp) Value  { return Value{tag: TagTimestamp, data: t} }

func NewVecStr(v []string) Value      { return Value{tag: VecStr, data: v} }
func NewVecBool(v []bool) Value       { return Value{tag: VecBool, data: v} }
func NewVecChar(v []byte) Value       { return Value{tag: VecChar, data: v} }
func NewVecInt32(v []int32) Value     { return Value{tag: VecInt32, data: v} }
func NewVecInt64(v []int64) Value     { return Value{tag: VecInt64, data: v} }
func NewVecFloat32(v []float32) Value { return Value{tag: VecFloat32, data: v} }
func NewVecFloat64(v []float64) Value { return Value{tag: VecFloat64, data: v} }
func NewVecTimestamp(v []Timestamp) Value { return Value{tag: VecTimestamp, data: v} }

// Raw returns the underlying Go value with no type assertion. Callers that
// know the tag should use the typed As* accessors instead.
func (v Value) Raw() any { return v.data }

// panicWrongTag mirrors the source's Vector-ref<T> contract: accessing a
// cell through the wrong typed accessor panics rather than returning a
// zero value, so a bug surfaces at the call site instead of silently
// substituting a default.
func panicWrongTag(want Tag, got Tag) {
	panic(fmt.Sprintf("value: tag mismatch: want %s, got %s", want, got))
}

func (v Value) AsStr() string {
	if v.tag != Str {
		panicWrongTag(Str, v.tag)
	}
	return v.data.(string)
}

func (v Value) AsBool() bool {
	if v.tag != Bool {
		panicWrongTag(Bool, v.tag)
	}
	return v.data.(bool)
}

func (v Value) AsChar() byte {
	if v.tag != Char {
		panicWrongTag(Char, v.tag)
	}
	return v.data.(byte)
}

func (v Value) AsInt32() int32 {
	if v.tag != Int32 {
		panicWrongTag(Int32, v.tag)
	}
	return v.data.(int32)
}

func (v Value) AsInt64() int64 {
	if v.tag != Int64 {
		panicWrongTag(Int64, v.tag)
	}
	return v.data.(int64)
}

func (v Value) AsFloat32() float32 {
	if v.tag != Float32 {
		panicWrongTag(Float32, v.tag)
	}
	return v.data.(float32)
}

func (v Value) AsFloat64() float64 {
	if v.tag != Float64 {
		panicWrongTag(Float64, v.tag)
	}
	return v.data.(float64)
}

func (v Value) AsTimestamp() Timestamp {
	if v.tag != TagTimestamp {
		panicWrongTag(TagTimestamp, v.tag)
	}
	return v.data.(Timestamp)
}

// AsFloat64Numeric widens any numeric tag to float64, for the numeric
// coercion rule in §3.1. Panics if v is not numeric.
func (v Value) AsFloat64Numeric() float64 {
	switch v.tag {
	case Int32:
		return float64(v.data.(int32))
	case Int64:
		return float64(v.data.(int64))
	case Float32:
		return float64(v.data.(float32))
	case Float64:
		return v.data.(float64)
	default:
		panic(fmt.Sprintf("value: %s is not numeric", v.tag))
	}
}

// AsInt64Numeric widens an integer tag to int64. Panics if v is not an
// integer tag (Int32/Int64) — floats never take this path per §3.1's "any
// float involvement compares as double" rule.
func (v Value) AsInt64Numeric() int64 {
	switch v.tag {
	case Int32:
		return int64(v.data.(int32))
	case Int64:
		return v.data.(int64)
	default:
		panic(fmt.Sprintf("value: %s is not an integer tag", v.tag))
	}
}
