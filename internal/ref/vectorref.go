package ref

import (
	"fmt"

	"github.com/leengari/tabframe/internal/value"
)

// VectorRef[T] is the typed materialization path for analytic consumers
// (§3.5): it asserts the target column's tag equals the caller-supplied
// wantTag at construction and panics on mismatch, then returns the
// underlying Go primitive directly from At. T itself is not related to the
// tag at construction; At panics if a cell's payload does not assert to T.
type VectorRef[T any] struct {
	col ColRef
}

// NewVectorRef builds a typed vector reference over column colIdx, whose
// declared tag must equal wantTag or construction panics — mirroring the
// source's "asserts the target tag statically" contract from §4.2.
func NewVectorRef[T any](base Frame, colIdx int, sel []int, wantTag value.Tag) VectorRef[T] {
	def, err := base.ColDef(colIdx)
	if err != nil {
		panic(fmt.Sprintf("ref: NewVectorRef: %v", err))
	}
	if def.Tag != wantTag {
		panic(fmt.Sprintf("ref: NewVectorRef: column %q has tag %s, want %s", def.Name, def.Tag, wantTag))
	}
	return VectorRef[T]{col: ColRef{Base: base, Col: colIdx, Sel: sel}}
}

// Len returns the number of rows visible through this reference.
func (v VectorRef[T]) Len() int { return v.col.Len() }

// At returns the i-th row's value as T, panicking if the cell is Null (a
// typed vector has no way to represent absence without widening T to a
// pointer or an Option type) or if the underlying payload does not assert
// to T (which happens when T is not the Go type stored for wantTag).
func (v VectorRef[T]) At(i int) T {
	cell, err := v.col.At(i)
	if err != nil {
		panic(fmt.Sprintf("ref: VectorRef.At: %v", err))
	}
	if cell.IsNull() {
		panic("ref: VectorRef.At: cell is Null, cannot materialize as T")
	}
	t, ok := cell.Raw().(T)
	if !ok {
		panic(fmt.Sprintf("ref: VectorRef.At: cannot assert %T to requested type", cell.Raw()))
	}
	return t
}

// Materialize copies every visible row into a Go slice.
func (v VectorRef[T]) Materialize() []T {
	n := v.Len()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = v.At(i)
	}
	return out
}

// ColRefTyped resolves name against base's schema and returns a typed
// vector reference over it (§6.2's col_ref_typed::<T>(name)). Go methods
// cannot carry their own type parameter, so this is a free function taking
// the frame or view as its first argument rather than a generic method;
// wantTag is asserted against the resolved column exactly as NewVectorRef
// does.
func ColRefTyped[T any](base Frame, name string, wantTag value.Tag) (VectorRef[T], error) {
	idx, err := base.ColIndex(name)
	if err != nil {
		return VectorRef[T]{}, err
	}
	return NewVectorRef[T](base, idx, nil, wantTag), nil
}
