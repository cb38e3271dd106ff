package numvec

import (
	"github.com/hupe1980/numvec/internal/simd"
)

// Float is the set of element types supported by Vector.
type Float interface {
	float32 | float64
}

// Vector is a fixed-length sequence of floating-point values backed by a
// flat, exclusively owned buffer. Arithmetic never mutates its operands;
// every operation allocates a fresh result vector, so a Vector may be read
// from any number of goroutines without synchronization.
type Vector[T Float] struct {
	elems []T
}

// New creates a Vector by copying elems into new owned storage. The
// caller's slice is never aliased. NaN and Inf values pass through
// unchanged.
func New[T Float](elems []T) *Vector[T] {
	v := &Vector[T]{elems: make([]T, len(elems))}
	copy(v.elems, elems)
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.elems)
}

// At returns the element at index i. It panics when i is out of range;
// out-of-range access is a programming error, not a recoverable condition.
func (v *Vector[T]) At(i int) T {
	return v.elems[i]
}

// Clone returns a deep copy sharing no storage with v.
func (v *Vector[T]) Clone() *Vector[T] {
	return New(v.elems)
}

// Elements returns a copy of the backing storage.
func (v *Vector[T]) Elements() []T {
	out := make([]T, len(v.elems))
	copy(out, v.elems)
	return out
}

// Add returns the element-wise sum v + other.
//
// Binary arithmetic requires non-nil operands: a nil other panics, the same
// programming-error treatment as an out-of-range At. Only Equal tolerates
// nil, because it already maps any shape difference to false.
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	if len(v.elems) != len(other.elems) {
		return nil, &ErrShapeMismatch{Op: "addition", Left: len(v.elems), Right: len(other.elems)}
	}
	out := make([]T, len(v.elems))
	simd.Add(out, v.elems, other.elems)
	return &Vector[T]{elems: out}, nil
}

// Sub returns the element-wise difference v - other.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	if len(v.elems) != len(other.elems) {
		return nil, &ErrShapeMismatch{Op: "subtraction", Left: len(v.elems), Right: len(other.elems)}
	}
	out := make([]T, len(v.elems))
	simd.Sub(out, v.elems, other.elems)
	return &Vector[T]{elems: out}, nil
}

// Mul returns the element-wise product v * other.
func (v *Vector[T]) Mul(other *Vector[T]) (*Vector[T], error) {
	if len(v.elems) != len(other.elems) {
		return nil, &ErrShapeMismatch{Op: "multiplication", Left: len(v.elems), Right: len(other.elems)}
	}
	out := make([]T, len(v.elems))
	simd.Mul(out, v.elems, other.elems)
	return &Vector[T]{elems: out}, nil
}

// Div returns the element-wise quotient v / other. Division follows
// IEEE-754: zero divisors yield Inf or NaN in that element, never an error.
func (v *Vector[T]) Div(other *Vector[T]) (*Vector[T], error) {
	if len(v.elems) != len(other.elems) {
		return nil, &ErrShapeMismatch{Op: "division", Left: len(v.elems), Right: len(other.elems)}
	}
	out := make([]T, len(v.elems))
	simd.Div(out, v.elems, other.elems)
	return &Vector[T]{elems: out}, nil
}

// Neg returns the element-wise negation of v. Being unary it has no
// failure mode.
func (v *Vector[T]) Neg() *Vector[T] {
	out := make([]T, len(v.elems))
	simd.Neg(out, v.elems)
	return &Vector[T]{elems: out}
}

// Equal reports whether v and other have the same length and match
// element-wise under IEEE comparison. A length mismatch is plain false,
// not an error, and a nil other is treated the same way (it has no shape
// to match). NaN never equals NaN.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if other == nil || len(v.elems) != len(other.elems) {
		return false
	}
	return simd.Equal(v.elems, other.elems)
}
