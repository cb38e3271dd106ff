// Package numvec provides fixed-width numeric vectors with SIMD-chunked
// element-wise arithmetic for Go.
//
// A Vector owns a flat, contiguous sequence of float32 or float64 values
// and supports element-wise addition, subtraction, multiplication,
// division, negation, and equality. The kernels partition each vector into
// register-sized chunks (4 lanes for float32, 2 for float64), apply one
// vectorized operation per full chunk, and zero-pad the final partial
// chunk, discarding the padding lanes before they are ever observed. The
// result is bit-identical to a scalar element-by-element loop.
//
// # Quick Start
//
//	a := numvec.New([]float32{1, 2, 3, 4})
//	b := numvec.New([]float32{4, 3, 2, 1})
//
//	sum, err := a.Add(b) // [5 5 5 5]
//	if err != nil {
//	    panic(err)
//	}
//
//	neg := sum.Neg()       // [-5 -5 -5 -5]
//	_ = neg.Equal(sum)     // false
//
// Binary operations require operands of equal length and return
// *ErrShapeMismatch otherwise. Equality treats a length mismatch as plain
// false. All arithmetic follows IEEE-754: NaN and Inf pass through, and
// division by zero yields Inf or NaN rather than an error.
//
// Vectors are immutable after construction, so sharing them across
// goroutines for reading needs no synchronization.
//
// # Serialization
//
// The codec subpackage round-trips vectors through a compact binary format
// with optional LZ4 or zstd compression.
package numvec
