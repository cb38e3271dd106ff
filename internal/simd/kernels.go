package simd

// Lane widths of the register types.
const (
	// Float32Lanes is the chunk width for float32 kernels (128-bit register).
	Float32Lanes = 4
	// Float64Lanes is the chunk width for float64 kernels (128-bit register).
	Float64Lanes = 2
)

// Float is the set of element types the kernels cover.
type Float interface {
	float32 | float64
}

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions may override with wider ISA versions.
var (
	kernelAdd32   = addGeneric32
	kernelSub32   = subGeneric32
	kernelMul32   = mulGeneric32
	kernelDiv32   = divGeneric32
	kernelNeg32   = negGeneric32
	kernelEqual32 = equalGeneric32

	kernelAdd64   = addGeneric64
	kernelSub64   = subGeneric64
	kernelMul64   = mulGeneric64
	kernelDiv64   = divGeneric64
	kernelNeg64   = negGeneric64
	kernelEqual64 = equalGeneric64
)

// ============================================================================
// Public API - dispatch by element type through function pointers
// ============================================================================

// Add stores the element-wise sum a + b into dst.
//
// SAFETY: Assumes len(dst) == len(a) == len(b). Caller MUST ensure lengths
// match to avoid buffer over-reads.
func Add[T Float](dst, a, b []T) {
	switch aa := any(a).(type) {
	case []float32:
		kernelAdd32(any(dst).([]float32), aa, any(b).([]float32))
	case []float64:
		kernelAdd64(any(dst).([]float64), aa, any(b).([]float64))
	}
}

// Sub stores the element-wise difference a - b into dst.
//
// SAFETY: Assumes len(dst) == len(a) == len(b).
func Sub[T Float](dst, a, b []T) {
	switch aa := any(a).(type) {
	case []float32:
		kernelSub32(any(dst).([]float32), aa, any(b).([]float32))
	case []float64:
		kernelSub64(any(dst).([]float64), aa, any(b).([]float64))
	}
}

// Mul stores the element-wise product a * b into dst.
//
// SAFETY: Assumes len(dst) == len(a) == len(b).
func Mul[T Float](dst, a, b []T) {
	switch aa := any(a).(type) {
	case []float32:
		kernelMul32(any(dst).([]float32), aa, any(b).([]float32))
	case []float64:
		kernelMul64(any(dst).([]float64), aa, any(b).([]float64))
	}
}

// Div stores the element-wise quotient a / b into dst. Zero divisors yield
// Inf or NaN per IEEE-754, never a fault.
//
// SAFETY: Assumes len(dst) == len(a) == len(b).
func Div[T Float](dst, a, b []T) {
	switch aa := any(a).(type) {
	case []float32:
		kernelDiv32(any(dst).([]float32), aa, any(b).([]float32))
	case []float64:
		kernelDiv64(any(dst).([]float64), aa, any(b).([]float64))
	}
}

// Neg stores the element-wise negation of a into dst.
//
// SAFETY: Assumes len(dst) == len(a).
func Neg[T Float](dst, a []T) {
	switch aa := any(a).(type) {
	case []float32:
		kernelNeg32(any(dst).([]float32), aa)
	case []float64:
		kernelNeg64(any(dst).([]float64), aa)
	}
}

// Equal reports whether a and b match element-wise under IEEE comparison,
// so NaN never equals NaN. It stops at the first chunk with an unequal lane.
//
// SAFETY: Assumes len(a) == len(b).
func Equal[T Float](a, b []T) bool {
	switch aa := any(a).(type) {
	case []float32:
		return kernelEqual32(aa, any(b).([]float32))
	case []float64:
		return kernelEqual64(aa, any(b).([]float64))
	}
	return false
}

// ============================================================================
// Generic float32 kernels
// ============================================================================
//
// All kernels share one chunking policy: full 4-lane chunks are loaded
// straight from the operands, the final partial chunk is zero-padded into
// the high lanes and only its live lanes are stored back. Padding lanes are
// never observed, so the result is bit-identical to a scalar loop. For
// division the padded lanes divide by zero; the Inf/NaN they produce is
// discarded by StoreTail.

func addGeneric32(dst, a, b []float32) {
	i, n := 0, len(a)
	for ; n-i >= Float32Lanes; i += Float32Lanes {
		x := LoadF32x4(a[i:])
		y := LoadF32x4(b[i:])
		x.Add(y).Store(dst[i:])
	}
	if i < n {
		x := LoadF32x4Tail(a[i:])
		y := LoadF32x4Tail(b[i:])
		x.Add(y).StoreTail(dst[i:])
	}
}

func subGeneric32(dst, a, b []float32) {
	i, n := 0, len(a)
	for ; n-i >= Float32Lanes; i += Float32Lanes {
		x := LoadF32x4(a[i:])
		y := LoadF32x4(b[i:])
		x.Sub(y).Store(dst[i:])
	}
	if i < n {
		x := LoadF32x4Tail(a[i:])
		y := LoadF32x4Tail(b[i:])
		x.Sub(y).StoreTail(dst[i:])
	}
}

func mulGeneric32(dst, a, b []float32) {
	i, n := 0, len(a)
	for ; n-i >= Float32Lanes; i += Float32Lanes {
		x := LoadF32x4(a[i:])
		y := LoadF32x4(b[i:])
		x.Mul(y).Store(dst[i:])
	}
	if i < n {
		x := LoadF32x4Tail(a[i:])
		y := LoadF32x4Tail(b[i:])
		x.Mul(y).StoreTail(dst[i:])
	}
}

func divGeneric32(dst, a, b []float32) {
	i, n := 0, len(a)
	for ; n-i >= Float32Lanes; i += Float32Lanes {
		x := LoadF32x4(a[i:])
		y := LoadF32x4(b[i:])
		x.Div(y).Store(dst[i:])
	}
	if i < n {
		x := LoadF32x4Tail(a[i:])
		y := LoadF32x4Tail(b[i:])
		x.Div(y).StoreTail(dst[i:])
	}
}

func negGeneric32(dst, a []float32) {
	i, n := 0, len(a)
	for ; n-i >= Float32Lanes; i += Float32Lanes {
		LoadF32x4(a[i:]).Neg().Store(dst[i:])
	}
	if i < n {
		LoadF32x4Tail(a[i:]).Neg().StoreTail(dst[i:])
	}
}

func equalGeneric32(a, b []float32) bool {
	i, n := 0, len(a)
	for ; n-i >= Float32Lanes; i += Float32Lanes {
		if !LoadF32x4(a[i:]).Eq(LoadF32x4(b[i:])).All() {
			return false
		}
	}
	if i < n {
		// Both tails pad with 0.0, so padding lanes are always self-equal
		// and the all-lanes mask check stays sound.
		if !LoadF32x4Tail(a[i:]).Eq(LoadF32x4Tail(b[i:])).All() {
			return false
		}
	}
	return true
}

// ============================================================================
// Generic float64 kernels
// ============================================================================

func addGeneric64(dst, a, b []float64) {
	i, n := 0, len(a)
	for ; n-i >= Float64Lanes; i += Float64Lanes {
		x := LoadF64x2(a[i:])
		y := LoadF64x2(b[i:])
		x.Add(y).Store(dst[i:])
	}
	if i < n {
		x := LoadF64x2Tail(a[i:])
		y := LoadF64x2Tail(b[i:])
		x.Add(y).StoreTail(dst[i:])
	}
}

func subGeneric64(dst, a, b []float64) {
	i, n := 0, len(a)
	for ; n-i >= Float64Lanes; i += Float64Lanes {
		x := LoadF64x2(a[i:])
		y := LoadF64x2(b[i:])
		x.Sub(y).Store(dst[i:])
	}
	if i < n {
		x := LoadF64x2Tail(a[i:])
		y := LoadF64x2Tail(b[i:])
		x.Sub(y).StoreTail(dst[i:])
	}
}

func mulGeneric64(dst, a, b []float64) {
	i, n := 0, len(a)
	for ; n-i >= Float64Lanes; i += Float64Lanes {
		x := LoadF64x2(a[i:])
		y := LoadF64x2(b[i:])
		x.Mul(y).Store(dst[i:])
	}
	if i < n {
		x := LoadF64x2Tail(a[i:])
		y := LoadF64x2Tail(b[i:])
		x.Mul(y).StoreTail(dst[i:])
	}
}

func divGeneric64(dst, a, b []float64) {
	i, n := 0, len(a)
	for ; n-i >= Float64Lanes; i += Float64Lanes {
		x := LoadF64x2(a[i:])
		y := LoadF64x2(b[i:])
		x.Div(y).Store(dst[i:])
	}
	if i < n {
		x := LoadF64x2Tail(a[i:])
		y := LoadF64x2Tail(b[i:])
		x.Div(y).StoreTail(dst[i:])
	}
}

func negGeneric64(dst, a []float64) {
	i, n := 0, len(a)
	for ; n-i >= Float64Lanes; i += Float64Lanes {
		LoadF64x2(a[i:]).Neg().Store(dst[i:])
	}
	if i < n {
		LoadF64x2Tail(a[i:]).Neg().StoreTail(dst[i:])
	}
}

func equalGeneric64(a, b []float64) bool {
	i, n := 0, len(a)
	for ; n-i >= Float64Lanes; i += Float64Lanes {
		if !LoadF64x2(a[i:]).Eq(LoadF64x2(b[i:])).All() {
			return false
		}
	}
	if i < n {
		// Both tails pad with 0.0, so padding lanes are always self-equal.
		if !LoadF64x2Tail(a[i:]).Eq(LoadF64x2Tail(b[i:])).All() {
			return false
		}
	}
	return true
}
