package simd

// F32x4 is a 4-lane float32 register. Fixed-size arrays keep the lane
// loops eligible for compiler auto-vectorization.
type F32x4 [4]float32

// F64x2 is a 2-lane float64 register.
type F64x2 [2]float64

// Mask4 is the result of a 4-lane comparison.
type Mask4 [4]bool

// Mask2 is the result of a 2-lane comparison.
type Mask2 [2]bool

// All reports whether every lane of the mask is set.
func (m Mask4) All() bool {
	return m[0] && m[1] && m[2] && m[3]
}

// All reports whether every lane of the mask is set.
func (m Mask2) All() bool {
	return m[0] && m[1]
}

// LoadF32x4 loads four consecutive elements from s.
// s must hold at least four elements.
func LoadF32x4(s []float32) F32x4 {
	return F32x4(s[:4])
}

// LoadF32x4Tail loads len(s) elements into the low lanes and zero-fills
// the remaining high lanes. s must hold fewer than four elements.
func LoadF32x4Tail(s []float32) F32x4 {
	var v F32x4
	copy(v[:], s)
	return v
}

// Store writes all four lanes to dst. dst must hold at least four elements.
func (v F32x4) Store(dst []float32) {
	copy(dst[:4], v[:])
}

// StoreTail writes the low len(dst) lanes to dst, discarding the padding
// lanes. dst must hold fewer than four elements.
func (v F32x4) StoreTail(dst []float32) {
	copy(dst, v[:])
}

// Add returns the lane-wise sum v + o.
func (v F32x4) Add(o F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// Sub returns the lane-wise difference v - o.
func (v F32x4) Sub(o F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul returns the lane-wise product v * o.
func (v F32x4) Mul(o F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Div returns the lane-wise quotient v / o. Division follows IEEE-754:
// a zero divisor yields Inf or NaN in that lane, never a fault.
func (v F32x4) Div(o F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] / o[i]
	}
	return r
}

// Neg returns the lane-wise negation of v.
func (v F32x4) Neg() F32x4 {
	var r F32x4
	for i := range v {
		r[i] = -v[i]
	}
	return r
}

// Eq compares lane-wise and returns the resulting mask. NaN lanes compare
// unequal, including against themselves.
func (v F32x4) Eq(o F32x4) Mask4 {
	var m Mask4
	for i := range v {
		m[i] = v[i] == o[i]
	}
	return m
}

// LoadF64x2 loads two consecutive elements from s.
// s must hold at least two elements.
func LoadF64x2(s []float64) F64x2 {
	return F64x2(s[:2])
}

// LoadF64x2Tail loads len(s) elements into the low lanes and zero-fills
// the remaining high lanes. s must hold fewer than two elements.
func LoadF64x2Tail(s []float64) F64x2 {
	var v F64x2
	copy(v[:], s)
	return v
}

// Store writes both lanes to dst. dst must hold at least two elements.
func (v F64x2) Store(dst []float64) {
	copy(dst[:2], v[:])
}

// StoreTail writes the low len(dst) lanes to dst, discarding the padding
// lanes. dst must hold fewer than two elements.
func (v F64x2) StoreTail(dst []float64) {
	copy(dst, v[:])
}

// Add returns the lane-wise sum v + o.
func (v F64x2) Add(o F64x2) F64x2 {
	var r F64x2
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// Sub returns the lane-wise difference v - o.
func (v F64x2) Sub(o F64x2) F64x2 {
	var r F64x2
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul returns the lane-wise product v * o.
func (v F64x2) Mul(o F64x2) F64x2 {
	var r F64x2
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Div returns the lane-wise quotient v / o. Division follows IEEE-754:
// a zero divisor yields Inf or NaN in that lane, never a fault.
func (v F64x2) Div(o F64x2) F64x2 {
	var r F64x2
	for i := range v {
		r[i] = v[i] / o[i]
	}
	return r
}

// Neg returns the lane-wise negation of v.
func (v F64x2) Neg() F64x2 {
	var r F64x2
	for i := range v {
		r[i] = -v[i]
	}
	return r
}

// Eq compares lane-wise and returns the resulting mask. NaN lanes compare
// unequal, including against themselves.
func (v F64x2) Eq(o F64x2) Mask2 {
	var m Mask2
	for i := range v {
		m[i] = v[i] == o[i]
	}
	return m
}
