// Package simd implements the chunked element-wise kernels behind numvec.
//
// # Lane Model
//
// float32 kernels work in 4-lane chunks (F32x4), float64 kernels in 2-lane
// chunks (F64x2), matching a 128-bit vector register. A sequence of length N
// is walked in register-sized steps: full chunks are loaded directly, the
// final partial chunk is zero-padded into the high lanes and only its live
// lanes are stored back. The result is bit-identical to a scalar loop.
//
// # Dispatch
//
// Kernel selection goes through package-level function pointers that default
// to the portable generic implementations. The register types are fixed-size
// arrays so the compiler can auto-vectorize the lane loops; platform init
// detects CPU features (reported via ActiveISA) and is the hook for wiring
// hand-tuned per-ISA kernels. Set NUMVEC_SIMD to pin an ISA for testing.
//
// No per-ISA kernels are wired yet: every ISA currently executes the generic
// implementations, so ActiveISA describes the CPU, not the code path.
package simd
