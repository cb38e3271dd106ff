package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain runs before all tests and prints ISA diagnostic information.
// This helps CI identify which kernel configuration is actually in use.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD ISA Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("NUMVEC_SIMD=%q\n", os.Getenv("NUMVEC_SIMD"))
	fmt.Printf("Active ISA: %s\n", ActiveISA())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Lane widths: float32=%d float64=%d\n", Float32Lanes, Float64Lanes)
	fmt.Printf("============================\n\n")

	os.Exit(m.Run())
}
