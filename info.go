package numvec

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/numvec/internal/simd"
)

// BuildInfo describes the kernel configuration selected at startup.
type BuildInfo struct {
	GOOS         string
	GOARCH       string
	ISA          string
	Overridden   bool
	Float32Lanes int
	Float64Lanes int
}

// Info reports the active kernel configuration. The ISA is auto-detected
// from CPU features at startup (set NUMVEC_SIMD to pin one for testing)
// and is diagnostic: all ISAs currently run the portable generic kernels.
func Info() BuildInfo {
	return BuildInfo{
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
		ISA:          simd.ActiveISA().String(),
		Overridden:   simd.IsOverridden(),
		Float32Lanes: simd.Float32Lanes,
		Float64Lanes: simd.Float64Lanes,
	}
}

// LogValue implements slog.LogValuer.
func (b BuildInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("goos", b.GOOS),
		slog.String("goarch", b.GOARCH),
		slog.String("isa", b.ISA),
		slog.Bool("overridden", b.Overridden),
		slog.Int("float32_lanes", b.Float32Lanes),
		slog.Int("float64_lanes", b.Float64Lanes),
	)
}
