package codec

import "errors"

const (
	// MagicNumber identifies numvec codec streams (ASCII: "NVC0")
	MagicNumber = 0x4e564330
	// Version is the current stream format version (v1.0.0)
	Version = 0x00010000

	headerSize = 32
)

// ElementKind tags the element type of an encoded vector.
type ElementKind uint8

const (
	// KindFloat32 marks a float32 payload.
	KindFloat32 ElementKind = 1
	// KindFloat64 marks a float64 payload.
	KindFloat64 ElementKind = 2
)

// String returns the string representation of an ElementKind.
func (k ElementKind) String() string {
	switch k {
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// Compression defines the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidCompression = errors.New("unsupported compression")
	ErrChecksum           = errors.New("payload checksum mismatch")
	ErrCorrupted          = errors.New("corrupted payload")
)

// ErrKindMismatch indicates a stream whose element type does not match the
// type the caller asked to decode.
type ErrKindMismatch struct {
	Expected ElementKind
	Actual   ElementKind
}

func (e *ErrKindMismatch) Error() string {
	return "element kind mismatch: expected " + e.Expected.String() + ", got " + e.Actual.String()
}

// header is the 32-byte header at the start of every encoded vector.
type header struct {
	Magic       uint32
	Version     uint32
	Kind        uint8
	Compression uint8
	Padding     [2]byte
	Count       uint64
	PayloadSize uint64
	Checksum    uint32 // CRC32 (IEEE) of the uncompressed payload
}
