// Package codec serializes numvec vectors to a compact binary stream.
//
// The format is a fixed 32-byte header (magic, version, element kind,
// compression, element count, payload size, CRC32 of the raw payload)
// followed by the little-endian element bytes, optionally block-compressed
// with LZ4 or ZSTD. Callers own the streams; the package never touches the
// filesystem or network itself.
package codec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/numvec"
)

var byteOrder = binary.LittleEndian

// Options configures encoding.
type Options struct {
	// Compression selects the payload compression. Defaults to none.
	Compression Compression
}

// Option customizes encoding options.
type Option func(*Options)

// WithCompression selects the payload compression algorithm.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

// Encode writes v to w in the numvec binary format.
//
// Incompressible payloads are stored raw with the compression field reset
// to none, so the requested algorithm is an upper bound, not a guarantee.
func Encode[T numvec.Float](w io.Writer, v *numvec.Vector[T], opts ...Option) error {
	o := Options{}
	for _, fn := range opts {
		fn(&o)
	}

	elems := v.Elements()
	raw := marshalElements(elems)

	payload, comp, err := compress(raw, o.Compression)
	if err != nil {
		return err
	}

	hdr := header{
		Magic:       MagicNumber,
		Version:     Version,
		Kind:        uint8(kindOf[T]()),
		Compression: uint8(comp),
		Count:       uint64(len(elems)),
		PayloadSize: uint64(len(payload)),
		Checksum:    crc32.ChecksumIEEE(raw),
	}
	if err := binary.Write(w, byteOrder, &hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// Decode reads a vector of element type T from r. It validates the magic
// number, version, element kind, and payload checksum before constructing
// the vector.
func Decode[T numvec.Float](r io.Reader) (*numvec.Vector[T], error) {
	var hdr header
	if err := binary.Read(r, byteOrder, &hdr); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if hdr.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, hdr.Magic)
	}
	if hdr.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, hdr.Version)
	}
	if hdr.Kind != uint8(kindOf[T]()) {
		return nil, &ErrKindMismatch{Expected: kindOf[T](), Actual: ElementKind(hdr.Kind)}
	}

	// Bound the declared sizes before any allocation so a hostile header
	// errors out instead of overflowing or forcing a huge make.
	esize := elemSize[T]()
	if hdr.Count > uint64(math.MaxInt/esize) {
		return nil, fmt.Errorf("%w: implausible element count %d", ErrCorrupted, hdr.Count)
	}
	rawSize := int(hdr.Count) * esize
	// The encoder stores a payload compressed only when it is smaller than
	// the raw bytes, so a valid payload never exceeds rawSize.
	if hdr.PayloadSize > uint64(rawSize) {
		return nil, fmt.Errorf("%w: payload size %d exceeds %d declared elements", ErrCorrupted, hdr.PayloadSize, hdr.Count)
	}

	payload := make([]byte, hdr.PayloadSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	raw, err := decompress(payload, Compression(hdr.Compression), rawSize)
	if err != nil {
		return nil, err
	}
	if len(raw) != rawSize {
		return nil, fmt.Errorf("%w: payload holds %d bytes, header declares %d elements", ErrCorrupted, len(raw), hdr.Count)
	}
	if crc32.ChecksumIEEE(raw) != hdr.Checksum {
		return nil, ErrChecksum
	}

	return numvec.New(unmarshalElements[T](raw, int(hdr.Count))), nil
}

func kindOf[T numvec.Float]() ElementKind {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return KindFloat32
	}
	return KindFloat64
}

func elemSize[T numvec.Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 4
	}
	return 8
}

func marshalElements[T numvec.Float](elems []T) []byte {
	switch ee := any(elems).(type) {
	case []float32:
		buf := make([]byte, len(ee)*4)
		for i, x := range ee {
			byteOrder.PutUint32(buf[i*4:], math.Float32bits(x))
		}
		return buf
	case []float64:
		buf := make([]byte, len(ee)*8)
		for i, x := range ee {
			byteOrder.PutUint64(buf[i*8:], math.Float64bits(x))
		}
		return buf
	}
	return nil
}

func unmarshalElements[T numvec.Float](raw []byte, count int) []T {
	elems := make([]T, count)
	switch ee := any(elems).(type) {
	case []float32:
		for i := range ee {
			ee[i] = math.Float32frombits(byteOrder.Uint32(raw[i*4:]))
		}
	case []float64:
		for i := range ee {
			ee[i] = math.Float64frombits(byteOrder.Uint64(raw[i*8:]))
		}
	}
	return elems
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress applies c to raw. When the result would not be smaller than the
// input, the payload is stored raw and the returned compression is none.
func compress(raw []byte, c Compression) ([]byte, Compression, error) {
	if len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	switch c {
	case CompressionNone:
		return raw, CompressionNone, nil

	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, dst, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4 compress: %w", err)
		}
		if n == 0 || n >= len(raw) {
			return raw, CompressionNone, nil // incompressible
		}
		return dst[:n], CompressionLZ4, nil

	case CompressionZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)

		compressed := enc.EncodeAll(raw, nil)
		if len(compressed) >= len(raw) {
			return raw, CompressionNone, nil // incompressible
		}
		return compressed, CompressionZSTD, nil

	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidCompression, c)
	}
}

func decompress(payload []byte, c Compression, rawSize int) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil

	case CompressionLZ4:
		raw := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return raw[:n], nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		raw, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return raw, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, c)
	}
}
