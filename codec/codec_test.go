package codec

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/numvec"
)

func TestHeaderSize(t *testing.T) {
	assert.Equal(t, headerSize, binary.Size(header{}))
}

func TestRoundTripFloat32(t *testing.T) {
	compressions := []struct {
		name string
		c    Compression
	}{
		{"None", CompressionNone},
		{"LZ4", CompressionLZ4},
		{"ZSTD", CompressionZSTD},
	}

	elems := make([]float32, 1000)
	for i := range elems {
		elems[i] = float32(i%17) * 0.25
	}
	v := numvec.New(elems)

	for _, tc := range compressions {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, v, WithCompression(tc.c)))

			decoded, err := Decode[float32](&buf)
			require.NoError(t, err)
			assert.True(t, v.Equal(decoded))
		})
	}
}

func TestRoundTripFloat64(t *testing.T) {
	v := numvec.New([]float64{1.5, -2.25, math.Inf(1), 0})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, v, WithCompression(CompressionZSTD)))

	decoded, err := Decode[float64](&buf)
	require.NoError(t, err)
	assert.True(t, v.Equal(decoded))
}

func TestRoundTripEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, numvec.New([]float32(nil))))

	decoded, err := Decode[float32](&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.Len())
}

func TestRoundTripPreservesNaNBits(t *testing.T) {
	v := numvec.New([]float64{math.NaN()})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, v))

	decoded, err := Decode[float64](&buf)
	require.NoError(t, err)
	require.Equal(t, 1, decoded.Len())
	assert.Equal(t, math.Float64bits(v.At(0)), math.Float64bits(decoded.At(0)))
}

func TestCompressionFallsBackWhenIncompressible(t *testing.T) {
	// A single element cannot shrink under block compression; the stream
	// must degrade to an uncompressed payload that still decodes.
	v := numvec.New([]float32{3.14159})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, v, WithCompression(CompressionLZ4)))

	decoded, err := Decode[float32](&buf)
	require.NoError(t, err)
	assert.True(t, v.Equal(decoded))
}

func TestDecodeInvalidMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, numvec.New([]float32{1})))

	data := buf.Bytes()
	data[0] ^= 0xff

	_, err := Decode[float32](bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestDecodeInvalidVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, numvec.New([]float32{1})))

	data := buf.Bytes()
	data[4] ^= 0xff

	_, err := Decode[float32](bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestDecodeKindMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, numvec.New([]float32{1, 2})))

	_, err := Decode[float64](&buf)

	var km *ErrKindMismatch
	require.ErrorAs(t, err, &km)
	assert.Equal(t, KindFloat64, km.Expected)
	assert.Equal(t, KindFloat32, km.Actual)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, numvec.New([]float32{1, 2, 3})))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xff // flip a payload bit

	_, err := Decode[float32](bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestDecodeHostileHeader(t *testing.T) {
	tests := []struct {
		name string
		hdr  header
	}{
		{
			// Count*8 would overflow int and fault the LZ4 output allocation.
			"OverflowingCount",
			header{Magic: MagicNumber, Version: Version, Kind: uint8(KindFloat64), Compression: uint8(CompressionLZ4), Count: 1 << 60, PayloadSize: 4},
		},
		{
			// Count*8 wraps all the way around to zero.
			"WrappingCount",
			header{Magic: MagicNumber, Version: Version, Kind: uint8(KindFloat64), Compression: uint8(CompressionLZ4), Count: 1 << 61, PayloadSize: 4},
		},
		{
			// A valid payload is never larger than the raw element bytes;
			// this one would allocate an attacker-chosen buffer.
			"OversizedPayload",
			header{Magic: MagicNumber, Version: Version, Kind: uint8(KindFloat64), Compression: uint8(CompressionNone), Count: 1, PayloadSize: 1 << 40},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, binary.Write(&buf, byteOrder, &tc.hdr))
			buf.Write([]byte{1, 2, 3, 4})

			assert.NotPanics(t, func() {
				_, err := Decode[float64](&buf)
				assert.ErrorIs(t, err, ErrCorrupted)
			})
		})
	}
}

func TestDecodeTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, numvec.New([]float64{1, 2, 3})))

	data := buf.Bytes()

	_, err := Decode[float64](bytes.NewReader(data[:len(data)-4]))
	assert.Error(t, err)
}

func TestEncodeInvalidCompression(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, numvec.New([]float32{1}), WithCompression(Compression(99)))
	assert.ErrorIs(t, err, ErrInvalidCompression)
}
