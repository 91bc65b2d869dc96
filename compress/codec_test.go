package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/ifc/format"
	"github.com/stretchr/testify/require"
)

var sample = bytes.Repeat([]byte("partitioned blobs compress well "), 64)

func TestCodecs_RoundTrip(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(sample)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, sample, decompressed)
		})
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7F))

	require.Error(t, err)
}

func TestDetect(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(sample)
			require.NoError(t, err)

			require.Equal(t, compression, Detect(compressed))
		})
	}

	t.Run("Raw artifact bytes", func(t *testing.T) {
		require.Equal(t, format.CompressionNone, Detect([]byte{0x54, 0x51, 0x45, 0x1A, 0x00}))
	})

	t.Run("Empty input", func(t *testing.T) {
		require.Equal(t, format.CompressionNone, Detect(nil))
	})
}

func TestZstd_DecompressCorrupted(t *testing.T) {
	codec := NewZstdCodec()

	_, err := codec.Decompress([]byte{0x28, 0xB5, 0x2F, 0xFD, 0xFF, 0xFF})

	require.Error(t, err)
}
