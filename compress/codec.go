// Package compress provides the at-rest codecs for stored IFC artifacts.
//
// The artifact format itself is uncompressed, but build systems routinely
// keep .ifc files zstd-, s2- or lz4-compressed on disk. Every compressing
// codec here uses a self-describing frame format, so Detect can sniff the framing from
// the leading bytes and ifc.Load can transparently decompress before
// opening the blob.
package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
)

// Compressor compresses a complete artifact into a framed payload.
type Compressor interface {
	// Compress compresses the input data and returns the framed result.
	// The input is not modified. The zstd, s2 and lz4 codecs return a newly
	// allocated slice owned by the caller; NoOpCodec returns the input.
	Compress(data []byte) ([]byte, error)
}

// Decompressor undoes a codec's framing.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// bytes. The input is not modified. The zstd, s2 and lz4 codecs return a
	// newly allocated slice (and therefore one aligned for the reader's
	// record layouts); NoOpCodec returns the input.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}

// Frame magics of the supported codecs.
var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	s2Magic   = []byte{0xFF, 0x06, 0x00, 0x00}
)

// Detect sniffs the compression framing of stored artifact bytes. Bytes
// matching no known frame magic are reported as CompressionNone; the IFC
// signature itself collides with none of them.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, s2Magic):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}
