package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// A single shared encoder and decoder serve all ZstdCodec values: EncodeAll
// and DecodeAll do not mutate instance state, and klauspost/compress/zstd
// documents both as safe for concurrent use on a stored instance. Loading
// artifacts is not a hot path, so one lazily built pair is enough.
var (
	zstdEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		// Artifacts are written once and read many times; favor ratio over
		// encode speed.
		return zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithEncoderConcurrency(1),
		)
	})

	zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		// Cap the window allocation; a stored artifact never legitimately
		// needs a gigabyte-scale history.
		return zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(1<<30),
		)
	})
)

// ZstdCodec compresses and decompresses Zstandard frames.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Compress compresses the input into a Zstandard frame.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc, err := zstdEncoder()
	if err != nil {
		return nil, fmt.Errorf("zstd: init encoder: %w", err)
	}

	// Seed the destination at half the input size, the usual ratio for
	// artifact payloads.
	return enc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress decompresses a Zstandard frame. The frame header carries the
// content size, so the result is sized exactly.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec, err := zstdDecoder()
	if err != nil {
		return nil, fmt.Errorf("zstd: init decoder: %w", err)
	}

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: decode frame: %w", err)
	}

	return out, nil
}
