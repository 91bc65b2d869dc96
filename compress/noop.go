package compress

// NoOpCodec bypasses data without compression. It is useful for artifacts
// stored raw and for measuring codec overhead in benchmarks.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new no-operation codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, without processing or copying.
// The result shares the input's memory.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without processing or copying.
// The result shares the input's memory.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
