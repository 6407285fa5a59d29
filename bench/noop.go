package bench

// NoOpCompressor bypasses compression entirely, giving a 1.0 ratio
// baseline to compare every other codec (and DASH2 itself) against.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor creates a no-op compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Name returns "noop".
func (c NoOpCompressor) Name() string { return "noop" }

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
