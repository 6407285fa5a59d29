package bench

import "github.com/klauspost/compress/s2"

// S2Compressor wraps klauspost/compress/s2, a Snappy-compatible format
// tuned for speed over ratio.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor creates an S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Name returns "s2".
func (c S2Compressor) Name() string { return "s2" }

// Compress compresses data with S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
