// Package bench compares DASH2's compression ratio against general-purpose
// byte compressors (S2, Zstd, LZ4) on the same input, for the
// "-compare" mode of cmd/dashtool. It is diagnostic tooling, not part of
// the DASH2 format itself: nothing in codec or dash2 depends on it.
package bench

import "fmt"

// Compressor compresses arbitrary byte slices for ratio comparison.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's output.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Every general-purpose algorithm this
// package wires in implements it.
type Codec interface {
	Name() string
	Compressor
	Decompressor
}

// Stats describes one algorithm's result compressing a single input.
type Stats struct {
	Algorithm           string
	OriginalSize        int64
	CompressedSize      int64
	CompressionTimeNs   int64
	DecompressionTimeNs int64
}

// Ratio returns CompressedSize / OriginalSize; lower is better.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the percentage of bytes saved versus the original.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = []Codec{
	NewNoOpCompressor(),
	NewS2Compressor(),
	NewLZ4Compressor(),
	NewZstdCompressor(),
}

// Codecs returns every general-purpose codec this package wires in, in a
// fixed, deterministic order.
func Codecs() []Codec {
	out := make([]Codec, len(builtinCodecs))
	copy(out, builtinCodecs)

	return out
}

// GetCodec looks up a built-in codec by its Name().
func GetCodec(name string) (Codec, error) {
	for _, c := range builtinCodecs {
		if c.Name() == name {
			return c, nil
		}
	}

	return nil, fmt.Errorf("bench: unknown codec %q", name)
}
