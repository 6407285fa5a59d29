// Package dash2 provides convenient top-level wrappers around the DASH2
// codec, header, and font-image subpackages for straightforward use. For
// advanced usage (custom encoder options, raw bitstream access), use the
// format, codec, nibble, and timimage packages directly.
package dash2

import (
	"github.com/21-ko/RockMan-DASH2-toolkit/codec"
	"github.com/21-ko/RockMan-DASH2-toolkit/format"
	"github.com/21-ko/RockMan-DASH2-toolkit/nibble"
)

// Decompress expands a DASH2-compressed blob given its sibling HEADER.BIN
// slice. header must be exactly format.HeaderSize bytes.
func Decompress(compressed, header []byte) ([]byte, error) {
	h, err := format.ParseHeader(header)
	if err != nil {
		return nil, err
	}

	return codec.Decode(h, compressed)
}

// CompressResult is the output of Compress: the encoded bitfield/payload
// stream and the patched header, ready to be written to their respective
// files (the stream to the asset file, the header back into HEADER.BIN).
type CompressResult struct {
	Stream []byte
	Header []byte
}

// Compress encodes raw into the DASH2 stream format, patching a copy of
// header with the resulting decompressedSize and bitfieldSize fields. header
// must be exactly format.HeaderSize bytes and is not modified in place.
func Compress(raw, header []byte) (CompressResult, error) {
	h, err := format.ParseHeader(header)
	if err != nil {
		return CompressResult{}, err
	}

	enc := codec.NewEncoder()
	res, err := enc.Encode(raw)
	if err != nil {
		return CompressResult{}, err
	}

	h.Patch(res.DecompressedSize, res.BitfieldByteCount)

	return CompressResult{Stream: res.Stream, Header: h.Bytes()}, nil
}

// CombineFonts nibble-interleaves two equal-length 4bpp font framebuffers
// into one 8bpp framebuffer.
func CombineFonts(a, b []uint32) ([]uint32, error) {
	return nibble.Combine(a, b)
}

// SplitFonts is the inverse of CombineFonts.
func SplitFonts(combined []uint32) (a, b []uint32) {
	return nibble.Split(combined)
}
