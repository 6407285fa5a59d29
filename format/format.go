// Package format defines the wire-level constants and the MELT_TIM header
// type shared by the lzwindow and codec packages, the root dash2 package and
// cmd/dashtool.
//
// All multi-byte fields in this package are little-endian, matching the
// on-disc MELT_TIM layout.
package format

const (
	// HeaderSize is the fixed byte length of a MELT_TIM header.
	HeaderSize = 0x30

	// WindowSize is the number of bytes the decoder's reference window
	// advances on each explicit reset sentinel.
	WindowSize = 0x2000

	// DashTimEnum is the only supported value of the header's timEnum
	// field; any other value is a fatal format error.
	DashTimEnum = 3

	// ResetSentinel is the 16-bit payload word that signals a window reset
	// rather than a literal or a reference.
	ResetSentinel = 0xFFFF

	// MaxCoded is the longest match length the LZ matcher will report,
	// (7<<1)+2 in the original source.
	MaxCoded = 16

	// MaxUncoded is the shortest match length the matcher and encoder will
	// treat as codeable, (2<<1) in the original source. Anything shorter
	// falls back to a literal. This is also the minimum length for which
	// the 3-bit length field (length3 = match_len/2 - 2) stays non-negative;
	// a value of 2 (as some descriptions of the format give it) would
	// underflow length3 to -1 for a length-2 match. See DESIGN.md's `format`
	// entry for the full resolution.
	MaxUncoded = 4
)

// header byte offsets within the MELT_TIM header.
const (
	offTimEnum           = 0x00
	offDecompressedSize  = 0x04
	offPaddedDataSizeNum = 0x08
	offBitfieldSize      = 0x24
)
