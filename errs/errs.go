// Package errs collects the sentinel errors returned across this module.
//
// Every exported error is created with errors.New and is meant to be matched
// with errors.Is. The packages in this module return them unwrapped and
// introduce no bespoke error types.
package errs

import "errors"

var (
	// ErrInvalidMagic is returned when a MELT_TIM header's timEnum field is
	// not 3. DASH2 decoding/encoding only supports timEnum == 3 streams.
	ErrInvalidMagic = errors.New("dash2: timEnum is not a compressed TIM (expected 3)")

	// ErrInvalidHeaderSize is returned when a header slice is not exactly
	// format.HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("dash2: header slice must be exactly 0x30 bytes")

	// ErrZeroBitfield is returned when a header's bitfieldSize field is 0.
	ErrZeroBitfield = errors.New("dash2: bitfield size is zero")

	// ErrMisalignedBitfield is returned when bitfieldSize is not a multiple
	// of 4 bytes.
	ErrMisalignedBitfield = errors.New("dash2: bitfield size is not a multiple of 4")

	// ErrTruncatedStream is returned when the bitfield is exhausted before
	// the decoder has produced decompressedSize bytes. The reference
	// implementation silently returns a short buffer in this case; this
	// module promotes it to an error.
	ErrTruncatedStream = errors.New("dash2: bitfield exhausted before decompressed size reached")

	// ErrOddLength is returned by Encode when the source length is odd.
	// The reference encoder's odd-tail literal path desynchronizes the
	// payload cursor on decode and is not reproduced here.
	ErrOddLength = errors.New("dash2: encoder requires an even-length input")

	// ErrSizeMismatch is returned when nibble.Combine is given two inputs
	// of differing length.
	ErrSizeMismatch = errors.New("nibble: inputs must be of equal length")

	// ErrOffsetOutOfRange is returned when a caller-supplied offset falls
	// outside the bounds of the blob it indexes into.
	ErrOffsetOutOfRange = errors.New("dash2: offset is beyond the end of the data")

	// ErrInvalidFilenamePrefix is returned when a driver-level filename's
	// leading 4 characters are not an ASCII decimal number.
	ErrInvalidFilenamePrefix = errors.New("dash2: filename prefix is not a decimal number")

	// ErrInvalidPaletteSize is returned when a palette blob passed to
	// timimage is not exactly 256 bytes.
	ErrInvalidPaletteSize = errors.New("timimage: palette must be exactly 256 bytes")
)
