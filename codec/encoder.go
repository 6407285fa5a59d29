// Package codec implements the DASH2 LZSS-style bitstream: a greedy
// matcher over a segmented sliding window, a one-bit-per-token bitfield
// distinguishing literals from back-references, and explicit window-reset
// sentinels every format.WindowSize bytes.
package codec

import (
	"encoding/binary"

	"github.com/21-ko/RockMan-DASH2-toolkit/bitio"
	"github.com/21-ko/RockMan-DASH2-toolkit/errs"
	"github.com/21-ko/RockMan-DASH2-toolkit/format"
	"github.com/21-ko/RockMan-DASH2-toolkit/lzwindow"
)

// Encoder holds the configuration for a single Encode call. Its zero value
// is usable: a non-positive minMatch is treated as format.MaxUncoded.
// NewEncoder exists for symmetry with the rest of the module and as the
// extension point for future options.
type Encoder struct {
	minMatch int
}

// Option configures an Encoder. minMatch is the only tunable this package
// exposes, so an Option is simply a function over *Encoder rather than a
// generic, error-returning abstraction built for configs with many fields.
type Option func(*Encoder)

// WithMinMatch overrides the shortest match length the encoder will emit as
// a back-reference; anything shorter falls back to a literal pair. Mostly
// useful for tests that want to force literal-heavy output.
func WithMinMatch(n int) Option {
	return func(e *Encoder) { e.minMatch = n }
}

// NewEncoder builds an Encoder with format.MaxUncoded as its default
// minMatch, then applies opts.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{minMatch: format.MaxUncoded}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Result is the output of a single Encode call: the bitfield+payload stream
// ready to follow a MELT_TIM header, plus the two fields that header must be
// patched with.
type Result struct {
	Stream            []byte
	DecompressedSize  uint32
	BitfieldByteCount uint16
}

// Encode compresses data into the DASH2 bitfield/payload stream.
//
// data must have even length: the reference encoder's handling of a
// trailing odd byte writes a short payload entry that desynchronizes the
// decoder's fixed 2-byte payload stride (see errs.ErrOddLength). Round-trip
// correctness requires rejecting that input rather than reproducing it.
func (e *Encoder) Encode(data []byte) (Result, error) {
	if len(data)%2 != 0 {
		return Result{}, errs.ErrOddLength
	}

	bits := bitio.NewWriter()
	payload := bitio.NewWriter()

	minMatch := e.minMatch
	if minMatch <= 0 {
		minMatch = format.MaxUncoded
	}

	pos := 0
	nextInsertPoint := format.WindowSize

	var wordBuf [2]byte

	for pos < len(data) {
		offset, length := lzwindow.Find(data, pos, len(data))

		if length >= minMatch && length%2 == 0 {
			bits.AddBits(1, 1)

			refOffset := uint16(offset & 0x1FFF)
			refLength := uint16((length / 2) - 2)
			word := (refOffset << 3) | (refLength & 0x07)

			binary.LittleEndian.PutUint16(wordBuf[:], word)
			payload.AddPayload(wordBuf[:])
			pos += length
		} else {
			bits.AddBits(0, 1)

			word := uint16(data[pos]) | uint16(data[pos+1])<<8
			binary.LittleEndian.PutUint16(wordBuf[:], word)
			payload.AddPayload(wordBuf[:])
			pos += 2
		}

		if pos >= nextInsertPoint {
			bits.AddBits(1, 1)
			binary.LittleEndian.PutUint16(wordBuf[:], format.ResetSentinel)
			payload.AddPayload(wordBuf[:])
			nextInsertPoint += format.WindowSize
		}
	}

	bits.Finalize()
	bitfieldByteCount := bits.Len()

	stream := make([]byte, 0, bitfieldByteCount+payload.Len())
	stream = append(stream, bits.Bytes()...)
	stream = append(stream, payload.Bytes()...)

	return Result{
		Stream:            stream,
		DecompressedSize:  uint32(len(data)),
		BitfieldByteCount: uint16(bitfieldByteCount),
	}, nil
}
