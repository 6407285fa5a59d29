package format

import (
	"encoding/binary"

	"github.com/21-ko/RockMan-DASH2-toolkit/errs"
)

// Header is the 0x30-byte MELT_TIM header living in the sibling HEADER.BIN
// index file. Only four fields are semantically live (timEnum,
// decompressedSize, paddedDataSizeNum, bitfieldSize); every other byte is
// opaque and is preserved verbatim across a decompress/compress round-trip.
//
// Header's zero value is not valid; construct one with ParseHeader.
type Header struct {
	raw [HeaderSize]byte
}

// ParseHeader reads a Header out of a HeaderSize-byte slice.
//
// The returned Header owns a copy of data, so callers may reuse or discard
// the slice afterward.
func ParseHeader(data []byte) (Header, error) {
	if len(data) != HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	var h Header
	copy(h.raw[:], data)

	return h, nil
}

// Validate reports whether the header's timEnum field marks it as a
// DASH2-compressed TIM. Any other value is a fatal format error.
func (h Header) Validate() error {
	if h.TimEnum() != DashTimEnum {
		return errs.ErrInvalidMagic
	}

	return nil
}

// TimEnum returns the header's format discriminator (offset 0x00).
func (h Header) TimEnum() uint32 {
	return binary.LittleEndian.Uint32(h.raw[offTimEnum:])
}

// DecompressedSize returns the byte length of the raw payload after
// decompression (offset 0x04).
func (h Header) DecompressedSize() uint32 {
	return binary.LittleEndian.Uint32(h.raw[offDecompressedSize:])
}

// PaddedDataSizeNum returns the field the font splitter uses to locate the
// raw pixel payload inside a wrapped file (offset 0x08).
func (h Header) PaddedDataSizeNum() uint32 {
	return binary.LittleEndian.Uint32(h.raw[offPaddedDataSizeNum:])
}

// BitfieldSize returns the byte length of the bitfield prefix of the
// compressed stream (offset 0x24). It must be a multiple of 4.
func (h Header) BitfieldSize() uint16 {
	return binary.LittleEndian.Uint16(h.raw[offBitfieldSize:])
}

// ValidateForDecode checks the invariants the decoder depends on beyond the
// magic number: a non-zero, 4-byte-aligned bitfield size.
func (h Header) ValidateForDecode() error {
	if err := h.Validate(); err != nil {
		return err
	}

	if h.BitfieldSize() == 0 {
		return errs.ErrZeroBitfield
	}
	if h.BitfieldSize()%4 != 0 {
		return errs.ErrMisalignedBitfield
	}

	return nil
}

// Patch overwrites the two encoder-written spans (decompressedSize at 0x04,
// bitfieldSize at 0x24) and leaves every other byte untouched. This is the
// only mutation Header exposes; every other field is read-only pass-through
// data supplied by ParseHeader.
func (h *Header) Patch(decompressedSize uint32, bitfieldSize uint16) {
	binary.LittleEndian.PutUint32(h.raw[offDecompressedSize:], decompressedSize)
	binary.LittleEndian.PutUint16(h.raw[offBitfieldSize:], bitfieldSize)
}

// Bytes returns a copy of the header's raw bytes, suitable for writing back
// to HEADER.BIN or prepending to an output file.
func (h Header) Bytes() []byte {
	out := make([]byte, HeaderSize)
	copy(out, h.raw[:])

	return out
}
