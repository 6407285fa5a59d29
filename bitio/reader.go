package bitio

import "encoding/binary"

// Reader iterates the bits of a packed bitfield stream in the same order
// they were produced by Writer: each 32-bit little-endian word is consumed
// MSB-first (bit 31 down to bit 0), and consecutive words are consumed in
// stream order.
//
// The zero value is not usable; construct one with NewReader.
type Reader struct {
	data []byte
	pos  int // bit position, 0-based, advances by 1 per Next call
}

// NewReader wraps data, whose length must be a multiple of 4. The caller is
// responsible for that invariant; format.Header.ValidateForDecode checks it
// for the bitfield span of a DASH2 stream.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total number of bits available.
func (r *Reader) Len() int {
	return len(r.data) * 8
}

// Next returns the bit at the reader's current position and advances by
// one. ok is false once every bit has been consumed.
func (r *Reader) Next() (bit bool, ok bool) {
	if r.pos >= r.Len() {
		return false, false
	}

	wordIdx := (r.pos / 32) * 4
	bitInWord := 31 - (r.pos % 32)
	word := binary.LittleEndian.Uint32(r.data[wordIdx : wordIdx+4])

	r.pos++

	return (word>>uint(bitInWord))&1 != 0, true
}
