// Package bitio implements the bit-level accumulator the DASH2 encoder uses
// to build its bitfield stream: MSB-first bits packed into 32-bit
// little-endian words, plus a byte-aligned payload appender for the
// companion word stream.
package bitio

import "encoding/binary"

// initialCapacity seeds a new Writer's backing slice with enough room for a
// handful of 32-bit words before append's own growth takes over. PIX/TIM
// assets run from a few hundred bytes (single glyphs) to tens of KB (full
// sprite sheets), so there's no single "typical" size worth hand-tuning a
// growth curve for; append's doubling already amortizes well across that
// range.
const initialCapacity = 64

// Writer accumulates bits into 32-bit words and flushes each completed word
// to a backing slice in little-endian order. It is the Go counterpart of
// the original C BitStream type used for both the bitfield stream and the
// raw payload stream.
//
// The zero value is not usable; construct one with NewWriter.
type Writer struct {
	buf      []byte
	bitBuf   uint32
	bitCount int
}

// NewWriter returns an empty Writer ready to accumulate bits or payload
// bytes.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, initialCapacity)}
}

// AddBits appends the low count bits of bits to the stream, MSB-first
// within each 32-bit word, matching the original C add_bits. Every time the
// accumulator reaches 32 bits it is flushed as one little-endian word.
func (w *Writer) AddBits(bits uint32, count int) {
	mask := uint32(1)<<uint(count) - 1
	w.bitBuf = (w.bitBuf << uint(count)) | (bits & mask)
	w.bitCount += count

	for w.bitCount >= 32 {
		w.bitCount -= 32
		outBits := w.bitBuf >> uint(w.bitCount)
		w.writeWord(outBits)
		w.bitBuf &= uint32(1)<<uint(w.bitCount) - 1
	}
}

// Finalize left-aligns and flushes any partial word remaining in the
// accumulator, padding the low bits with zero. It is a no-op if the
// accumulator is empty. After Finalize, AddBits may still be called to
// start a fresh word.
func (w *Writer) Finalize() {
	if w.bitCount == 0 {
		return
	}

	w.bitBuf <<= uint(32 - w.bitCount)
	w.writeWord(w.bitBuf)
	w.bitBuf = 0
	w.bitCount = 0
}

// AddPayload appends raw bytes to the stream, bypassing the bit
// accumulator entirely. Used for the word-aligned literal/reference payload
// stream, which is never bit-packed.
func (w *Writer) AddPayload(data []byte) {
	w.buf = append(w.buf, data...)
}

// Len returns the number of complete bytes written so far, not counting any
// bits still pending in the accumulator.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the buffer's contents. The returned slice aliases the
// Writer's internal storage and is invalidated by the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) writeWord(word uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], word)
	w.buf = append(w.buf, tmp[:]...)
}
