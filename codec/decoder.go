package codec

import (
	"encoding/binary"

	"github.com/21-ko/RockMan-DASH2-toolkit/bitio"
	"github.com/21-ko/RockMan-DASH2-toolkit/errs"
	"github.com/21-ko/RockMan-DASH2-toolkit/format"
)

// Decode expands a DASH2 bitfield/payload stream back into its raw
// decompressed bytes, per the header's bitfieldSize/decompressedSize
// fields.
//
// A header with decompressedSize 0 decodes to an empty result after only its
// magic is checked, since the encoder emits no bitfield for empty input.
// Otherwise the header must satisfy header.ValidateForDecode(); Decode calls
// it here so it never has to trust a caller that skipped the check.
func Decode(header format.Header, stream []byte) ([]byte, error) {
	if header.DecompressedSize() == 0 {
		if err := header.Validate(); err != nil {
			return nil, err
		}

		return []byte{}, nil
	}

	if err := header.ValidateForDecode(); err != nil {
		return nil, err
	}

	bitfieldLen := int(header.BitfieldSize())
	decompressedSize := int(header.DecompressedSize())

	if bitfieldLen > len(stream) {
		return nil, errs.ErrTruncatedStream
	}

	bits := bitio.NewReader(stream[:bitfieldLen])
	payload := stream[bitfieldLen:]
	payloadOffset := 0
	window := 0

	out := make([]byte, 0, decompressedSize)

	for len(out) < decompressedSize {
		bit, ok := bits.Next()
		if !ok {
			return nil, errs.ErrTruncatedStream
		}
		if payloadOffset+2 > len(payload) {
			return nil, errs.ErrTruncatedStream
		}

		word := binary.LittleEndian.Uint16(payload[payloadOffset:])
		payloadOffset += 2

		switch {
		case !bit:
			out = append(out, byte(word), byte(word>>8))
		case word == format.ResetSentinel:
			window += format.WindowSize
		default:
			sourceOffset := window + int((word>>3)&0x1FFF)
			length := int(word&0x07) + 2

			for length > 0 && len(out) < decompressedSize {
				b0 := readByteAt(out, sourceOffset)
				b1 := readByteAt(out, sourceOffset+1)
				out = append(out, b0, b1)
				sourceOffset += 2
				length--
			}
		}
	}

	if len(out) > decompressedSize {
		out = out[:decompressedSize]
	}

	return out, nil
}

func readByteAt(buf []byte, i int) byte {
	if i < 0 || i >= len(buf) {
		return 0
	}

	return buf[i]
}
