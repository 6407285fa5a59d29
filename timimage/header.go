// Package timimage synthesizes the 288-byte TIM header FontTool prepends to
// a split font framebuffer: a fixed CLUT (palette) section plus a fixed
// 4bpp image section, sized for 8 CLUTs of 16 colors and a 256x256-pixel
// font glyph sheet (64 16-bit units wide).
package timimage

import (
	"encoding/binary"

	"github.com/21-ko/RockMan-DASH2-toolkit/errs"
)

// PaletteSize is the required length of the palette blob passed to NewHeader.
const PaletteSize = 256

// HeaderSize is the fixed byte length of a synthesized TIM header.
const HeaderSize = 288

const (
	timMagic      = 0x00000010
	colorDepth    = 8
	clutLen       = 0x10C
	clutColors    = 0x10
	clutNum       = 0x08
	imageLen      = 0x0000800C
	imageWidth    = 0x40
	imageHeight   = 256
	paletteOffset = 20
	trailerOffset = 276
)

// Header wraps a 256-byte palette (CLUT) and renders it into a complete
// 288-byte TIM header via Bytes.
type Header struct {
	Palette [PaletteSize]byte
}

// NewHeader validates palette's length and returns a Header wrapping a copy
// of it.
func NewHeader(palette []byte) (Header, error) {
	if len(palette) != PaletteSize {
		return Header{}, errs.ErrInvalidPaletteSize
	}

	var h Header
	copy(h.Palette[:], palette)

	return h, nil
}

// Bytes renders the TIM header: fixed CLUT framebuffer/geometry fields,
// the palette itself, then fixed image framebuffer/geometry fields.
func (h Header) Bytes() []byte {
	out := make([]byte, HeaderSize)

	binary.LittleEndian.PutUint32(out[0:4], timMagic)
	binary.LittleEndian.PutUint32(out[4:8], colorDepth)
	binary.LittleEndian.PutUint32(out[8:12], clutLen)
	binary.LittleEndian.PutUint16(out[12:14], 0) // palette framebuffer X
	binary.LittleEndian.PutUint16(out[14:16], 0) // palette framebuffer Y
	binary.LittleEndian.PutUint16(out[16:18], clutColors)
	binary.LittleEndian.PutUint16(out[18:20], clutNum)

	copy(out[paletteOffset:paletteOffset+PaletteSize], h.Palette[:])

	binary.LittleEndian.PutUint32(out[trailerOffset:trailerOffset+4], imageLen)
	binary.LittleEndian.PutUint16(out[trailerOffset+4:trailerOffset+6], 0) // image framebuffer X
	binary.LittleEndian.PutUint16(out[trailerOffset+6:trailerOffset+8], 0) // image framebuffer Y
	binary.LittleEndian.PutUint16(out[trailerOffset+8:trailerOffset+10], imageWidth)
	binary.LittleEndian.PutUint16(out[trailerOffset+10:trailerOffset+12], imageHeight)

	return out
}
