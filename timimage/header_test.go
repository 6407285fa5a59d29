package timimage_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/21-ko/RockMan-DASH2-toolkit/errs"
	"github.com/21-ko/RockMan-DASH2-toolkit/timimage"
)

func TestNewHeader_RejectsWrongPaletteSize(t *testing.T) {
	_, err := timimage.NewHeader(make([]byte, 10))
	assert.ErrorIs(t, err, errs.ErrInvalidPaletteSize)
}

func TestHeader_Bytes_FixedFields(t *testing.T) {
	palette := make([]byte, timimage.PaletteSize)
	for i := range palette {
		palette[i] = byte(i)
	}

	h, err := timimage.NewHeader(palette)
	require.NoError(t, err)

	out := h.Bytes()
	require.Len(t, out, timimage.HeaderSize)

	assert.Equal(t, uint32(0x10), binary.LittleEndian.Uint32(out[0:4]))
	assert.Equal(t, uint32(8), binary.LittleEndian.Uint32(out[4:8]))
	assert.Equal(t, uint32(0x10C), binary.LittleEndian.Uint32(out[8:12]))
	assert.Equal(t, uint16(0x10), binary.LittleEndian.Uint16(out[16:18]))
	assert.Equal(t, uint16(0x08), binary.LittleEndian.Uint16(out[18:20]))

	assert.Equal(t, palette, out[20:276])

	assert.Equal(t, uint32(0x0000800C), binary.LittleEndian.Uint32(out[276:280]))
	assert.Equal(t, uint16(0x40), binary.LittleEndian.Uint16(out[284:286]))
	assert.Equal(t, uint16(256), binary.LittleEndian.Uint16(out[286:288]))
}
