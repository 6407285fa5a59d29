package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/21-ko/RockMan-DASH2-toolkit/errs"
	"github.com/21-ko/RockMan-DASH2-toolkit/format"
)

func makeRawHeader(t *testing.T) []byte {
	t.Helper()

	raw := make([]byte, format.HeaderSize)
	raw[0] = 3 // timEnum
	for i := range raw {
		if raw[i] == 0 {
			raw[i] = byte(0xA0 + i%16) // filler so pass-through bytes are distinguishable
		}
	}
	raw[0] = 3
	raw[1], raw[2], raw[3] = 0, 0, 0

	return raw
}

func TestParseHeader_RejectsWrongSize(t *testing.T) {
	_, err := format.ParseHeader(make([]byte, format.HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestParseHeader_Validate(t *testing.T) {
	raw := makeRawHeader(t)
	h, err := format.ParseHeader(raw)
	require.NoError(t, err)
	require.NoError(t, h.Validate())

	raw[0] = 7
	bad, err := format.ParseHeader(raw)
	require.NoError(t, err)
	assert.ErrorIs(t, bad.Validate(), errs.ErrInvalidMagic)
}

func TestHeader_ValidateForDecode(t *testing.T) {
	raw := makeRawHeader(t)

	h, err := format.ParseHeader(raw)
	require.NoError(t, err)
	h.Patch(16, 0)
	assert.ErrorIs(t, h.ValidateForDecode(), errs.ErrZeroBitfield)

	h.Patch(16, 6)
	assert.ErrorIs(t, h.ValidateForDecode(), errs.ErrMisalignedBitfield)

	h.Patch(16, 4)
	assert.NoError(t, h.ValidateForDecode())
}

// TestHeader_PatchPreservesOpaqueBytes verifies that bytes outside
// {0x04..0x08, 0x24..0x26} survive a Patch unchanged.
func TestHeader_PatchPreservesOpaqueBytes(t *testing.T) {
	raw := makeRawHeader(t)
	raw[0x0c] = 0x11
	raw[0x0d] = 0x22
	raw[0x20] = 0x33

	h, err := format.ParseHeader(raw)
	require.NoError(t, err)

	h.Patch(0xDEADBEEF, 0x1234)
	out := h.Bytes()

	for i := range out {
		switch {
		case i >= 0x04 && i < 0x08:
			continue
		case i >= 0x24 && i < 0x26:
			continue
		default:
			assert.Equalf(t, raw[i], out[i], "byte %#x should be preserved", i)
		}
	}

	assert.Equal(t, uint32(0xDEADBEEF), h.DecompressedSize())
	assert.Equal(t, uint16(0x1234), h.BitfieldSize())
}

func TestHeader_FieldAccessors(t *testing.T) {
	raw := makeRawHeader(t)
	raw[0x08], raw[0x09], raw[0x0a], raw[0x0b] = 0x01, 0x02, 0x03, 0x04

	h, err := format.ParseHeader(raw)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), h.TimEnum())
	assert.Equal(t, uint32(0x04030201), h.PaddedDataSizeNum())
}
