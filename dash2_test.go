package dash2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dash2 "github.com/21-ko/RockMan-DASH2-toolkit"
	"github.com/21-ko/RockMan-DASH2-toolkit/format"
)

func blankHeader(t *testing.T) []byte {
	t.Helper()

	raw := make([]byte, format.HeaderSize)
	raw[0] = format.DashTimEnum
	raw[0x10] = 0xAA // an opaque byte that must survive round-trip

	return raw
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	header := blankHeader(t)
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	res, err := dash2.Compress(data, header)
	require.NoError(t, err)
	assert.Equal(t, header[0x10], res.Header[0x10], "opaque byte must survive Compress")

	out, err := dash2.Decompress(res.Stream, res.Header)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestCombineSplitFonts_RoundTrip(t *testing.T) {
	a := []uint32{0x11111111, 0x22222222}
	b := []uint32{0x33333333, 0x01010101}

	combined, err := dash2.CombineFonts(a, b)
	require.NoError(t, err)

	gotA, gotB := dash2.SplitFonts(combined)
	for i := range a {
		assert.Equal(t, a[i]&0x33333333, gotA[i])
		assert.Equal(t, b[i]&0x33333333, gotB[i])
	}
}

func TestDecompress_RejectsBadHeaderSize(t *testing.T) {
	_, err := dash2.Decompress(nil, make([]byte, 4))
	assert.Error(t, err)
}
