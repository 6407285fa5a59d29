package bitio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/21-ko/RockMan-DASH2-toolkit/bitio"
)

func TestReader_ExpandsMSBFirst(t *testing.T) {
	// Word 0x80000001 little-endian: bit 31 set, bit 0 set, rest zero.
	r := bitio.NewReader([]byte{0x01, 0x00, 0x00, 0x80})

	first, ok := r.Next()
	assert.True(t, ok)
	assert.True(t, first, "bit 31 should read first and be set")

	for i := 0; i < 30; i++ {
		bit, ok := r.Next()
		assert.True(t, ok)
		assert.False(t, bit, "bit %d should be zero", 30-i)
	}

	last, ok := r.Next()
	assert.True(t, ok)
	assert.True(t, last, "bit 0 should read last and be set")

	_, ok = r.Next()
	assert.False(t, ok)
}

func TestReader_MultiWord(t *testing.T) {
	r := bitio.NewReader([]byte{0, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF})

	for i := 0; i < 32; i++ {
		bit, ok := r.Next()
		assert.True(t, ok)
		assert.False(t, bit)
	}
	for i := 0; i < 32; i++ {
		bit, ok := r.Next()
		assert.True(t, ok)
		assert.True(t, bit)
	}
}

func TestReader_LenAndEmpty(t *testing.T) {
	r := bitio.NewReader(nil)
	assert.Equal(t, 0, r.Len())

	_, ok := r.Next()
	assert.False(t, ok)
}
