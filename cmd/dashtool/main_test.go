package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/21-ko/RockMan-DASH2-toolkit/format"
)

func TestParsePrefixOffset(t *testing.T) {
	offset, err := parsePrefixOffset("0042_FOO.TIM")
	require.NoError(t, err)
	assert.Equal(t, 42*format.HeaderSize, offset)
}

func TestParsePrefixOffset_RejectsShortName(t *testing.T) {
	_, err := parsePrefixOffset("42.TIM")
	assert.Error(t, err)
}

func TestParsePrefixOffset_RejectsNonDigitPrefix(t *testing.T) {
	_, err := parsePrefixOffset("ABCD_FOO.TIM")
	assert.Error(t, err)
}

func TestDeriveOutputName(t *testing.T) {
	assert.Equal(t, "0042_FOO.PIX", deriveOutputName("0042_foo.tim"))
	assert.Equal(t, "0001_BAR.PIX", deriveOutputName("0001_BAR.TIM"))
}
