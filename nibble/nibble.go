// Package nibble implements FontTool's 4-bit interleaving: two 4bpp font
// framebuffers, each using only the low 2-bit pair of every 4-bit nibble, are
// packed into one 8bpp framebuffer by shifting the second input's bits into
// the gaps left by masking the first.
package nibble

import "github.com/21-ko/RockMan-DASH2-toolkit/errs"

// interleaveMask keeps bits {0,1,4,5,8,9,...} of each 32-bit word — every
// other pair of bits, starting from bit 0.
const interleaveMask = 0x33333333

// Combine interleaves two equal-length 4bpp framebuffers into one 8bpp
// framebuffer: out[i] = (a[i] & mask) | ((b[i] & mask) << 2).
//
// Combine returns errs.ErrSizeMismatch if a and b differ in length.
func Combine(a, b []uint32) ([]uint32, error) {
	if len(a) != len(b) {
		return nil, errs.ErrSizeMismatch
	}

	out := make([]uint32, len(a))
	for i := range a {
		out[i] = (a[i] & interleaveMask) | ((b[i] & interleaveMask) << 2)
	}

	return out, nil
}

// Split is the inverse of Combine: it recovers the two original 4bpp
// framebuffers from a combined 8bpp one.
func Split(combined []uint32) (a, b []uint32) {
	a = make([]uint32, len(combined))
	b = make([]uint32, len(combined))

	for i, word := range combined {
		a[i] = word & interleaveMask
		b[i] = (word >> 2) & interleaveMask
	}

	return a, b
}
