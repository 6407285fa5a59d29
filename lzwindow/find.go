// Package lzwindow implements the greedy longest-match scan the DASH2
// encoder uses to find back-references, segmented into WindowSize-byte
// search windows rather than a single sliding window over the whole input.
package lzwindow

import "github.com/21-ko/RockMan-DASH2-toolkit/format"

// Find looks for the longest match for the length-prefixed region starting
// at pos within data[:limit], searching only positions in the same
// WindowSize-aligned segment as pos (i.e. from the start of that segment up
// to pos itself, never across a window boundary).
//
// It returns (0, 0) when no candidate reaches format.MaxUncoded bytes, the
// minimum length the bitstream can encode as a reference. Ties are broken
// by earliest offset, since later candidates only replace the best match
// when they are strictly longer.
func Find(data []byte, pos, limit int) (offset, length int) {
	if pos >= limit {
		return 0, 0
	}

	remaining := limit - pos
	if remaining < format.MaxUncoded {
		return 0, 0
	}

	searchStart := (pos / format.WindowSize) * format.WindowSize

	bestLen, bestPos := 0, 0
	for i := searchStart; i < pos; i++ {
		matchLen := 0
		for matchLen < remaining && i+matchLen < pos && data[i+matchLen] == data[pos+matchLen] {
			matchLen++
			if matchLen >= format.MaxCoded {
				matchLen = format.MaxCoded
				break
			}
		}

		if matchLen > bestLen {
			bestLen = matchLen
			bestPos = i
		}
	}

	if bestLen < format.MaxUncoded {
		return 0, 0
	}

	return bestPos, bestLen
}
