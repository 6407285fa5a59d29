package bench

import "time"

// Report runs every built-in codec against the same DASH2-decompressed
// input and the already-produced dash2Compressed stream, so a caller can
// see how the format's purpose-built LZSS variant stacks up against
// general-purpose compressors on the same bytes.
func Report(original, dash2Compressed []byte) []Stats {
	stats := make([]Stats, 0, len(builtinCodecs)+1)

	stats = append(stats, Stats{
		Algorithm:      "dash2",
		OriginalSize:   int64(len(original)),
		CompressedSize: int64(len(dash2Compressed)),
	})

	for _, c := range builtinCodecs {
		start := time.Now()
		compressed, err := c.Compress(original)
		compressTime := time.Since(start)
		if err != nil {
			continue
		}

		start = time.Now()
		_, err = c.Decompress(compressed)
		decompressTime := time.Since(start)
		if err != nil {
			continue
		}

		stats = append(stats, Stats{
			Algorithm:           c.Name(),
			OriginalSize:        int64(len(original)),
			CompressedSize:      int64(len(compressed)),
			CompressionTimeNs:   compressTime.Nanoseconds(),
			DecompressionTimeNs: decompressTime.Nanoseconds(),
		})
	}

	return stats
}
