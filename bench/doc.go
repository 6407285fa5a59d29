// Package bench provides a small harness for comparing DASH2's
// purpose-built LZSS variant against general-purpose byte compressors
// (S2, Zstd, LZ4, and a no-op baseline) on the same input.
//
// It exists to answer one question during asset-pipeline work: is the
// DASH2 stream already close to what a general-purpose compressor would
// achieve on the same raw PIX/TIM bytes, or is there room left on the
// table? cmd/dashtool's "-compare" mode is the primary caller; nothing in
// codec or dash2 imports this package, since ratio comparison is tooling,
// not part of decoding or encoding a real asset.
//
// Each codec here is intentionally minimal: a Compress/Decompress pair and
// a Name for reporting. Report runs all of them against the same input and
// returns one Stats per algorithm (plus one for the already-computed DASH2
// result), so a caller can print a ranked comparison table.
package bench
