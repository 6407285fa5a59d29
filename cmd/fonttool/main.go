// Command fonttool separates and recombines the two 4bpp fonts that DASH2
// interleaves into a single 8bpp PIX framebuffer, mirroring the original
// FontTool's argv contract:
//
//	fonttool combine <input file 1> <input file 2> <output file>
//	fonttool split <input folder>
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/21-ko/RockMan-DASH2-toolkit/internal/pool"
	"github.com/21-ko/RockMan-DASH2-toolkit/nibble"
	"github.com/21-ko/RockMan-DASH2-toolkit/timimage"
)

// headerSkip is the fixed prefix length skipped between a font source
// file's embedded size field and its pixel data.
const headerSkip = 0x14

// sizeFieldOffset is where a font source file stores the uint32 that,
// plus headerSkip, yields the byte offset its pixel data starts at.
const sizeFieldOffset = 0x08

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "fonttool:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: fonttool combine|split ...")
	}

	switch args[0] {
	case "combine":
		if len(args) != 4 {
			return fmt.Errorf("usage: fonttool combine <input file 1> <input file 2> <output file>")
		}

		return combine(args[1], args[2], args[3])
	case "split":
		if len(args) != 2 {
			return fmt.Errorf("usage: fonttool split <input folder>")
		}

		return split(args[1])
	default:
		return fmt.Errorf("invalid operation %q: use %q or %q", args[0], "combine", "split")
	}
}

func combine(file1, file2, outputFile string) error {
	words1, release1, err := readWordsAfterSkip(file1)
	if err != nil {
		return err
	}
	defer release1()

	words2, release2, err := readWordsAfterSkip(file2)
	if err != nil {
		return err
	}
	defer release2()

	out, err := nibble.Combine(words1, words2)
	if err != nil {
		return err
	}

	return writeWords(outputFile, out)
}

func split(inputFolder string) error {
	combined, release, err := readWords(filepath.Join(inputFolder, "0000_INIT.PIX"))
	if err != nil {
		return err
	}
	defer release()

	font1, font2 := nibble.Split(combined)

	const (
		font1Path = "FONT1.TIM"
		font2Path = "FONT2.TIM"
	)

	if err := writeWords(font1Path, font1); err != nil {
		return err
	}

	if err := writeWords(font2Path, font2); err != nil {
		return err
	}

	return appendPalette(filepath.Join(inputFolder, "0001_INIT.CLT"), font1Path, font2Path)
}

// appendPalette reads the 256-byte CLUT from cltFile and prepends a
// synthesized TIM header to each of timFile1/timFile2.
func appendPalette(cltFile, timFile1, timFile2 string) error {
	palette, err := readPalette(cltFile)
	if err != nil {
		return err
	}

	header, err := timimage.NewHeader(palette)
	if err != nil {
		return err
	}

	for _, path := range []string{timFile1, timFile2} {
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		full := append(header.Bytes(), body...)
		if err := os.WriteFile(path, full, 0o644); err != nil {
			return err
		}
	}

	return nil
}

func readPalette(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	palette := make([]byte, timimage.PaletteSize)
	if _, err := io.ReadFull(f, palette); err != nil {
		return nil, err
	}

	return palette, nil
}

// readOffsetValue reads the little-endian uint32 stored at sizeFieldOffset
// in path, mirroring FontTool's read_offset_value.
func readOffsetValue(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	buf := make([]byte, 4)
	if _, err := f.ReadAt(buf, sizeFieldOffset); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(buf), nil
}

// readWordsAfterSkip locates a font source file's pixel data (at
// readOffsetValue(path) + headerSkip) and decodes it as little-endian
// uint32 words. The caller must invoke the returned release func once done
// with the slice.
func readWordsAfterSkip(path string) ([]uint32, func(), error) {
	value, err := readOffsetValue(path)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	start := int(value) + headerSkip
	if start > len(data) {
		return nil, nil, fmt.Errorf("fonttool: offset %d is beyond the end of %s", start, path)
	}

	words, release := decodeWords(data[start:])

	return words, release, nil
}

func readWords(path string) ([]uint32, func(), error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	words, release := decodeWords(data)

	return words, release, nil
}

// decodeWords decodes data as little-endian uint32 words into a scratch
// slice drawn from internal/pool, to be released once the caller is done
// transforming it.
func decodeWords(data []byte) ([]uint32, func()) {
	words, release := pool.GetUint32Slice(len(data) / 4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	return words, release
}

func writeWords(path string, words []uint32) error {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}

	return os.WriteFile(path, buf, 0o644)
}
