// Command dashtool compresses and decompresses DASH2 MELT_TIM assets,
// mirroring the original MeltTimTool's argv contract:
//
//	dashtool d <NNNN_FOO.XXX> [<output_folder>]
//	dashtool c <input_PIX> <original_output_path>
//
// The header for entry NNNN (the input file's 4-digit prefix) lives at
// offset NNNN*0x30 in a HEADER.BIN next to the input file for d, and next
// to original_output_path for c.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/21-ko/RockMan-DASH2-toolkit/bench"
	"github.com/21-ko/RockMan-DASH2-toolkit/errs"
	"github.com/21-ko/RockMan-DASH2-toolkit/format"
	"github.com/21-ko/RockMan-DASH2-toolkit/internal/cache"
	"github.com/21-ko/RockMan-DASH2-toolkit/internal/fingerprint"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "dashtool:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: dashtool d|c <input_file> [<original_file>] [<output_folder>]")
	}

	fs := flag.NewFlagSet("dashtool", flag.ContinueOnError)
	timed := fs.Bool("time", false, "print elapsed wall-clock time")
	compare := fs.Bool("compare", false, "report S2/LZ4/Zstd ratios against the DASH2 result")
	useCache := fs.Bool("cache", false, "memoize decode results by content fingerprint")
	if err := fs.Parse(args[2:]); err != nil {
		return err
	}

	mode := args[0]
	inputFile := args[1]
	rest := fs.Args()

	offset, err := parsePrefixOffset(filepath.Base(inputFile))
	if err != nil {
		return err
	}

	start := time.Now()

	switch mode {
	case "d":
		outputFolder := "."
		if len(rest) >= 1 {
			outputFolder = rest[0]
		}
		err = decompressFile(inputFile, outputFolder, offset, *compare, *useCache)
	case "c":
		if len(rest) < 1 {
			return fmt.Errorf("usage: dashtool c <input_file> <original_file>")
		}
		err = compressFile(inputFile, rest[0], offset, *compare)
	default:
		return fmt.Errorf("invalid command %q: use %q or %q", mode, "c", "d")
	}

	if err != nil {
		return err
	}

	if *timed {
		fmt.Printf("Took %f seconds\n", time.Since(start).Seconds())
	}

	return nil
}

var decodeCache = cache.New(64)

func decompressFile(inputFile, outputFolder string, headerOffset int, compare, useCache bool) error {
	compressed, err := os.ReadFile(inputFile)
	if err != nil {
		return err
	}

	headerPath := filepath.Join(filepath.Dir(inputFile), "HEADER.BIN")
	headerBytes, err := readAt(headerPath, headerOffset, format.HeaderSize)
	if err != nil {
		return err
	}

	header, err := format.ParseHeader(headerBytes)
	if err != nil {
		return err
	}

	var decompressed []byte
	if useCache {
		key := fingerprint.ID(append(append([]byte(nil), headerBytes...), compressed...))
		if cached, ok := decodeCache.Get(key); ok {
			decompressed = cached
		} else {
			decompressed, err = decodeWithHeader(header, compressed)
			if err != nil {
				return err
			}
			decodeCache.Put(key, decompressed)
		}
	} else {
		decompressed, err = decodeWithHeader(header, compressed)
		if err != nil {
			return err
		}
	}

	if compare {
		printComparison(decompressed, compressed)
	}

	outputName := deriveOutputName(filepath.Base(inputFile))

	return os.WriteFile(filepath.Join(outputFolder, outputName), decompressed, 0o644)
}

func compressFile(inputFile, originalOutputPath string, headerOffset int, compare bool) error {
	raw, err := os.ReadFile(inputFile)
	if err != nil {
		return err
	}

	headerPath := filepath.Join(filepath.Dir(originalOutputPath), "HEADER.BIN")
	headerBytes, err := readAt(headerPath, headerOffset, format.HeaderSize)
	if err != nil {
		return err
	}

	header, err := format.ParseHeader(headerBytes)
	if err != nil {
		return err
	}

	result, err := encodeWithHeader(header, raw)
	if err != nil {
		return err
	}

	if compare {
		printComparison(raw, result.Stream)
	}

	if err := overwriteAt(headerPath, headerOffset, result.Header); err != nil {
		return err
	}

	return os.WriteFile(originalOutputPath, result.Stream, 0o644)
}

func printComparison(original, dash2Stream []byte) {
	fmt.Println("Compression comparison:")
	for _, s := range bench.Report(original, dash2Stream) {
		fmt.Printf("  %-6s %8d -> %8d bytes (%.1f%% saved)\n", s.Algorithm, s.OriginalSize, s.CompressedSize, s.SpaceSavings())
	}
}

// parsePrefixOffset decodes the leading 4-character decimal prefix of name
// into a HEADER.BIN byte offset (prefix * format.HeaderSize).
func parsePrefixOffset(name string) (int, error) {
	if len(name) < 4 {
		return 0, errs.ErrInvalidFilenamePrefix
	}

	prefix := name[:4]
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return 0, errs.ErrInvalidFilenamePrefix
		}
	}

	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, errs.ErrInvalidFilenamePrefix
	}

	return n * format.HeaderSize, nil
}

// deriveOutputName strips name's extension and appends ".PIX", uppercased,
// matching MeltTimTool's output naming.
func deriveOutputName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	return strings.ToUpper(base + ".PIX")
}
