package main

import (
	"os"

	"github.com/21-ko/RockMan-DASH2-toolkit/codec"
	"github.com/21-ko/RockMan-DASH2-toolkit/errs"
	"github.com/21-ko/RockMan-DASH2-toolkit/format"
)

func decodeWithHeader(header format.Header, compressed []byte) ([]byte, error) {
	return codec.Decode(header, compressed)
}

// encoded bundles an encode result's stream alongside the header patched
// with the resulting decompressedSize/bitfieldSize fields.
type encoded struct {
	Stream []byte
	Header []byte
}

func encodeWithHeader(header format.Header, raw []byte) (encoded, error) {
	enc := codec.NewEncoder()

	res, err := enc.Encode(raw)
	if err != nil {
		return encoded{}, err
	}

	header.Patch(res.DecompressedSize, res.BitfieldByteCount)

	return encoded{Stream: res.Stream, Header: header.Bytes()}, nil
}

// readAt reads size bytes from path starting at offset.
func readAt(path string, offset, size int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if int64(offset+size) > info.Size() {
		return nil, errs.ErrOffsetOutOfRange
	}

	buf := make([]byte, size)
	if _, err := f.ReadAt(buf, int64(offset)); err != nil {
		return nil, err
	}

	return buf, nil
}

// overwriteAt writes data into path at offset, leaving the rest of the file
// untouched.
func overwriteAt(path string, offset int, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteAt(data, int64(offset))

	return err
}
