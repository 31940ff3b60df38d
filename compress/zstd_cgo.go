//go:build nobuild

package compress

import (
	"bytes"
	"io"

	"github.com/valyala/gozstd"
)

// Compress zstd-compresses data via the cgo gozstd binding.
func (ZStandardCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.Compress(nil, data), nil
}

// DecompressStream wraps r as a zstd-decompressing reader.
func (ZStandardCodec) DecompressStream(r io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(out), nil
}
