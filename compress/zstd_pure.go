//go:build !nobuild

package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Compress zstd-compresses data using the pure-Go klauspost encoder.
func (ZStandardCodec) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// DecompressStream wraps r as a zstd-decompressing reader.
func (ZStandardCodec) DecompressStream(r io.Reader) (io.Reader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(dec)
	dec.Close()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
