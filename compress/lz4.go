package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// Lz4Codec backs "org.apache.hadoop.io.compress.Lz4Codec", wrapping
// pierrec/lz4/v4's block-framed stream format.
type Lz4Codec struct{}

var _ Codec = Lz4Codec{}

// NewLz4Codec creates an Lz4Codec.
func NewLz4Codec() Lz4Codec {
	return Lz4Codec{}
}

// Compress lz4-compresses data using the default block configuration.
func (Lz4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressStream wraps r as an lz4-decompressing reader.
func (Lz4Codec) DecompressStream(r io.Reader) (io.Reader, error) {
	return lz4.NewReader(r), nil
}

func init() {
	Register("org.apache.hadoop.io.compress.Lz4Codec", func() Codec { return NewLz4Codec() })
}
