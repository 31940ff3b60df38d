package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
)

// SnappyCodec backs "org.apache.hadoop.io.compress.SnappyCodec". The
// reference platform's SnappyCodec wraps the Snappy block format; s2 is
// Klaus Post's Snappy-compatible successor and decodes genuine Snappy
// streams while compressing faster, so it stands in for both sides of the
// roundtrip here.
type SnappyCodec struct{}

var _ Codec = SnappyCodec{}

// NewSnappyCodec creates a SnappyCodec.
func NewSnappyCodec() SnappyCodec {
	return SnappyCodec{}
}

// Compress s2-compresses data in Snappy-compatible mode.
func (SnappyCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := s2.NewWriter(&buf, s2.WriterSnappyCompat())
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressStream wraps r as an s2/Snappy-decompressing reader.
func (SnappyCodec) DecompressStream(r io.Reader) (io.Reader, error) {
	return s2.NewReader(r), nil
}

func init() {
	Register("org.apache.hadoop.io.compress.SnappyCodec", func() Codec { return NewSnappyCodec() })
}
