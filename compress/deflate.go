package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/seqfile/section"
	"github.com/klauspost/compress/flate"
)

// DefaultCodec backs "org.apache.hadoop.io.compress.DefaultCodec", the
// codec class name a Writer emits when the caller doesn't pick one - the
// reference platform's DefaultCodec wraps raw DEFLATE, which is exactly
// what klauspost/compress/flate implements.
type DefaultCodec struct {
	level int
}

var _ Codec = DefaultCodec{}

// NewDefaultCodec creates a DefaultCodec at flate's default compression
// level.
func NewDefaultCodec() DefaultCodec {
	return DefaultCodec{level: flate.DefaultCompression}
}

// Compress deflates data.
func (c DefaultCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	return buf.Bytes(), nil
}

// DecompressStream wraps r as an inflating reader.
func (c DefaultCodec) DecompressStream(r io.Reader) (io.Reader, error) {
	return flate.NewReader(r), nil
}

func init() {
	Register(section.DefaultCodecClassName, func() Codec { return NewDefaultCodec() })
}
