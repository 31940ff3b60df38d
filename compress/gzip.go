package compress

import (
	"bytes"
	"io"

	kgzip "github.com/klauspost/compress/gzip"
	"github.com/klauspost/pgzip"
)

// GzipCodec backs "org.apache.hadoop.io.compress.GzipCodec".
//
// Block-compressed sub-buffers are large, independent byte ranges
// compressed one at a time - exactly pgzip's sweet spot (it splits input
// into independently-compressed DEFLATE blocks to parallelize across
// cores) - so Compress uses pgzip. Record-compressed payloads are typically
// small (single record values), where pgzip's block-splitting overhead
// isn't worth paying, so DecompressStream uses the plain klauspost gzip
// reader, which transparently reads either writer's output since both
// produce standard gzip streams.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewGzipCodec creates a GzipCodec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress gzips data using a parallel pgzip writer.
func (GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := pgzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressStream wraps r as a gzip-decompressing reader.
func (GzipCodec) DecompressStream(r io.Reader) (io.Reader, error) {
	return kgzip.NewReader(r)
}

func init() {
	Register("org.apache.hadoop.io.compress.GzipCodec", func() Codec { return NewGzipCodec() })
}
