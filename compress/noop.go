package compress

import "io"

// NoOpCodec bypasses compression entirely. Useful for tests that want to
// exercise the record/block framing for "record-compressed" or
// "block-compressed" mode without pulling in a real algorithm.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a codec that returns data unchanged.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressStream wraps r's bytes unchanged.
func (NoOpCodec) DecompressStream(r io.Reader) (io.Reader, error) {
	return r, nil
}

func init() {
	Register("org.apache.hadoop.io.compress.NoneCodec", func() Codec { return NewNoOpCodec() })
}
