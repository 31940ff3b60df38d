// Package compress adapts the container format's Codec capability (spec
// §4.2, §6) onto real compression libraries: compress a byte buffer, or
// wrap a byte buffer as a decompressing stream. Algorithm selection is
// external to the framing logic in the root package - this package only
// needs to satisfy the roundtrip decompress(compress(x)) == x per codec
// class name.
package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/seqfile/errs"
)

// Codec compresses whole buffers and decompresses streams, identified
// externally by a fully qualified class name (e.g.
// "org.apache.hadoop.io.compress.DefaultCodec").
type Codec interface {
	// Compress compresses data and returns the compressed bytes.
	Compress(data []byte) ([]byte, error)

	// DecompressStream wraps r, which yields previously-compressed bytes,
	// as a reader of the decompressed bytes.
	DecompressStream(r io.Reader) (io.Reader, error)
}

// registry maps a codec's fully qualified class name to a constructor.
// Populated at init time with the built-in codecs below; new codecs can be
// added with Register.
var registry = map[string]func() Codec{}

// Register associates a codec class name with a constructor. Intended to be
// called from package init functions.
func Register(className string, ctor func() Codec) {
	registry[className] = ctor
}

// CreateCodec builds the Codec registered under className.
func CreateCodec(className string) (Codec, error) {
	ctor, ok := registry[className]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCodec, className)
	}
	return ctor(), nil
}
