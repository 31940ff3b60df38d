package seqfile

import (
	"bytes"
	"io"
)

// WriteStream is the random-access output collaborator a Writer appends to
// (spec §1: "the underlying random-access byte stream" is a collaborator,
// not something this package implements). *os.File and
// *writerseeker.WriterSeeker both satisfy it.
type WriteStream interface {
	io.Writer
	io.Closer
}

// ReadStream is the random-access input collaborator a Reader parses from
// and repositions within via Seek and Sync.
type ReadStream interface {
	io.Reader
	io.Seeker
	io.Closer
}

// nopCloser adapts an io.ReadSeeker with no meaningful Close (e.g.
// *bytes.Reader) into a ReadStream.
type nopCloser struct {
	io.ReadSeeker
}

func (nopCloser) Close() error { return nil }

// NewReadStream wraps an io.ReadSeeker lacking a Close method (such as a
// *bytes.Reader obtained from an in-memory writerseeker.WriterSeeker) as a
// ReadStream.
func NewReadStream(rs io.ReadSeeker) ReadStream {
	return nopCloser{rs}
}

// writeNopCloser adapts an io.Writer with no meaningful Close (such as a
// *writerseeker.WriterSeeker) into a WriteStream.
type writeNopCloser struct {
	io.Writer
}

func (writeNopCloser) Close() error { return nil }

// NewWriteStream wraps an io.Writer lacking a Close method as a WriteStream.
func NewWriteStream(w io.Writer) WriteStream {
	return writeNopCloser{w}
}

var _ ReadStream = nopCloser{bytes.NewReader(nil)}

// countingStream wraps a ReadStream and tracks the absolute stream
// position, the way wire.Writer tracks bytes written - wire.Reader has no
// analogous counter since most of its callers don't need one, but Reader
// needs its current offset to compare against `end` and to compute resync
// landing positions.
type countingStream struct {
	ReadStream
	pos int64
}

func (c *countingStream) Read(p []byte) (int, error) {
	n, err := c.ReadStream.Read(p)
	c.pos += int64(n)
	return n, err
}

func (c *countingStream) Seek(offset int64, whence int) (int64, error) {
	newPos, err := c.ReadStream.Seek(offset, whence)
	if err != nil {
		return newPos, err
	}
	c.pos = newPos
	return newPos, nil
}
