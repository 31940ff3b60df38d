// Package wire implements the primitive binary I/O the container format is
// built from: big-endian fixed-width integers, booleans, the VInt
// sign-magnitude varint, and length-prefixed Text strings (VInt length
// followed by UTF-8 bytes).
package wire

import (
	"io"

	"github.com/arloliu/seqfile/endian"
)

// Writer serializes primitives to an underlying io.Writer using big-endian
// byte order, tracking the total number of bytes written so callers can
// make sync-interval decisions without querying the stream separately.
type Writer struct {
	w      io.Writer
	engine endian.EndianEngine
	pos    int64
	scratch [8]byte
}

// NewWriter wraps w for primitive writes. Position starts at 0; callers
// whose underlying stream is not at offset 0 should track the base offset
// themselves (the writer only reports bytes written through it).
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, engine: endian.GetBigEndianEngine()}
}

// Position returns the number of bytes written so far through this Writer.
func (w *Writer) Position() int64 {
	return w.pos
}

func (w *Writer) write(b []byte) error {
	n, err := w.w.Write(b)
	w.pos += int64(n)
	return err
}

// WriteRaw writes b verbatim.
func (w *Writer) WriteRaw(b []byte) error {
	return w.write(b)
}

// WriteBool writes a single 0/1 byte.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.write([]byte{1})
	}
	return w.write([]byte{0})
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) error {
	return w.write([]byte{v})
}

// WriteInt32 writes a big-endian two's-complement int32.
func (w *Writer) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

// WriteUint32 writes a big-endian uint32.
func (w *Writer) WriteUint32(v uint32) error {
	w.engine.PutUint32(w.scratch[:4], v)
	return w.write(w.scratch[:4])
}

// WriteInt64 writes a big-endian two's-complement int64.
func (w *Writer) WriteInt64(v int64) error {
	return w.WriteUint64(uint64(v))
}

// WriteUint64 writes a big-endian uint64.
func (w *Writer) WriteUint64(v uint64) error {
	w.engine.PutUint64(w.scratch[:8], v)
	return w.write(w.scratch[:8])
}

// WriteVInt writes v using the sign-magnitude VInt encoding.
func (w *Writer) WriteVInt(v int64) error {
	buf := EncodeVInt(make([]byte, 0, 9), v)
	return w.write(buf)
}

// WriteText writes s as VInt(len(s)) followed by its UTF-8 bytes.
func (w *Writer) WriteText(s string) error {
	if err := w.WriteVInt(int64(len(s))); err != nil {
		return err
	}
	return w.write([]byte(s))
}
