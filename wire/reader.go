package wire

import (
	"io"

	"github.com/arloliu/seqfile/endian"
)

// Reader deserializes primitives from an underlying io.Reader using
// big-endian byte order.
type Reader struct {
	r       io.Reader
	engine  endian.EndianEngine
	scratch [9]byte
}

// NewReader wraps r for primitive reads.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, engine: endian.GetBigEndianEngine()}
}

func (r *Reader) readFull(n int) ([]byte, error) {
	buf := r.scratch[:n]
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadRaw reads exactly len(buf) bytes into buf.
func (r *Reader) ReadRaw(buf []byte) error {
	_, err := io.ReadFull(r.r, buf)
	return err
}

// ReadBool reads a single 0/1 byte.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.readFull(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.readFull(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt32 reads a big-endian two's-complement int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint32 reads a big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.readFull(4)
	if err != nil {
		return 0, err
	}
	return r.engine.Uint32(b), nil
}

// ReadInt64 reads a big-endian two's-complement int64.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadUint64 reads a big-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.readFull(8)
	if err != nil {
		return 0, err
	}
	return r.engine.Uint64(b), nil
}

// ReadVInt reads a sign-magnitude VInt, one byte at a time since the
// encoded length isn't known until the header byte is read.
func (r *Reader) ReadVInt() (int64, error) {
	first, err := r.ReadUint8()
	if err != nil {
		return 0, err
	}

	size := vIntSize(first)
	if size == 1 {
		return int64(int8(first)), nil
	}

	rest, err := r.readFull(size - 1)
	if err != nil {
		return 0, err
	}

	var v int64
	for _, b := range rest {
		v = (v << 8) | int64(b)
	}
	if vIntNegative(first) {
		v = ^v
	}

	return v, nil
}

// ReadText reads a VInt-length-prefixed UTF-8 string.
func (r *Reader) ReadText() (string, error) {
	n, err := r.ReadVInt()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	buf := make([]byte, n)
	if err := r.ReadRaw(buf); err != nil {
		return "", err
	}

	return string(buf), nil
}
