package writable

import (
	"fmt"

	"github.com/arloliu/seqfile/wire"
)

// BytesWritable carries an opaque byte payload, length-prefixed with a
// 4-byte big-endian int (unlike Text, which uses a VInt) to match the
// reference platform's BytesWritable.write.
type BytesWritable struct {
	Value []byte
}

var _ Writable = (*BytesWritable)(nil)

// NewBytesWritable wraps b as a BytesWritable.
func NewBytesWritable(b []byte) *BytesWritable {
	return &BytesWritable{Value: b}
}

// ClassName returns "io.BytesWritable".
func (b *BytesWritable) ClassName() string { return "io.BytesWritable" }

// WriteFields writes the length then the raw bytes.
func (b *BytesWritable) WriteFields(w *wire.Writer) error {
	if err := w.WriteInt32(int32(len(b.Value))); err != nil {
		return err
	}
	return w.WriteRaw(b.Value)
}

// ReadFields reads the length then the raw bytes.
func (b *BytesWritable) ReadFields(r *wire.Reader) error {
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("writable: negative BytesWritable length %d", n)
	}
	buf := make([]byte, n)
	if err := r.ReadRaw(buf); err != nil {
		return err
	}
	b.Value = buf
	return nil
}
