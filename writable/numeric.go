package writable

import (
	"math"

	"github.com/arloliu/seqfile/wire"
)

// VIntWritable stores a signed integer using Hadoop's variable-length
// VInt encoding.
type VIntWritable struct {
	Value int64
}

var _ Writable = (*VIntWritable)(nil)

// NewVIntWritable wraps v as a VIntWritable.
func NewVIntWritable(v int64) *VIntWritable { return &VIntWritable{Value: v} }

// ClassName returns "io.VIntWritable".
func (v *VIntWritable) ClassName() string { return "io.VIntWritable" }

// WriteFields writes the value as a VInt.
func (v *VIntWritable) WriteFields(w *wire.Writer) error { return w.WriteVInt(v.Value) }

// ReadFields reads the value as a VInt.
func (v *VIntWritable) ReadFields(r *wire.Reader) error {
	n, err := r.ReadVInt()
	if err != nil {
		return err
	}
	v.Value = n
	return nil
}

// IntWritable stores a signed 32-bit integer as a fixed 4-byte big-endian
// field.
type IntWritable struct {
	Value int32
}

var _ Writable = (*IntWritable)(nil)

// NewIntWritable wraps v as an IntWritable.
func NewIntWritable(v int32) *IntWritable { return &IntWritable{Value: v} }

// ClassName returns "io.IntWritable".
func (v *IntWritable) ClassName() string { return "io.IntWritable" }

// WriteFields writes the value as a fixed-width int32.
func (v *IntWritable) WriteFields(w *wire.Writer) error { return w.WriteInt32(v.Value) }

// ReadFields reads the value as a fixed-width int32.
func (v *IntWritable) ReadFields(r *wire.Reader) error {
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	v.Value = n
	return nil
}

// LongWritable stores a signed 64-bit integer as a fixed 8-byte big-endian
// field.
type LongWritable struct {
	Value int64
}

var _ Writable = (*LongWritable)(nil)

// NewLongWritable wraps v as a LongWritable.
func NewLongWritable(v int64) *LongWritable { return &LongWritable{Value: v} }

// ClassName returns "io.LongWritable".
func (v *LongWritable) ClassName() string { return "io.LongWritable" }

// WriteFields writes the value as a fixed-width int64.
func (v *LongWritable) WriteFields(w *wire.Writer) error { return w.WriteInt64(v.Value) }

// ReadFields reads the value as a fixed-width int64.
func (v *LongWritable) ReadFields(r *wire.Reader) error {
	n, err := r.ReadInt64()
	if err != nil {
		return err
	}
	v.Value = n
	return nil
}

// BooleanWritable stores a single boolean byte.
type BooleanWritable struct {
	Value bool
}

var _ Writable = (*BooleanWritable)(nil)

// NewBooleanWritable wraps v as a BooleanWritable.
func NewBooleanWritable(v bool) *BooleanWritable { return &BooleanWritable{Value: v} }

// ClassName returns "io.BooleanWritable".
func (v *BooleanWritable) ClassName() string { return "io.BooleanWritable" }

// WriteFields writes the value as a single byte.
func (v *BooleanWritable) WriteFields(w *wire.Writer) error { return w.WriteBool(v.Value) }

// ReadFields reads the value as a single byte.
func (v *BooleanWritable) ReadFields(r *wire.Reader) error {
	b, err := r.ReadBool()
	if err != nil {
		return err
	}
	v.Value = b
	return nil
}

// FloatWritable stores an IEEE 754 single-precision float as a fixed
// 4-byte big-endian field.
type FloatWritable struct {
	Value float32
}

var _ Writable = (*FloatWritable)(nil)

// NewFloatWritable wraps v as a FloatWritable.
func NewFloatWritable(v float32) *FloatWritable { return &FloatWritable{Value: v} }

// ClassName returns "io.FloatWritable".
func (v *FloatWritable) ClassName() string { return "io.FloatWritable" }

// WriteFields writes the value as its bit pattern.
func (v *FloatWritable) WriteFields(w *wire.Writer) error {
	return w.WriteUint32(math.Float32bits(v.Value))
}

// ReadFields reads the value from its bit pattern.
func (v *FloatWritable) ReadFields(r *wire.Reader) error {
	bits, err := r.ReadUint32()
	if err != nil {
		return err
	}
	v.Value = math.Float32frombits(bits)
	return nil
}

// DoubleWritable stores an IEEE 754 double-precision float as a fixed
// 8-byte big-endian field.
type DoubleWritable struct {
	Value float64
}

var _ Writable = (*DoubleWritable)(nil)

// NewDoubleWritable wraps v as a DoubleWritable.
func NewDoubleWritable(v float64) *DoubleWritable { return &DoubleWritable{Value: v} }

// ClassName returns "io.DoubleWritable".
func (v *DoubleWritable) ClassName() string { return "io.DoubleWritable" }

// WriteFields writes the value as its bit pattern.
func (v *DoubleWritable) WriteFields(w *wire.Writer) error {
	return w.WriteUint64(math.Float64bits(v.Value))
}

// ReadFields reads the value from its bit pattern.
func (v *DoubleWritable) ReadFields(r *wire.Reader) error {
	bits, err := r.ReadUint64()
	if err != nil {
		return err
	}
	v.Value = math.Float64frombits(bits)
	return nil
}
