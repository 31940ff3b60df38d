package writable

import "github.com/arloliu/seqfile/wire"

// NullWritable is a singleton-style Writable with no on-wire payload,
// used for key or value streams that carry no data.
type NullWritable struct{}

var _ Writable = NullWritable{}

// ClassName returns "io.NullWritable".
func (NullWritable) ClassName() string { return "io.NullWritable" }

// WriteFields is a no-op.
func (NullWritable) WriteFields(w *wire.Writer) error { return nil }

// ReadFields is a no-op.
func (NullWritable) ReadFields(r *wire.Reader) error { return nil }
