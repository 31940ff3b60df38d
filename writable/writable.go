// Package writable implements the built-in key/value types a SequenceFile
// can carry (spec §4.3, §6): each type knows how to serialize itself onto
// the wire and report the bare class name the root classreg registry keys
// on (the "org.apache.hadoop." prefix is applied by the header layer, not
// by the type itself).
package writable

import "github.com/arloliu/seqfile/wire"

// Writable is anything that can appear as a SequenceFile key or value.
type Writable interface {
	// ClassName returns the bare class name (e.g. "io.Text") identifying
	// this type's wire encoding.
	ClassName() string

	// WriteFields serializes the value's fields (not its class name) onto w.
	WriteFields(w *wire.Writer) error

	// ReadFields deserializes the value's fields from r.
	ReadFields(r *wire.Reader) error
}
