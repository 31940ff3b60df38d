package section

import (
	"fmt"

	"github.com/arloliu/seqfile/errs"
	"github.com/arloliu/seqfile/wire"
)

// Metadata is the finite string-to-string mapping carried in the file
// header. Both keys and values are Text strings on disk; there is no
// Writable-typed path for metadata entries, resolving the asymmetry the
// reference implementation has between its write and read paths (Open
// Question / Design Notes #4).
type Metadata struct {
	order  []string
	values map[string]string
}

// NewMetadata creates an empty Metadata builder.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

// Set records a key/value pair, preserving first-insertion order for
// deterministic serialization.
func (m *Metadata) Set(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.order)
}

// Map returns a copy of the metadata as a plain map.
func (m *Metadata) Map() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// WriteTo serializes the metadata block: a big-endian int32 count followed
// by that many (Text, Text) pairs, in insertion order.
func (m *Metadata) WriteTo(w *wire.Writer) error {
	if err := w.WriteInt32(int32(len(m.order))); err != nil { //nolint:gosec
		return err
	}

	for _, key := range m.order {
		if err := w.WriteText(key); err != nil {
			return err
		}
		if err := w.WriteText(m.values[key]); err != nil {
			return err
		}
	}

	return nil
}

// ReadMetadata parses a metadata block from r. A negative count is a
// format error (spec data model: "Negative count is a format error").
func ReadMetadata(r *wire.Reader) (*Metadata, error) {
	count, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative metadata count %d", errs.ErrCorruption, count)
	}

	m := NewMetadata()
	for i := int32(0); i < count; i++ {
		key, err := r.ReadText()
		if err != nil {
			return nil, err
		}
		value, err := r.ReadText()
		if err != nil {
			return nil, err
		}
		m.Set(key, value)
	}

	return m, nil
}
