package writable

import "github.com/arloliu/seqfile/wire"

// Text is a VInt-length-prefixed UTF-8 string, the default key/value type.
type Text struct {
	Value string
}

var _ Writable = (*Text)(nil)

// NewText wraps s as a Text.
func NewText(s string) *Text {
	return &Text{Value: s}
}

// ClassName returns "io.Text".
func (t *Text) ClassName() string { return "io.Text" }

// WriteFields writes the string via wire.Writer.WriteText.
func (t *Text) WriteFields(w *wire.Writer) error {
	return w.WriteText(t.Value)
}

// ReadFields reads the string via wire.Reader.ReadText.
func (t *Text) ReadFields(r *wire.Reader) error {
	s, err := r.ReadText()
	if err != nil {
		return err
	}
	t.Value = s
	return nil
}
