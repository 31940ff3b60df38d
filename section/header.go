package section

import (
	"fmt"

	"github.com/arloliu/seqfile/errs"
	"github.com/arloliu/seqfile/format"
	"github.com/arloliu/seqfile/wire"
)

// Header is the fixed-order sequence of fields written exactly once at the
// start of every file (spec §4.3 "Header layout").
type Header struct {
	Version         format.Version
	KeyClassName    string
	ValueClassName  string
	Compressed      bool
	BlockCompressed bool
	CodecClassName  string
	Metadata        *Metadata
	Sync            SyncMarker
}

// WriteTo serializes the header. Writers of this package always emit
// format.CurrentVersion (6); older versions are a read-only concern.
func (h *Header) WriteTo(w *wire.Writer) error {
	if err := w.WriteUint8(MagicByte0); err != nil {
		return err
	}
	if err := w.WriteUint8(MagicByte1); err != nil {
		return err
	}
	if err := w.WriteUint8(MagicByte2); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(format.CurrentVersion)); err != nil {
		return err
	}

	if err := w.WriteText(h.KeyClassName); err != nil {
		return err
	}
	if err := w.WriteText(h.ValueClassName); err != nil {
		return err
	}
	if err := w.WriteBool(h.Compressed); err != nil {
		return err
	}
	if err := w.WriteBool(h.BlockCompressed); err != nil {
		return err
	}
	if h.Compressed {
		if err := w.WriteText(h.CodecClassName); err != nil {
			return err
		}
	}

	meta := h.Metadata
	if meta == nil {
		meta = NewMetadata()
	}
	if err := meta.WriteTo(w); err != nil {
		return err
	}

	return w.WriteRaw(h.Sync.Bytes())
}

// ParseHeader reads and validates a header, gating optional fields by
// version exactly as spec §4.4 "Header parsing" describes. This
// implementation mandates versions 4-6; the version<4 and version>2 gates
// below are kept even though they're now unreachable dead branches for any
// version this reader accepts, to mirror the reference parser's literal
// step order rather than collapsing it.
func ParseHeader(r *wire.Reader) (*Header, error) {
	var magic [3]byte
	if err := r.ReadRaw(magic[:]); err != nil {
		return nil, err
	}
	if magic != [3]byte{MagicByte0, MagicByte1, MagicByte2} {
		return nil, fmt.Errorf("%w: bad magic bytes %q", errs.ErrCorruption, magic[:])
	}

	versionByte, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	v := format.Version(versionByte)

	if v > format.CurrentVersion {
		return nil, fmt.Errorf("%w: file version %d, max supported %d", errs.ErrVersionMismatch, v, format.CurrentVersion)
	}
	if v < format.MinSupportedVersion {
		return nil, fmt.Errorf("%w: file version %d, min supported %d", errs.ErrUnsupportedVersion, v, format.MinSupportedVersion)
	}

	h := &Header{Version: v}

	if h.KeyClassName, err = r.ReadText(); err != nil {
		return nil, err
	}
	if h.ValueClassName, err = r.ReadText(); err != nil {
		return nil, err
	}

	if v > 2 {
		if h.Compressed, err = r.ReadBool(); err != nil {
			return nil, err
		}
	}

	if v >= 4 {
		if h.BlockCompressed, err = r.ReadBool(); err != nil {
			return nil, err
		}
	}

	if h.Compressed {
		if v >= 5 {
			if h.CodecClassName, err = r.ReadText(); err != nil {
				return nil, err
			}
		} else {
			h.CodecClassName = DefaultCodecClassName
		}
	}

	if v >= 6 {
		if h.Metadata, err = ReadMetadata(r); err != nil {
			return nil, err
		}
	} else {
		h.Metadata = NewMetadata()
	}

	if v > 1 {
		if err := r.ReadRaw(h.Sync[:]); err != nil {
			return nil, err
		}
	}

	return h, nil
}
