package seqfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/seqfile/classreg"
	"github.com/arloliu/seqfile/compress"
	"github.com/arloliu/seqfile/errs"
	"github.com/arloliu/seqfile/format"
	"github.com/arloliu/seqfile/section"
	"github.com/arloliu/seqfile/wire"
	"github.com/arloliu/seqfile/writable"
)

// Reader parses one SequenceFile (or a byte-range slice of one) and yields
// (key, value) pairs in order (spec §4.4). A Reader owns its input stream
// and can be repositioned with Seek or Sync, but never rewrites the stream.
type Reader struct {
	stream *countingStream
	r      *wire.Reader

	start, end, headerEnd int64

	header    *section.Header
	codec     compress.Codec
	keyCtor   classreg.Constructor
	valueCtor classreg.Constructor

	syncSeen bool

	// uncompressed / record-compressed iteration state.
	curValueBytes []byte

	// block-compressed iteration state.
	blockRecords int
	blockIndex   int
	keysLenR     *wire.Reader
	keysR        *wire.Reader
	valuesR      *wire.Reader
}

// Open opens path for reading at byte offset start, covering length bytes
// (length 0 means "to end of file").
func Open(path string, start, length int64) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := NewReader(f, start, length)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// NewReader wraps an already-open stream as a Reader positioned at start,
// covering length bytes (length 0 means "to end of stream").
func NewReader(stream ReadStream, start, length int64) (*Reader, error) {
	cs := &countingStream{ReadStream: stream}

	var end int64
	if length == 0 {
		size, err := cs.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, err
		}
		end = size
	} else {
		end = start + length
	}

	if _, err := cs.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}

	r := &Reader{stream: cs, r: wire.NewReader(cs), start: start, end: end}

	header, err := section.ParseHeader(r.r)
	if err != nil {
		return nil, err
	}
	r.header = header
	r.headerEnd = cs.pos

	if r.keyCtor, err = classreg.Default.Resolve(header.KeyClassName); err != nil {
		return nil, err
	}
	if r.valueCtor, err = classreg.Default.Resolve(header.ValueClassName); err != nil {
		return nil, err
	}

	if header.Compressed {
		codecName := header.CodecClassName
		if codecName == "" {
			codecName = section.DefaultCodecClassName
		}
		if r.codec, err = compress.CreateCodec(codecName); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Position returns the reader's current absolute stream offset.
func (r *Reader) Position() int64 { return r.stream.pos }

// Version returns the on-disk format version.
func (r *Reader) Version() format.Version { return r.header.Version }

// KeyClassName returns the fully qualified key class name from the header.
func (r *Reader) KeyClassName() string { return r.header.KeyClassName }

// ValueClassName returns the fully qualified value class name from the header.
func (r *Reader) ValueClassName() string { return r.header.ValueClassName }

// IsCompressed reports whether values are compressed, in either record or
// block mode.
func (r *Reader) IsCompressed() bool { return r.header.Compressed }

// IsBlockCompressed reports whether the file is block-compressed.
func (r *Reader) IsBlockCompressed() bool { return r.header.BlockCompressed }

// Metadata returns the header's metadata block.
func (r *Reader) Metadata() *section.Metadata { return r.header.Metadata }

// SyncSeen reports whether the most recent framing operation (Next or Sync)
// consumed a body sync marker.
func (r *Reader) SyncSeen() bool { return r.syncSeen }

// NewKey constructs a zero-valued key instance via the resolved key class.
func (r *Reader) NewKey() writable.Writable { return r.keyCtor() }

// NewValue constructs a zero-valued value instance via the resolved value
// class.
func (r *Reader) NewValue() writable.Writable { return r.valueCtor() }

// Close closes the underlying stream.
func (r *Reader) Close() error { return r.stream.Close() }

// Next deserializes the next key into key and prepares the current value
// for GetCurrentValue. It returns false (with a nil error) once the region
// is exhausted.
func (r *Reader) Next(key writable.Writable) (bool, error) {
	if r.header.BlockCompressed {
		return r.nextBlock(key)
	}
	return r.nextRecord(key)
}

// GetCurrentValue deserializes the value belonging to the most recent
// successful Next call.
func (r *Reader) GetCurrentValue(value writable.Writable) error {
	if r.header.BlockCompressed {
		return value.ReadFields(r.valuesR)
	}
	if r.header.Compressed {
		stream, err := r.codec.DecompressStream(bytes.NewReader(r.curValueBytes))
		if err != nil {
			return err
		}
		return value.ReadFields(wire.NewReader(stream))
	}
	return value.ReadFields(wire.NewReader(bytes.NewReader(r.curValueBytes)))
}

func (r *Reader) nextRecord(key writable.Writable) (bool, error) {
	length, ok, err := r.readRecordLength()
	if err != nil || !ok {
		return false, err
	}

	buf := make([]byte, length+4)
	if err := r.r.ReadRaw(buf); err != nil {
		return false, err
	}

	rr := wire.NewReader(bytes.NewReader(buf))
	keyLen, err := rr.ReadInt32()
	if err != nil {
		return false, err
	}

	keyBytes := make([]byte, keyLen)
	if err := rr.ReadRaw(keyBytes); err != nil {
		return false, err
	}
	if err := key.ReadFields(wire.NewReader(bytes.NewReader(keyBytes))); err != nil {
		return false, err
	}

	r.curValueBytes = buf[4+keyLen:]
	return true, nil
}

// readRecordLength implements the reference reader's read_record_length:
// it transparently consumes and validates any body sync marker encountered
// before the next record length, per spec §4.4.
func (r *Reader) readRecordLength() (int32, bool, error) {
	for {
		if r.stream.pos >= r.end {
			return 0, false, nil
		}

		length, err := r.r.ReadInt32()
		if err != nil {
			return 0, false, err
		}

		if length != section.SyncEscape {
			r.syncSeen = false
			return length, true, nil
		}

		var tag section.SyncMarker
		if err := r.r.ReadRaw(tag[:]); err != nil {
			return 0, false, err
		}
		if tag != r.header.Sync {
			return 0, false, fmt.Errorf("%w: body sync tag mismatch", errs.ErrCorruption)
		}
		r.syncSeen = true

		if r.stream.pos >= r.end {
			return 0, false, nil
		}
	}
}

func (r *Reader) nextBlock(key writable.Writable) (bool, error) {
	if r.keysR != nil && r.blockIndex < r.blockRecords {
		r.syncSeen = false
		if _, err := r.keysLenR.ReadVInt(); err != nil {
			return false, err
		}
		if err := key.ReadFields(r.keysR); err != nil {
			return false, err
		}
		r.blockIndex++
		return true, nil
	}

	if r.stream.pos >= r.end {
		return false, nil
	}

	escape, err := r.r.ReadInt32()
	if err != nil {
		return false, err
	}
	if escape != section.SyncEscape {
		return false, fmt.Errorf("%w: expected sync marker before block", errs.ErrCorruption)
	}

	var tag section.SyncMarker
	if err := r.r.ReadRaw(tag[:]); err != nil {
		return false, err
	}
	if tag != r.header.Sync {
		return false, fmt.Errorf("%w: body sync tag mismatch", errs.ErrCorruption)
	}
	r.syncSeen = true

	records, err := r.r.ReadVInt()
	if err != nil {
		return false, err
	}

	subReaders := make([]*wire.Reader, 4)
	for i := range subReaders {
		n, err := r.r.ReadVInt()
		if err != nil {
			return false, err
		}
		compressed := make([]byte, n)
		if err := r.r.ReadRaw(compressed); err != nil {
			return false, err
		}
		decompressed, err := r.codec.DecompressStream(bytes.NewReader(compressed))
		if err != nil {
			return false, err
		}
		subReaders[i] = wire.NewReader(decompressed)
	}

	r.keysLenR = subReaders[0]
	r.keysR = subReaders[1]
	// subReaders[2] is valuesLen: present on disk for parity with the
	// reference layout, never consulted on read - values are
	// self-delimiting via their own Writable encoding.
	r.valuesR = subReaders[3]
	r.blockRecords = int(records)
	r.blockIndex = 1

	if _, err := r.keysLenR.ReadVInt(); err != nil {
		return false, err
	}
	if err := key.ReadFields(r.keysR); err != nil {
		return false, err
	}
	return true, nil
}

// Seek repositions the underlying stream. In block-compressed mode, it
// discards the current block; the caller is responsible for landing on a
// valid record/block boundary (typically obtained via Sync).
func (r *Reader) Seek(position int64) error {
	if _, err := r.stream.Seek(position, io.SeekStart); err != nil {
		return err
	}
	r.blockRecords = 0
	r.blockIndex = 0
	r.keysLenR = nil
	r.keysR = nil
	r.valuesR = nil
	return nil
}

// Sync scans forward from position looking for the next record boundary,
// implementing the resynchronization algorithm of spec §4.4. It returns the
// landing position.
func (r *Reader) Sync(position int64) (int64, error) {
	if position+section.SyncFrameSize > r.end {
		if err := r.Seek(r.end); err != nil {
			return 0, err
		}
		return r.end, nil
	}

	if position < r.headerEnd {
		if err := r.Seek(r.headerEnd); err != nil {
			return 0, err
		}
		r.syncSeen = true
		return r.headerEnd, nil
	}

	if _, err := r.stream.Seek(position+4, io.SeekStart); err != nil {
		return 0, err
	}

	limited := io.LimitReader(r.stream, r.end-(position+4))
	consumed, err := section.ScanForSync(limited, r.header.Sync)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			if err := r.Seek(r.end); err != nil {
				return 0, err
			}
			return r.end, nil
		}
		return 0, err
	}

	final := position + 4 + consumed - section.SyncFrameSize
	if err := r.Seek(final); err != nil {
		return 0, err
	}
	r.syncSeen = true
	return final, nil
}
