package seqfile

import (
	"fmt"
	"os"
	"reflect"

	"github.com/arloliu/seqfile/compress"
	"github.com/arloliu/seqfile/errs"
	"github.com/arloliu/seqfile/format"
	"github.com/arloliu/seqfile/internal/options"
	"github.com/arloliu/seqfile/internal/pool"
	"github.com/arloliu/seqfile/section"
	"github.com/arloliu/seqfile/wire"
	"github.com/arloliu/seqfile/writable"
)

// WriterOption configures a Writer at construction time.
type WriterOption = options.Option[*Writer]

// WithCodecClassName selects the codec a compressed Writer uses, overriding
// the default (section.DefaultCodecClassName). Ignored for
// format.CompressionNone.
func WithCodecClassName(className string) WriterOption {
	return options.NoError(func(w *Writer) { w.codecClassName = className })
}

// WithMetadata attaches a metadata block to the header. Ownership of meta
// passes to the Writer; callers should not mutate it afterward.
func WithMetadata(meta *section.Metadata) WriterOption {
	return options.NoError(func(w *Writer) { w.metadata = meta })
}

// Writer emits a single SequenceFile to an output stream (spec §4.3). It is
// single-use: once Close is called, a Writer cannot be reopened.
type Writer struct {
	stream WriteStream
	w      *wire.Writer

	mode format.CompressionMode

	keyClassName   string
	valueClassName string
	keyType        reflect.Type
	valueType      reflect.Type

	codecClassName string
	codec          compress.Codec

	metadata *section.Metadata
	sync     section.SyncMarker

	lastSync int64
	block    *section.Block

	closed bool
}

// Create opens path for writing, failing with errs.ErrAlreadyExists if it
// already exists. keyProto and valueProto are zero-valued instances of the
// exact key/value types this writer will accept; only their ClassName() and
// runtime type are used.
func Create(path string, keyProto, valueProto writable.Writable, mode format.CompressionMode, opts ...WriterOption) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", errs.ErrAlreadyExists, path)
		}
		return nil, err
	}

	w, err := NewWriter(f, keyProto, valueProto, mode, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// NewWriter wraps an already-open stream as a Writer. Callers that need
// Create's already-exists semantics against a filesystem path should use
// Create instead.
func NewWriter(stream WriteStream, keyProto, valueProto writable.Writable, mode format.CompressionMode, opts ...WriterOption) (*Writer, error) {
	if mode != format.CompressionNone && mode != format.CompressionRecord && mode != format.CompressionBlock {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnsupportedCompressionMode, mode)
	}

	syncMarker, err := section.NewSyncMarker()
	if err != nil {
		return nil, err
	}

	w := &Writer{
		stream:         stream,
		w:              wire.NewWriter(stream),
		mode:           mode,
		keyClassName:   keyProto.ClassName(),
		valueClassName: valueProto.ClassName(),
		keyType:        reflect.TypeOf(keyProto),
		valueType:      reflect.TypeOf(valueProto),
		sync:           syncMarker,
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	if w.mode.Compressed() {
		if w.codecClassName == "" {
			w.codecClassName = section.DefaultCodecClassName
		}
		codec, err := compress.CreateCodec(w.codecClassName)
		if err != nil {
			return nil, err
		}
		w.codec = codec
	}

	if w.metadata == nil {
		w.metadata = section.NewMetadata()
	}

	header := &section.Header{
		Version:         format.CurrentVersion,
		KeyClassName:    section.ClassNamePrefix + w.keyClassName,
		ValueClassName:  section.ClassNamePrefix + w.valueClassName,
		Compressed:      w.mode.Compressed(),
		BlockCompressed: w.mode.BlockCompressed(),
		CodecClassName:  w.codecClassName,
		Metadata:        w.metadata,
		Sync:            w.sync,
	}
	if err := header.WriteTo(w.w); err != nil {
		return nil, err
	}

	return w, nil
}

// Position returns the number of bytes written to the underlying stream so
// far.
func (w *Writer) Position() int64 {
	return w.w.Position()
}

// Append serializes key and value via their Writable capability and frames
// them per the writer's compression mode. The runtime types of key and
// value must exactly match the types given to Create/NewWriter.
func (w *Writer) Append(key, value writable.Writable) error {
	if w.closed {
		return errs.ErrClosed
	}
	if reflect.TypeOf(key) != w.keyType {
		return fmt.Errorf("%w: key type %T does not match declared key class %s", errs.ErrTypeMismatch, key, w.keyClassName)
	}
	if reflect.TypeOf(value) != w.valueType {
		return fmt.Errorf("%w: value type %T does not match declared value class %s", errs.ErrTypeMismatch, value, w.valueClassName)
	}

	keyBuf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(keyBuf)
	valueBuf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(valueBuf)

	if err := key.WriteFields(wire.NewWriter(keyBuf)); err != nil {
		return err
	}
	if err := value.WriteFields(wire.NewWriter(valueBuf)); err != nil {
		return err
	}

	return w.AppendRaw(keyBuf.Bytes(), valueBuf.Bytes())
}

// AppendRaw frames an already-serialized (key, value) pair, bypassing the
// Writable capability. Exposed for callers that already hold serialized
// bytes (e.g. copying records between files without re-encoding).
func (w *Writer) AppendRaw(keyBytes, valueBytes []byte) error {
	if w.closed {
		return errs.ErrClosed
	}

	if w.mode.BlockCompressed() {
		return w.appendBlock(keyBytes, valueBytes)
	}
	return w.appendRecord(keyBytes, valueBytes)
}

func (w *Writer) appendRecord(keyBytes, valueBytes []byte) error {
	if w.mode == format.CompressionRecord {
		compressed, err := w.codec.Compress(valueBytes)
		if err != nil {
			return err
		}
		valueBytes = compressed
	}

	if w.Position() >= w.lastSync+section.SyncInterval {
		if err := w.writeSyncFrame(); err != nil {
			return err
		}
	}

	totalLen := int32(len(keyBytes) + len(valueBytes)) //nolint:gosec
	if err := w.w.WriteInt32(totalLen); err != nil {
		return err
	}
	if err := w.w.WriteInt32(int32(len(keyBytes))); err != nil { //nolint:gosec
		return err
	}
	if err := w.w.WriteRaw(keyBytes); err != nil {
		return err
	}
	return w.w.WriteRaw(valueBytes)
}

func (w *Writer) appendBlock(keyBytes, valueBytes []byte) error {
	if w.block == nil {
		w.block = section.NewBlock()
	}
	w.block.Append(keyBytes, valueBytes)

	if w.block.UncompressedSize() >= section.CompressionBlockSize {
		return w.Sync()
	}
	return nil
}

func (w *Writer) writeSyncFrame() error {
	if err := w.w.WriteInt32(section.SyncEscape); err != nil {
		return err
	}
	if err := w.w.WriteRaw(w.sync.Bytes()); err != nil {
		return err
	}
	w.lastSync = w.Position()
	return nil
}

// Sync flushes a pending block (if any) and, separately, emits a body sync
// marker whenever the stream position has moved since the last one -
// mirroring the reference writer's combined "flush policy" (spec §4.3).
func (w *Writer) Sync() error {
	if w.Position() != w.lastSync {
		if err := w.writeSyncFrame(); err != nil {
			return err
		}
	}

	if w.mode.BlockCompressed() && w.block != nil {
		defer func() {
			w.block.Release()
			w.block = nil
		}()

		if err := w.w.WriteVInt(int64(w.block.Records)); err != nil {
			return err
		}

		subBuffers := []*pool.ByteBuffer{w.block.KeysLen, w.block.Keys, w.block.ValuesLen, w.block.Values}
		for _, buf := range subBuffers {
			compressed, err := w.codec.Compress(buf.Bytes())
			if err != nil {
				return err
			}
			if err := w.w.WriteVInt(int64(len(compressed))); err != nil {
				return err
			}
			if err := w.w.WriteRaw(compressed); err != nil {
				return err
			}
		}
	}

	return nil
}

// Close flushes any pending block (block-compressed mode) and closes the
// underlying stream. Calls after the first return nil without touching the
// stream again.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.mode.BlockCompressed() {
		if err := w.Sync(); err != nil {
			w.stream.Close()
			return err
		}
	}

	return w.stream.Close()
}
