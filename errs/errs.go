// Package errs defines the sentinel errors returned by seqfile's reader,
// writer, and supporting packages. Callers match against these with
// errors.Is; call sites add context with fmt.Errorf("%w: ...", errs.ErrXxx).
package errs

import "errors"

var (
	// ErrAlreadyExists is returned when a Writer is constructed against a
	// path that already exists.
	ErrAlreadyExists = errors.New("seqfile: file already exists")

	// ErrVersionMismatch is returned when the on-disk version byte exceeds
	// the version this implementation knows how to read.
	ErrVersionMismatch = errors.New("seqfile: version mismatch")

	// ErrUnsupportedVersion is returned when the on-disk version byte is
	// below the minimum supported version (4).
	ErrUnsupportedVersion = errors.New("seqfile: unsupported version")

	// ErrUnsupportedCompressionMode is returned when a caller requests a
	// compression mode outside {none, record, block}.
	ErrUnsupportedCompressionMode = errors.New("seqfile: unsupported compression mode")

	// ErrTypeMismatch is returned when Append is called with a key or value
	// whose runtime type does not exactly match the writer's declared class.
	ErrTypeMismatch = errors.New("seqfile: type mismatch")

	// ErrCorruption covers body-level framing inconsistencies: a sync tag
	// that doesn't match the header tag, a negative metadata count, or a
	// record/block length inconsistent with the surrounding framing.
	ErrCorruption = errors.New("seqfile: corrupt stream")

	// ErrUnknownClass is returned by the ClassRegistry when asked to resolve
	// a class name it has no constructor for.
	ErrUnknownClass = errors.New("seqfile: unknown class name")

	// ErrUnknownCodec is returned when a codec class name has no registered
	// implementation.
	ErrUnknownCodec = errors.New("seqfile: unknown codec")

	// ErrClosed is returned by Append and AppendRaw on a Writer after Close
	// has been called. A closed Reader reports its stream's own error.
	ErrClosed = errors.New("seqfile: stream closed")
)
