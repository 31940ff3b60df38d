// Package section implements the on-disk pieces of the container format
// that sit between the raw primitives (package wire) and the Writer/Reader:
// the metadata block, the sync marker and its resynchronization scan, and
// the block sub-buffer layout used by block-compressed mode.
package section

const (
	// MagicByte0, MagicByte1, MagicByte2 are the first three bytes of every
	// file, spelling "SEQ".
	MagicByte0 = 'S'
	MagicByte1 = 'E'
	MagicByte2 = 'Q'

	// ClassNamePrefix is prepended verbatim to key/value class names on
	// write - an observable quirk of the reference implementation, required
	// for interop rather than for any structural reason.
	ClassNamePrefix = "org.apache.hadoop."

	// DefaultCodecClassName is the codec class name a Writer emits when the
	// caller doesn't specify one explicitly.
	DefaultCodecClassName = "org.apache.hadoop.io.compress.DefaultCodec"

	// SyncTagSize is the length in bytes of the random per-file sync tag.
	SyncTagSize = 16

	// SyncEscape is the 32-bit big-endian sentinel that precedes every
	// body sync tag. It is never a valid record length (lengths are
	// non-negative), so a scanning reader can locate it unambiguously.
	SyncEscape int32 = -1

	// SyncFrameSize is the full on-disk size of a body sync marker: the
	// 4-byte escape plus the 16-byte tag.
	SyncFrameSize = 4 + SyncTagSize

	// SyncInterval is the approximate number of bytes between sync markers
	// a Writer emits in non-block modes (100 sync frames).
	SyncInterval = 100 * SyncFrameSize

	// CompressionBlockSize is the uncompressed keys+values size threshold
	// that triggers a block flush in block-compressed mode.
	CompressionBlockSize = 1_000_000
)
