package section

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/arloliu/seqfile/internal/hash"
)

// SyncMarker is the 16-byte value generated once per file at writer
// construction, immutable for the file's lifetime, and re-emitted
// periodically in the body preceded by SyncEscape.
type SyncMarker [SyncTagSize]byte

// NewSyncMarker generates a fresh sync marker from a cryptographically
// random source. Collision between independently created files is
// negligible at this width; the reference implementation instead mixes an
// MD5 of a unique id with the current time, but any source with
// comparable entropy satisfies the spec.
func NewSyncMarker() (SyncMarker, error) {
	var m SyncMarker
	if _, err := rand.Read(m[:]); err != nil {
		return m, err
	}
	return m, nil
}

// Bytes returns the marker's 16 bytes.
func (m SyncMarker) Bytes() []byte {
	return m[:]
}

// ScanForSync reads forward from r (which the caller has already
// positioned 4 bytes past the candidate sync offset, i.e. just past where
// the escape sentinel would sit) looking for tag using a 16-byte circular
// rolling window, per the resynchronization algorithm in spec §4.4.
//
// It returns the number of bytes consumed from r once tag is located; the
// caller derives the absolute file position of the escape sentinel as
// (scanStart + consumed - SyncFrameSize). If r is exhausted before a match,
// it returns the bytes consumed and the underlying io.EOF/io.ErrUnexpectedEOF.
//
// A 64-bit hash of the window is compared against a precomputed hash of tag
// before falling back to an exact byte comparison, so the common
// non-matching case costs one hash and one integer compare instead of up to
// 16 byte compares.
func ScanForSync(r io.Reader, tag SyncMarker) (int64, error) {
	var window [SyncTagSize]byte
	if _, err := io.ReadFull(r, window[:]); err != nil {
		return 0, err
	}

	consumed := int64(SyncTagSize)
	tagHash := hash.Sum64(tag[:])
	rotated := make([]byte, SyncTagSize)

	matches := func(idx int) bool {
		for k := 0; k < SyncTagSize; k++ {
			rotated[k] = window[(idx+k)%SyncTagSize]
		}
		if hash.Sum64(rotated) != tagHash {
			return false
		}
		return bytes.Equal(rotated, tag[:])
	}

	var oneByte [1]byte
	for i := 0; ; i++ {
		if matches(i % SyncTagSize) {
			return consumed, nil
		}

		if _, err := io.ReadFull(r, oneByte[:]); err != nil {
			return consumed, err
		}
		window[i%SyncTagSize] = oneByte[0]
		consumed++
	}
}
