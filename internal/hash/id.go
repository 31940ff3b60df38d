// Package hash provides the fast fingerprint used by the reader's
// resynchronization scan to cheaply rule out a 16-byte window before paying
// for an exact comparison against the sync tag.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 fingerprint of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
