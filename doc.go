// Package seqfile reads and writes the sequence-file container format: a
// self-describing, splittable, append-only binary container for sequences
// of typed key/value records, bit-for-bit interoperable with files produced
// by the reference platform.
//
// Serialization of individual keys and values is delegated to the
// writable.Writable capability, compression to the compress.Codec
// capability, and class-name resolution to the classreg.Registry
// capability; this package owns only the header, record/block framing, and
// sync-marker discipline that make the format splittable.
package seqfile
