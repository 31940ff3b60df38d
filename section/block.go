package section

import (
	"github.com/arloliu/seqfile/internal/pool"
	"github.com/arloliu/seqfile/wire"
)

// Block is the in-flight, in-memory accumulator for block-compressed mode:
// an explicit object holding the four parallel sub-buffers plus a record
// counter, cleared on flush, rather than the ad-hoc tuple the reference
// implementation carries (Design Notes: "The block buffer").
type Block struct {
	Records   int
	KeysLen   *pool.ByteBuffer
	Keys      *pool.ByteBuffer
	ValuesLen *pool.ByteBuffer
	Values    *pool.ByteBuffer
}

// NewBlock allocates a Block with pooled sub-buffers.
func NewBlock() *Block {
	return &Block{
		KeysLen:   pool.GetBlockBuffer(),
		Keys:      pool.GetBlockBuffer(),
		ValuesLen: pool.GetBlockBuffer(),
		Values:    pool.GetBlockBuffer(),
	}
}

// Append records one (key, value) pair into the block's sub-buffers.
func (b *Block) Append(key, value []byte) {
	b.KeysLen.MustWrite(wire.EncodeVInt(nil, int64(len(key))))
	b.Keys.MustWrite(key)
	b.ValuesLen.MustWrite(wire.EncodeVInt(nil, int64(len(value))))
	b.Values.MustWrite(value)
	b.Records++
}

// UncompressedSize returns the combined size of the keys and values
// sub-buffers, the quantity compared against CompressionBlockSize to decide
// whether to flush.
func (b *Block) UncompressedSize() int {
	return b.Keys.Len() + b.Values.Len()
}

// Release returns the block's sub-buffers to the pool. Callers must not use
// the Block after calling Release.
func (b *Block) Release() {
	pool.PutBlockBuffer(b.KeysLen)
	pool.PutBlockBuffer(b.Keys)
	pool.PutBlockBuffer(b.ValuesLen)
	pool.PutBlockBuffer(b.Values)
}
