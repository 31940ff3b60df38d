package section

import (
	"testing"

	"github.com/arloliu/seqfile/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockAppendAndSize(t *testing.T) {
	b := NewBlock()
	defer b.Release()

	b.Append([]byte("k1"), []byte("value-one"))
	b.Append([]byte("k2"), []byte("value-two-longer"))

	assert.Equal(t, 2, b.Records)
	assert.Equal(t, len("k1")+len("k2"), b.Keys.Len())
	assert.Equal(t, len("value-one")+len("value-two-longer"), b.Values.Len())
	assert.Equal(t, b.Keys.Len()+b.Values.Len(), b.UncompressedSize())
}

func TestBlockKeysLenDecodable(t *testing.T) {
	b := NewBlock()
	defer b.Release()

	b.Append([]byte("abc"), []byte("v"))
	b.Append([]byte("de"), []byte("v2"))

	n1, size1, err := wire.DecodeVInt(b.KeysLen.Bytes())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n1)

	n2, _, err := wire.DecodeVInt(b.KeysLen.Bytes()[size1:])
	require.NoError(t, err)
	assert.Equal(t, int64(2), n2)
}
