package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteBool(false))
	require.NoError(t, w.WriteUint8(0xAB))
	require.NoError(t, w.WriteInt32(-1))
	require.NoError(t, w.WriteUint32(0xDEADBEEF))
	require.NoError(t, w.WriteInt64(-9223372036854775808))

	assert.Equal(t, int64(1+1+1+4+4+8), w.Position())

	r := NewReader(buf)
	b1, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b1)

	b2, err := r.ReadBool()
	require.NoError(t, err)
	assert.False(t, b2)

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), u8)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i32)

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	i64, err := r.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(-9223372036854775808), i64)
}

func TestInt32BigEndianWireFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	require.NoError(t, w.WriteInt32(-1))

	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf.Bytes())
}

func TestTextRoundTrip(t *testing.T) {
	strs := []string{"", "a", "hello, world", "日本語のテキスト"}

	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	for _, s := range strs {
		require.NoError(t, w.WriteText(s))
	}

	r := NewReader(buf)
	for _, want := range strs {
		got, err := r.ReadText()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
