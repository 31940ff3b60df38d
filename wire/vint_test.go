package wire

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVIntRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 127, -112, 128, -113, 255, -256,
		1000, -1000, math.MaxInt32, math.MinInt32,
		math.MaxInt64, math.MinInt64, math.MaxInt64 - 1,
	}

	for _, v := range values {
		buf := EncodeVInt(nil, v)
		got, n, err := DecodeVInt(buf)
		require.NoError(t, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got, "value %d", v)
		assert.Equal(t, len(buf), VIntLen(v))
	}
}

func TestVIntSingleByteRange(t *testing.T) {
	for v := int64(-112); v <= 127; v++ {
		buf := EncodeVInt(nil, v)
		assert.Len(t, buf, 1, "value %d should encode to a single byte", v)
	}
}

func TestVIntDecodeShortBuffer(t *testing.T) {
	buf := EncodeVInt(nil, math.MaxInt64)
	_, _, err := DecodeVInt(buf[:len(buf)-1])
	assert.Error(t, err)
}

func TestVIntWriterReaderRoundTrip(t *testing.T) {
	values := []int64{0, 42, -42, 300, -300, math.MaxInt64, math.MinInt64}

	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	for _, v := range values {
		require.NoError(t, w.WriteVInt(v))
	}

	r := NewReader(buf)
	for _, want := range values {
		got, err := r.ReadVInt()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
