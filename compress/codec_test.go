package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundtrip(t *testing.T, c Codec, data []byte) {
	t.Helper()

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	stream, err := c.DecompressStream(bytes.NewReader(compressed))
	require.NoError(t, err)

	got, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestCreateCodecUnknown(t *testing.T) {
	_, err := CreateCodec("org.apache.hadoop.io.compress.DoesNotExist")
	assert.Error(t, err)
}

func TestCreateCodecKnown(t *testing.T) {
	names := []string{
		"org.apache.hadoop.io.compress.NoneCodec",
		"org.apache.hadoop.io.compress.DefaultCodec",
		"org.apache.hadoop.io.compress.GzipCodec",
		"org.apache.hadoop.io.compress.Lz4Codec",
		"org.apache.hadoop.io.compress.ZStandardCodec",
		"org.apache.hadoop.io.compress.SnappyCodec",
	}
	for _, name := range names {
		c, err := CreateCodec(name)
		require.NoError(t, err, name)
		assert.NotNil(t, c, name)
	}
}
