package section

import (
	"bytes"
	"testing"

	"github.com/arloliu/seqfile/errs"
	"github.com/arloliu/seqfile/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataRoundTrip(t *testing.T) {
	m := NewMetadata()
	m.Set("owner", "alice")
	m.Set("description", "日本語 テスト データ")
	m.Set("", "empty key allowed")

	buf := &bytes.Buffer{}
	require.NoError(t, m.WriteTo(wire.NewWriter(buf)))

	got, err := ReadMetadata(wire.NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, m.Map(), got.Map())
	assert.Equal(t, 3, got.Len())
}

func TestMetadataEmpty(t *testing.T) {
	m := NewMetadata()

	buf := &bytes.Buffer{}
	require.NoError(t, m.WriteTo(wire.NewWriter(buf)))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes(), "zero count should be a plain big-endian int32 zero")

	got, err := ReadMetadata(wire.NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestMetadataNegativeCountIsCorruption(t *testing.T) {
	buf := &bytes.Buffer{}
	w := wire.NewWriter(buf)
	require.NoError(t, w.WriteInt32(-1))

	_, err := ReadMetadata(wire.NewReader(buf))
	assert.ErrorIs(t, err, errs.ErrCorruption)
}
