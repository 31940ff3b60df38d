package seqfile

import (
	"path/filepath"
	"testing"

	"github.com/arloliu/seqfile/errs"
	"github.com/arloliu/seqfile/format"
	"github.com/arloliu/seqfile/writable"
	"github.com/orcaman/writerseeker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	key   string
	value string
}

// S1: 3 pairs, uncompressed, magic-byte check.
func TestUncompressedRoundtrip(t *testing.T) {
	ws := &writerseeker.WriterSeeker{}

	w, err := NewWriter(NewWriteStream(ws), writable.NewText(""), writable.NewText(""), format.CompressionNone)
	require.NoError(t, err)

	pairs := []pair{{"a", "1"}, {"b", "22"}, {"c", "333"}}
	for _, p := range pairs {
		require.NoError(t, w.Append(writable.NewText(p.key), writable.NewText(p.value)))
	}
	require.NoError(t, w.Close())

	br, err := ws.BytesReader()
	require.NoError(t, err)

	raw := make([]byte, 4)
	_, err = br.ReadAt(raw, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x53, 0x45, 0x51, 0x06}, raw)

	_, err = br.Seek(0, 0)
	require.NoError(t, err)

	r, err := NewReader(NewReadStream(br), 0, 0)
	require.NoError(t, err)
	assert.False(t, r.IsCompressed())
	assert.False(t, r.IsBlockCompressed())

	var got []pair
	for {
		key := r.NewKey()
		ok, err := r.Next(key)
		require.NoError(t, err)
		if !ok {
			break
		}
		value := r.NewValue()
		require.NoError(t, r.GetCurrentValue(value))
		got = append(got, pair{key.(*writable.Text).Value, value.(*writable.Text).Value})
	}
	assert.Equal(t, pairs, got)
}

// S2: record-compressed with default codec.
func TestRecordCompressedRoundtrip(t *testing.T) {
	ws := &writerseeker.WriterSeeker{}

	w, err := NewWriter(NewWriteStream(ws), writable.NewText(""), writable.NewText(""), format.CompressionRecord)
	require.NoError(t, err)

	pairs := []pair{{"a", "1"}, {"b", "22"}, {"c", "333"}}
	for _, p := range pairs {
		require.NoError(t, w.Append(writable.NewText(p.key), writable.NewText(p.value)))
	}
	require.NoError(t, w.Close())

	br, err := ws.BytesReader()
	require.NoError(t, err)

	r, err := NewReader(NewReadStream(br), 0, 0)
	require.NoError(t, err)
	assert.True(t, r.IsCompressed())
	assert.False(t, r.IsBlockCompressed())

	var got []pair
	for {
		key := r.NewKey()
		ok, err := r.Next(key)
		require.NoError(t, err)
		if !ok {
			break
		}
		value := r.NewValue()
		require.NoError(t, r.GetCurrentValue(value))
		got = append(got, pair{key.(*writable.Text).Value, value.(*writable.Text).Value})
	}
	assert.Equal(t, pairs, got)
}

// S6: constructing a writer on an existing path fails before any bytes are
// written.
func TestCreateAlreadyExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "existing.seq")

	w, err := Create(path, writable.NewText(""), writable.NewText(""), format.CompressionNone)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = Create(path, writable.NewText(""), writable.NewText(""), format.CompressionNone)
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
}
