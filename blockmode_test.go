package seqfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/arloliu/seqfile/format"
	"github.com/arloliu/seqfile/section"
	"github.com/arloliu/seqfile/writable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockTestPairCount is large enough that the serialized keys (4 bytes each)
// plus values (VInt length + decimal digits) total about 1.1 MB, above
// section.CompressionBlockSize, so the fixture is written as two blocks.
const blockTestPairCount = 120_000

func writeBlockCompressedFixture(t *testing.T, path string) {
	t.Helper()

	w, err := Create(path, &writable.IntWritable{}, writable.NewText(""), format.CompressionBlock)
	require.NoError(t, err)

	for i := 0; i < blockTestPairCount; i++ {
		require.NoError(t, w.Append(writable.NewIntWritable(int32(i)), writable.NewText(strconv.Itoa(i)))) //nolint:gosec
	}
	require.NoError(t, w.Close())
}

// S3: blockTestPairCount pairs, block-compressed, spanning at least two blocks.
func TestBlockCompressedRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.seq")
	writeBlockCompressedFixture(t, path)

	r, err := Open(path, 0, 0)
	require.NoError(t, err)
	defer r.Close()

	assert.True(t, r.IsCompressed())
	assert.True(t, r.IsBlockCompressed())

	syncCount := 0
	count := 0
	for {
		key := r.NewKey()
		ok, err := r.Next(key)
		require.NoError(t, err)
		if !ok {
			break
		}
		if r.SyncSeen() {
			syncCount++
		}

		value := r.NewValue()
		require.NoError(t, r.GetCurrentValue(value))

		assert.Equal(t, strconv.Itoa(int(key.(*writable.IntWritable).Value)), value.(*writable.Text).Value)
		count++
	}

	assert.Equal(t, blockTestPairCount, count)
	assert.GreaterOrEqual(t, syncCount, 2, "expected at least two block sync markers")
}

// S4: resynchronize mid-file on the block-compressed fixture and verify the
// remaining pairs still parse consistently.
func TestBlockCompressedResync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block_resync.seq")
	writeBlockCompressedFixture(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)

	r, err := Open(path, 0, 0)
	require.NoError(t, err)
	defer r.Close()

	midpoint := info.Size() / 2
	landing, err := r.Sync(midpoint)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, landing, midpoint-section.SyncFrameSize)
	assert.True(t, r.SyncSeen())

	count := 0
	for {
		key := r.NewKey()
		ok, err := r.Next(key)
		require.NoError(t, err)
		if !ok {
			break
		}
		value := r.NewValue()
		require.NoError(t, r.GetCurrentValue(value))
		assert.Equal(t, strconv.Itoa(int(key.(*writable.IntWritable).Value)), value.(*writable.Text).Value)
		count++
	}

	assert.Greater(t, count, 0)
	assert.Less(t, count, blockTestPairCount)
}

// S5: a corrupted body sync tag surfaces a corruption error when the reader
// reaches it.
func TestBlockCompressedCorruptSyncTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block_corrupt.seq")
	writeBlockCompressedFixture(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Locate the first body sync escape (-1) after the header and flip one
	// byte of its following 16-byte tag.
	found := false
	for i := 0; i+20 <= len(data); i++ {
		if data[i] == 0xFF && data[i+1] == 0xFF && data[i+2] == 0xFF && data[i+3] == 0xFF {
			data[i+4] ^= 0xFF
			found = true
			break
		}
	}
	require.True(t, found, "fixture must contain at least one body sync marker")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	r, err := Open(path, 0, 0)
	require.NoError(t, err)
	defer r.Close()

	var corruptionErr error
	for i := 0; i < blockTestPairCount+10; i++ {
		key := r.NewKey()
		ok, err := r.Next(key)
		if err != nil {
			corruptionErr = err
			break
		}
		if !ok {
			break
		}
		value := r.NewValue()
		if err := r.GetCurrentValue(value); err != nil {
			corruptionErr = err
			break
		}
	}

	require.Error(t, corruptionErr, fmt.Sprintf("expected a corruption error reading %s", path))
}
