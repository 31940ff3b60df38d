package hash

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		id   uint64
	}{
		{"empty", []byte(""), 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Sum64(tt.data))
		})
	}
}

func TestSum64Deterministic(t *testing.T) {
	window := make([]byte, 16)
	_, err := rand.Read(window)
	assert.NoError(t, err)

	assert.Equal(t, Sum64(window), Sum64(window))
}

func TestSum64DiffersOnSingleByteChange(t *testing.T) {
	a := []byte("0123456789abcdef")
	b := []byte("0123456789abcdeg")

	assert.NotEqual(t, Sum64(a), Sum64(b))
}

func BenchmarkSum64(b *testing.B) {
	window := make([]byte, 16)
	b.ResetTimer()
	for b.Loop() {
		Sum64(window)
	}
}
