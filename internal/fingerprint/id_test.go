package fingerprint

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		id   uint64
	}{
		{"empty", []byte(""), 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
		{"long", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
		{"other", []byte("another test string"), 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestID_Deterministic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0xFF, 0xFF, 0x00}
	assert.Equal(t, ID(data), ID(append([]byte(nil), data...)))
}

func randBytes(n int) []byte {
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	seededRand.Read(b)

	return b
}

func BenchmarkID(b *testing.B) {
	data := randBytes(8192)
	b.ResetTimer()
	for b.Loop() {
		ID(data)
	}
}
