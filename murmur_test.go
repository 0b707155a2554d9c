package seedhash

import (
	"math/rand"
	"testing"

	"github.com/spaolacci/murmur3"
)

// streamBytes feeds b one byte at a time, the narrowest write the stream sees.
func streamBytes(seed uint32, b []byte) uint32 {
	m := newMurmur32(seed)
	for _, c := range b {
		m.write(uint32(c), 8)
	}
	return m.sum()
}

func TestMurmur32KnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		seed  uint32
		want  uint32
	}{
		{"empty seed 0", "", 0, 0},
		{"empty seed 1", "", 1, 0x514E28B7},
		{"empty seed max", "", 0xffffffff, 0x81F16F39},
		{"test", "test", 0, 0xba6bd213},
		{"hello world", "Hello, world!", 0, 0xc0363e43},
		{"quick brown fox", "The quick brown fox jumps over the lazy dog", 0, 0x2e4ff723},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := streamBytes(tt.seed, []byte(tt.input)); got != tt.want {
				t.Errorf("murmur32(%q, %#x) = %#08x, want %#08x", tt.input, tt.seed, got, tt.want)
			}
		})
	}
}

func TestMurmur32EmptyIsFmixOfZero(t *testing.T) {
	m := newMurmur32(0)
	if got := m.sum(); got != fmix32(0^0) {
		t.Errorf("empty input hashed to %#08x, want fmix32(0)", got)
	}
}

func TestMurmur32MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 64; n++ {
		buf := make([]byte, n)
		rng.Read(buf)
		seed := rng.Uint32()

		if got, want := streamBytes(seed, buf), murmur3.Sum32WithSeed(buf, seed); got != want {
			t.Fatalf("len %d seed %#x: got %#08x, want %#08x", n, seed, got, want)
		}
	}
}

// Mixed write widths must straddle block boundaries exactly like bytes do.
func TestMurmur32WideWrites(t *testing.T) {
	var (
		buf []byte
		m   = newMurmur32(7)
	)
	widths := []uint{24, 16, 32, 8, 24, 24, 32, 16, 8, 8, 24}
	for i, w := range widths {
		var packed uint32
		for b := uint(0); b < w/8; b++ {
			c := byte(i*13 + int(b)*7 + 1)
			packed |= uint32(c) << (8 * b)
			buf = append(buf, c)
		}
		m.write(packed, w)
	}

	if got, want := m.sum(), murmur3.Sum32WithSeed(buf, 7); got != want {
		t.Errorf("wide writes: got %#08x, want %#08x", got, want)
	}
}

func TestMurmur32SumIsRepeatable(t *testing.T) {
	m := newMurmur32(3)
	m.write('a', 8)
	first := m.sum()
	if second := m.sum(); first != second {
		t.Errorf("sum changed state: %#08x then %#08x", first, second)
	}
}
