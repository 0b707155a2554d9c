package seedhash

import "math/bits"

// MurmurHash3 x86_32 constants
const (
	murmurC1 = 0xcc9e2d51
	murmurC2 = 0x1b873593
	murmurN  = 0xe6546b64
	murmurM  = 5

	blockRotation = 15 // k1 rotation per 4-byte block
	stateRotation = 13 // h1 rotation per 4-byte block

	// fmix32 avalanche multipliers
	fmixC1 = 0x85ebca6b
	fmixC2 = 0xc2b2ae35

	// fmix32 xor-shift amounts
	fmixShift1 = 16
	fmixShift2 = 13
	fmixShift3 = 16

	blockBits = 32
)

// murmur32 is a streaming MurmurHash3 x86_32 state fed with UTF-8 bytes
// packed little-endian into a uint32 (1 to 4 bytes per write).
// No intermediate byte buffer is ever built.
type murmur32 struct {
	h1    uint32
	k1    uint32 // partially filled block
	shift uint   // bits buffered in k1; always a multiple of 8 below 32
	n     uint32 // bytes consumed by full blocks
}

func newMurmur32(seed uint32) murmur32 {
	return murmur32{h1: seed}
}

// write appends the low nbits of packed to the pending block and mixes the
// block into h1 once 32 bits are available. Leftover high bits of packed
// start the next block.
func (m *murmur32) write(packed uint32, nbits uint) {
	m.k1 |= packed << m.shift
	m.shift += nbits
	if m.shift < blockBits {
		return
	}

	m.h1 = murmurBlock(m.h1, m.k1)
	m.shift -= blockBits
	if m.shift != 0 {
		m.k1 = packed >> (nbits - m.shift)
	} else {
		m.k1 = 0
	}
	m.n += 4
}

// writeRune encodes r as UTF-8 into the stream. Callers pass any value below
// 0x10000 (surrogates included, encoded as 3 bytes) or a supplementary code
// point that was already combined from a surrogate pair.
func (m *murmur32) writeRune(r uint32) {
	switch {
	case r < 0x80:
		m.write(r, 8)
	case r < 0x800:
		m.write(0xC0|r>>6|
			(0x80|r&0x3F)<<8, 16)
	case r < 0x10000:
		m.write(0xE0|r>>12|
			(0x80|(r>>6)&0x3F)<<8|
			(0x80|r&0x3F)<<16, 24)
	default:
		m.write((0xF0|r>>18)&0xFF|
			(0x80|(r>>12)&0x3F)<<8|
			(0x80|(r>>6)&0x3F)<<16|
			(0x80|r&0x3F)<<24, 32)
	}
}

// sum mixes any tail bytes and applies the length xor and fmix32.
// It does not modify the state.
func (m *murmur32) sum() uint32 {
	h1, n := m.h1, m.n
	if m.shift > 0 {
		n += uint32(m.shift >> 3)
		h1 ^= murmurScramble(m.k1)
	}
	h1 ^= n
	return fmix32(h1)
}

// murmurScramble is the per-block k1 mix shared by full blocks and the tail.
func murmurScramble(k1 uint32) uint32 {
	k1 *= murmurC1
	k1 = bits.RotateLeft32(k1, blockRotation)
	k1 *= murmurC2
	return k1
}

// murmurBlock folds one full 4-byte block into h1.
func murmurBlock(h1, k1 uint32) uint32 {
	h1 ^= murmurScramble(k1)
	h1 = bits.RotateLeft32(h1, stateRotation)
	return h1*murmurM + murmurN
}

// fmix32 forces all bits of h1 to avalanche.
func fmix32(h1 uint32) uint32 {
	h1 ^= h1 >> fmixShift1
	h1 *= fmixC1
	h1 ^= h1 >> fmixShift2
	h1 *= fmixC2
	h1 ^= h1 >> fmixShift3
	return h1
}
