// Package seedhash computes seeded, non-cryptographic 32-bit string hashes
// that resist hash flooding. Text is hashed with MurmurHash3 x86_32 over its
// UTF-8 encoding, keyed by a random seed chosen once per process.
package seedhash

import (
	"unicode/utf8"

	"github.com/unkn0wn-root/seedhash/internal/identity"
)

const (
	surrogateMin   = 0xD800
	surrogateMax   = 0xDFFF
	surrogateLow   = 0x3FF
	surrogateShift = 10
	// (lead-surrogateBias)<<10 folds both the 0xD800 base and the +0x10000 offset.
	surrogateBias = 0xD7C0
)

// SecureHash hashes text with the process seed and defers to the value's
// intrinsic hash for everything else.
//
// Text is string, []uint16 (UTF-16 code units), []rune and []byte (UTF-8).
// Other values use identity.Of: a HashCoder's own HashCode, or a per-type
// hash for builtin kinds.
func SecureHash(v any) int32 {
	switch t := v.(type) {
	case string:
		return SecureHashString(t)
	case []uint16:
		return SecureStringHash(t)
	case []rune:
		return hashRunes(Seed(), t)
	case []byte:
		return hashBytes(Seed(), t)
	default:
		return identity.Of(v)
	}
}

// SecureStringHash hashes a sequence of UTF-16 code units with the process seed.
// The result equals MurmurHash3 x86_32 of the UTF-8 encoding of units.
func SecureStringHash(units []uint16) int32 {
	return SeededStringHash(Seed(), units)
}

// SecureHashString hashes a Go string with the process seed. It matches
// SecureStringHash of the string's UTF-16 encoding, so invalid UTF-8 bytes
// hash as U+FFFD.
func SecureHashString(s string) int32 {
	return SeededHashString(Seed(), s)
}

// SeededStringHash is SecureStringHash with an explicit seed.
//
// A surrogate that is the last unit is encoded as 3 bytes. Any other
// surrogate consumes the following unit as its pair without checking that
// it is a trailing surrogate.
func SeededStringHash(seed int32, units []uint16) int32 {
	m := newMurmur32(uint32(seed))
	for pos := 0; pos < len(units); {
		code := uint32(units[pos])
		pos++
		if code < surrogateMin || code > surrogateMax || pos >= len(units) {
			m.writeRune(code)
			continue
		}
		trail := uint32(units[pos])
		pos++
		m.writeRune(((code - surrogateBias) << surrogateShift) + (trail & surrogateLow))
	}
	return int32(m.sum())
}

// SeededHashString is SecureHashString with an explicit seed.
func SeededHashString(seed int32, s string) int32 {
	m := newMurmur32(uint32(seed))
	for _, r := range s {
		m.writeRune(uint32(r))
	}
	return int32(m.sum())
}

func hashBytes(seed int32, b []byte) int32 {
	m := newMurmur32(uint32(seed))
	for _, r := range string(b) {
		m.writeRune(uint32(r))
	}
	return int32(m.sum())
}

// hashRunes replaces runes that UTF-16 cannot carry (surrogates, out of
// range) with U+FFFD, as utf16.Encode does.
func hashRunes(seed int32, rs []rune) int32 {
	m := newMurmur32(uint32(seed))
	for _, r := range rs {
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		m.writeRune(uint32(r))
	}
	return int32(m.sum())
}
