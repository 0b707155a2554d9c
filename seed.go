package seedhash

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
)

// seedState holds the process-wide hash seed. It is drawn once from a
// cryptographically strong source on first use and never changes afterwards.
type seedState struct {
	once  sync.Once
	value int32
}

var processSeed seedState

// get returns the seed, initializing it on the first call.
// Concurrent first callers block until the single initialization finishes.
func (s *seedState) get() int32 {
	s.once.Do(func() {
		s.value = readSeed(rand.Reader)
	})
	return s.value
}

// readSeed draws 4 bytes from r. A broken random source leaves the process
// without a usable hash, so it panics like any other unrecoverable init failure.
func readSeed(r io.Reader) int32 {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		panic(fmt.Sprintf("seedhash: read random seed: %v", err))
	}
	return int32(binary.LittleEndian.Uint32(buf[:]))
}

// Seed returns the process-wide seed used by SecureHash and SecureStringHash.
func Seed() int32 {
	return processSeed.get()
}
