package simfolio

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"strings"
)

// SeedFromString derives a generator seed from the SHA-256 of the
// concatenated parts, so that a phrase can name a reproducible run.
func SeedFromString(parts ...string) uint64 {
	sum := sha256.Sum256([]byte(strings.Join(parts, "")))
	return binary.BigEndian.Uint64(sum[:8])
}

// NewRand returns a generator fully determined by seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newUnseededRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
