package rsa

import (
	"encoding/binary"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// NewShakeSource returns a deterministic random source backed by SHAKE128
// seeded with the given value. Two sources built from the same seed produce
// the same byte stream, which makes key generation reproducible in tests.
func NewShakeSource(seed uint64) utils.PRNG {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seed)

	shake := sha3.NewShake128()
	if _, err := shake.Write(buf); err != nil {
		panic("Failed to init SHAKE128!")
	}
	return shake
}

// newDefaultSource returns a fresh source keyed from the system entropy pool.
func newDefaultSource() (utils.PRNG, error) {
	return utils.NewPRNG()
}
