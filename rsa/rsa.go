// Package rsa implements a deliberately toy-scale RSA cipher: primes come
// from a small demonstration range, all arithmetic is int64, and nothing
// here is secure. It exists to demonstrate the algebra, plus two codecs
// that run character strings and fixed-width Huffman code streams through
// the single-integer operations.
package rsa

import (
	daaencrypt "github.com/iyerpranav/daa-encrypt"
	"github.com/iyerpranav/daa-encrypt/numth"
	"github.com/tuneinsight/lattigo/v4/utils"
)

type RSA interface {
	Encrypt(message int64) int64
	Decrypt(ciphertext int64) int64
	GetPublicKey() daaencrypt.PublicKey
	GetPrivateKey() daaencrypt.PrivateKey
	NewEncryptor() Encryptor
}

type rsa struct {
	keyPair KeyPair
}

// NewRSA generates a fresh keypair through the given random source and
// returns a cipher holding it. A nil prng uses the system entropy pool.
func NewRSA(params Parameter, prng utils.PRNG) (RSA, error) {
	generator, err := NewKeyGenerator(params, prng)
	if err != nil {
		return nil, err
	}
	keyPair, err := generator.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &rsa{keyPair: keyPair}, nil
}

// NewRSAFromKeyPair wraps an explicit keypair, validated or not.
func NewRSAFromKeyPair(keyPair KeyPair) RSA {
	return &rsa{keyPair: keyPair}
}

func (r *rsa) NewEncryptor() Encryptor {
	return &encryptor{rsa: r}
}

// Encrypt computes message^e mod n. The message is expected in [0, n).
func (r *rsa) Encrypt(message int64) int64 {
	return numth.ModPow(message, r.keyPair.e, r.keyPair.n)
}

// Decrypt computes ciphertext^d mod n.
func (r *rsa) Decrypt(ciphertext int64) int64 {
	return numth.ModPow(ciphertext, r.keyPair.d, r.keyPair.n)
}

func (r *rsa) GetPublicKey() daaencrypt.PublicKey {
	return r.keyPair.GetPublicKey()
}

func (r *rsa) GetPrivateKey() daaencrypt.PrivateKey {
	return r.keyPair.GetPrivateKey()
}
