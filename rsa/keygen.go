package rsa

import (
	"encoding/binary"
	"fmt"

	daaencrypt "github.com/iyerpranav/daa-encrypt"
	"github.com/iyerpranav/daa-encrypt/numth"
	"github.com/tuneinsight/lattigo/v4/utils"
)

// KeyPair carries the five values of a toy RSA key: the primes p and q, the
// modulus n = p*q, the totient phi = (p-1)(q-1), and the exponent pair
// (e, d). All fields are fixed at construction.
type KeyPair struct {
	p, q int64
	n    int64
	phi  int64
	e, d int64
}

// NewKeyPairFromPrimes derives a keypair from explicit primes and exponent
// without any validation, exactly as the classic textbook construction does.
// If gcd(e, (p-1)(q-1)) != 1 the derived d is not an inverse and the keypair
// silently fails to round-trip; GenerateKeyPair is the checked path.
func NewKeyPairFromPrimes(p, q, e int64) KeyPair {
	n := p * q
	phi := (p - 1) * (q - 1)
	return KeyPair{
		p:   p,
		q:   q,
		n:   n,
		phi: phi,
		e:   e,
		d:   numth.ModInverse(e, phi),
	}
}

// GetPublicKey returns the encryption pair (e, n)
func (kp KeyPair) GetPublicKey() daaencrypt.PublicKey {
	return daaencrypt.PublicKey{E: kp.e, N: kp.n}
}

// GetPrivateKey returns the decryption pair (d, n)
func (kp KeyPair) GetPrivateKey() daaencrypt.PrivateKey {
	return daaencrypt.PrivateKey{D: kp.d, N: kp.n}
}

// IsValid reports whether d actually inverts e modulo phi, i.e. whether the
// raw derivation produced a working keypair.
func (kp KeyPair) IsValid() bool {
	if kp.phi <= 1 {
		return false
	}
	return (kp.e%kp.phi)*(kp.d%kp.phi)%kp.phi == 1%kp.phi
}

type KeyGenerator interface {
	GenerateKeyPair() (KeyPair, error)
}

type keyGenerator struct {
	params Parameter
	prng   utils.PRNG
	mask   uint64
}

// NewKeyGenerator returns a generator drawing primes from the configured
// range through the given random source. A nil prng falls back to a source
// keyed from the system entropy pool.
func NewKeyGenerator(params Parameter, prng utils.PRNG) (KeyGenerator, error) {
	if params.GetPrimeMax() <= params.GetPrimeMin() || params.GetPrimeMin() < 2 {
		return nil, fmt.Errorf("rsa: invalid prime range [%d, %d)",
			params.GetPrimeMin(), params.GetPrimeMax())
	}
	if prng == nil {
		var err error
		if prng, err = newDefaultSource(); err != nil {
			return nil, fmt.Errorf("rsa: init random source: %w", err)
		}
	}

	// count the bits of the sampling span, then widen to an all-ones mask
	// so rejection sampling stays cheap
	span := uint64(params.GetPrimeMax() - params.GetPrimeMin())
	bits := uint64(0)
	for s := span; s > 0; s >>= 1 {
		bits++
	}
	mask := uint64(1)<<bits - 1

	return &keyGenerator{
		params: params,
		prng:   prng,
		mask:   mask,
	}, nil
}

// GenerateKeyPair draws two distinct primes, checks that the public exponent
// is invertible modulo the totient, and derives the private exponent. Prime
// pairs that fail the check are thrown away and re-drawn; after MaxAttempts
// failed rounds it gives up with ErrMaxAttempts.
func (g *keyGenerator) GenerateKeyPair() (KeyPair, error) {
	e := g.params.GetPublicExponent()

	for attempt := 0; attempt < g.params.GetMaxAttempts(); attempt++ {
		p, err := g.samplePrime()
		if err != nil {
			return KeyPair{}, err
		}
		q, err := g.samplePrime()
		if err != nil {
			return KeyPair{}, err
		}
		if p == q {
			// phi(p*p) is not (p-1)^2, the keypair would decrypt wrongly
			continue
		}

		phi := (p - 1) * (q - 1)
		if numth.GCD(e, phi) != 1 {
			continue
		}

		return KeyPair{
			p:   p,
			q:   q,
			n:   p * q,
			phi: phi,
			e:   e,
			d:   numth.ModInverse(e, phi),
		}, nil
	}
	return KeyPair{}, ErrMaxAttempts
}

// samplePrime rejection-samples a uniform integer in the configured range
// until it hits a prime.
func (g *keyGenerator) samplePrime() (int64, error) {
	span := uint64(g.params.GetPrimeMax() - g.params.GetPrimeMin())
	var buf [8]byte
	for {
		if _, err := g.prng.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("rsa: read random source: %w", err)
		}
		v := binary.BigEndian.Uint64(buf[:]) & g.mask
		if v >= span {
			continue
		}
		candidate := g.params.GetPrimeMin() + int64(v)
		if numth.IsPrime(candidate) {
			return candidate, nil
		}
	}
}
