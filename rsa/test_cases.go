package rsa

// TestContext describes one key-generation scenario driven by a fixed
// SHAKE128 seed, so every run draws the same primes.
type TestContext struct {
	params Parameter
	seed   uint64
}

// Test Vectors
var testVector = []TestContext{
	{
		params: DefaultParameter,
		seed:   1,
	},
	{
		params: DefaultParameter,
		seed:   42,
	},
	{
		params: DefaultParameter,
		seed:   123456789,
	},
	{
		params: Parameter{
			PrimeMin:       100,
			PrimeMax:       1000,
			PublicExponent: 17,
			MaxAttempts:    100,
		},
		seed: 7,
	},
}

// codeVector pins a keypair whose ciphertexts are known to fit every token
// width, so the width-preserving round-trip is exercised end to end.
// With p=5, q=23, e=19: n=115, phi=88, d=51, and
// 2 -> 3, 13 -> 2, 0 -> 0 under encryption.
var codeVector = struct {
	p, q, e   int64
	d, n      int64
	codes     string
	encrypted string
}{
	p:         5,
	q:         23,
	e:         19,
	d:         51,
	n:         115,
	codes:     "010 1101 00",
	encrypted: "011 0010 00 ",
}
