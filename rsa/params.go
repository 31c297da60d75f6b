package rsa

// Parameter for the RSA cipher. Primes are drawn from [PrimeMin, PrimeMax),
// so the modulus stays toy-scale and all arithmetic fits int64.
type Parameter struct {
	PrimeMin       int64
	PrimeMax       int64
	PublicExponent int64
	MaxAttempts    int
}

// DefaultParameter mirrors the classic demonstration setup: three-digit
// primes and the conventional public exponent.
var DefaultParameter = Parameter{
	PrimeMin:       100,
	PrimeMax:       1000,
	PublicExponent: 65537,
	MaxAttempts:    100,
}

// GetPrimeMin returns the inclusive lower bound of the prime range
func (params Parameter) GetPrimeMin() int64 {
	return params.PrimeMin
}

// GetPrimeMax returns the exclusive upper bound of the prime range
func (params Parameter) GetPrimeMax() int64 {
	return params.PrimeMax
}

// GetPublicExponent returns the fixed public exponent e
func (params Parameter) GetPublicExponent() int64 {
	return params.PublicExponent
}

// GetMaxAttempts returns the bound on key-generation retries
func (params Parameter) GetMaxAttempts() int {
	return params.MaxAttempts
}
