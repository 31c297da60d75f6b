// Package numth holds the number-theory primitives the RSA cipher is built
// on. Everything works over int64; callers keep their moduli small enough
// that mod*mod fits the type.
package numth

// IsPrime reports whether x is prime by trial division up to the square
// root of x, striding over the 6k±1 candidates.
func IsPrime(x int64) bool {
	if x <= 1 {
		return false
	}
	if x <= 3 {
		return true
	}
	if x%2 == 0 || x%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= x; i += 6 {
		if x%i == 0 || x%(i+2) == 0 {
			return false
		}
	}
	return true
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse computes the multiplicative inverse of a modulo m with the
// iterative extended Euclidean algorithm, normalized to [0, m). The caller
// must guarantee gcd(a, m) = 1; otherwise the returned value is not an
// inverse.
func ModInverse(a, m int64) int64 {
	if m == 1 {
		return 0
	}
	m0 := m
	x0, x1 := int64(0), int64(1)

	// the m > 0 guard keeps the loop total for non-coprime inputs, which
	// bottom out at (gcd, 0) instead of (1, 0)
	for a > 1 && m > 0 {
		q := a / m
		a, m = m, a%m
		x0, x1 = x1-q*x0, x0
	}

	if x1 < 0 {
		x1 += m0
	}
	return x1
}

// ModPow computes base^exp mod mod by iterative square-and-multiply. Every
// intermediate stays below mod, so the products never leave int64 as long
// as mod*mod does not. exp is treated as non-negative; mod must be > 0.
func ModPow(base, exp, mod int64) int64 {
	result := int64(1) % mod
	base = base % mod
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % mod
		}
		base = (base * base) % mod
		exp >>= 1
	}
	return result
}
