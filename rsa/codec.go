package rsa

import "fmt"

// maxTokenBits bounds binary tokens to what int64 can hold.
const maxTokenBits = 63

// BinaryToLong parses a string of '0'/'1' runes as a big-endian binary
// integer. Tokens longer than 63 bits or containing anything but binary
// digits are rejected instead of silently wrapping.
func BinaryToLong(bits string) (int64, error) {
	if len(bits) > maxTokenBits {
		return 0, fmt.Errorf("rsa: binary token %q longer than %d bits: %w",
			bits, maxTokenBits, ErrWidthOverflow)
	}
	var result int64
	for _, bit := range bits {
		if bit != '0' && bit != '1' {
			return 0, fmt.Errorf("rsa: invalid binary token %q", bits)
		}
		result = result<<1 | int64(bit-'0')
	}
	return result, nil
}

// LongToBinary renders value as a big-endian binary string of exactly width
// runes. High bits beyond the width are dropped; callers that care check
// the fit first (see fitsWidth).
func LongToBinary(value int64, width int) string {
	result := make([]byte, width)
	for i := 0; i < width; i++ {
		if value>>(width-1-i)&1 == 1 {
			result[i] = '1'
		} else {
			result[i] = '0'
		}
	}
	return string(result)
}

// fitsWidth reports whether value can be rendered in width bits without
// losing high-order bits.
func fitsWidth(value int64, width int) bool {
	if width >= maxTokenBits {
		return true
	}
	return value < 1<<width
}
