package rsa

import (
	"fmt"
	"strconv"
	"strings"

	daaencrypt "github.com/iyerpranav/daa-encrypt"
)

type Encryptor interface {
	EncryptString(message string) string
	DecryptString(encrypted string) (string, error)
	EncryptHuffmanCodes(codes string) (string, error)
	DecryptHuffmanCodes(encrypted string) (string, error)
}

type encryptor struct {
	rsa *rsa
}

// EncryptString encrypts each character's code point independently and
// serializes the results as space-delimited decimal tokens, trailing space
// included. Round-trips for any string whose code points are below n.
func (enc encryptor) EncryptString(message string) string {
	logger := daaencrypt.NewLogger(daaencrypt.DEBUG)
	logger.PrintFormatted("Number of Tokens: %d", len([]rune(message)))

	var result strings.Builder
	for _, c := range message {
		encrypted := enc.rsa.Encrypt(int64(c))
		result.WriteString(strconv.FormatInt(encrypted, 10))
		result.WriteByte(' ')
	}
	return result.String()
}

// DecryptString tokenizes on whitespace, decrypts each decimal token and
// reassembles the characters in order. A token that does not parse as a
// decimal integer is reported instead of crashing the round-trip.
func (enc encryptor) DecryptString(encrypted string) (string, error) {
	tokens := strings.Fields(encrypted)
	logger := daaencrypt.NewLogger(daaencrypt.DEBUG)
	logger.PrintTokenLen(tokens)

	var result strings.Builder
	for _, token := range tokens {
		num, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return "", fmt.Errorf("rsa: malformed cipher token %q: %w", token, err)
		}
		result.WriteRune(rune(enc.rsa.Decrypt(num)))
	}
	return result.String(), nil
}

// EncryptHuffmanCodes encrypts a stream of whitespace-delimited binary
// tokens. Every ciphertext is rendered at the same bit width as its input
// token, the property downstream Huffman decoding relies on; a ciphertext
// that needs more bits than that is an ErrWidthOverflow instead of a silent
// truncation.
func (enc encryptor) EncryptHuffmanCodes(codes string) (string, error) {
	return enc.mapCodes(codes, enc.rsa.Encrypt)
}

// DecryptHuffmanCodes inverts EncryptHuffmanCodes token by token, keeping
// the same width-preservation contract.
func (enc encryptor) DecryptHuffmanCodes(encrypted string) (string, error) {
	return enc.mapCodes(encrypted, enc.rsa.Decrypt)
}

// mapCodes runs every binary token through op and re-renders the result at
// the token's own width.
func (enc encryptor) mapCodes(codes string, op func(int64) int64) (string, error) {
	tokens := strings.Fields(codes)
	logger := daaencrypt.NewLogger(daaencrypt.DEBUG)
	logger.PrintSummarizedTokens("codes", tokens)

	var result strings.Builder
	for _, token := range tokens {
		value, err := BinaryToLong(token)
		if err != nil {
			return "", err
		}
		mapped := op(value)
		if !fitsWidth(mapped, len(token)) {
			return "", fmt.Errorf("rsa: token %q maps to %d: %w",
				token, mapped, ErrWidthOverflow)
		}
		result.WriteString(LongToBinary(mapped, len(token)))
		result.WriteByte(' ')
	}
	return result.String(), nil
}
