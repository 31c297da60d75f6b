package rsa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	daaencrypt "github.com/iyerpranav/daa-encrypt"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	logger := daaencrypt.NewLogger(daaencrypt.DEBUG)
	for _, tc := range testVector {
		t.Run(testString("RoundTrip", tc.params), func(t *testing.T) {
			cipher, err := NewRSA(tc.params, NewShakeSource(tc.seed))
			require.NoError(t, err)

			n := cipher.GetPublicKey().N
			// sweep the plaintext domain: the low values every codec uses,
			// a stride through the middle, and the top boundary
			for m := int64(0); m < 256 && m < n; m++ {
				require.Equal(t, m, cipher.Decrypt(cipher.Encrypt(m)))
			}
			for m := int64(0); m < n; m += 997 {
				require.Equal(t, m, cipher.Decrypt(cipher.Encrypt(m)))
			}
			require.Equal(t, n-1, cipher.Decrypt(cipher.Encrypt(n-1)))
			logger.PrintMemUsage("EncryptDecryptRoundTrip")
		})
	}
}

func TestEncryptStaysBelowModulus(t *testing.T) {
	cipher, err := NewRSA(DefaultParameter, NewShakeSource(42))
	require.NoError(t, err)

	n := cipher.GetPublicKey().N
	for m := int64(0); m < n; m += 331 {
		require.Less(t, cipher.Encrypt(m), n)
	}
}

func TestEncryptDecryptString(t *testing.T) {
	for _, tc := range testVector {
		cipher, err := NewRSA(tc.params, NewShakeSource(tc.seed))
		require.NoError(t, err)
		encryptor := cipher.NewEncryptor()

		// the smallest modulus in the default range is 101*103, so every
		// character code below covers the round-trip contract
		for _, message := range []string{
			"Hello, World!",
			"",
			"a",
			"spaces and\ttabs survive per-character encryption",
		} {
			encrypted := encryptor.EncryptString(message)
			decrypted, err := encryptor.DecryptString(encrypted)
			require.NoError(t, err)
			require.Equal(t, message, decrypted)
		}
	}
}

func TestEncryptStringFormat(t *testing.T) {
	cipher := NewRSAFromKeyPair(NewKeyPairFromPrimes(codeVector.p, codeVector.q, codeVector.e))
	encryptor := cipher.NewEncryptor()

	// 'a' = 97: 97^19 mod 115, one decimal token with a trailing space
	encrypted := encryptor.EncryptString("a")
	expected := fmt.Sprintf("%d ", cipher.Encrypt(97))
	require.Equal(t, expected, encrypted)

	require.Equal(t, "", encryptor.EncryptString(""))
}

func TestDecryptStringMalformedToken(t *testing.T) {
	cipher, err := NewRSA(DefaultParameter, NewShakeSource(1))
	require.NoError(t, err)
	encryptor := cipher.NewEncryptor()

	_, err = encryptor.DecryptString("123 notanumber 456")
	require.Error(t, err)
}

func TestEncryptDecryptHuffmanCodes(t *testing.T) {
	cipher := NewRSAFromKeyPair(NewKeyPairFromPrimes(codeVector.p, codeVector.q, codeVector.e))
	encryptor := cipher.NewEncryptor()

	encrypted, err := encryptor.EncryptHuffmanCodes(codeVector.codes)
	require.NoError(t, err)
	require.Equal(t, codeVector.encrypted, encrypted)

	decrypted, err := encryptor.DecryptHuffmanCodes(encrypted)
	require.NoError(t, err)
	// the decrypted stream keeps the delimiter convention of the encryptor:
	// space separated with a trailing space
	require.Equal(t, codeVector.codes+" ", decrypted)

	logger := daaencrypt.NewLogger(daaencrypt.DEBUG)
	logger.PrintMessage("Got the same codes back, it is working fine.")
}

func TestHuffmanCodesWidthOverflow(t *testing.T) {
	// under the fixed keypair 1 encrypts to 1, but 3 ("11") encrypts to
	// 3^19 mod 115 = 52, which cannot be rendered in two bits
	cipher := NewRSAFromKeyPair(NewKeyPairFromPrimes(codeVector.p, codeVector.q, codeVector.e))
	encryptor := cipher.NewEncryptor()

	_, err := encryptor.EncryptHuffmanCodes("11")
	require.ErrorIs(t, err, ErrWidthOverflow)
}

func TestHuffmanCodesRejectBadToken(t *testing.T) {
	cipher := NewRSAFromKeyPair(NewKeyPairFromPrimes(codeVector.p, codeVector.q, codeVector.e))
	encryptor := cipher.NewEncryptor()

	_, err := encryptor.EncryptHuffmanCodes("010 120")
	require.Error(t, err)
}

func TestInvalidKeyPairBreaksRoundTrip(t *testing.T) {
	// gcd(3, 24) = 3, so no private exponent exists: the derivation still
	// hands back a keypair and at least one plaintext must round-trip wrong
	keyPair := NewKeyPairFromPrimes(5, 7, 3)
	require.False(t, keyPair.IsValid())

	cipher := NewRSAFromKeyPair(keyPair)
	n := cipher.GetPublicKey().N

	failures := 0
	for m := int64(0); m < n; m++ {
		if cipher.Decrypt(cipher.Encrypt(m)) != m {
			failures++
		}
	}
	require.Greater(t, failures, 0)
}

func TestCipherKeyAccessorsStable(t *testing.T) {
	cipher, err := NewRSA(DefaultParameter, NewShakeSource(7))
	require.NoError(t, err)

	pub := cipher.GetPublicKey()
	priv := cipher.GetPrivateKey()
	for i := 0; i < 3; i++ {
		require.Equal(t, pub, cipher.GetPublicKey())
		require.Equal(t, priv, cipher.GetPrivateKey())
	}
}
