package daaencrypt

// PublicKey is the encryption half of a keypair, the ordered pair (E, N).
type PublicKey struct {
	E int64
	N int64
}

// PrivateKey is the decryption half of a keypair, the ordered pair (D, N).
type PrivateKey struct {
	D int64
	N int64
}
