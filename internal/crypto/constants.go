package crypto

const (
	// AESIVSize is the size of an AES-GCM initialization vector in bytes.
	// The container format uses 16-byte IVs rather than the 12-byte GCM
	// default.
	AESIVSize = 16

	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// RSAKeyBits is the modulus size of generated RSA key pairs.
	RSAKeyBits = 2048
)
