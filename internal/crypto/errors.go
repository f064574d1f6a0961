package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a symmetric key has an invalid size.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when an initialization vector has an
	// invalid size.
	ErrInvalidIVSize = errors.New("invalid iv size")

	// ErrDecryptionFailed is returned when decryption fails, including
	// authentication tag mismatches.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPublicKey is returned when a public key cannot be parsed as
	// an RSA key in PKIX DER form.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when a private key cannot be parsed
	// as an RSA key in PKCS #8 DER form.
	ErrInvalidPrivateKey = errors.New("invalid private key")
)
