package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"io"
)

// randReader is the random source used for key generation and OAEP padding.
// It defaults to nil (which uses crypto/rand) but can be overridden for
// testing.
var randReader io.Reader

func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// GenerateRSAKeyPair generates an RSA key pair for key wrapping and returns
// the public key in PKIX DER form and the private key in PKCS #8 DER form.
func GenerateRSAKeyPair(bits int) (publicKey, privateKey []byte, err error) {
	key, err := rsa.GenerateKey(reader(), bits)
	if err != nil {
		return nil, nil, err
	}

	publicKey, err = x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, err
	}

	privateKey, err = x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, nil, err
	}

	return publicKey, privateKey, nil
}

// WrapRSAOAEP encrypts a symmetric key under an RSA public key using
// OAEP with SHA-256.
func WrapRSAOAEP(publicKey, key []byte) ([]byte, error) {
	parsed, err := x509.ParsePKIXPublicKey(publicKey)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, ErrInvalidPublicKey
	}

	return rsa.EncryptOAEP(sha256.New(), reader(), pub, key, nil)
}

// UnwrapRSAOAEP decrypts a wrapped symmetric key with an RSA private key.
// Failures are reported as ErrDecryptionFailed so callers cannot
// distinguish padding errors from key mismatches.
func UnwrapRSAOAEP(privateKey, wrapped []byte) ([]byte, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrInvalidPrivateKey
	}

	key, err := rsa.DecryptOAEP(sha256.New(), nil, priv, wrapped, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return key, nil
}
