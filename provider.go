package padloc

import (
	"context"
)

// SymmetricKey is raw symmetric key material. It is never serialized except
// in wrapped (encrypted) form.
type SymmetricKey []byte

// MarshalJSON implements json.Marshaler.
func (k SymmetricKey) MarshalJSON() ([]byte, error) {
	return Base64Bytes(k).MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *SymmetricKey) UnmarshalJSON(data []byte) error {
	return (*Base64Bytes)(k).UnmarshalJSON(data)
}

// PublicKey is an RSA public key in PKIX, ASN.1 DER form.
type PublicKey []byte

// MarshalJSON implements json.Marshaler.
func (k PublicKey) MarshalJSON() ([]byte, error) {
	return Base64Bytes(k).MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *PublicKey) UnmarshalJSON(data []byte) error {
	return (*Base64Bytes)(k).UnmarshalJSON(data)
}

// PrivateKey is an RSA private key in PKCS #8, ASN.1 DER form. It is held
// only transiently in memory and never serialized by the container.
type PrivateKey []byte

// MarshalJSON implements json.Marshaler.
func (k PrivateKey) MarshalJSON() ([]byte, error) {
	return Base64Bytes(k).MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *PrivateKey) UnmarshalJSON(data []byte) error {
	return (*Base64Bytes)(k).UnmarshalJSON(data)
}

// KeyPair is an asymmetric key pair used for key wrapping.
type KeyPair struct {
	Public  PublicKey  `json:"publicKey"`
	Private PrivateKey `json:"privateKey"`
}

// Participant is an identity enrolled in a shared container. PrivateKey is
// present only for the current actor; EncryptedKey is this participant's
// copy of the container key, wrapped under their public key.
type Participant struct {
	ID           string      `json:"id"`
	PublicKey    PublicKey   `json:"publicKey"`
	PrivateKey   PrivateKey  `json:"privateKey,omitempty"`
	EncryptedKey Base64Bytes `json:"encryptedKey,omitempty"`
}

// CryptoProvider is the capability surface the container depends on. All
// primitive implementations live behind it; the container never touches raw
// cryptographic algorithms itself.
//
// Providers are read-only after construction and safe for concurrent use.
// No timeout semantics are defined here; cancellation policy belongs to the
// provider implementation.
type CryptoProvider interface {
	// Available reports whether the provider's primitives can be used in
	// this process.
	Available() bool

	// RandomBytes returns n cryptographically random bytes.
	RandomBytes(n int) ([]byte, error)

	// RandomKey generates a random symmetric key of the given size in bits.
	RandomKey(ctx context.Context, bits int) (SymmetricKey, error)

	// DeriveKey derives a symmetric key from a password using the given
	// parameters. The parameters must carry a salt.
	DeriveKey(ctx context.Context, password string, params *PBKDF2Params) (SymmetricKey, error)

	// Encrypt encrypts plaintext under key. For AESEncryptionParams the key
	// is raw symmetric key material; for RSAEncryptionParams it is a public
	// key in PKIX DER form and the plaintext is the key being wrapped.
	Encrypt(ctx context.Context, key, plaintext []byte, params CipherParams) ([]byte, error)

	// Decrypt reverses Encrypt. For RSAEncryptionParams the key is a private
	// key in PKCS #8 DER form. Fails with ErrDecryptionFailed on
	// authentication tag mismatch.
	Decrypt(ctx context.Context, key, ciphertext []byte, params CipherParams) ([]byte, error)

	// GenerateKeyPair generates a fresh asymmetric key pair for wrapping.
	GenerateKeyPair(ctx context.Context) (*KeyPair, error)
}
