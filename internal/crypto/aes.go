package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// EncryptAESGCM encrypts plaintext using AES-GCM with a 16-byte IV,
// authenticating aad alongside the ciphertext. The returned bytes are
// ciphertext || tag; the IV travels separately in the cipher parameters.
func EncryptAESGCM(key, iv, aad, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, iv)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, iv, plaintext, aad), nil
}

// DecryptAESGCM decrypts data previously produced by EncryptAESGCM. Any
// authentication failure is reported as ErrDecryptionFailed.
func DecryptAESGCM(key, iv, aad, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key, iv)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(key, iv []byte) (cipher.AEAD, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d, want 16, 24 or 32", ErrInvalidKeySize, len(key))
	}

	if len(iv) != AESIVSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), AESIVSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCMWithNonceSize(block, AESIVSize)
}
