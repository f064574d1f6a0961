package padloc

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/JonasKruckenberg/padloc/internal/crypto"
)

// StdProvider implements CryptoProvider on the Go standard library:
// AES-GCM for symmetric encryption, RSA-OAEP (SHA-256, 2048-bit keys) for
// key wrapping and PBKDF2 for key derivation.
//
// The wire format permits parameters this provider does not implement:
// AES-CCM and authentication tags shorter than 128 bits are reported as
// ErrNotSupported. Containers written with this provider's defaults always
// round-trip.
type StdProvider struct{}

// NewStdProvider returns a provider backed by the standard library.
func NewStdProvider() *StdProvider {
	return &StdProvider{}
}

// Available implements CryptoProvider.
func (p *StdProvider) Available() bool {
	return true
}

// RandomBytes implements CryptoProvider.
func (p *StdProvider) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// RandomKey implements CryptoProvider.
func (p *StdProvider) RandomKey(ctx context.Context, bits int) (SymmetricKey, error) {
	switch bits {
	case 128, 192, 256:
	default:
		return nil, fmt.Errorf("%w: key size %d", ErrNotSupported, bits)
	}

	b, err := p.RandomBytes(bits / 8)
	if err != nil {
		return nil, err
	}
	return SymmetricKey(b), nil
}

// DeriveKey implements CryptoProvider.
func (p *StdProvider) DeriveKey(ctx context.Context, password string, params *PBKDF2Params) (SymmetricKey, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	h, err := prfHash(params.Hash)
	if err != nil {
		return nil, err
	}

	key := crypto.DerivePBKDF2([]byte(password), params.Salt, params.Iterations, params.KeySize/8, h)
	return SymmetricKey(key), nil
}

// Encrypt implements CryptoProvider.
func (p *StdProvider) Encrypt(ctx context.Context, key, plaintext []byte, params CipherParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	switch cp := params.(type) {
	case *AESEncryptionParams:
		if err := p.checkAESSupport(cp); err != nil {
			return nil, err
		}
		ct, err := crypto.EncryptAESGCM(key, cp.IV, cp.AdditionalData, plaintext)
		if err != nil {
			return nil, &CryptoError{Op: "encrypt", Err: err}
		}
		return ct, nil
	case *RSAEncryptionParams:
		wrapped, err := crypto.WrapRSAOAEP(key, plaintext)
		if err != nil {
			return nil, &CryptoError{Op: "encrypt", Err: err}
		}
		return wrapped, nil
	}
	return nil, fmt.Errorf("%w: cipher params %T", ErrNotSupported, params)
}

// Decrypt implements CryptoProvider.
func (p *StdProvider) Decrypt(ctx context.Context, key, ciphertext []byte, params CipherParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	switch cp := params.(type) {
	case *AESEncryptionParams:
		if err := p.checkAESSupport(cp); err != nil {
			return nil, err
		}
		plaintext, err := crypto.DecryptAESGCM(key, cp.IV, cp.AdditionalData, ciphertext)
		if err != nil {
			return nil, &CryptoError{Op: "decrypt", Err: err}
		}
		return plaintext, nil
	case *RSAEncryptionParams:
		unwrapped, err := crypto.UnwrapRSAOAEP(key, ciphertext)
		if err != nil {
			return nil, &CryptoError{Op: "decrypt", Err: err}
		}
		return unwrapped, nil
	}
	return nil, fmt.Errorf("%w: cipher params %T", ErrNotSupported, params)
}

// GenerateKeyPair implements CryptoProvider.
func (p *StdProvider) GenerateKeyPair(ctx context.Context) (*KeyPair, error) {
	pub, priv, err := crypto.GenerateRSAKeyPair(crypto.RSAKeyBits)
	if err != nil {
		return nil, &CryptoError{Op: "generate key pair", Err: err}
	}
	return &KeyPair{Public: pub, Private: priv}, nil
}

// checkAESSupport rejects wire-legal parameter combinations the standard
// library cannot implement. stdlib cipher has no CCM mode and cannot
// combine a 16-byte nonce with a truncated tag.
func (p *StdProvider) checkAESSupport(params *AESEncryptionParams) error {
	if params.Algorithm != AlgAESGCM {
		return fmt.Errorf("%w: algorithm %s", ErrNotSupported, params.Algorithm)
	}
	if params.TagSize != 128 {
		return fmt.Errorf("%w: tag size %d", ErrNotSupported, params.TagSize)
	}
	return nil
}

func prfHash(name string) (func() hash.Hash, error) {
	switch name {
	case HashSHA256:
		return sha256.New, nil
	case HashSHA512:
		return sha512.New, nil
	}
	return nil, fmt.Errorf("%w: hash %s", ErrNotSupported, name)
}
