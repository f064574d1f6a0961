package crypto

import (
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// DerivePBKDF2 derives keyLen bytes of key material from a password using
// PBKDF2 with the given PRF hash. Iteration bounds are enforced by the
// parameter validators in the root package, not here.
func DerivePBKDF2(password, salt []byte, iterations, keyLen int, h func() hash.Hash) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, h)
}
