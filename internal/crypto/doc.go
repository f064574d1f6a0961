// Package crypto implements the cryptographic primitives behind the
// standard provider: AES-GCM authenticated encryption, RSA-OAEP key
// wrapping and PBKDF2 key derivation.
//
// This package deals in raw byte slices and reports low-level errors;
// mapping onto the public error taxonomy happens in the root package.
package crypto
