package padloc

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidContainerData is returned when a serialized container fails
	// validation before any of its fields are trusted.
	ErrInvalidContainerData = errors.New("invalid container data")

	// ErrUnsupportedContainerVersion is returned when a serialized container
	// carries a version this package cannot read.
	ErrUnsupportedContainerVersion = errors.New("unsupported container version")

	// ErrInvalidCipherParams is returned when cipher parameters fail
	// validation against the algorithm allow-list.
	ErrInvalidCipherParams = errors.New("invalid cipher params")

	// ErrInvalidKeyParams is returned when key derivation parameters fail
	// validation.
	ErrInvalidKeyParams = errors.New("invalid key derivation params")

	// ErrDecryptionFailed is returned when decryption fails, including
	// authentication tag mismatches on tampered ciphertext.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptionFailed is returned when an encryption operation fails.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrNotSupported is returned when an operation or algorithm is not
	// supported by the provider in use.
	ErrNotSupported = errors.New("not supported")

	// ErrNoPassword is returned when a key is requested from a
	// password-based container before a password has been set.
	ErrNoPassword = errors.New("no password set")

	// ErrMissingAccess is returned when a shared container cannot derive its
	// key: no user is set, the user has no private key, or no wrapped key
	// exists for them.
	ErrMissingAccess = errors.New("cannot access the container key")

	// ErrNothingToUnprotect is returned when Unprotect is called on a
	// container that holds no ciphertext.
	ErrNothingToUnprotect = errors.New("nothing to unprotect")

	// ErrWrongScheme is returned when an operation is invoked on a container
	// whose scheme does not support it.
	ErrWrongScheme = errors.New("operation not valid for this scheme")

	// ErrInvalidParticipant is returned when a participant is missing the id
	// or public key required for enrollment.
	ErrInvalidParticipant = errors.New("invalid participant")

	// ErrNotFound is returned when a storage lookup finds no record.
	ErrNotFound = errors.New("not found")
)

// ContainerError is implemented by all structured errors of this package.
type ContainerError interface {
	error
	ContainerError() // marker method
}

const (
	paramsKindCipher = "cipher"
	paramsKindKey    = "key derivation"
)

// ParamsError reports a parameter object that failed validation. Kind
// distinguishes cipher params from key derivation params; Field names the
// offending field.
type ParamsError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("invalid %s params: %s: %s", e.Kind, e.Field, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *ParamsError) Is(target error) bool {
	switch e.Kind {
	case paramsKindCipher:
		return target == ErrInvalidCipherParams
	case paramsKindKey:
		return target == ErrInvalidKeyParams
	}
	return false
}

// ContainerError implements the ContainerError interface.
func (e *ParamsError) ContainerError() {}

// ContainerDataError reports a serialized container that failed validation.
// Field names the field that was missing or malformed.
type ContainerDataError struct {
	Field  string
	Reason string
}

func (e *ContainerDataError) Error() string {
	return fmt.Sprintf("invalid container data: %s: %s", e.Field, e.Reason)
}

// Is implements errors.Is for sentinel error matching. A version mismatch
// matches both ErrInvalidContainerData and ErrUnsupportedContainerVersion.
func (e *ContainerDataError) Is(target error) bool {
	if target == ErrInvalidContainerData {
		return true
	}
	return e.Field == "version" && target == ErrUnsupportedContainerVersion
}

// ContainerError implements the ContainerError interface.
func (e *ContainerDataError) ContainerError() {}

// CryptoError reports a failed cryptographic operation. Op is the operation
// that failed ("encrypt", "decrypt", "derive key", "generate key pair").
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *CryptoError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *CryptoError) Is(target error) bool {
	switch e.Op {
	case "decrypt":
		return target == ErrDecryptionFailed
	case "encrypt":
		return target == ErrEncryptionFailed
	}
	return false
}

// ContainerError implements the ContainerError interface.
func (e *CryptoError) ContainerError() {}
