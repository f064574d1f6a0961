package padloc

import (
	"errors"
	"strings"
	"testing"
)

func TestParamsError_Is(t *testing.T) {
	cipherErr := &ParamsError{Kind: paramsKindCipher, Field: "algorithm", Reason: "unknown"}
	if !errors.Is(cipherErr, ErrInvalidCipherParams) {
		t.Error("cipher ParamsError does not match ErrInvalidCipherParams")
	}
	if errors.Is(cipherErr, ErrInvalidKeyParams) {
		t.Error("cipher ParamsError matches ErrInvalidKeyParams")
	}

	keyErr := &ParamsError{Kind: paramsKindKey, Field: "iterations", Reason: "out of range"}
	if !errors.Is(keyErr, ErrInvalidKeyParams) {
		t.Error("key ParamsError does not match ErrInvalidKeyParams")
	}
	if errors.Is(keyErr, ErrInvalidCipherParams) {
		t.Error("key ParamsError matches ErrInvalidCipherParams")
	}
}

func TestParamsError_Message(t *testing.T) {
	err := &ParamsError{Kind: paramsKindCipher, Field: "tagSize", Reason: "must be 64, 96 or 128"}
	for _, want := range []string{"cipher", "tagSize", "must be 64, 96 or 128"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Error() = %q, want it to contain %q", err.Error(), want)
		}
	}
}

func TestContainerDataError_Is(t *testing.T) {
	fieldErr := &ContainerDataError{Field: "ep", Reason: "required"}
	if !errors.Is(fieldErr, ErrInvalidContainerData) {
		t.Error("ContainerDataError does not match ErrInvalidContainerData")
	}
	if errors.Is(fieldErr, ErrUnsupportedContainerVersion) {
		t.Error("non-version ContainerDataError matches ErrUnsupportedContainerVersion")
	}

	versionErr := &ContainerDataError{Field: "version", Reason: "got 3, want 2"}
	if !errors.Is(versionErr, ErrInvalidContainerData) {
		t.Error("version error does not match ErrInvalidContainerData")
	}
	if !errors.Is(versionErr, ErrUnsupportedContainerVersion) {
		t.Error("version error does not match ErrUnsupportedContainerVersion")
	}
}

func TestCryptoError_Is(t *testing.T) {
	inner := errors.New("cipher: message authentication failed")

	decryptErr := &CryptoError{Op: "decrypt", Err: inner}
	if !errors.Is(decryptErr, ErrDecryptionFailed) {
		t.Error("decrypt CryptoError does not match ErrDecryptionFailed")
	}
	if errors.Is(decryptErr, ErrEncryptionFailed) {
		t.Error("decrypt CryptoError matches ErrEncryptionFailed")
	}
	if !errors.Is(decryptErr, inner) {
		t.Error("CryptoError does not unwrap to its cause")
	}

	encryptErr := &CryptoError{Op: "encrypt", Err: inner}
	if !errors.Is(encryptErr, ErrEncryptionFailed) {
		t.Error("encrypt CryptoError does not match ErrEncryptionFailed")
	}
}

func TestContainerError_Marker(t *testing.T) {
	// All structured errors implement the marker interface.
	for _, err := range []error{
		&ParamsError{Kind: paramsKindCipher},
		&ContainerDataError{Field: "ct"},
		&CryptoError{Op: "decrypt"},
	} {
		if _, ok := err.(ContainerError); !ok {
			t.Errorf("%T does not implement ContainerError", err)
		}
	}
}
