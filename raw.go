package padloc

import (
	"encoding/json"
	"fmt"
)

// ContainerVersion is the wire format version this package reads and
// writes. Future versions must add a new validator branch rather than
// mutate this one, so old containers stay readable.
const ContainerVersion = 2

// RawContainer is the versioned, scheme-tagged wire form of a Container.
// It is the only persisted representation and is untrusted until Validate
// passes.
type RawContainer struct {
	Version int    `json:"version"`
	Scheme  Scheme `json:"scheme"`
	ID      string `json:"id"`

	// EncryptionParams are the symmetric cipher parameters for CipherText.
	EncryptionParams *AESEncryptionParams `json:"ep"`
	// CipherText is the encrypted payload.
	CipherText Base64Bytes `json:"ct"`

	// KeyParams carries the key derivation parameters of PBES2 containers.
	KeyParams *PBKDF2Params `json:"kp,omitempty"`
	// WrappingParams carries the key wrapping parameters of shared
	// containers.
	WrappingParams *RSAEncryptionParams `json:"wp,omitempty"`
	// EncryptedKeys maps participant ids to their wrapped copy of the
	// container key.
	EncryptedKeys map[string]Base64Bytes `json:"ek,omitempty"`
}

// Validate checks a raw record before any of its fields are trusted. This
// is the sole boundary between untrusted storage bytes and the rest of the
// package; no other component re-validates.
func (r *RawContainer) Validate() error {
	if r.Version != ContainerVersion {
		return &ContainerDataError{Field: "version", Reason: fmt.Sprintf("got %d, want %d", r.Version, ContainerVersion)}
	}
	if r.EncryptionParams == nil {
		return &ContainerDataError{Field: "ep", Reason: "required"}
	}
	if len(r.CipherText) == 0 {
		return &ContainerDataError{Field: "ct", Reason: "required"}
	}
	if err := r.EncryptionParams.Validate(); err != nil {
		return err
	}

	switch r.Scheme {
	case SchemeSimple:
	case SchemePBES2:
		if r.KeyParams == nil {
			return &ContainerDataError{Field: "kp", Reason: "required for scheme " + string(SchemePBES2)}
		}
		if err := r.KeyParams.Validate(); err != nil {
			return err
		}
	case SchemeShared:
		if r.WrappingParams == nil {
			return &ContainerDataError{Field: "wp", Reason: "required for scheme " + string(SchemeShared)}
		}
		if err := r.WrappingParams.Validate(); err != nil {
			return err
		}
	default:
		return &ContainerDataError{Field: "scheme", Reason: fmt.Sprintf("unknown scheme %q", r.Scheme)}
	}
	return nil
}

// Serialize emits the container's wire record: the always-present base
// fields plus the fields the active scheme requires.
func (c *Container) Serialize() *RawContainer {
	raw := &RawContainer{
		Version:          ContainerVersion,
		Scheme:           c.Scheme(),
		ID:               c.ID,
		EncryptionParams: c.encryption,
		CipherText:       c.cipherText,
	}

	switch a := c.access.(type) {
	case *simpleAccess:
	case *passwordAccess:
		raw.KeyParams = a.params
	case *sharedAccess:
		raw.WrappingParams = a.wrapping
		raw.EncryptedKeys = make(map[string]Base64Bytes, len(a.encryptedKeys))
		for id, wrapped := range a.encryptedKeys {
			raw.EncryptedKeys[id] = wrapped
		}
	}
	return raw
}

// Deserialize validates raw and then fully replaces the container's scheme,
// parameters and ciphertext. It does not merge with prior state; any
// password, user or cached key is discarded.
func (c *Container) Deserialize(raw *RawContainer) error {
	if err := raw.Validate(); err != nil {
		return err
	}

	c.ID = raw.ID
	c.encryption = raw.EncryptionParams
	c.cipherText = raw.CipherText
	c.payload = nil

	switch raw.Scheme {
	case SchemeSimple:
		c.access = &simpleAccess{}
	case SchemePBES2:
		c.access = &passwordAccess{params: raw.KeyParams}
	case SchemeShared:
		encryptedKeys := raw.EncryptedKeys
		if encryptedKeys == nil {
			encryptedKeys = map[string]Base64Bytes{}
		}
		c.access = &sharedAccess{
			wrapping:      raw.WrappingParams,
			encryptedKeys: encryptedKeys,
			adopted:       true,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler via the wire record.
func (c *Container) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Serialize())
}

// UnmarshalJSON implements json.Unmarshaler. The incoming record is
// validated before any field is adopted.
func (c *Container) UnmarshalJSON(data []byte) error {
	var raw RawContainer
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ContainerDataError{Field: "json", Reason: err.Error()}
	}
	return c.Deserialize(&raw)
}

// ParseContainer decodes and validates a serialized container, binding it
// to the given provider.
func ParseContainer(data []byte, provider CryptoProvider) (*Container, error) {
	c := &Container{provider: provider}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
