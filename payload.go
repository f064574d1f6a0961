package padloc

import "encoding/json"

// Payload is the opaque object a container protects. The container never
// inspects the marshaled bytes; it encrypts whatever Serialize produces and
// feeds decrypted bytes back through Deserialize.
//
// StorageKind and StorageKey give the payload a storage-location identity
// that the container forwards transparently while the payload is attached.
type Payload interface {
	Serialize() ([]byte, error)
	Deserialize(data []byte) error
	StorageKind() string
	StorageKey() string
}

// SecretData is a minimal payload: a named bag of string fields. The CLI
// and examples use it; applications typically bring their own Payload.
type SecretData struct {
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

// Serialize implements Payload.
func (s *SecretData) Serialize() ([]byte, error) {
	return json.Marshal(s)
}

// Deserialize implements Payload.
func (s *SecretData) Deserialize(data []byte) error {
	return json.Unmarshal(data, s)
}

// StorageKind implements Payload.
func (s *SecretData) StorageKind() string {
	return "secret"
}

// StorageKey implements Payload.
func (s *SecretData) StorageKey() string {
	return s.Name
}
