package padloc

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Base64Bytes is a byte slice that marshals to URL-safe base64 without
// padding in JSON. All binary fields of the container wire format (IVs,
// salts, ciphertext, wrapped keys) use this representation.
type Base64Bytes []byte

// MarshalJSON implements json.Marshaler.
func (b Base64Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(toBase64URL(b))
}

// UnmarshalJSON implements json.Unmarshaler. Decoding accepts padded and
// unpadded URL-safe base64 so records from older writers remain readable.
func (b *Base64Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*b = nil
		return nil
	}

	decoded, err := decodeBase64(s)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// toBase64URL encodes bytes to URL-safe base64 without padding.
func toBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// decodeBase64 decodes URL-safe base64 with or without padding. The wire
// format only ever uses the URL-safe alphabet; the standard alphabet is
// rejected.
func decodeBase64(s string) ([]byte, error) {
	if strings.HasSuffix(s, "=") {
		return base64.URLEncoding.DecodeString(s)
	}
	return base64.RawURLEncoding.DecodeString(s)
}
