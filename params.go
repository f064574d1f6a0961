package padloc

// Supported algorithm identifiers. These are the only values the validators
// accept; anything else on the wire is rejected before use.
const (
	AlgAESGCM  = "AES-GCM"
	AlgAESCCM  = "AES-CCM"
	AlgRSAOAEP = "RSA-OAEP"
	AlgPBKDF2  = "PBKDF2"

	HashSHA256 = "SHA-256"
	HashSHA512 = "SHA-512"
)

const (
	// MinIterations is the lowest PBKDF2 iteration count accepted on the
	// wire. Lower counts do not meaningfully slow brute-force attacks.
	MinIterations = 10_000

	// MaxIterations is the highest PBKDF2 iteration count accepted on the
	// wire. Higher counts are treated as degenerate configurations.
	MaxIterations = 10_000_000

	// SaltSize is the size in bytes of a PBKDF2 salt. Generated once per
	// container and persisted; it must never change while ciphertext exists.
	SaltSize = 16

	// IVSize is the size in bytes of the initialization vector generated
	// fresh for every encryption operation.
	IVSize = 16

	// AdditionalDataSize is the size in bytes of the authenticated
	// additional data generated fresh for every encryption operation.
	AdditionalDataSize = 16
)

// CipherParams is the tagged union of cipher parameter sets: either
// AESEncryptionParams for symmetric operations or RSAEncryptionParams for
// key wrapping. No parameter object is trusted until Validate passes.
type CipherParams interface {
	// Validate checks the parameters against the allow-list of algorithms,
	// sizes and required fields.
	Validate() error

	cipherParams()
}

// AESEncryptionParams parameterizes authenticated symmetric encryption.
// IV and AdditionalData are regenerated for every Protect call and must
// never be reused across encryption operations.
type AESEncryptionParams struct {
	// Algorithm is AES-GCM or AES-CCM.
	Algorithm string `json:"algorithm"`
	// KeySize is the symmetric key size in bits: 128, 192 or 256.
	KeySize int `json:"keySize"`
	// TagSize is the authentication tag size in bits: 64, 96 or 128.
	TagSize int `json:"tagSize"`
	// IV is the initialization vector for the current ciphertext.
	IV Base64Bytes `json:"iv,omitempty"`
	// AdditionalData is authenticated but unencrypted data bound to the
	// current ciphertext.
	AdditionalData Base64Bytes `json:"additionalData,omitempty"`
}

// NewAESEncryptionParams returns safe defaults: AES-256-GCM with a full
// 128-bit tag. IV and AdditionalData are filled in by Protect.
func NewAESEncryptionParams() *AESEncryptionParams {
	return &AESEncryptionParams{
		Algorithm: AlgAESGCM,
		KeySize:   256,
		TagSize:   128,
	}
}

// Validate implements CipherParams.
func (p *AESEncryptionParams) Validate() error {
	if p.Algorithm != AlgAESGCM && p.Algorithm != AlgAESCCM {
		return &ParamsError{Kind: paramsKindCipher, Field: "algorithm", Reason: "must be " + AlgAESGCM + " or " + AlgAESCCM}
	}
	switch p.KeySize {
	case 128, 192, 256:
	default:
		return &ParamsError{Kind: paramsKindCipher, Field: "keySize", Reason: "must be 128, 192 or 256"}
	}
	switch p.TagSize {
	case 64, 96, 128:
	default:
		return &ParamsError{Kind: paramsKindCipher, Field: "tagSize", Reason: "must be 64, 96 or 128"}
	}
	if len(p.IV) == 0 {
		return &ParamsError{Kind: paramsKindCipher, Field: "iv", Reason: "required"}
	}
	if len(p.AdditionalData) == 0 {
		return &ParamsError{Kind: paramsKindCipher, Field: "additionalData", Reason: "required"}
	}
	return nil
}

func (p *AESEncryptionParams) cipherParams() {}

// RSAEncryptionParams parameterizes asymmetric key wrapping.
type RSAEncryptionParams struct {
	// Algorithm is always RSA-OAEP.
	Algorithm string `json:"algorithm"`
}

// NewRSAEncryptionParams returns the default wrapping parameters.
func NewRSAEncryptionParams() *RSAEncryptionParams {
	return &RSAEncryptionParams{Algorithm: AlgRSAOAEP}
}

// Validate implements CipherParams.
func (p *RSAEncryptionParams) Validate() error {
	if p.Algorithm != AlgRSAOAEP {
		return &ParamsError{Kind: paramsKindCipher, Field: "algorithm", Reason: "must be " + AlgRSAOAEP}
	}
	return nil
}

func (p *RSAEncryptionParams) cipherParams() {}

// PBKDF2Params parameterizes password-based key derivation.
type PBKDF2Params struct {
	// Algorithm is always PBKDF2.
	Algorithm string `json:"algorithm"`
	// Hash is the PRF hash: SHA-256 or SHA-512.
	Hash string `json:"hash"`
	// KeySize is the derived key size in bits.
	KeySize int `json:"keySize"`
	// Iterations is the PBKDF2 iteration count, bounded to
	// [MinIterations, MaxIterations] inclusive.
	Iterations int `json:"iterations"`
	// Salt is generated once per container and persisted thereafter.
	Salt Base64Bytes `json:"salt,omitempty"`
}

// NewPBKDF2Params returns safe defaults: PBKDF2-HMAC-SHA-256 deriving a
// 256-bit key with 1,000,000 iterations. The salt is generated on first use.
func NewPBKDF2Params() *PBKDF2Params {
	return &PBKDF2Params{
		Algorithm:  AlgPBKDF2,
		Hash:       HashSHA256,
		KeySize:    256,
		Iterations: 1_000_000,
	}
}

// Validate checks the parameters against the allow-lists and iteration
// bounds.
func (p *PBKDF2Params) Validate() error {
	if p.Algorithm != AlgPBKDF2 {
		return &ParamsError{Kind: paramsKindKey, Field: "algorithm", Reason: "must be " + AlgPBKDF2}
	}
	if p.Hash != HashSHA256 && p.Hash != HashSHA512 {
		return &ParamsError{Kind: paramsKindKey, Field: "hash", Reason: "must be " + HashSHA256 + " or " + HashSHA512}
	}
	switch p.KeySize {
	case 128, 192, 256:
	default:
		return &ParamsError{Kind: paramsKindKey, Field: "keySize", Reason: "must be 128, 192 or 256"}
	}
	if p.Iterations < MinIterations || p.Iterations > MaxIterations {
		return &ParamsError{Kind: paramsKindKey, Field: "iterations", Reason: "out of range"}
	}
	if len(p.Salt) == 0 {
		return &ParamsError{Kind: paramsKindKey, Field: "salt", Reason: "required"}
	}
	return nil
}
