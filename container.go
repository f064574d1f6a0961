package padloc

import (
	"context"
	"fmt"
	"sort"

	"github.com/JonasKruckenberg/padloc/internal/crypto"
	"github.com/google/uuid"
)

// Scheme identifies a container's key-management scheme.
type Scheme string

const (
	// SchemeSimple containers hold a raw random key in memory.
	SchemeSimple Scheme = "simple"
	// SchemePBES2 containers derive their key from a password with PBKDF2.
	SchemePBES2 Scheme = "PBES2"
	// SchemeShared containers wrap one copy of their key per participant
	// under that participant's public key.
	SchemeShared Scheme = "shared"
)

// access is the scheme sum type: each variant carries exactly the state its
// scheme needs and knows how to produce the container's symmetric key.
type access interface {
	scheme() Scheme
	unlock(ctx context.Context, provider CryptoProvider, keyBits int) (SymmetricKey, error)
	clear()
}

// simpleAccess caches a random key after first use.
type simpleAccess struct {
	key SymmetricKey
}

func (a *simpleAccess) scheme() Scheme { return SchemeSimple }

func (a *simpleAccess) unlock(ctx context.Context, provider CryptoProvider, keyBits int) (SymmetricKey, error) {
	if a.key == nil {
		key, err := provider.RandomKey(ctx, keyBits)
		if err != nil {
			return nil, err
		}
		a.key = key
	}
	return a.key, nil
}

func (a *simpleAccess) clear() {
	crypto.Zero(a.key)
	a.key = nil
}

// passwordAccess derives the key fresh on every unlock. The password must
// be supplied by the caller for every operation; nothing is cached.
type passwordAccess struct {
	params   *PBKDF2Params
	password string
}

func (a *passwordAccess) scheme() Scheme { return SchemePBES2 }

func (a *passwordAccess) unlock(ctx context.Context, provider CryptoProvider, keyBits int) (SymmetricKey, error) {
	// The password check comes first so that a missing password never
	// reaches the provider.
	if a.password == "" {
		return nil, ErrNoPassword
	}

	// The salt is generated once and persisted. Regenerating it while
	// ciphertext exists would make that ciphertext permanently
	// undecryptable.
	if len(a.params.Salt) == 0 {
		salt, err := provider.RandomBytes(SaltSize)
		if err != nil {
			return nil, err
		}
		a.params.Salt = salt
	}

	return provider.DeriveKey(ctx, a.password, a.params)
}

func (a *passwordAccess) clear() {
	a.password = ""
}

// sharedAccess holds the per-participant wrapped keys. adopted marks state
// that came off the wire: a deserialized container with no wrapped keys has
// lost its key material and must not silently mint a fresh key.
type sharedAccess struct {
	wrapping      *RSAEncryptionParams
	encryptedKeys map[string]Base64Bytes
	user          *Participant
	// key holds the creation-path key until wrapped copies exist, so that
	// AddParticipant wraps the same key Protect encrypted under.
	key     SymmetricKey
	adopted bool
}

func (a *sharedAccess) scheme() Scheme { return SchemeShared }

func (a *sharedAccess) unlock(ctx context.Context, provider CryptoProvider, keyBits int) (SymmetricKey, error) {
	if len(a.encryptedKeys) == 0 {
		if a.adopted {
			return nil, fmt.Errorf("%w: container has no wrapped keys", ErrMissingAccess)
		}
		// Creation path: mint the key once and hold it until AddParticipant
		// records a wrapped copy. Protect and AddParticipant may then run in
		// either order during creation.
		if a.key == nil {
			key, err := provider.RandomKey(ctx, keyBits)
			if err != nil {
				return nil, err
			}
			a.key = key
		}
		return a.key, nil
	}

	if a.user == nil || len(a.user.PrivateKey) == 0 {
		return nil, fmt.Errorf("%w: no user with a private key", ErrMissingAccess)
	}

	wrapped, ok := a.encryptedKeys[a.user.ID]
	if !ok {
		return nil, fmt.Errorf("%w: no wrapped key for participant %q", ErrMissingAccess, a.user.ID)
	}

	key, err := provider.Decrypt(ctx, a.user.PrivateKey, wrapped, a.wrapping)
	if err != nil {
		return nil, err
	}
	return SymmetricKey(key), nil
}

func (a *sharedAccess) clear() {
	crypto.Zero(a.key)
	a.key = nil
	a.user = nil
	a.encryptedKeys = map[string]Base64Bytes{}
	a.adopted = false
}

// Container protects a single opaque payload under its scheme. It owns its
// parameters and ciphertext exclusively.
//
// Container state transitions are not internally synchronized: Protect,
// Unprotect, AddParticipant and Clear must not be invoked concurrently on
// the same instance.
type Container struct {
	// ID identifies this container across serializations.
	ID string

	encryption *AESEncryptionParams
	cipherText Base64Bytes
	access     access
	provider   CryptoProvider
	payload    Payload
}

func newContainer(provider CryptoProvider, a access) *Container {
	return &Container{
		ID:         uuid.NewString(),
		encryption: NewAESEncryptionParams(),
		access:     a,
		provider:   provider,
	}
}

// NewSimpleContainer creates a container that protects its payload under a
// raw random key held in memory.
func NewSimpleContainer(provider CryptoProvider) *Container {
	return newContainer(provider, &simpleAccess{})
}

// NewPasswordContainer creates a PBES2 container that derives its key from
// a password. SetPassword must be called before any operation that needs
// the key.
func NewPasswordContainer(provider CryptoProvider) *Container {
	return newContainer(provider, &passwordAccess{params: NewPBKDF2Params()})
}

// NewSharedContainer creates a shared container with no participants yet.
// The container key is generated on first use and held until AddParticipant
// records a wrapped copy; the creator must enroll their own identity before
// serializing, or the key is lost with the container instance.
func NewSharedContainer(provider CryptoProvider) *Container {
	return newContainer(provider, &sharedAccess{
		wrapping:      NewRSAEncryptionParams(),
		encryptedKeys: map[string]Base64Bytes{},
	})
}

// Scheme returns the container's key-management scheme.
func (c *Container) Scheme() Scheme {
	return c.access.scheme()
}

// SetPassword sets the password a PBES2 container derives its key from.
// Fails with ErrWrongScheme on other schemes.
func (c *Container) SetPassword(password string) error {
	a, ok := c.access.(*passwordAccess)
	if !ok {
		return fmt.Errorf("%w: passwords apply to %s containers", ErrWrongScheme, SchemePBES2)
	}
	a.password = password
	return nil
}

// SetKey hands a simple container its key. The key of a simple container is
// never part of the wire format, so callers who persist the container must
// store the key elsewhere and restore it after deserialization.
// Fails with ErrWrongScheme on other schemes.
func (c *Container) SetKey(key SymmetricKey) error {
	a, ok := c.access.(*simpleAccess)
	if !ok {
		return fmt.Errorf("%w: raw keys apply to %s containers", ErrWrongScheme, SchemeSimple)
	}
	a.key = key
	return nil
}

// Key returns the cached key of a simple container, or nil if none is
// cached or the scheme is not simple.
func (c *Container) Key() SymmetricKey {
	a, ok := c.access.(*simpleAccess)
	if !ok {
		return nil
	}
	return a.key
}

// SetUser sets the current actor on a shared container. The participant's
// private key is required to unwrap their copy of the container key.
// Fails with ErrWrongScheme on other schemes.
func (c *Container) SetUser(user *Participant) error {
	a, ok := c.access.(*sharedAccess)
	if !ok {
		return fmt.Errorf("%w: users apply to %s containers", ErrWrongScheme, SchemeShared)
	}
	a.user = user
	return nil
}

// ParticipantIDs returns the ids of all enrolled participants, sorted.
// It returns nil for non-shared containers.
func (c *Container) ParticipantIDs() []string {
	a, ok := c.access.(*sharedAccess)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(a.encryptedKeys))
	for id := range a.encryptedKeys {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HasCipherText reports whether the container currently holds ciphertext.
func (c *Container) HasCipherText() bool {
	return len(c.cipherText) > 0
}

// getKey acquires the container's symmetric key according to its scheme.
func (c *Container) getKey(ctx context.Context) (SymmetricKey, error) {
	return c.access.unlock(ctx, c.provider, c.encryption.KeySize)
}

// Protect encrypts the payload into the container, overwriting any previous
// ciphertext. A fresh IV and additional data are generated for every call;
// they are never reused across encryption operations.
func (c *Container) Protect(ctx context.Context, payload Payload) error {
	data, err := payload.Serialize()
	if err != nil {
		return err
	}

	iv, err := c.provider.RandomBytes(IVSize)
	if err != nil {
		return err
	}
	ad, err := c.provider.RandomBytes(AdditionalDataSize)
	if err != nil {
		return err
	}
	c.encryption.IV = iv
	c.encryption.AdditionalData = ad

	key, err := c.getKey(ctx)
	if err != nil {
		return err
	}

	cipherText, err := c.provider.Encrypt(ctx, key, data, c.encryption)
	if err != nil {
		return err
	}

	c.cipherText = cipherText
	c.payload = payload
	return nil
}

// Unprotect decrypts the container's ciphertext into the payload. It may be
// called repeatedly while the ciphertext is unchanged. Tampered ciphertext
// fails with ErrDecryptionFailed; it never yields corrupted plaintext.
func (c *Container) Unprotect(ctx context.Context, payload Payload) error {
	if !c.HasCipherText() {
		return ErrNothingToUnprotect
	}

	key, err := c.getKey(ctx)
	if err != nil {
		return err
	}

	data, err := c.provider.Decrypt(ctx, key, c.cipherText, c.encryption)
	if err != nil {
		return err
	}

	if err := payload.Deserialize(data); err != nil {
		return err
	}
	c.payload = payload
	return nil
}

// AddParticipant wraps the container key under the participant's public key
// and records it. Enrolling the same id again overwrites that participant's
// wrapped key; it does not rotate the underlying key for anyone else.
// Valid only on shared containers.
func (c *Container) AddParticipant(ctx context.Context, participant *Participant) error {
	a, ok := c.access.(*sharedAccess)
	if !ok {
		return fmt.Errorf("%w: participants apply to %s containers", ErrWrongScheme, SchemeShared)
	}

	if participant == nil || participant.ID == "" || len(participant.PublicKey) == 0 {
		return fmt.Errorf("%w: id and public key are required", ErrInvalidParticipant)
	}

	key, err := c.getKey(ctx)
	if err != nil {
		return err
	}

	wrapped, err := c.provider.Encrypt(ctx, participant.PublicKey, key, a.wrapping)
	if err != nil {
		return err
	}

	a.encryptedKeys[participant.ID] = wrapped
	participant.EncryptedKey = wrapped
	return nil
}

// Clear wipes all sensitive state: the password, user, cached key,
// ciphertext, payload reference and participant map. It is idempotent and
// leaves the container ready for a fresh Protect.
func (c *Container) Clear() {
	crypto.Zero(c.cipherText)
	c.cipherText = nil
	c.payload = nil
	c.encryption.IV = nil
	c.encryption.AdditionalData = nil
	c.access.clear()
}

// StorageKind implements Storable, forwarding to the attached payload when
// one is present.
func (c *Container) StorageKind() string {
	if c.payload != nil {
		return c.payload.StorageKind()
	}
	return "container"
}

// StorageKey implements Storable, forwarding to the attached payload when
// one is present.
func (c *Container) StorageKey() string {
	if c.payload != nil {
		return c.payload.StorageKey()
	}
	return c.ID
}
