package padloc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Storable is anything with a storage-location identity. Container
// implements it, forwarding to its payload when one is attached.
type Storable interface {
	StorageKind() string
	StorageKey() string
}

// Storage is the generic key-value persistence boundary. Implementations
// marshal the storable as JSON; Container's wire format guarantees only the
// versioned raw record is persisted.
type Storage interface {
	Save(ctx context.Context, s Storable) error
	Load(ctx context.Context, s Storable) error
	Delete(ctx context.Context, s Storable) error
}

// MemoryStorage is an in-memory Storage, mainly for tests and examples.
// It is safe for concurrent use.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func storageID(s Storable) string {
	return s.StorageKind() + "_" + s.StorageKey()
}

// Save implements Storage.
func (m *MemoryStorage) Save(ctx context.Context, s Storable) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[storageID(s)] = data
	return nil
}

// Load implements Storage. The storable's identity selects the record and
// the stored bytes are unmarshaled into it.
func (m *MemoryStorage) Load(ctx context.Context, s Storable) error {
	m.mu.RLock()
	data, ok := m.data[storageID(s)]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, storageID(s))
	}
	return json.Unmarshal(data, s)
}

// Delete implements Storage.
func (m *MemoryStorage) Delete(ctx context.Context, s Storable) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := storageID(s)
	if _, ok := m.data[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.data, id)
	return nil
}
