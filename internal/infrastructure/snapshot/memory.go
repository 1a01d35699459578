package snapshot

import (
	"context"
	"sync"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
)

// MemoryStore holds the encoded snapshot in process memory. Nothing survives
// a restart.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (*domain.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return nil, domain.ErrSnapshotNotFound
	}
	return Decode(m.blob)
}

func (m *MemoryStore) Save(_ context.Context, s domain.State) error {
	b, err := Encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.blob = b
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Ping(_ context.Context) error { return nil }
