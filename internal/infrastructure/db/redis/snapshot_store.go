package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/infrastructure/snapshot"
)

// SnapshotStore keeps the encoded state under a single string key without expiry.
type SnapshotStore struct {
	client *redis.Client
	key    string
}

// NewSnapshotStore wraps client; the blob lives under snapshot.Key.
func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client, key: snapshot.Key}
}

func (s *SnapshotStore) Load(ctx context.Context) (*domain.State, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("redis get snapshot: %w", err)
	}
	return snapshot.Decode(b)
}

func (s *SnapshotStore) Save(ctx context.Context, st domain.State) error {
	b, err := snapshot.Encode(st)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("redis set snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
