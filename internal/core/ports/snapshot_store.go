package ports

import (
	"context"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
)

// SnapshotStore persists the whole application state as one blob.
type SnapshotStore interface {
	// Load returns the last saved state, or domain.ErrSnapshotNotFound when
	// nothing has been saved yet.
	Load(ctx context.Context) (*domain.State, error)
	// Save replaces the stored snapshot with s.
	Save(ctx context.Context, s domain.State) error
	// Ping reports whether the medium is reachable.
	Ping(ctx context.Context) error
}
