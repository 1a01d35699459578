// Package snapshot encodes the application state into the persisted blob and
// provides the file and in-memory media for it.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
)

// Key names the blob in every medium.
const Key = "edge-marketplace"

// Version is written into every envelope. There is no migration path: a blob
// with another version is rejected and the caller falls back to seed data.
const Version = 0

var ErrIncompatibleVersion = errors.New("incompatible snapshot version")

type envelope struct {
	State   domain.State `json:"state"`
	Version int          `json:"version"`
}

// Encode serialises s into the persisted envelope.
func Encode(s domain.State) ([]byte, error) {
	b, err := json.Marshal(envelope{State: s, Version: Version})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// Decode parses an envelope produced by Encode.
func Decode(b []byte) (*domain.State, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if env.Version != Version {
		return nil, fmt.Errorf("decode snapshot: %w (got %d, want %d)", ErrIncompatibleVersion, env.Version, Version)
	}
	return &env.State, nil
}
