package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/seed"
	"github.com/edge-marketplace/marketplace/internal/infrastructure/snapshot"
)

func newTestStore(t *testing.T) (*SnapshotStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return NewSnapshotStore(client), mr
}

func TestSnapshotStore_LoadMissing(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.Load(context.Background()); !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestSnapshotStore_SaveLoad(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	st := seed.State()
	u := st.Users[2]
	st.CurrentUser = &u
	if err := s.Save(ctx, st); err != nil {
		t.Fatalf("save: %v", err)
	}

	if ttl := mr.TTL(snapshot.Key); ttl != 0 {
		t.Fatalf("snapshot key must not expire, ttl %v", ttl)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CurrentUser == nil || got.CurrentUser.ID != u.ID || len(got.Items) != len(st.Items) {
		t.Fatalf("unexpected state after round trip: %+v", got.CurrentUser)
	}
}

func TestSnapshotStore_LoadIncompatibleVersion(t *testing.T) {
	s, mr := newTestStore(t)

	if err := mr.Set(snapshot.Key, `{"state":{},"version":7}`); err != nil {
		t.Fatalf("seed key: %v", err)
	}
	if _, err := s.Load(context.Background()); !errors.Is(err, snapshot.ErrIncompatibleVersion) {
		t.Fatalf("expected ErrIncompatibleVersion, got %v", err)
	}
}

func TestSnapshotStore_ServerDown(t *testing.T) {
	s, mr := newTestStore(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := s.Ping(ctx); err == nil {
		t.Fatalf("ping should fail with the server gone")
	}
	if err := s.Save(ctx, seed.State()); err == nil {
		t.Fatalf("save should fail with the server gone")
	}
	if _, err := s.Load(ctx); err == nil || errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("load should report a transport error, got %v", err)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond}); err == nil {
		t.Fatalf("expected connect to fail")
	}
}
