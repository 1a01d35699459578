package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/edge-marketplace/marketplace/internal/core/ports"
)

func receive(t *testing.T, ch <-chan ports.Change) ports.Change {
	t.Helper()
	select {
	case c, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed")
		}
		return c
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for change")
	}
	return ports.Change{}
}

func TestBroadcaster_FansOutToAllClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewBroadcaster(zerolog.Nop())
	b.Start(ctx)

	_, a := b.Register()
	_, c := b.Register()
	if b.Clients() != 2 {
		t.Fatalf("expected 2 clients, got %d", b.Clients())
	}

	b.Enqueue(ports.Change{Op: "add_item"})

	if got := receive(t, a); got.Op != "add_item" {
		t.Fatalf("client a got %q", got.Op)
	}
	if got := receive(t, c); got.Op != "add_item" {
		t.Fatalf("client c got %q", got.Op)
	}
}

func TestBroadcaster_Unregister(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())

	id, ch := b.Register()
	b.Unregister(id)
	b.Unregister(id)

	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel")
	}
	if b.Clients() != 0 {
		t.Fatalf("expected no clients")
	}
}

func TestBroadcaster_ShutdownClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := NewBroadcaster(zerolog.Nop())
	b.Start(ctx)

	_, ch := b.Register()
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected channel closed on shutdown")
		}
	case <-time.After(time.Second):
		t.Fatalf("channel not closed after shutdown")
	}

	_, late := b.Register()
	if _, ok := <-late; ok {
		t.Fatalf("registration after shutdown must yield a closed channel")
	}
}

func TestBroadcaster_SlowClientDoesNotBlock(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())
	_, ch := b.Register()

	for i := 0; i < clientBuffer+10; i++ {
		b.fanOut(ports.Change{Op: "send_message"})
	}

	if len(ch) != clientBuffer {
		t.Fatalf("expected buffer full at %d, got %d", clientBuffer, len(ch))
	}
}
