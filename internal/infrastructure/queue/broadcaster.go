package queue

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edge-marketplace/marketplace/internal/core/ports"
)

const (
	inboundBuffer = 256
	clientBuffer  = 32
)

// Broadcaster fans store changes out to registered clients. Each client owns
// a buffered channel; a client that falls behind misses changes instead of
// stalling the store.
type Broadcaster struct {
	in  chan ports.Change
	log zerolog.Logger

	mu      sync.Mutex
	clients map[string]chan ports.Change
	closed  bool
}

func NewBroadcaster(log zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		in:      make(chan ports.Change, inboundBuffer),
		log:     log,
		clients: make(map[string]chan ports.Change),
	}
}

// Start launches the fan-out loop. All client channels are closed when ctx is cancelled.
func (b *Broadcaster) Start(ctx context.Context) {
	go b.run(ctx)
}

// Enqueue hands a change to the fan-out loop without blocking. It has the
// signature of a store subscriber.
func (b *Broadcaster) Enqueue(change ports.Change) {
	select {
	case b.in <- change:
	default:
		b.log.Warn().Str("op", change.Op).Msg("change feed saturated, dropping change")
	}
}

// Register adds a client and returns its id and receive channel.
func (b *Broadcaster) Register() (string, <-chan ports.Change) {
	id := uuid.NewString()
	ch := make(chan ports.Change, clientBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return id, ch
	}
	b.clients[id] = ch
	return id, ch
}

// Unregister removes a client and closes its channel.
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.clients[id]; ok {
		delete(b.clients, id)
		close(ch)
	}
}

// Clients returns the number of registered clients.
func (b *Broadcaster) Clients() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

func (b *Broadcaster) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			b.shutdown()
			return
		case change := <-b.in:
			b.fanOut(change)
		}
	}
}

func (b *Broadcaster) fanOut(change ports.Change) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.clients {
		select {
		case ch <- change:
		default:
			b.log.Warn().Str("client_id", id).Str("op", change.Op).Msg("client lagging, change dropped")
		}
	}
}

func (b *Broadcaster) shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for id, ch := range b.clients {
		delete(b.clients, id)
		close(ch)
	}
}
