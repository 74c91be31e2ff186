package orders

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry keeps one Store per open workspace session. A session is created
// when the orders screen is entered and discarded when it is closed or has
// been idle longer than the TTL.
type Registry struct {
	source Source
	sink   StatusSink
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	store    *Store
	lastSeen time.Time
}

func NewRegistry(source Source, sink StatusSink, idleTTL time.Duration) *Registry {
	return &Registry{
		source:   source,
		sink:     sink,
		ttl:      idleTTL,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Open registers a new session and performs its first load. If the load fails
// the session still exists with an empty collection and the error is returned
// alongside the id so the caller can surface it.
func (r *Registry) Open(ctx context.Context) (string, *Store, error) {
	store := NewStore(r.source, r.sink)
	loadErr := store.Load(ctx)

	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = &session{store: store, lastSeen: r.now()}
	r.mu.Unlock()

	return id, store, loadErr
}

func (r *Registry) Get(id string) (*Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionExpired, id)
	}
	s.lastSeen = r.now()
	return s.store, nil
}

// Close discards the session. Closing an unknown session is a no-op.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops every session idle for longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every tick until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(r.now()); n > 0 {
				log.Printf("[ORDER SESSIONS] [INFO] expired %d idle sessions", n)
			}
		}
	}
}
