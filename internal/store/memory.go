// internal/store/memory.go
//
// In-memory store of live hangman sessions.
// Used by the HTTP server, where many requests may touch the same session.
//
// Characteristics:
//   - Sessions keyed by Session.ID in a map guarded by an RWMutex.
//   - Every mutation runs through Update, which holds a per-session lock so
//     a guess is applied as one step.
//   - Sessions idle for longer than the TTL are evicted by Sweep / Run.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/vancezuo/adversary-hangman/internal/game"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save adds a new session.
	Save(ctx context.Context, s *game.Session) error

	// Get returns a snapshot of the session.
	Get(ctx context.Context, id string) (game.Snapshot, error)

	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Len reports how many sessions are held.
	Len() int
}

type entry struct {
	mu       sync.Mutex // serialises access to session
	session  *game.Session
	lastSeen time.Time
}

// Memory is a map-based Store with idle eviction.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	clock    quartz.Clock
	log      zerolog.Logger
}

// Option configures a Memory store.
type Option func(*Memory)

// WithClock replaces the wall clock (tests use quartz.NewMock).
func WithClock(c quartz.Clock) Option { return func(m *Memory) { m.clock = c } }

// WithLogger sets the logger used for eviction messages.
func WithLogger(l zerolog.Logger) Option { return func(m *Memory) { m.log = l } }

// NewMemoryStore constructs a store evicting sessions idle for ttl.
func NewMemoryStore(ttl time.Duration, opts ...Option) *Memory {
	m := &Memory{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		clock:    quartz.NewReal(),
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = &entry{session: s, lastSeen: m.clock.Now()}
	return nil
}

func (m *Memory) Get(ctx context.Context, id string) (game.Snapshot, error) {
	var snap game.Snapshot
	err := m.Update(ctx, id, func(s *game.Session) error {
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

// Update looks the session up, locks it, refreshes its idle timer and runs
// fn. fn's error is returned unchanged.
func (m *Memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	now := m.clock.Now()
	if now.Sub(e.lastSeen) > m.ttl {
		return ErrNotFound
	}
	e.lastSeen = now
	return fn(e.session)
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep evicts every session idle for longer than the TTL and returns how
// many were removed.
func (m *Memory) Sweep() int {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		e.mu.Lock()
		idle := now.Sub(e.lastSeen)
		e.mu.Unlock()
		if idle > m.ttl {
			delete(m.sessions, id)
			n++
		}
	}
	if n > 0 {
		m.log.Debug().Int("evicted", n).Int("remaining", len(m.sessions)).Msg("swept idle sessions")
	}
	return n
}

// Run sweeps every half TTL until ctx is done.
func (m *Memory) Run(ctx context.Context) error {
	t := m.clock.NewTicker(m.ttl/2, "store", "sweep")
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			m.Sweep()
		}
	}
}
