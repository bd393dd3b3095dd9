// Package session keeps the interaction state of each connected viewer in
// a bounded in-memory cache. Sessions do not survive a restart.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/02loveslollipop/mirpur-road-survey/internal/metrics"
	"github.com/02loveslollipop/mirpur-road-survey/internal/state"
)

// DefaultCapacity is the number of sessions kept before the least
// recently used one is evicted.
const DefaultCapacity = 1024

// ErrNotFound is returned for unknown or evicted sessions.
var ErrNotFound = errors.New("session not found")

// Store maps session ids to interaction state.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache[string, state.State]
	newID func() string
}

// New returns a store holding at most capacity sessions.
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, state.State](capacity)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Store{cache: cache, newID: uuid.NewString}, nil
}

// Create starts a session in the initial state.
func (s *Store) Create() (string, state.State) {
	id := s.newID()
	s.mu.Lock()
	s.cache.Add(id, state.State{})
	n := s.cache.Len()
	s.mu.Unlock()
	metrics.ActiveSessions.Set(float64(n))
	return id, state.State{}
}

// Get returns the state of session id.
func (s *Store) Get(id string) (state.State, error) {
	st, ok := s.cache.Get(id)
	if !ok {
		return state.State{}, ErrNotFound
	}
	return st, nil
}

// Apply replaces the state of session id with fn's result. Calls are
// serialised, so concurrent events for one session are never lost. When
// fn fails the stored state is left as it was.
func (s *Store) Apply(id string, fn func(state.State) (state.State, error)) (state.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.cache.Get(id)
	if !ok {
		return state.State{}, ErrNotFound
	}
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	s.cache.Add(id, next)
	return next, nil
}

// Delete drops session id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	ok := s.cache.Remove(id)
	n := s.cache.Len()
	s.mu.Unlock()
	metrics.ActiveSessions.Set(float64(n))
	return ok
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}
