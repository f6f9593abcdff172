// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds the teams of the running game and their boards.
//
// Characteristics:
//   - Teams are keyed by ID and listed in creation order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Reads hand out copies; changes go through Save or Update.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/1970jjh/alpagoteam/internal/game"
)

// ErrNotFound is returned for unknown team IDs.
var ErrNotFound = errors.New("not found")

// Store defines the interface the HTTP layer uses to keep team boards.
type Store interface {
	// Save adds or replaces a team.
	Save(ctx context.Context, t *game.Team) error

	// Get returns a copy of the team with the given ID.
	Get(ctx context.Context, id string) (*game.Team, error)

	// List returns copies of all teams in creation order.
	List(ctx context.Context) ([]*game.Team, error)

	// Update applies fn to the stored team under the write lock.
	// If fn fails the team is left untouched. The updated copy is returned.
	Update(ctx context.Context, id string, fn func(t *game.Team) error) (*game.Team, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards teams and order
	teams map[string]*game.Team // keyed by Team.ID
	order []string              // IDs in creation order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{teams: make(map[string]*game.Team)}
}

// Save stores a copy of t; a new ID is appended to the creation order.
func (m *memory) Save(ctx context.Context, t *game.Team) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.teams[t.ID]; !ok {
		m.order = append(m.order, t.ID)
	}
	cp := *t
	m.teams[t.ID] = &cp
	return nil
}

// Get returns a copy of the team, or ErrNotFound.
func (m *memory) Get(ctx context.Context, id string) (*game.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.teams[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

// List returns copies of every team in creation order.
func (m *memory) List(ctx context.Context) ([]*game.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*game.Team, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.teams[id]
		out = append(out, &cp)
	}
	return out, nil
}

// Update runs fn on a working copy under the write lock and stores it only
// when fn succeeds. Unknown IDs return ErrNotFound without calling fn.
func (m *memory) Update(ctx context.Context, id string, fn func(t *game.Team) error) (*game.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.teams[id]
	if !ok {
		return nil, ErrNotFound
	}
	work := *t
	if err := fn(&work); err != nil {
		return nil, err
	}
	m.teams[id] = &work
	out := work
	return &out, nil
}
