// internal/store/memory.go
//
// In-memory implementation of the game Store interface.
// Games live only for the lifetime of the process; nothing is persisted.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex. Update holds the write lock while its
//     callback runs, so input events are applied one at a time and a reader
//     never sees a half-resolved board.
//   - ErrNotFound is returned for unknown game IDs.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/concentration/apps/go-server/internal/game"
)

// ErrNotFound is returned when no game exists for an ID.
var ErrNotFound = errors.New("not found")

// Store defines the storage interface for game sessions.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// View calls fn with the game under a read lock. fn must not mutate g or
	// retain it after returning.
	View(ctx context.Context, id string, fn func(g *game.Game) error) error

	// Update calls fn with the game under an exclusive lock.
	Update(ctx context.Context, id string, fn func(g *game.Game) error) error

	// Delete removes a game. Deleting an unknown ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Len reports the number of stored games.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games and the games they point to
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

// Save adds or updates the game in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) View(ctx context.Context, id string, fn func(*game.Game) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Game) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
