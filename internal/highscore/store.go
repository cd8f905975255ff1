// Package highscore persists each player's best-ever run. The
// leaderboard itself is never persisted; only this single number
// survives across sessions.
package highscore

import (
	"context"
	"sync"
)

type Store interface {
	// Best returns the player's best recorded score, 0 if none.
	Best(ctx context.Context, playerID string) (int, error)
	// Record stores score as the player's best. Callers only invoke it
	// when the score actually improves on the previous best.
	Record(ctx context.Context, playerID string, score int) error
}

// MemStore keeps best scores in memory. It is the default when no
// database is configured, and what tests use.
type MemStore struct {
	mu   sync.Mutex
	best map[string]int
}

func NewMemStore() *MemStore {
	return &MemStore{best: make(map[string]int)}
}

func (m *MemStore) Best(ctx context.Context, playerID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best[playerID], nil
}

func (m *MemStore) Record(ctx context.Context, playerID string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best[playerID] = score
	return nil
}
