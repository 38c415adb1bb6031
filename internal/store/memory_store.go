package store

import (
	"sort"
	"sync"

	domaingames "nfl-games-service/internal/domain/games"
)

// MemoryStore keeps a thread-safe snapshot of games in memory.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]domaingames.Game
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domaingames.Game),
	}
}

// ListGames returns a copy of the current games, ordered by ID so that
// successive reconcile passes see a stable iteration order.
func (s *MemoryStore) ListGames() []domaingames.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domaingames.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// SetGames replaces the existing games with a new snapshot.
func (s *MemoryStore) SetGames(games []domaingames.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domaingames.Game, len(games))
	for _, g := range games {
		s.games[g.ID] = g
	}
}

// UpsertGames merges records into the current snapshot without discarding
// games absent from the batch. Used when a sync pass confirms only a subset.
func (s *MemoryStore) UpsertGames(games []domaingames.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range games {
		s.games[g.ID] = g
	}
}
