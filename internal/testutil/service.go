package testutil

import (
	appgames "nfl-games-service/internal/app/games"
	domaingames "nfl-games-service/internal/domain/games"
	"nfl-games-service/internal/store"
)

// NewServiceWithGames builds a games service backed by an in-memory store preloaded with games.
func NewServiceWithGames(g []domaingames.Game) *appgames.Service {
	ms := store.NewMemoryStore()
	if len(g) > 0 {
		ms.SetGames(g)
	}
	return appgames.NewService(ms, nil, nil)
}
