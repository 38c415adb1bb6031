package http

import (
	nethttp "net/http"

	"nfl-games-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/games", handler.GamesToday)
	mux.HandleFunc("/games/today", handler.GamesToday)
	mux.HandleFunc("/games/buckets", handler.GamesBuckets)
	mux.HandleFunc("/games/live", handler.GamesLive)
	mux.HandleFunc("/games/", handler.GameByID)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/resolve", handler.ResolveTeam)
	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.RefreshSnapshots)
	}
	return mux
}
