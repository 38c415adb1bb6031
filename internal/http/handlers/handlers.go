package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	appgames "nfl-games-service/internal/app/games"
	appteams "nfl-games-service/internal/app/teams"
	domaingames "nfl-games-service/internal/domain/games"
	"nfl-games-service/internal/poller"
	"nfl-games-service/internal/providers"
	"nfl-games-service/internal/snapshots"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the application services.
type Handler struct {
	games    *appgames.Service
	teams    *appteams.Service
	snaps    snapshots.Store
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(games *appgames.Service, teams *appteams.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		games:    games,
		teams:    teams,
		snaps:    snaps,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// ServeHTTP routes requests so the Handler can be served directly in tests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/games" || r.URL.Path == "/games/today":
		h.GamesToday(w, r)
	case r.URL.Path == "/games/buckets":
		h.GamesBuckets(w, r)
	case r.URL.Path == "/games/live":
		h.GamesLive(w, r)
	case strings.HasPrefix(r.URL.Path, "/games/"):
		h.GameByID(w, r)
	case r.URL.Path == "/teams":
		h.Teams(w, r)
	case r.URL.Path == "/teams/resolve":
		h.ResolveTeam(w, r)
	default:
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// GamesToday returns the reconciled set of games.
func (h *Handler) GamesToday(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	dateParam := r.URL.Query().Get("date")
	games := h.games.Games()
	date := h.now().Format("2006-01-02")
	logger := loggerFromContext(r, h.logger)
	tz := r.URL.Query().Get("tz")

	if dateParam == "" && tz != "" {
		if loc := providers.ResolveTimezone(tz); loc != nil {
			date = h.now().In(loc).Format("2006-01-02")
		}
	}

	if dateParam != "" {
		if _, err := time.Parse("2006-01-02", dateParam); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
	}

	// For explicit date queries, serve snapshots only (no live upstream fetch).
	if dateParam != "" {
		snap, err := h.loadSnapshot(dateParam)
		if err != nil {
			writeError(w, r, http.StatusBadGateway, "snapshot unavailable", h.logger)
			return
		}
		games = snap.Games
		date = snap.Date
		if logger != nil {
			logger.Info("served snapshot games", "date", date, "source", "snapshot", "count", len(games))
		}
	} else {
		// Default path: serve the store; if empty, fall back to today's snapshot.
		if len(games) == 0 {
			if snap, err := h.loadSnapshot(date); err == nil {
				games = snap.Games
				date = snap.Date
				if logger != nil {
					logger.Info("served snapshot games", "date", date, "source", "snapshot", "count", len(games))
				}
			}
		}
		if logger != nil {
			logger.Info("served cached games", "date", date, "source", "cache", "count", len(games))
		}
	}

	payload := domaingames.TodayResponse{
		Date:  date,
		Games: games,
	}
	writeJSON(w, http.StatusOK, payload, h.logger)
}

// GamesBuckets groups the current games by lifecycle category.
func (h *Handler) GamesBuckets(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	buckets := h.games.Buckets()
	payload := map[string]any{
		"date":      h.now().Format("2006-01-02"),
		"liveCount": h.games.LiveCount(),
		"buckets":   buckets,
	}
	writeJSON(w, http.StatusOK, payload, h.logger)
}

// GamesLive returns only the games currently in progress.
func (h *Handler) GamesLive(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	live := h.games.LiveGames()
	payload := map[string]any{
		"date":  h.now().Format("2006-01-02"),
		"count": len(live),
		"games": live,
	}
	writeJSON(w, http.StatusOK, payload, h.logger)
}

// GameByID returns a specific game if present.
func (h *Handler) GameByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	// Expect path: /games/{id}
	path := strings.TrimPrefix(r.URL.Path, "/games")
	if path == "" || path == "/" {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	idRaw := strings.TrimPrefix(path, "/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	game, ok := h.games.GameByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, game, h.logger)
}

// Teams lists every franchise in the directory.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.teams.Teams(), h.logger)
}

// ResolveTeam maps a free-text team name to a franchise.
func (h *Handler) ResolveTeam(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "name parameter required", h.logger)
		return
	}
	team, ok := h.teams.Resolve(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown team", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, team, h.logger)
}

func (h *Handler) loadSnapshot(date string) (domaingames.TodayResponse, error) {
	if h.snaps == nil {
		return domaingames.TodayResponse{}, errors.New("snapshot store not configured")
	}
	return h.snaps.LoadGames(date)
}
