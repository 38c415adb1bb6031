package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	appgames "nfl-games-service/internal/app/games"
	domaingames "nfl-games-service/internal/domain/games"
	"nfl-games-service/internal/http/requestutil"
	"nfl-games-service/internal/logging"
	"nfl-games-service/internal/providers"
	"nfl-games-service/internal/snapshots"
	"nfl-games-service/internal/timeutil"
)

// AdminHandler exposes admin-only endpoints (e.g., forced refresh).
type AdminHandler struct {
	writer   *snapshots.Writer
	provider providers.GameProvider
	games    *appgames.Service
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer *snapshots.Writer, provider providers.GameProvider, games *appgames.Service, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		writer:   writer,
		provider: provider,
		games:    games,
		token:    token,
		logger:   logger,
	}
}

// RefreshSnapshots fetches the requested date (defaults to today), reconciles
// it into the store when it is today's slate, and writes the snapshot.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.provider == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	today := timeutil.FormatDate(time.Now().UTC())
	if date == "" {
		date = today
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		logging.Warn(logger, "admin refresh invalid date", slog.String("date", date))
		writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
		return
	}
	tz := strings.TrimSpace(r.URL.Query().Get("tz"))
	if tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			logging.Warn(logger, "admin refresh invalid tz", slog.String("tz", tz))
			writeError(w, r, http.StatusBadRequest, "invalid timezone", logger)
			return
		}
	}

	games, err := h.provider.FetchGames(r.Context(), date, tz)
	if err != nil {
		logging.Warn(logger, "admin refresh fetch failed",
			slog.String("date", date),
			slog.String("tz", tz),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to fetch games", logger)
		return
	}
	if len(games) == 0 {
		logging.Warn(logger, "admin refresh no games", slog.String("date", date))
		writeError(w, r, http.StatusBadRequest, "no games to snapshot", logger)
		return
	}

	// Only today's slate feeds the live store; historical dates are
	// snapshot-only so they cannot perturb the current reconciled state.
	snapGames := games
	reconciled := false
	if h.games != nil && date == today {
		_, summary := h.games.ApplySync(games)
		snapGames = h.games.Games()
		reconciled = true
		logging.Info(logger, "admin refresh reconciled",
			slog.Int(logging.FieldMatched, summary.Matched),
			slog.Int(logging.FieldConflicts, summary.Conflicts),
		)
	}

	snap := domaingames.NewTodayResponse(date, snapGames)
	if err := h.writer.WriteGamesSnapshot(date, snap); err != nil {
		logging.Warn(logger, "admin refresh write failed",
			slog.String("date", date),
			slog.String("tz", tz),
			slog.Int("count", len(snapGames)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":       date,
		"snapshots":  len(snapGames),
		"reconciled": reconciled,
		"status":     "ok",
	}, logger)
	logging.Info(logger, "admin snapshot written",
		slog.String("date", date),
		slog.String("tz", tz),
		slog.Int("count", len(snapGames)),
	)
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
