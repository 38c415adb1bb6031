// Package teststubs holds shared test doubles for the scoreboard provider
// and snapshot collaborators.
package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	domaingames "nfl-games-service/internal/domain/games"
)

// StubProvider is a test double for providers.GameProvider. It serves a
// canned slate and records how it was asked for it, so tests can assert the
// date and timezone the caller resolved.
type StubProvider struct {
	Games  []domaingames.Game
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}

	mu       sync.Mutex
	lastDate string
	lastTZ   string
}

// FetchGames returns the configured slate and error, tracking calls and the
// most recent date/tz arguments.
func (s *StubProvider) FetchGames(ctx context.Context, date string, tz string) ([]domaingames.Game, error) {
	_ = ctx
	s.mu.Lock()
	s.lastDate = date
	s.lastTZ = tz
	s.mu.Unlock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Games, s.Err
}

// LastFetch reports the date and tz of the most recent FetchGames call.
func (s *StubProvider) LastFetch() (date, tz string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDate, s.lastTZ
}

// StubSnapshotStore is a test double for snapshots.Store serving slates from
// an in-memory map.
type StubSnapshotStore struct {
	Games   map[string]domaingames.TodayResponse // keyed by date
	LoadErr error
}

// LoadGames returns the slate for the given date if present.
func (s *StubSnapshotStore) LoadGames(date string) (domaingames.TodayResponse, error) {
	if s.LoadErr != nil {
		return domaingames.TodayResponse{}, s.LoadErr
	}
	resp, ok := s.Games[date]
	if !ok {
		return domaingames.TodayResponse{}, errors.New("snapshot not found")
	}
	return resp, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter that keeps
// every written slate for inspection.
type StubSnapshotWriter struct {
	Written map[string]domaingames.TodayResponse // keyed by date
	Err     error
}

// WriteGamesSnapshot records the snapshot under its date.
func (w *StubSnapshotWriter) WriteGamesSnapshot(date string, snapshot domaingames.TodayResponse) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]domaingames.TodayResponse)
	}
	w.Written[date] = snapshot
	return nil
}
