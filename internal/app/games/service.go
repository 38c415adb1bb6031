// Package games owns the current-games list and runs the reconciliation
// cycle against it: it feeds the stored records plus a freshly fetched
// external batch through the reconciler, adopts the merged output, and
// applies the insertion/staleness policy for whatever could not be matched.
package games

import (
	"time"

	"nfl-games-service/internal/classify"
	domaingames "nfl-games-service/internal/domain/games"
	"nfl-games-service/internal/reconcile"
	"nfl-games-service/internal/timeutil"
)

// Store defines the contract for persisting and retrieving games.
type Store interface {
	ListGames() []domaingames.Game
	GetGame(id string) (domaingames.Game, bool)
	SetGames(games []domaingames.Game)
	UpsertGames(games []domaingames.Game)
}

// SyncSummary reports what one reconcile pass did, for logs and metrics.
type SyncSummary struct {
	Matched           int
	Conflicts         int
	UnmatchedLocal    int
	UnmatchedExternal int
	Inserted          int
}

// Service coordinates game operations using a Store, a Reconciler and a
// Classifier.
type Service struct {
	store      Store
	reconciler *reconcile.Reconciler
	classifier *classify.Classifier
	now        func() time.Time
}

// NewService constructs a Service with the provided collaborators. A nil
// reconciler or classifier falls back to defaults.
func NewService(store Store, reconciler *reconcile.Reconciler, classifier *classify.Classifier) *Service {
	if reconciler == nil {
		reconciler = reconcile.New(classifier)
	}
	if classifier == nil {
		classifier = classify.New(classify.Options{})
	}
	return &Service{
		store:      store,
		reconciler: reconciler,
		classifier: classifier,
		now:        time.Now,
	}
}

// Games returns the current set of games.
func (s *Service) Games() []domaingames.Game {
	return s.store.ListGames()
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (domaingames.Game, bool) {
	return s.store.GetGame(id)
}

// ReplaceGames swaps the stored games with a new snapshot wholesale.
func (s *Service) ReplaceGames(games []domaingames.Game) {
	s.store.SetGames(games)
}

// ApplySync reconciles the stored games against a freshly fetched external
// batch and adopts the result: merged records replace their local versions,
// unmatched local games are kept but flagged stale, and unmatched external
// games are inserted when they are live or kick off today.
func (s *Service) ApplySync(external []domaingames.Game) (reconcile.SyncResult, SyncSummary) {
	local := s.store.ListGames()
	result := s.reconciler.Sync(local, external)

	adopted := make([]domaingames.Game, 0, len(result.Updated)+len(result.Unmatched.Local))
	adopted = append(adopted, result.Updated...)

	for _, g := range result.Unmatched.Local {
		g.Stale = true
		adopted = append(adopted, g)
	}

	inserted := 0
	for _, g := range result.Unmatched.External {
		if !s.shouldInsert(g) {
			continue
		}
		adopted = append(adopted, g)
		inserted++
	}

	s.store.UpsertGames(adopted)

	return result, SyncSummary{
		Matched:           len(result.Matched),
		Conflicts:         len(result.Conflicts),
		UnmatchedLocal:    len(result.Unmatched.Local),
		UnmatchedExternal: len(result.Unmatched.External),
		Inserted:          inserted,
	}
}

// shouldInsert admits brand-new external records only when they are live or
// scheduled for the current day; anything else waits for a future pass with
// better evidence.
func (s *Service) shouldInsert(g domaingames.Game) bool {
	if s.classifier.IsLive(g) {
		return true
	}
	kickoff, ok := timeutil.ParseKickoff(g.Kickoff)
	if !ok {
		return false
	}
	return timeutil.SameDay(kickoff, s.now())
}

// Buckets groups the current games by lifecycle category for display.
func (s *Service) Buckets() map[classify.Category][]domaingames.Game {
	buckets := make(map[classify.Category][]domaingames.Game)
	for _, g := range s.store.ListGames() {
		cl := s.classifier.Classify(g)
		buckets[cl.Category] = append(buckets[cl.Category], g)
	}
	return buckets
}

// LiveGames returns only the games currently in progress.
func (s *Service) LiveGames() []domaingames.Game {
	live := make([]domaingames.Game, 0)
	for _, g := range s.store.ListGames() {
		if s.classifier.IsLive(g) {
			live = append(live, g)
		}
	}
	return live
}

// LiveCount reports how many stored games are currently live.
func (s *Service) LiveCount() int {
	count := 0
	for _, g := range s.store.ListGames() {
		if s.classifier.IsLive(g) {
			count++
		}
	}
	return count
}
