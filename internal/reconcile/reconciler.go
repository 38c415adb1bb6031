// Package reconcile pairs game records from two independently-sourced lists,
// resolves their disagreements and emits a merged view. The two feeds never
// share identifiers and rarely agree on team spelling, so pairing runs a
// cascade of name-matching strategies from strict to permissive, and field
// conflicts between paired records are settled by treating the freshly
// fetched source as authoritative.
package reconcile

import (
	"time"

	"github.com/agnivade/levenshtein"

	"nfl-games-service/internal/classify"
	"nfl-games-service/internal/domain/games"
)

// Reconciler matches and merges local records against an external feed.
// It keeps no state between Sync calls; every call is a pure function of its
// inputs plus the static team tables.
type Reconciler struct {
	classifier *classify.Classifier
	now        func() time.Time
}

// New constructs a Reconciler. The classifier is used to describe lifecycle
// transitions hidden inside status conflicts.
func New(classifier *classify.Classifier) *Reconciler {
	if classifier == nil {
		classifier = classify.New(classify.Options{})
	}
	return &Reconciler{
		classifier: classifier,
		now:        time.Now,
	}
}

// Sync matches each local game against at most one external game, resolves
// field conflicts for the pairs, and reports what could not be paired.
// Matching folds over the local list threading a shrinking candidate pool, so
// no external game can be claimed twice.
func (r *Reconciler) Sync(local, external []games.Game) SyncResult {
	result := SyncResult{}
	remaining := make([]games.Game, len(external))
	copy(remaining, external)

	for _, lg := range local {
		pos, mr, ok := findMatch(lg, remaining)
		if !ok {
			result.Unmatched.Local = append(result.Unmatched.Local, lg)
			if miss, found := r.nearestCandidate(lg, remaining); found {
				result.NearMiss = append(result.NearMiss, miss)
			}
			continue
		}

		eg := remaining[pos]
		remaining = removeAt(remaining, pos)

		result.Matched = append(result.Matched, MatchedPair{
			Local:      lg,
			External:   eg,
			Strategy:   mr.Strategy,
			Confidence: mr.Confidence,
		})

		conflicts := detectConflicts(lg, eg)
		if len(conflicts) > 0 {
			resolved, changes := r.resolveConflicts(lg, eg, conflicts)
			result.Conflicts = append(result.Conflicts, GameConflicts{
				LocalID:          lg.ID,
				ExternalID:       eg.ID,
				Conflicts:        conflicts,
				AppliedChanges:   changes,
				StatusTransition: r.statusTransition(lg, eg),
			})
			result.Updated = append(result.Updated, resolved)
			continue
		}

		result.Updated = append(result.Updated, r.mergeGames(lg, eg))
	}

	result.Unmatched.External = append(result.Unmatched.External, remaining...)
	return result
}

// findMatch runs the strategy cascade for one local game against the current
// candidate pool.
func findMatch(local games.Game, candidates []games.Game) (int, MatchResult, bool) {
	if len(candidates) == 0 {
		return 0, MatchResult{}, false
	}
	for _, s := range strategies {
		if pos, ok := s.match(local, candidates); ok {
			match := candidates[pos]
			return pos, MatchResult{
				Match:      &match,
				Strategy:   s.name,
				Confidence: s.confidence,
			}, true
		}
	}
	return 0, MatchResult{}, false
}

// nearestCandidate reports the external game whose matchup string sits
// closest to the unmatched local game by edit distance. Diagnostic only; it
// never influences matching.
func (r *Reconciler) nearestCandidate(local games.Game, candidates []games.Game) (NearMiss, bool) {
	if len(candidates) == 0 {
		return NearMiss{}, false
	}
	localKey := matchupKey(local)
	best := NearMiss{LocalID: local.ID, Distance: -1}
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(localKey, matchupKey(c))
		if best.Distance < 0 || d < best.Distance {
			best.CandidateID = c.ID
			best.Distance = d
		}
	}
	return best, true
}

func matchupKey(g games.Game) string {
	return g.AwayTeam + " @ " + g.HomeTeam
}

func removeAt(pool []games.Game, pos int) []games.Game {
	out := make([]games.Game, 0, len(pool)-1)
	out = append(out, pool[:pos]...)
	return append(out, pool[pos+1:]...)
}
