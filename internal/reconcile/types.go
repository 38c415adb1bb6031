package reconcile

import "nfl-games-service/internal/domain/games"

// Severity ranks how much a field conflict matters.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// MatchResult describes how one local game was paired with an external game.
// Confidence is fixed per strategy and is diagnostic only; no further
// decision reads it.
type MatchResult struct {
	Match      *games.Game `json:"match"`
	Strategy   string      `json:"strategy"`
	Confidence int         `json:"confidence"`
}

// MatchedPair is one local/external pairing in a sync result.
type MatchedPair struct {
	Local      games.Game `json:"local"`
	External   games.Game `json:"external"`
	Strategy   string     `json:"strategy"`
	Confidence int        `json:"confidence"`
}

// Conflict is a field-level disagreement between matched records.
type Conflict struct {
	Field         string   `json:"field"`
	Severity      Severity `json:"severity"`
	LocalValue    any      `json:"localValue"`
	ExternalValue any      `json:"externalValue"`
}

// FieldChange records one resolved conflict for the audit trail.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"oldValue"`
	NewValue any    `json:"newValue"`
	Reason   string `json:"reason"`
}

// GameConflicts groups the conflicts and applied changes for one pairing.
// StatusTransition is set when a status conflict also changed the game's
// lifecycle category (e.g. "live -> completed").
type GameConflicts struct {
	LocalID          string        `json:"localId"`
	ExternalID       string        `json:"externalId"`
	Conflicts        []Conflict    `json:"conflicts"`
	AppliedChanges   []FieldChange `json:"appliedChanges"`
	StatusTransition string        `json:"statusTransition,omitempty"`
}

// NearMiss is a diagnostic hint for an unmatched local game: the external
// candidate whose team names sat closest by edit distance.
type NearMiss struct {
	LocalID     string `json:"localId"`
	CandidateID string `json:"candidateId"`
	Distance    int    `json:"distance"`
}

// Unmatched holds the records neither matching pass could pair.
// Both slices are passed through untouched.
type Unmatched struct {
	Local    []games.Game `json:"local"`
	External []games.Game `json:"external"`
}

// SyncResult is the output of one reconciliation pass. Updated holds, in
// local-iteration order, the resolved or merged record for every matched
// local game; unmatched records are not included.
type SyncResult struct {
	Matched   []MatchedPair   `json:"matched"`
	Unmatched Unmatched       `json:"unmatched"`
	Conflicts []GameConflicts `json:"conflicts"`
	Updated   []games.Game    `json:"updated"`
	NearMiss  []NearMiss      `json:"nearMiss,omitempty"`
}
