package reconcile

import "nfl-games-service/internal/domain/games"

const reasonAuthoritative = "ESPN authoritative"

// Conflicted fields and their severities. Scores are high: a wrong score is
// user-visible immediately. Status is medium, the clock is low.
const (
	fieldHomeScore     = "homeScore"
	fieldAwayScore     = "awayScore"
	fieldStatus        = "status"
	fieldTimeRemaining = "timeRemaining"
)

// detectConflicts compares the four conflict-bearing fields by direct
// inequality.
func detectConflicts(local, external games.Game) []Conflict {
	var conflicts []Conflict
	if local.HomeScore != external.HomeScore {
		conflicts = append(conflicts, Conflict{
			Field: fieldHomeScore, Severity: SeverityHigh,
			LocalValue: local.HomeScore, ExternalValue: external.HomeScore,
		})
	}
	if local.AwayScore != external.AwayScore {
		conflicts = append(conflicts, Conflict{
			Field: fieldAwayScore, Severity: SeverityHigh,
			LocalValue: local.AwayScore, ExternalValue: external.AwayScore,
		})
	}
	if local.Status != external.Status {
		conflicts = append(conflicts, Conflict{
			Field: fieldStatus, Severity: SeverityMedium,
			LocalValue: local.Status, ExternalValue: external.Status,
		})
	}
	if local.TimeRemaining != external.TimeRemaining {
		conflicts = append(conflicts, Conflict{
			Field: fieldTimeRemaining, Severity: SeverityLow,
			LocalValue: local.TimeRemaining, ExternalValue: external.TimeRemaining,
		})
	}
	return conflicts
}

// resolveConflicts applies the external-authoritative policy: every
// conflicting field takes the external value, with an audit entry per field.
// Non-conflicting fields keep their local values.
func (r *Reconciler) resolveConflicts(local, external games.Game, conflicts []Conflict) (games.Game, []FieldChange) {
	resolved := local
	changes := make([]FieldChange, 0, len(conflicts))

	for _, c := range conflicts {
		switch c.Field {
		case fieldHomeScore:
			resolved.HomeScore = external.HomeScore
		case fieldAwayScore:
			resolved.AwayScore = external.AwayScore
		case fieldStatus:
			resolved.Status = external.Status
		case fieldTimeRemaining:
			resolved.TimeRemaining = external.TimeRemaining
		}
		changes = append(changes, FieldChange{
			Field:    c.Field,
			OldValue: c.LocalValue,
			NewValue: c.ExternalValue,
			Reason:   reasonAuthoritative,
		})
	}

	r.annotate(&resolved, external)
	return resolved, changes
}

// statusTransition describes a lifecycle change hidden inside a status
// conflict, for the audit trail. Empty when the category did not move.
func (r *Reconciler) statusTransition(local, external games.Game) string {
	if local.Status == external.Status {
		return ""
	}
	before := r.classifier.Classify(local).Category
	after := r.classifier.Classify(external).Category
	if before == after {
		return ""
	}
	return string(before) + " -> " + string(after)
}
