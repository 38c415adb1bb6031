package classify

import (
	"nfl-games-service/internal/domain/games"
	"nfl-games-service/internal/timeutil"
)

// validateWithContext corrects the vocabulary-derived classification against
// score and kickoff evidence. Raw status strings are sometimes stale or
// contradictory relative to the rest of the record; the record's own data
// wins those disagreements.
func (c *Classifier) validateWithContext(g games.Game, cl Classification) Classification {
	// A scoring game cannot be upcoming. Progress fields decide whether it
	// is still running or already done.
	if g.HasScore() && cl.Category == CategoryUpcoming {
		if g.InProgressEvidence() {
			return Classification{
				NormalizedStatus: statusLive,
				Category:         CategoryLive,
				Priority:         priorityOf(statusLive),
				Reason:           "context override: score with progress fields",
			}
		}
		return Classification{
			NormalizedStatus: statusFinal,
			Category:         CategoryCompleted,
			Priority:         priorityOf(statusFinal),
			Reason:           "context override: score without progress fields",
		}
	}

	kickoff, ok := timeutil.ParseKickoff(g.Kickoff)
	if !ok {
		return cl
	}
	now := c.now()

	if cl.Category == CategoryLive && kickoff.After(now.Add(c.staleWindow)) {
		return Classification{
			NormalizedStatus: statusScheduled,
			Category:         CategoryUpcoming,
			Priority:         priorityOf(statusScheduled),
			Reason:           "context override: kickoff far in the future",
		}
	}

	if cl.Category == CategoryUpcoming && kickoff.Before(now.Add(-c.staleWindow)) {
		return Classification{
			NormalizedStatus: statusFinal,
			Category:         CategoryCompleted,
			Priority:         priorityOf(statusFinal),
			Reason:           "context override: kickoff far in the past",
		}
	}

	return cl
}
