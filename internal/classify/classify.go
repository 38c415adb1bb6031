// Package classify reduces the status vocabulary of heterogeneous scoreboard
// feeds to four canonical lifecycle categories. Raw statuses range from clean
// enums ("FINAL") to live fragments ("Q3", "2:00 remaining") to nothing at
// all, and different fields on the same record can disagree; the classifier
// resolves all of that deterministically and never fails on bad input.
package classify

import (
	"fmt"
	"time"

	"nfl-games-service/internal/domain/games"
)

// Category is one of the four buckets every raw status reduces to.
type Category string

const (
	CategoryLive      Category = "live"
	CategoryUpcoming  Category = "upcoming"
	CategoryCompleted Category = "completed"
	CategoryPostponed Category = "postponed"
)

// Classification is the result of bucketing one record. It is recomputed on
// demand and never persisted, since source data mutates between polls.
type Classification struct {
	NormalizedStatus string   `json:"normalizedStatus"`
	Category         Category `json:"category"`
	Priority         int      `json:"priority"`
	Reason           string   `json:"reason"`
}

// DefaultStaleWindow is how far a kickoff must sit from now before score-free
// status evidence is considered stale and overridden.
const DefaultStaleWindow = 4 * time.Hour

// Options tunes classifier behavior.
type Options struct {
	// StaleWindow overrides DefaultStaleWindow when positive.
	StaleWindow time.Duration
}

// Classifier maps raw game records to Classifications.
type Classifier struct {
	staleWindow time.Duration
	now         func() time.Time
}

// New constructs a Classifier.
func New(opts Options) *Classifier {
	window := opts.StaleWindow
	if window <= 0 {
		window = DefaultStaleWindow
	}
	return &Classifier{
		staleWindow: window,
		now:         time.Now,
	}
}

// Classify buckets a record using up to three status fields in priority order
// (Status, ESPNStatus, ESPNStatusName). Each non-empty candidate is
// classified independently and the one whose normalized status ranks highest
// wins; score and kickoff context can then override a stale result.
func (c *Classifier) Classify(g games.Game) Classification {
	best := Classification{}
	found := false

	for _, candidate := range []string{g.Status, g.ESPNStatus, g.ESPNStatusName} {
		if candidate == "" {
			continue
		}
		cl := classifyValue(candidate)
		if !found || cl.Priority > best.Priority {
			best = cl
			found = true
		}
	}

	if !found {
		best = defaultClassification("no status provided")
	}

	return c.validateWithContext(g, best)
}

// ClassifyStatus buckets a single raw status string with no record context.
func (c *Classifier) ClassifyStatus(status string) Classification {
	if status == "" {
		return defaultClassification("no status provided")
	}
	return classifyValue(status)
}

// IsLive reports whether the record classifies as live.
func (c *Classifier) IsLive(g games.Game) bool {
	return c.Classify(g).Category == CategoryLive
}

// IsUpcoming reports whether the record classifies as upcoming.
func (c *Classifier) IsUpcoming(g games.Game) bool {
	return c.Classify(g).Category == CategoryUpcoming
}

// IsLiveStatus reports whether a raw status string classifies as live.
func (c *Classifier) IsLiveStatus(status string) bool {
	return c.ClassifyStatus(status).Category == CategoryLive
}

// IsUpcomingStatus reports whether a raw status string classifies as upcoming.
func (c *Classifier) IsUpcomingStatus(status string) bool {
	return c.ClassifyStatus(status).Category == CategoryUpcoming
}

// classifyValue runs one status string through the cascade: direct vocabulary
// membership, then pattern rules, then keyword containment, then the
// scheduled default. First match wins.
func classifyValue(status string) Classification {
	if cl, ok := classifyDirect(status); ok {
		return cl
	}
	if cl, ok := classifyPattern(status); ok {
		return cl
	}
	if cl, ok := classifyKeyword(status); ok {
		return cl
	}
	cl := defaultClassification(fmt.Sprintf("Unknown status: %s", status))
	return cl
}

func defaultClassification(reason string) Classification {
	return Classification{
		NormalizedStatus: statusScheduled,
		Category:         CategoryUpcoming,
		Priority:         priorityOf(statusScheduled),
		Reason:           reason,
	}
}

func newClassification(normalized string, category Category, reason string) Classification {
	return Classification{
		NormalizedStatus: normalized,
		Category:         category,
		Priority:         priorityOf(normalized),
		Reason:           reason,
	}
}
