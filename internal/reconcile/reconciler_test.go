package reconcile

import (
	"testing"
	"time"

	"nfl-games-service/internal/classify"
	"nfl-games-service/internal/domain/games"
)

func newTestReconciler() *Reconciler {
	r := New(classify.New(classify.Options{}))
	r.now = func() time.Time { return time.Date(2025, 11, 9, 18, 0, 0, 0, time.UTC) }
	return r
}

func TestSyncExactMatch(t *testing.T) {
	r := newTestReconciler()
	local := []games.Game{{ID: "l1", HomeTeam: "Kansas City Chiefs", AwayTeam: "Buffalo Bills"}}
	external := []games.Game{{ID: "e1", HomeTeam: "Kansas City Chiefs", AwayTeam: "Buffalo Bills"}}

	result := r.Sync(local, external)

	if len(result.Matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Matched))
	}
	m := result.Matched[0]
	if m.Strategy != "exact" || m.Confidence != 100 {
		t.Fatalf("expected exact/100, got %s/%d", m.Strategy, m.Confidence)
	}
	if len(result.Unmatched.Local) != 0 || len(result.Unmatched.External) != 0 {
		t.Fatalf("expected nothing unmatched: %+v", result.Unmatched)
	}
}

func TestSyncFuzzyMatchViaCanonicalTable(t *testing.T) {
	r := newTestReconciler()
	local := []games.Game{{ID: "l1", HomeTeam: "Football Team", AwayTeam: "Cowboys"}}
	external := []games.Game{{ID: "e1", HomeTeam: "Washington Commanders", AwayTeam: "Dallas Cowboys"}}

	result := r.Sync(local, external)

	if len(result.Matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Matched))
	}
	m := result.Matched[0]
	if m.Strategy != "fuzzy" || m.Confidence != 90 {
		t.Fatalf("expected fuzzy/90, got %s/%d", m.Strategy, m.Confidence)
	}
}

func TestSyncAbbreviationCodesMatchFuzzy(t *testing.T) {
	r := newTestReconciler()
	local := []games.Game{{ID: "l1", HomeTeam: "kc", AwayTeam: "gb"}}
	external := []games.Game{{ID: "e1", HomeTeam: "Kansas City Chiefs", AwayTeam: "Green Bay Packers"}}

	result := r.Sync(local, external)

	if len(result.Matched) != 1 || result.Matched[0].Strategy != "fuzzy" {
		t.Fatalf("expected fuzzy match through abbreviation codes, got %+v", result.Matched)
	}
}

func TestSyncReverseOrientationFallback(t *testing.T) {
	r := newTestReconciler()
	local := []games.Game{{ID: "l1", HomeTeam: "Team Alpha", AwayTeam: "Team Bravo"}}
	external := []games.Game{{ID: "e1", HomeTeam: "Team Bravo", AwayTeam: "Team Alpha"}}

	result := r.Sync(local, external)

	if len(result.Matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Matched))
	}
	m := result.Matched[0]
	if m.Strategy != "fallback" || m.Confidence != 40 {
		t.Fatalf("expected fallback/40, got %s/%d", m.Strategy, m.Confidence)
	}
}

func TestSyncSameDayFallback(t *testing.T) {
	r := newTestReconciler()
	local := []games.Game{{
		ID: "l1", HomeTeam: "Duval Squad", AwayTeam: "Miami Dolphins",
		Kickoff: "2025-11-09T18:00:00Z",
	}}
	external := []games.Game{{
		ID: "e1", HomeTeam: "Jacksonville Jaguars", AwayTeam: "Miami Dolphins",
		Kickoff: "2025-11-09T17:30:00Z",
	}}

	result := r.Sync(local, external)

	if len(result.Matched) != 1 || result.Matched[0].Strategy != "fallback" {
		t.Fatalf("expected same-day fallback match, got %+v", result.Matched)
	}
}

func TestSyncNoExternalGameMatchedTwice(t *testing.T) {
	r := newTestReconciler()
	// Two local records that would both match the single external game.
	local := []games.Game{
		{ID: "l1", HomeTeam: "Dallas Cowboys", AwayTeam: "Philadelphia Eagles"},
		{ID: "l2", HomeTeam: "Cowboys", AwayTeam: "Eagles"},
	}
	external := []games.Game{{ID: "e1", HomeTeam: "Dallas Cowboys", AwayTeam: "Philadelphia Eagles"}}

	result := r.Sync(local, external)

	if len(result.Matched) != 1 {
		t.Fatalf("expected a single match, got %d", len(result.Matched))
	}
	if result.Matched[0].Local.ID != "l1" {
		t.Fatalf("expected first local game to claim the candidate")
	}
	if len(result.Unmatched.Local) != 1 || result.Unmatched.Local[0].ID != "l2" {
		t.Fatalf("expected l2 unmatched, got %+v", result.Unmatched.Local)
	}
}

func TestSyncConflictResolutionExternalWins(t *testing.T) {
	r := newTestReconciler()
	local := []games.Game{{
		ID: "l1", HomeTeam: "Detroit Lions", AwayTeam: "Chicago Bears",
		HomeScore: 10, Status: "LIVE",
	}}
	external := []games.Game{{
		ID: "e1", HomeTeam: "Detroit Lions", AwayTeam: "Chicago Bears",
		HomeScore: 17, Status: "FINAL",
	}}

	result := r.Sync(local, external)

	if len(result.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict group, got %d", len(result.Conflicts))
	}
	cg := result.Conflicts[0]
	if len(cg.AppliedChanges) != 2 {
		t.Fatalf("expected 2 applied changes, got %+v", cg.AppliedChanges)
	}
	for _, ch := range cg.AppliedChanges {
		if ch.Reason != "ESPN authoritative" {
			t.Fatalf("unexpected reason %q", ch.Reason)
		}
	}
	if cg.StatusTransition != "live -> completed" {
		t.Fatalf("unexpected transition %q", cg.StatusTransition)
	}

	if len(result.Updated) != 1 {
		t.Fatalf("expected 1 updated record, got %d", len(result.Updated))
	}
	up := result.Updated[0]
	if up.HomeScore != 17 || up.Status != "FINAL" {
		t.Fatalf("expected external values adopted, got %+v", up)
	}
	if up.ESPNID != "e1" || up.DataSource != "merged" {
		t.Fatalf("expected sync annotations, got %+v", up)
	}
}

func TestSyncConflictSeverities(t *testing.T) {
	local := games.Game{HomeScore: 3, AwayScore: 0, Status: "Q1", TimeRemaining: "10:00"}
	external := games.Game{HomeScore: 7, AwayScore: 3, Status: "Q2", TimeRemaining: "2:00"}

	conflicts := detectConflicts(local, external)
	if len(conflicts) != 4 {
		t.Fatalf("expected 4 conflicts, got %d", len(conflicts))
	}
	want := map[string]Severity{
		"homeScore":     SeverityHigh,
		"awayScore":     SeverityHigh,
		"status":        SeverityMedium,
		"timeRemaining": SeverityLow,
	}
	for _, c := range conflicts {
		if want[c.Field] != c.Severity {
			t.Fatalf("field %s expected severity %s, got %s", c.Field, want[c.Field], c.Severity)
		}
	}
}

func TestSyncMergeWithoutConflicts(t *testing.T) {
	r := newTestReconciler()
	local := []games.Game{{
		ID: "l1", HomeTeam: "Seattle Seahawks", AwayTeam: "San Francisco 49ers",
		HomeScore: 7, AwayScore: 7, Status: "Q2", TimeRemaining: "5:00",
		Venue: "Lumen Field",
	}}
	external := []games.Game{{
		ID: "e1", HomeTeam: "Seattle Seahawks", AwayTeam: "San Francisco 49ers",
		HomeScore: 7, AwayScore: 7, Status: "Q2", TimeRemaining: "5:00",
		Quarter: "2", Network: "FOX",
	}}

	result := r.Sync(local, external)

	if len(result.Conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %+v", result.Conflicts)
	}
	up := result.Updated[0]
	if up.Quarter != "2" || up.Network != "FOX" {
		t.Fatalf("expected external optional fields adopted, got %+v", up)
	}
	if up.Venue != "Lumen Field" {
		t.Fatalf("expected local venue kept, got %q", up.Venue)
	}
	if up.ESPNID != "e1" || up.DataSource != "merged" || up.LastSynced.IsZero() {
		t.Fatalf("expected merge annotations, got %+v", up)
	}
}

func TestSyncUnmatchedPreservedUntouched(t *testing.T) {
	r := newTestReconciler()
	stray := games.Game{ID: "l1", HomeTeam: "Zzz One", AwayTeam: "Qqq Two", HomeScore: 3}
	local := []games.Game{stray}
	external := []games.Game{{ID: "e1", HomeTeam: "Miami Dolphins", AwayTeam: "New England Patriots"}}

	result := r.Sync(local, external)

	if len(result.Matched) != 0 {
		t.Fatalf("expected no matches, got %+v", result.Matched)
	}
	if len(result.Unmatched.Local) != 1 || result.Unmatched.Local[0] != stray {
		t.Fatalf("expected local game passed through untouched, got %+v", result.Unmatched.Local)
	}
	if len(result.Unmatched.External) != 1 || result.Unmatched.External[0].ID != "e1" {
		t.Fatalf("expected external game unmatched, got %+v", result.Unmatched.External)
	}
	if len(result.Updated) != 0 {
		t.Fatalf("expected no updated records, got %+v", result.Updated)
	}
	if len(result.NearMiss) != 1 || result.NearMiss[0].LocalID != "l1" || result.NearMiss[0].CandidateID != "e1" {
		t.Fatalf("expected near-miss diagnostic, got %+v", result.NearMiss)
	}
}

func TestSyncIdempotent(t *testing.T) {
	r := newTestReconciler()
	local := []games.Game{{
		ID: "l1", HomeTeam: "Denver Broncos", AwayTeam: "Las Vegas Raiders",
		HomeScore: 3, Status: "Q3",
	}}
	external := []games.Game{{
		ID: "e1", HomeTeam: "Denver Broncos", AwayTeam: "Las Vegas Raiders",
		HomeScore: 10, Status: "Q4", TimeRemaining: "8:12",
	}}

	first := r.Sync(local, external)
	if len(first.Conflicts) == 0 {
		t.Fatal("expected conflicts on first pass")
	}

	second := r.Sync(first.Updated, external)
	if len(second.Conflicts) != 0 {
		t.Fatalf("expected second pass conflict-free, got %+v", second.Conflicts)
	}
}

func TestSyncDeterministic(t *testing.T) {
	r := newTestReconciler()
	local := []games.Game{
		{ID: "l1", HomeTeam: "New York Giants", AwayTeam: "Dallas Cowboys"},
		{ID: "l2", HomeTeam: "New York Jets", AwayTeam: "Miami Dolphins"},
	}
	external := []games.Game{
		{ID: "e1", HomeTeam: "New York Jets", AwayTeam: "Miami Dolphins"},
		{ID: "e2", HomeTeam: "New York Giants", AwayTeam: "Dallas Cowboys"},
	}

	a := r.Sync(local, external)
	b := r.Sync(local, external)

	if len(a.Matched) != len(b.Matched) || len(a.Matched) != 2 {
		t.Fatalf("expected stable 2 matches, got %d and %d", len(a.Matched), len(b.Matched))
	}
	for i := range a.Matched {
		if a.Matched[i].External.ID != b.Matched[i].External.ID {
			t.Fatalf("match order differs between identical runs")
		}
	}
}

func TestSyncEmptyInputs(t *testing.T) {
	r := newTestReconciler()

	result := r.Sync(nil, nil)
	if len(result.Matched)+len(result.Updated)+len(result.Unmatched.Local)+len(result.Unmatched.External) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}

	result = r.Sync(nil, []games.Game{{ID: "e1", HomeTeam: "Chicago Bears", AwayTeam: "Detroit Lions"}})
	if len(result.Unmatched.External) != 1 {
		t.Fatalf("expected external passthrough, got %+v", result)
	}
}

func TestSyncSingleTeamStrongFallback(t *testing.T) {
	r := newTestReconciler()
	// Away differs enough that partial fails; home is exact and away is
	// canonical-equal, the single-team strong case.
	local := []games.Game{{ID: "l1", HomeTeam: "XYZ United", AwayTeam: "kc"}}
	external := []games.Game{{ID: "e1", HomeTeam: "XYZ United", AwayTeam: "Kansas City Chiefs"}}

	result := r.Sync(local, external)

	if len(result.Matched) != 1 {
		t.Fatalf("expected 1 match, got %+v", result.Unmatched)
	}
	if result.Matched[0].Strategy != "fallback" {
		t.Fatalf("expected fallback strategy, got %s", result.Matched[0].Strategy)
	}
}
