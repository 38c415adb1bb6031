package reconcile

import (
	"strings"

	"nfl-games-service/internal/domain/games"
	"nfl-games-service/internal/domain/teams"
	"nfl-games-service/internal/timeutil"
)

// A strategy examines the remaining external candidates for one local game
// and returns the index of the first acceptable candidate. Strategies run in
// declaration order until one succeeds; each carries the fixed confidence
// reported for pairings it produces.
type strategy struct {
	name       string
	confidence int
	match      func(local games.Game, candidates []games.Game) (int, bool)
}

var strategies = []strategy{
	{name: "exact", confidence: 100, match: matchExact},
	{name: "fuzzy", confidence: 90, match: matchFuzzy},
	{name: "partial", confidence: 70, match: matchPartial},
	{name: "abbreviation", confidence: 60, match: matchAbbreviation},
	{name: "fallback", confidence: 40, match: matchFallback},
}

// matchExact requires both team names identical, case-sensitive, in the same
// home/away orientation.
func matchExact(local games.Game, candidates []games.Game) (int, bool) {
	for i, c := range candidates {
		if local.HomeTeam == c.HomeTeam && local.AwayTeam == c.AwayTeam {
			return i, true
		}
	}
	return 0, false
}

// matchFuzzy requires both names to resolve to the same franchise through the
// canonical-name and abbreviation tables.
func matchFuzzy(local games.Game, candidates []games.Game) (int, bool) {
	for i, c := range candidates {
		if sameFranchise(local.HomeTeam, c.HomeTeam) && sameFranchise(local.AwayTeam, c.AwayTeam) {
			return i, true
		}
	}
	return 0, false
}

// matchPartial accepts looser name evidence on both sides: substring
// containment either direction, a shared significant keyword, a shared city
// or a shared mascot. Shared-market cities make this knowingly imprecise for
// divisional rivals; that recall-over-precision tradeoff is inherited from
// the data this feeds.
func matchPartial(local games.Game, candidates []games.Game) (int, bool) {
	for i, c := range candidates {
		if partialName(local.HomeTeam, c.HomeTeam) && partialName(local.AwayTeam, c.AwayTeam) {
			return i, true
		}
	}
	return 0, false
}

// matchAbbreviation compares derived abbreviations (first letters of each
// word, or the first three letters of single-word names) per side.
func matchAbbreviation(local games.Game, candidates []games.Game) (int, bool) {
	lh := teams.DerivedAbbreviation(local.HomeTeam)
	la := teams.DerivedAbbreviation(local.AwayTeam)
	if lh == "" || la == "" {
		return 0, false
	}
	for i, c := range candidates {
		if lh == teams.DerivedAbbreviation(c.HomeTeam) && la == teams.DerivedAbbreviation(c.AwayTeam) {
			return i, true
		}
	}
	return 0, false
}

// matchFallback is the last-resort pass, tried only when every stricter
// strategy failed. In order: same-calendar-day candidates filtered by partial
// name evidence, reverse home/away orientation, then a single-team strong
// match (one side exact, the other canonical).
func matchFallback(local games.Game, candidates []games.Game) (int, bool) {
	if i, ok := matchSameDay(local, candidates); ok {
		return i, true
	}
	if i, ok := matchReversed(local, candidates); ok {
		return i, true
	}
	return matchSingleTeamStrong(local, candidates)
}

func matchSameDay(local games.Game, candidates []games.Game) (int, bool) {
	localKick, ok := timeutil.ParseKickoff(local.Kickoff)
	if !ok {
		return 0, false
	}

	single := -1
	for i, c := range candidates {
		candidateKick, ok := timeutil.ParseKickoff(c.Kickoff)
		if !ok || !timeutil.SameDay(localKick, candidateKick) {
			continue
		}
		homeHit := partialName(local.HomeTeam, c.HomeTeam)
		awayHit := partialName(local.AwayTeam, c.AwayTeam)
		if homeHit && awayHit {
			return i, true
		}
		if (homeHit || awayHit) && single < 0 {
			single = i
		}
	}
	if single >= 0 {
		return single, true
	}
	return 0, false
}

// matchReversed handles feeds that disagree on which team is at home.
func matchReversed(local games.Game, candidates []games.Game) (int, bool) {
	for i, c := range candidates {
		if partialName(local.HomeTeam, c.AwayTeam) && partialName(local.AwayTeam, c.HomeTeam) {
			return i, true
		}
	}
	return 0, false
}

func matchSingleTeamStrong(local games.Game, candidates []games.Game) (int, bool) {
	for i, c := range candidates {
		homeExact := strings.EqualFold(local.HomeTeam, c.HomeTeam)
		awayExact := strings.EqualFold(local.AwayTeam, c.AwayTeam)
		if homeExact && sameFranchise(local.AwayTeam, c.AwayTeam) {
			return i, true
		}
		if awayExact && sameFranchise(local.HomeTeam, c.HomeTeam) {
			return i, true
		}
	}
	return 0, false
}

func sameFranchise(a, b string) bool {
	ta, okA := teams.Resolve(a)
	tb, okB := teams.Resolve(b)
	return okA && okB && ta.ID == tb.ID
}

func partialName(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return true
	}
	if sharedKeyword(a, b) {
		return true
	}
	return teams.SharedCity(a, b) || teams.SharedMascot(a, b)
}

// Generic words that appear in many team names carry no matching signal.
var keywordStopwords = map[string]struct{}{
	"team":     {},
	"the":      {},
	"and":      {},
	"football": {},
	"club":     {},
}

func sharedKeyword(a, b string) bool {
	bWords := make(map[string]struct{})
	for _, w := range teams.SignificantKeywords(b) {
		bWords[w] = struct{}{}
	}
	for _, w := range teams.SignificantKeywords(a) {
		if _, stop := keywordStopwords[w]; stop {
			continue
		}
		if _, ok := bWords[w]; ok {
			return true
		}
	}
	return false
}
