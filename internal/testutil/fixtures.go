package testutil

import (
	domaingames "nfl-games-service/internal/domain/games"
	domainteams "nfl-games-service/internal/domain/teams"
)

// SampleGame returns a minimal scheduled-game fixture with the provided id.
func SampleGame(id string) domaingames.Game {
	return domaingames.Game{
		ID:       id,
		Source:   "test",
		HomeTeam: "Philadelphia Eagles",
		AwayTeam: "Dallas Cowboys",
		Status:   "SCHEDULED",
		Kickoff:  "2025-09-07T17:00:00Z",
	}
}

// SampleLiveGame returns a fixture with in-progress evidence.
func SampleLiveGame(id string) domaingames.Game {
	g := SampleGame(id)
	g.Status = "Q2"
	g.HomeScore = 14
	g.AwayScore = 10
	g.Quarter = "2"
	g.TimeRemaining = "3:27"
	return g
}

// SampleTodayResponse builds a TodayResponse with a single sample game and date.
func SampleTodayResponse(date string, id string) domaingames.TodayResponse {
	return domaingames.TodayResponse{
		Date:  date,
		Games: []domaingames.Game{SampleGame(id)},
	}
}

// SampleTeam returns a franchise fixture with the provided id.
func SampleTeam(id string) domainteams.Team {
	return domainteams.Team{
		ID:           id,
		Name:         "Eagles",
		FullName:     "Philadelphia Eagles",
		Abbreviation: "PHI",
		City:         "Philadelphia",
		Conference:   "NFC",
		Division:     "East",
	}
}
