package fixture

import (
	"context"
	"time"

	domaingames "nfl-games-service/internal/domain/games"
)

// Provider returns a static slate of games useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns a deterministic set of example games anchored to the
// requested date (YYYY-MM-DD, empty means today).
func (p *Provider) FetchGames(ctx context.Context, date string, tz string) ([]domaingames.Game, error) {
	_ = ctx
	_ = tz

	start := p.now().UTC().Truncate(time.Hour)
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err == nil {
			start = parsed.UTC().Add(17 * time.Hour)
		}
	}

	games := []domaingames.Game{
		{
			ID:         "fixture-1",
			Source:     "fixture",
			HomeTeam:   "Philadelphia Eagles",
			AwayTeam:   "Dallas Cowboys",
			Status:     "SCHEDULED",
			Kickoff:    start.Add(2 * time.Hour).Format(time.RFC3339),
			Venue:      "Lincoln Financial Field",
			Network:    "NBC",
			DataSource: "fixture",
		},
		{
			ID:            "fixture-2",
			Source:        "fixture",
			HomeTeam:      "Kansas City Chiefs",
			AwayTeam:      "Buffalo Bills",
			HomeScore:     14,
			AwayScore:     10,
			Status:        "Q2",
			Quarter:       "2",
			TimeRemaining: "3:27",
			Kickoff:       start.Format(time.RFC3339),
			Venue:         "GEHA Field at Arrowhead Stadium",
			Network:       "CBS",
			DataSource:    "fixture",
		},
		{
			ID:         "fixture-3",
			Source:     "fixture",
			HomeTeam:   "Green Bay Packers",
			AwayTeam:   "Chicago Bears",
			HomeScore:  27,
			AwayScore:  20,
			Status:     "FINAL",
			Quarter:    "4",
			Kickoff:    start.Add(-4 * time.Hour).Format(time.RFC3339),
			Venue:      "Lambeau Field",
			Network:    "FOX",
			DataSource: "fixture",
		},
	}

	return games, nil
}
