package espn

import (
	"strconv"
	"strings"

	"nfl-games-service/internal/domain/games"
)

// mapEvent converts an ESPN scoreboard event into a domain game. Raw status
// values are preserved on purpose: classification happens downstream, and the
// upstream vocabulary (STATUS_* names, free-form detail strings) is an input
// to that, not something to normalize away here.
func mapEvent(e eventResponse) games.Game {
	g := games.Game{
		ID:             providerName + "-" + e.ID,
		Source:         providerName,
		ESPNID:         e.ID,
		Status:         statusDetail(e.Status),
		ESPNStatus:     e.Status.Type.Name,
		ESPNStatusName: e.Status.Type.Description,
		Quarter:        formatPeriod(e.Status.Period),
		TimeRemaining:  strings.TrimSpace(e.Status.DisplayClock),
		Kickoff:        e.Date,
		DataSource:     providerName,
	}

	if len(e.Competitions) == 0 {
		return g
	}
	comp := e.Competitions[0]
	g.Venue = comp.Venue.FullName
	g.Network = firstBroadcast(comp.Broadcasts)

	for _, c := range comp.Competitors {
		name := teamName(c.Team)
		score := parseScore(c.Score)
		switch strings.ToLower(c.HomeAway) {
		case "home":
			g.HomeTeam = name
			g.HomeScore = score
		case "away":
			g.AwayTeam = name
			g.AwayScore = score
		}
	}
	return g
}

// statusDetail picks the most descriptive status string the event carries.
func statusDetail(s statusResponse) string {
	if d := strings.TrimSpace(s.Type.Detail); d != "" {
		return d
	}
	if d := strings.TrimSpace(s.Type.ShortDetail); d != "" {
		return d
	}
	return s.Type.Name
}

func teamName(t teamResponse) string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return strings.TrimSpace(t.Location + " " + t.Name)
}

// formatPeriod renders the period as the domain's quarter string. Period 0
// means the game has not started; an empty quarter keeps a pre-game event
// free of in-progress evidence.
func formatPeriod(period int) string {
	if period <= 0 {
		return ""
	}
	return strconv.Itoa(period)
}

func parseScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func firstBroadcast(broadcasts []broadcastResponse) string {
	for _, b := range broadcasts {
		for _, name := range b.Names {
			if name != "" {
				return name
			}
		}
	}
	return ""
}
