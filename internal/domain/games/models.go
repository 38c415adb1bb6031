package games

import "time"

// Game is the canonical game record shared by every data source.
//
// Team names are free text and are not guaranteed to match across sources
// (abbreviations, city-only and mascot-only names all occur), so identity for
// reconciliation is the (home, away, approximate kickoff) tuple rather than ID.
// Status carries the raw upstream vocabulary; use classify to bucket it.
type Game struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`

	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`

	// Status is the primary raw status string; empty when the source omitted it.
	Status string `json:"status,omitempty"`
	// ESPNStatus and ESPNStatusName are secondary status fields from the ESPN
	// feed, consulted when the primary status is absent or disagrees.
	ESPNStatus     string `json:"espnStatus,omitempty"`
	ESPNStatusName string `json:"espnStatusName,omitempty"`

	Quarter       string `json:"quarter,omitempty"`
	TimeRemaining string `json:"timeRemaining,omitempty"`

	// Kickoff is an ISO-ish timestamp of the scheduled start; empty when unknown.
	Kickoff string `json:"kickoff,omitempty"`

	Venue   string `json:"venue,omitempty"`
	Network string `json:"network,omitempty"`

	// Reconciliation annotations. ESPNID ties a merged record back to the
	// upstream event; DataSource is "merged" once both sources contributed.
	ESPNID     string    `json:"espnId,omitempty"`
	DataSource string    `json:"dataSource,omitempty"`
	LastSynced time.Time `json:"lastSynced,omitempty"`

	// Stale marks a local record that no external source confirmed in the
	// most recent sync pass. Stale games are kept, never deleted.
	Stale bool `json:"stale,omitempty"`
}

// HasKickoff reports whether the record carries a kickoff timestamp.
func (g Game) HasKickoff() bool {
	return g.Kickoff != ""
}

// HasScore reports whether either side has points on the board.
func (g Game) HasScore() bool {
	return g.HomeScore > 0 || g.AwayScore > 0
}

// InProgressEvidence reports whether live-game progress fields are present.
func (g Game) InProgressEvidence() bool {
	return g.Quarter != "" || g.TimeRemaining != ""
}

// TodayResponse is the payload returned by /games and persisted in snapshots.
type TodayResponse struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// NewTodayResponse builds a TodayResponse payload.
func NewTodayResponse(date string, games []Game) TodayResponse {
	return TodayResponse{
		Date:  date,
		Games: games,
	}
}
