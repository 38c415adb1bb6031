package reconcile

import "nfl-games-service/internal/domain/games"

// mergeGames combines a conflict-free pairing. External scores and status
// always win; optional progress and venue fields take the external value only
// when present; everything else keeps the local value.
func (r *Reconciler) mergeGames(local, external games.Game) games.Game {
	merged := local
	merged.HomeScore = external.HomeScore
	merged.AwayScore = external.AwayScore
	if external.Status != "" {
		merged.Status = external.Status
	}
	if external.Quarter != "" {
		merged.Quarter = external.Quarter
	}
	if external.TimeRemaining != "" {
		merged.TimeRemaining = external.TimeRemaining
	}
	if external.Venue != "" {
		merged.Venue = external.Venue
	}
	if external.Network != "" {
		merged.Network = external.Network
	}
	r.annotate(&merged, external)
	return merged
}

// annotate stamps a record that an external source confirmed this pass.
func (r *Reconciler) annotate(g *games.Game, external games.Game) {
	if external.ESPNStatus != "" {
		g.ESPNStatus = external.ESPNStatus
	}
	if external.ESPNStatusName != "" {
		g.ESPNStatusName = external.ESPNStatusName
	}
	if external.Kickoff != "" && g.Kickoff == "" {
		g.Kickoff = external.Kickoff
	}
	g.ESPNID = external.ID
	g.LastSynced = r.now()
	g.DataSource = "merged"
	g.Stale = false
}
