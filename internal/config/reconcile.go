package config

import "time"

const defaultStaleWindow = 4 * time.Hour

// ReconcileConfig tunes the sync pipeline.
type ReconcileConfig struct {
	// StaleWindow bounds how far a status may disagree with the scheduled
	// kickoff before context validation overrides it.
	StaleWindow time.Duration
}

func loadReconcile() ReconcileConfig {
	return ReconcileConfig{
		StaleWindow: durationEnvOrDefault(envStaleWindow, defaultStaleWindow),
	}
}
