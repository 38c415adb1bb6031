package config

// SnapshotsConfig controls filesystem snapshot persistence.
type SnapshotsConfig struct {
	Enabled       bool
	Dir           string
	RetentionDays int
	AdminToken    string // reused for refresh endpoint auth
}

func loadSnapshots() SnapshotsConfig {
	return SnapshotsConfig{
		Enabled:       boolEnvOrDefault(envSnapshotsOn, true),
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotKeep, defaultSnapshotKeep),
		AdminToken:    envOrDefault(envAdminToken, ""),
	}
}
