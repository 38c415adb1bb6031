package server

import (
	"nfl-games-service/internal/config"
	"nfl-games-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

func buildSnapshots(cfg config.Config) snapshotComponents {
	if !cfg.Snapshots.Enabled {
		return snapshotComponents{}
	}
	basePath := cfg.Snapshots.Dir
	return snapshotComponents{
		store:  snapshots.NewFSStore(basePath),
		writer: snapshots.NewWriter(basePath, cfg.Snapshots.RetentionDays),
	}
}
