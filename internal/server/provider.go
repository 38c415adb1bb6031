package server

import (
	"log/slog"

	"nfl-games-service/internal/config"
	"nfl-games-service/internal/providers"
	"nfl-games-service/internal/providers/espn"
	"nfl-games-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.GameProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "espn":
		return espn.NewClient(espn.Config{
			BaseURL:  cfg.ESPN.BaseURL,
			Timezone: cfg.Timezone,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
