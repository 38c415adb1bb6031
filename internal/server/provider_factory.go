package server

import (
	"log/slog"

	"nfl-games-service/internal/config"
	"nfl-games-service/internal/metrics"
	"nfl-games-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	base := selectProvider(cfg, f.logger)
	limited := providers.NewRateLimitedProvider(base, cfg.ProviderLimit, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.RetryAttempts, cfg.RetryBackoff)
}
