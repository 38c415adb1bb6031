package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	domaingames "nfl-games-service/internal/domain/games"
)

// rateLimitedProvider spaces out calls to the wrapped provider so we stay
// inside the upstream API's request budget.
type rateLimitedProvider struct {
	next    GameProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider allows one fetch per interval, with a burst of one.
// A non-positive interval disables limiting and returns next unchanged.
func NewRateLimitedProvider(next GameProvider, interval time.Duration, logger *slog.Logger) GameProvider {
	if interval <= 0 {
		return next
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, date string, tz string) ([]domaingames.Game, error) {
	if p == nil {
		return nil, ErrProviderUnavailable
	}
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	if p.limiter.Tokens() < 1 {
		logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "fetch waiting on limiter")
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchGames(ctx, date, tz)
}
