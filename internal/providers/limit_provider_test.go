package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"nfl-games-service/internal/teststubs"
)

func TestRateLimitedProviderAllowsFirstCall(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil)

	if _, err := rl.FetchGames(context.Background(), "2025-09-07", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider called once, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderSpacesCalls(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 20*time.Millisecond, nil)

	ctx := context.Background()
	if _, err := rl.FetchGames(ctx, "2025-09-07", ""); err != nil {
		t.Fatalf("first call: %v", err)
	}
	start := time.Now()
	if _, err := rl.FetchGames(ctx, "2025-09-07", ""); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("expected second call to wait for limiter, elapsed %s", elapsed)
	}
	if inner.Calls.Load() != 2 {
		t.Fatalf("expected inner provider called twice, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// first token is available immediately, so burn it before canceling matters
	_, _ = rl.FetchGames(context.Background(), "2025-09-07", "")

	if _, err := rl.FetchGames(ctx, "2025-09-07", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	var inner GameProvider
	rl := NewRateLimitedProvider(inner, time.Millisecond, nil)

	_, err := rl.FetchGames(context.Background(), "2025-09-07", "")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDisabledInterval(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 0, nil)
	if rl != GameProvider(inner) {
		t.Fatalf("expected zero interval to return the inner provider unchanged")
	}
}
