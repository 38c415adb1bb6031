package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.ESPN.BaseURL != defaultESPNBaseURL {
		t.Fatalf("expected default espn base url %s, got %s", defaultESPNBaseURL, cfg.ESPN.BaseURL)
	}
	if cfg.Reconcile.StaleWindow != defaultStaleWindow {
		t.Fatalf("expected default stale window %s, got %s", defaultStaleWindow, cfg.Reconcile.StaleWindow)
	}
	if cfg.Snapshots.Dir != defaultSnapshotDir {
		t.Fatalf("expected default snapshot dir %s, got %s", defaultSnapshotDir, cfg.Snapshots.Dir)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envProvider, "espn")
	t.Setenv(envESPNBaseURL, "http://example.com/nfl")
	t.Setenv(envStaleWindow, "2h")
	t.Setenv(envSnapshotKeep, "3")
	t.Setenv(envProviderLimit, "10s")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.Provider != "espn" {
		t.Fatalf("expected provider espn, got %s", cfg.Provider)
	}
	if cfg.ESPN.BaseURL != "http://example.com/nfl" {
		t.Fatalf("expected espn base url override, got %s", cfg.ESPN.BaseURL)
	}
	if cfg.Reconcile.StaleWindow != 2*time.Hour {
		t.Fatalf("expected stale window 2h, got %s", cfg.Reconcile.StaleWindow)
	}
	if cfg.Snapshots.RetentionDays != 3 {
		t.Fatalf("expected retention 3 days, got %d", cfg.Snapshots.RetentionDays)
	}
	if cfg.ProviderLimit != 10*time.Second {
		t.Fatalf("expected provider limit 10s, got %s", cfg.ProviderLimit)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envStaleWindow, "0s")

	cfg := Load()

	if cfg.Reconcile.StaleWindow != defaultStaleWindow {
		t.Fatalf("expected default stale window on non-positive value, got %s", cfg.Reconcile.StaleWindow)
	}
}
