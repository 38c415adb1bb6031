package config

import "time"

const (
	envPort          = "PORT"
	envPollInterval  = "POLL_INTERVAL"
	envProvider      = "PROVIDER"
	envTimezone      = "TIMEZONE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken    = "ADMIN_TOKEN"
	envSnapshotsOn   = "SNAPSHOTS_ENABLED"
	envSnapshotDir   = "SNAPSHOT_DIR"
	envSnapshotKeep  = "SNAPSHOT_RETENTION_DAYS"
	envStaleWindow   = "RECONCILE_STALE_WINDOW"
	envRetryAttempts = "PROVIDER_RETRY_ATTEMPTS"
	envRetryBackoff  = "PROVIDER_RETRY_BACKOFF"
	envProviderLimit = "PROVIDER_MIN_INTERVAL"

	defaultPort = "4000"
	// Conservative default poll interval to respect the upstream scoreboard quota.
	defaultPollInterval = 30 * Duration(time.Second)
	defaultProvider     = "fixture"
	defaultTimezone     = "America/New_York"
	defaultMetricsPort  = "9090"
	defaultSnapshotDir  = "data/snapshots"
	defaultSnapshotKeep = 7
	defaultRetryBackoff = 200 * Duration(time.Millisecond)
)
