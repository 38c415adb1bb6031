package config

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	PollInterval  Duration
	Provider      string
	Timezone      string
	LogLevel      string
	LogFormat     string
	RetryAttempts int
	RetryBackoff  Duration
	ProviderLimit Duration
	ESPN          ESPNConfig
	Reconcile     ReconcileConfig
	Metrics       MetricsConfig
	Snapshots     SnapshotsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		PollInterval:  durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:      envOrDefault(envProvider, defaultProvider),
		Timezone:      envOrDefault(envTimezone, defaultTimezone),
		LogLevel:      envOrDefault(envLogLevel, "info"),
		LogFormat:     envOrDefault(envLogFormat, "text"),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, 3),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		ProviderLimit: durationEnvOrDefault(envProviderLimit, 0),
		ESPN:          loadESPN(),
		Reconcile:     loadReconcile(),
		Metrics:       loadMetrics(),
		Snapshots:     loadSnapshots(),
	}
}
