package config

import "time"

// Environment variable names
const (
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
	EnvDBUser      = "DB_USER"
	EnvDBPassword  = "DB_PASSWORD"
	EnvDBHost      = "DB_HOST"
	EnvDBPort      = "DB_PORT"
	EnvDBName      = "DB_NAME"
	EnvAPIKey      = "API_KEY"

	// Comma-separated list of proxy IPs allowed to set X-Forwarded-For.
	EnvTrustedProxies = "TRUSTED_PROXIES"

	EnvMinDropPeriod = "MIN_DROP_PERIOD"
	EnvMaxDropPeriod = "MAX_DROP_PERIOD"
	EnvDropChance    = "DROP_CHANCE"
)

// Default configuration values
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "INFO"
	DefaultLogFormat   = "json"
	DefaultEnvironment = "dev"
	DefaultServiceName = "curio"
	DefaultVersion     = "dev"
	DefaultDBUser      = "postgres"
	DefaultDBPassword  = "postgres"
	DefaultDBHost      = "localhost"
	DefaultDBPort      = "5432"
	DefaultDBName      = "curio"
)

// Drop economy defaults. Users are never starved beyond MaxDropPeriod,
// never rewarded faster than MinDropPeriod, and in between get a
// 1-in-DropChance roll per triggering action.
const (
	DefaultMinDropPeriod = 30 * time.Minute
	DefaultMaxDropPeriod = 23 * time.Hour
	DefaultDropChance    = 2
)
