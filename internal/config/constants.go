package config

import "time"

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Defaults used when the environment leaves a value unset
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "exptable"
	DefaultStorageDriver     = StorageSQLite
	DefaultSQLitePath        = "data/settings.db"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultTableCacheSize    = 512
	DefaultTableCacheTTL     = 10 * time.Minute
	DefaultRateLimitRPS      = 10.0
	DefaultRateLimitBurst    = 30
	DefaultAPIURL            = "http://localhost:8080"
)

// UI defaults, overridable from the TOML file
const (
	DefaultTimezone    = "Asia/Tokyo"
	DefaultDiscordTopN = 10
	MaxDiscordTopN     = 20
	DefaultChartWidth  = "1200px"
	DefaultChartHeight = "520px"
)
