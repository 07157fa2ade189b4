package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// APIKey guards the write endpoints; empty leaves them open
	APIKey         string
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int

	StorageDriver string
	SQLitePath    string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// CatalogDir overrides the embedded stage data when set
	CatalogDir         string
	CatalogWatch       bool
	IncludeEventStages bool
	ImageDir           string

	TableCacheSize int
	TableCacheTTL  time.Duration

	DiscordToken   string
	DiscordAppID   string
	DiscordGuildID string
	APIURL         string

	UIConfigPath string
	UI           UIConfig
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", ""),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DefaultStorageDriver)),
		SQLitePath:    getEnv("SQLITE_PATH", DefaultSQLitePath),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "exptable"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		CatalogDir:         getEnv("CATALOG_DIR", ""),
		CatalogWatch:       getEnvAsBool("CATALOG_WATCH", false),
		IncludeEventStages: getEnvAsBool("INCLUDE_EVENT_STAGES", false),
		ImageDir:           getEnv("IMAGE_DIR", ""),

		TableCacheSize: getEnvAsInt("TABLE_CACHE_SIZE", DefaultTableCacheSize),
		TableCacheTTL:  getEnvAsDuration("TABLE_CACHE_TTL", DefaultTableCacheTTL),

		DiscordToken:   getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:   getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID: getEnv("DISCORD_GUILD_ID", ""),
		APIURL:         strings.TrimRight(getEnv("API_URL", DefaultAPIURL), "/"),

		UIConfigPath: getEnv("UI_CONFIG_PATH", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	switch cfg.StorageDriver {
	case StorageMemory, StorageSQLite, StoragePostgres:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: must be memory, sqlite or postgres", cfg.StorageDriver)
	}

	if cfg.CatalogWatch && cfg.CatalogDir == "" {
		return nil, fmt.Errorf("CATALOG_WATCH requires CATALOG_DIR")
	}

	ui, err := LoadUIConfig(cfg.UIConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.UI = ui

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
