package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// requiredByDriver lists the variables each storage driver needs
var requiredByDriver = map[string][]string{
	StorageMemory:   nil,
	StorageSQLite:   {"SQLITE_PATH"},
	StoragePostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
}

// RequiredDiscordEnvVars must be set to run the Discord bot
var RequiredDiscordEnvVars = []string{"DISCORD_TOKEN", "DISCORD_APP_ID"}

// ValidateEnv checks the schema version and the variables the selected storage
// driver needs. STORAGE_DRIVER defaults to sqlite when unset.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	driver := strings.ToLower(getEnv("STORAGE_DRIVER", DefaultStorageDriver))
	required, ok := requiredByDriver[driver]
	if !ok {
		return fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
	return requireVars(required)
}

// ValidateDiscordEnv checks the variables the Discord bot needs
func ValidateDiscordEnv() error {
	return requireVars(RequiredDiscordEnvVars)
}

func requireVars(names []string) error {
	var missing []string
	for _, envVar := range names {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if os.Getenv("API_KEY") == "" {
		warnings = append(warnings, "API_KEY is empty - settings and quantity writes are open to anyone who can reach the API")
	}

	return warnings, nil
}
