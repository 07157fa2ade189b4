package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing version", map[string]string{}, "ENV_SCHEMA_VERSION is not set"},
		{"version mismatch", map[string]string{"ENV_SCHEMA_VERSION": "0.9"}, "expected 1.0, got 0.9"},
		{"memory needs nothing", map[string]string{"ENV_SCHEMA_VERSION": "1.0", "STORAGE_DRIVER": "memory"}, ""},
		{"sqlite default needs path", map[string]string{"ENV_SCHEMA_VERSION": "1.0"}, "SQLITE_PATH"},
		{"sqlite with path", map[string]string{"ENV_SCHEMA_VERSION": "1.0", "SQLITE_PATH": "x.db"}, ""},
		{"postgres missing vars", map[string]string{"ENV_SCHEMA_VERSION": "1.0", "STORAGE_DRIVER": "postgres", "DB_USER": "u"}, "DB_PASSWORD, DB_HOST, DB_PORT, DB_NAME"},
		{"unknown driver", map[string]string{"ENV_SCHEMA_VERSION": "1.0", "STORAGE_DRIVER": "redis"}, "unknown STORAGE_DRIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := ValidateEnv()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateEnvWithWarnings(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("DB_HOST", "h")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "n")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY is empty")
}

func TestValidateDiscordEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("DISCORD_TOKEN", "tok")

	err := ValidateDiscordEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_APP_ID")
}
