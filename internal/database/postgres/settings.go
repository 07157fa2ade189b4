package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/settings"
)

// SettingsRepository implements settings.Repository for PostgreSQL
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns one setting value
func (r *SettingsRepository) Get(ctx context.Context, profile, key string) (string, error) {
	query := `
		SELECT value FROM settings
		WHERE profile = $1 AND key = $2
	`
	var value string
	err := r.db.QueryRow(ctx, query, profile, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting: %w", err)
	}
	return value, nil
}

// GetAll returns every setting stored for the profile
func (r *SettingsRepository) GetAll(ctx context.Context, profile string) (map[string]string, error) {
	query := `
		SELECT key, value FROM settings
		WHERE profile = $1
	`
	rows, err := r.db.Query(ctx, query, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settings: %w", err)
	}
	return out, nil
}

// Set upserts one setting value
func (r *SettingsRepository) Set(ctx context.Context, profile, key, value string) error {
	query := `
		INSERT INTO settings (profile, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (profile, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, profile, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

func (r *SettingsRepository) Backend() string { return settings.BackendPostgres }
