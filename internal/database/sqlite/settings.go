// Package sqlite stores settings in a local SQLite file for single-node deployments.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/settings"
)

// SettingsRepository implements settings.Repository on database/sql with the modernc driver
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context, profile, key string) (string, error) {
	query := `SELECT value FROM settings WHERE profile = ? AND key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, profile, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting: %w", err)
	}
	return value, nil
}

func (r *SettingsRepository) GetAll(ctx context.Context, profile string) (map[string]string, error) {
	query := `SELECT key, value FROM settings WHERE profile = ?`

	rows, err := r.db.QueryContext(ctx, query, profile)
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
	return out, rows.Err()
}

func (r *SettingsRepository) Set(ctx context.Context, profile, key, value string) error {
	query := `
		INSERT INTO settings (profile, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (profile, key)
		DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, profile, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

func (r *SettingsRepository) Backend() string { return settings.BackendSQLite }
