package database

import (
	"context"
	"database/sql"
)

// ==================== CONFIG OPERATIONS ====================

// GetConfigValue reads one config entry. The boolean is false when the key
// has never been set.
func (r *Repository) GetConfigValue(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := r.exec.FetchOne(ctx, "SELECT value FROM config WHERE key = ?", []any{key}, &value)
	if notFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value.String, true, nil
}

// SetConfigValue creates or replaces a config entry.
func (r *Repository) SetConfigValue(ctx context.Context, key, value string) error {
	_, err := r.exec.Execute(ctx, "INSERT OR REPLACE INTO config (key, value) VALUES (?, ?)", key, value)
	return err
}
