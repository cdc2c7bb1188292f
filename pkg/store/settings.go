package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// titleKey is the settings key holding the cached feed title
const titleKey = "feed_title"

// GetSetting retrieves a setting value, empty string when the key is not set
func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// Title returns the cached feed title, empty string before the first fetch
func (s *Store) Title(ctx context.Context) (string, error) {
	return s.GetSetting(ctx, titleKey)
}

// SetTitle stores the feed title
func (s *Store) SetTitle(ctx context.Context, title string) error {
	return s.SetSetting(ctx, titleKey, title)
}
