package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shenikar/election_monitoring/internal/store"
)

type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage создаёт таблицу store_entries, если её ещё нет
func NewSQLiteStorage(ctx context.Context, db *sql.DB) (*SQLiteStorage, error) {
	query := `
		CREATE TABLE IF NOT EXISTS store_entries (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to create store_entries table: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (r *SQLiteStorage) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM store_entries WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStorage) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO store_entries (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP;
	`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
