package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/database"
)

// Store keeps every blob in a single kv_blobs table, one row per key.
type Store struct {
	db *database.DB
}

func NewStore(db *database.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to create kv_blobs table: %w", err)
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_blobs (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := s.db.Exec(ctx, query)
	return err
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM kv_blobs
		WHERE key = $1
	`

	var value []byte
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, kvstore.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to load blob %q: %w", key, err)
	}

	return value, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save blob %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM kv_blobs
		WHERE key = $1
	`

	if _, err := s.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete blob %q: %w", key, err)
	}
	return nil
}
