package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool and pgx.Tx used by Storage.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	getQuery    = `SELECT value FROM kv_store WHERE key = $1`
	upsertQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	insertQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO NOTHING`
	deleteQuery = `DELETE FROM kv_store WHERE key = $1`
)

// Storage keeps key-value pairs in the kv_store table created by Migrate.
type Storage struct {
	db DBTX
}

func NewStorage(db DBTX) *Storage {
	return &Storage{db: db}
}

// Get returns nil, nil when no row exists for key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var val []byte
	if err := s.db.QueryRow(ctx, getQuery, key).Scan(&val); err != nil {
		if IsNotFoundError(err) {
			return nil, nil
		}
		return nil, errors.Join(ErrStorageOperation, err)
	}
	return val, nil
}

// Set inserts or overwrites the value stored under key.
func (s *Storage) Set(ctx context.Context, key string, val []byte) error {
	if _, err := s.db.Exec(ctx, upsertQuery, key, val); err != nil {
		return errors.Join(ErrStorageOperation, err)
	}
	return nil
}

// SetIfAbsent inserts val only when no row exists for key and reports
// whether a row was written.
func (s *Storage) SetIfAbsent(ctx context.Context, key string, val []byte) (bool, error) {
	tag, err := s.db.Exec(ctx, insertQuery, key, val)
	if err != nil {
		return false, errors.Join(ErrStorageOperation, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, deleteQuery, key); err != nil {
		return errors.Join(ErrStorageOperation, err)
	}
	return nil
}
