package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Storage is a key-value backend over a Redis client. Values are stored as
// plain strings without expiry.
type Storage struct {
	db     redis.UniversalClient
	prefix string
}

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithKeyPrefix namespaces every key, e.g. "registro:usuarios/123".
func WithKeyPrefix(prefix string) StorageOption {
	return func(s *Storage) {
		s.prefix = prefix
	}
}

// NewStorage wraps an already connected client.
func NewStorage(client redis.UniversalClient, opts ...StorageOption) *Storage {
	s := &Storage{db: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns nil, nil when the key does not exist.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.db.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStorageOperation, err)
	}
	return val, nil
}

func (s *Storage) Set(ctx context.Context, key string, val []byte) error {
	if err := s.db.Set(ctx, s.prefix+key, val, 0).Err(); err != nil {
		return errors.Join(ErrStorageOperation, err)
	}
	return nil
}

// SetIfAbsent writes val only when key does not exist yet, using SETNX.
// It reports whether the value was written.
func (s *Storage) SetIfAbsent(ctx context.Context, key string, val []byte) (bool, error) {
	ok, err := s.db.SetNX(ctx, s.prefix+key, val, 0).Result()
	if err != nil {
		return false, errors.Join(ErrStorageOperation, err)
	}
	return ok, nil
}

// Delete is a no-op for missing keys.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.db.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStorageOperation, err)
	}
	return nil
}
