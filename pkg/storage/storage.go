package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/appcadastro/registro/pkg/logger"
)

// KeyValue is the capability a persistence backend must offer.
// Get returns nil, nil when the key does not exist.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte) error
	Delete(ctx context.Context, key string) error
}

// Creator is implemented by backends that can write a key only when it is
// absent in a single atomic operation.
type Creator interface {
	SetIfAbsent(ctx context.Context, key string, val []byte) (bool, error)
}

// Store saves and loads JSON documents through a KeyValue backend.
type Store struct {
	kv     KeyValue
	logger *slog.Logger

	// guards the read-then-write fallback of Create
	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report storage outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(kv KeyValue, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save encodes data as JSON and writes it under key. It reports whether the
// value was stored: a blank key or nil data is refused without reaching the
// backend, and encoding or backend failures are logged and reported as false.
func (s *Store) Save(ctx context.Context, key string, data any) bool {
	if strings.TrimSpace(key) == "" || isNil(data) {
		return false
	}

	raw, err := json.Marshal(data)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode data", logger.Key(key), logger.Error(err))
		return false
	}

	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.logger.ErrorContext(ctx, "Failed to store data", logger.Key(key), logger.Error(err))
		return false
	}

	s.logger.DebugContext(ctx, "Data stored", logger.Key(key))
	return true
}

// Create encodes data as JSON and writes it under key only when the key holds
// no value yet. It reports whether the value was written.
//
// Backends implementing Creator make the check and the write one operation.
// Other backends fall back to a read followed by a write, serialised only
// within this Store.
func (s *Store) Create(ctx context.Context, key string, data any) (bool, error) {
	if strings.TrimSpace(key) == "" {
		return false, ErrEmptyKey
	}
	if isNil(data) {
		return false, ErrNilData
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return false, errors.Join(ErrEncode, err)
	}

	var created bool
	if c, ok := s.kv.(Creator); ok {
		created, err = c.SetIfAbsent(ctx, key, raw)
	} else {
		created, err = s.createLocked(ctx, key, raw)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create data", logger.Key(key), logger.Error(err))
		return false, errors.Join(ErrBackend, err)
	}

	if created {
		s.logger.DebugContext(ctx, "Data created", logger.Key(key))
	}
	return created, nil
}

func (s *Store) createLocked(ctx context.Context, key string, raw []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return false, err
	}
	return true, nil
}

// Load decodes the value under key into dst and reports whether it existed.
func (s *Store) Load(ctx context.Context, key string, dst any) (bool, error) {
	if strings.TrimSpace(key) == "" {
		return false, ErrEmptyKey
	}

	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load data", logger.Key(key), logger.Error(err))
		return false, errors.Join(ErrBackend, err)
	}
	if raw == nil {
		return false, nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.Join(ErrDecode, err)
	}
	return true, nil
}

// Exists reports whether key holds a value.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	if strings.TrimSpace(key) == "" {
		return false, ErrEmptyKey
	}
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, errors.Join(ErrBackend, err)
	}
	return raw != nil, nil
}

// Remove deletes key. Missing keys are not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	if err := s.kv.Delete(ctx, key); err != nil {
		return errors.Join(ErrBackend, err)
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
