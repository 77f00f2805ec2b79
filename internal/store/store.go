package store

import (
	"context"
	"errors"
	"sync"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

var (
	// ErrNotFound reports an identity absent from its collection.
	ErrNotFound = errors.New("record not found")
	// ErrWriteFailed reports that the snapshot could not be persisted.
	ErrWriteFailed = errors.New("write failed")
	// ErrReadOnly reports a save against a backend opened without write access.
	ErrReadOnly = errors.New("store is read-only")
)

// Backend persists the full database snapshot. Load never fails on a missing
// or unreadable store; it returns an empty snapshot instead.
type Backend interface {
	Load(ctx context.Context) (*domain.Database, error)
	Save(ctx context.Context, db *domain.Database) error
}

// Store serializes read-modify-write cycles over a single Backend. Identity
// assignment depends on seeing the latest collection state, so every
// operation — readers included — runs under one store-wide lock.
type Store struct {
	mu      sync.Mutex
	backend Backend
}

// Open wraps a backend in a Store handle.
func Open(backend Backend) *Store { return &Store{backend: backend} }

// View loads the current snapshot and passes it to fn. Mutations made by fn
// are discarded.
func (s *Store) View(ctx context.Context, fn func(db *domain.Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}
	return fn(db)
}

// Update loads the snapshot, applies fn, and persists the result. If fn
// fails, nothing is saved and the durable state is untouched.
func (s *Store) Update(ctx context.Context, fn func(db *domain.Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(db); err != nil {
		return err
	}
	return s.backend.Save(ctx, db)
}
