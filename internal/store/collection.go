package store

import (
	"context"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// Entity constrains collection records to types carrying an integer identity.
type Entity[T any] interface {
	EntityID() int
	WithID(id int) T
}

// Collection provides CRUD over one collection inside the database snapshot.
// The accessor selects which collection a given instance operates on; every
// operation runs a full load(+mutate+save) cycle through the shared Store.
type Collection[T Entity[T]] struct {
	store *Store
	slice func(db *domain.Database) *[]T
}

// NewCollection binds a Store to one collection of the snapshot.
func NewCollection[T Entity[T]](s *Store, slice func(db *domain.Database) *[]T) *Collection[T] {
	return &Collection[T]{store: s, slice: slice}
}

// List returns the whole collection in storage order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := c.store.View(ctx, func(db *domain.Database) error {
		out = append([]T{}, *c.slice(db)...)
		return nil
	})
	return out, err
}

// Get returns the record with the given identity, or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id int) (T, error) {
	var out T
	err := c.store.View(ctx, func(db *domain.Database) error {
		for _, rec := range *c.slice(db) {
			if rec.EntityID() == id {
				out = rec
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

// Create assigns the next identity, appends the record, and persists. The
// identity is 1 for an empty collection, otherwise 1 + the highest identity
// present. Gaps left by deletions are never refilled.
func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	var out T
	err := c.store.Update(ctx, func(db *domain.Database) error {
		items := c.slice(db)
		out = rec.WithID(nextID(*items))
		*items = append(*items, out)
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Update replaces every non-identity field of the record with the given
// identity. ErrNotFound if the identity is absent; nothing is persisted then.
func (c *Collection[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	var out T
	err := c.store.Update(ctx, func(db *domain.Database) error {
		items := c.slice(db)
		for i, it := range *items {
			if it.EntityID() == id {
				out = rec.WithID(id)
				(*items)[i] = out
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Delete removes the record with the given identity. ErrNotFound if absent.
func (c *Collection[T]) Delete(ctx context.Context, id int) error {
	return c.store.Update(ctx, func(db *domain.Database) error {
		items := c.slice(db)
		for i, it := range *items {
			if it.EntityID() == id {
				*items = append((*items)[:i], (*items)[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

func nextID[T Entity[T]](items []T) int {
	max := 0
	for _, it := range items {
		if it.EntityID() > max {
			max = it.EntityID()
		}
	}
	return max + 1
}
