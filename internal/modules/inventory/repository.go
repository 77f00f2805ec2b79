package inventory

import (
	"context"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
	"github.com/xpointcnc/xpoint-backend/internal/store"
)

// Repository defines the interface for inventory entry storage.
type Repository interface {
	List(ctx context.Context) ([]domain.InventoryEntry, error)
	Get(ctx context.Context, id int) (domain.InventoryEntry, error)
	Create(ctx context.Context, e domain.InventoryEntry) (domain.InventoryEntry, error)
	Update(ctx context.Context, id int, e domain.InventoryEntry) (domain.InventoryEntry, error)
	Delete(ctx context.Context, id int) error
}

// NewRepository binds the inventory collection of the snapshot store.
func NewRepository(s *store.Store) Repository {
	return store.NewCollection(s, func(db *domain.Database) *[]domain.InventoryEntry {
		return &db.Inventory
	})
}
