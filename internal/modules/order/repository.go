package order

import (
	"context"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
	"github.com/xpointcnc/xpoint-backend/internal/store"
)

// Repository defines the interface for order record storage.
type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int) (domain.Order, error)
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
	Update(ctx context.Context, id int, o domain.Order) (domain.Order, error)
	Delete(ctx context.Context, id int) error
}

// NewRepository binds the orders collection of the snapshot store.
func NewRepository(s *store.Store) Repository {
	return store.NewCollection(s, func(db *domain.Database) *[]domain.Order {
		return &db.Orders
	})
}
