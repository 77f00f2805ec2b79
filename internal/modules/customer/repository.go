package customer

import (
	"context"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
	"github.com/xpointcnc/xpoint-backend/internal/store"
)

// Repository defines the interface for customer record storage.
type Repository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int) (domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (domain.Customer, error)
	Update(ctx context.Context, id int, c domain.Customer) (domain.Customer, error)
	Delete(ctx context.Context, id int) error
}

// NewRepository binds the customers collection of the snapshot store.
func NewRepository(s *store.Store) Repository {
	return store.NewCollection(s, func(db *domain.Database) *[]domain.Customer {
		return &db.Customers
	})
}
