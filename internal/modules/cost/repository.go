package cost

import (
	"context"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
	"github.com/xpointcnc/xpoint-backend/internal/store"
)

// Repository defines the interface for cost ledger storage.
type Repository interface {
	List(ctx context.Context) ([]domain.CostEntry, error)
	Get(ctx context.Context, id int) (domain.CostEntry, error)
	Create(ctx context.Context, e domain.CostEntry) (domain.CostEntry, error)
	Update(ctx context.Context, id int, e domain.CostEntry) (domain.CostEntry, error)
	Delete(ctx context.Context, id int) error
}

// NewRepository binds the costs collection of the snapshot store.
func NewRepository(s *store.Store) Repository {
	return store.NewCollection(s, func(db *domain.Database) *[]domain.CostEntry {
		return &db.Costs
	})
}
