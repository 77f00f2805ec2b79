package job

import (
	"context"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
	"github.com/xpointcnc/xpoint-backend/internal/store"
)

// Repository defines the interface for job record storage.
type Repository interface {
	List(ctx context.Context) ([]domain.Job, error)
	Get(ctx context.Context, id int) (domain.Job, error)
	Create(ctx context.Context, j domain.Job) (domain.Job, error)
	Update(ctx context.Context, id int, j domain.Job) (domain.Job, error)
	Delete(ctx context.Context, id int) error
}

// NewRepository binds the jobs collection of the snapshot store.
func NewRepository(s *store.Store) Repository {
	return store.NewCollection(s, func(db *domain.Database) *[]domain.Job {
		return &db.Jobs
	})
}
