package job

import (
	"context"
	"time"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// Service defines job business logic.
type Service interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	GetJob(ctx context.Context, id int) (domain.Job, error)
	CreateJob(ctx context.Context, req JobRequest) (domain.Job, error)
	UpdateJob(ctx context.Context, id int, req JobRequest) (domain.Job, error)
	DeleteJob(ctx context.Context, id int) error
	JobTotals(ctx context.Context, id int) (JobTotals, error)
}

// JobRequest holds every job field except the identity. Item and cost lines
// come in whole; an update replaces both sequences.
type JobRequest struct {
	CustomerName string           `json:"customerName"`
	JobTitle     string           `json:"jobTitle"`
	DeliveryDate string           `json:"deliveryDate"`
	Notes        string           `json:"notes"`
	Items        []domain.JobItem `json:"items"`
	Costs        []domain.JobCost `json:"costs"`
	CreatedAt    string           `json:"createdAt"`
}

func (r JobRequest) toRecord() domain.Job {
	j := domain.Job{
		CustomerName: r.CustomerName,
		JobTitle:     r.JobTitle,
		DeliveryDate: r.DeliveryDate,
		Notes:        r.Notes,
		Items:        r.Items,
		Costs:        r.Costs,
		CreatedAt:    r.CreatedAt,
	}
	if j.Items == nil {
		j.Items = []domain.JobItem{}
	}
	if j.Costs == nil {
		j.Costs = []domain.JobCost{}
	}
	if j.CreatedAt == "" {
		j.CreatedAt = time.Now().Format(time.RFC3339)
	}
	numberLines(&j)
	return j
}

// numberLines assigns identities to item and cost lines that arrived without
// one. Line ids are unique within the owning job only.
func numberLines(j *domain.Job) {
	next := 1
	for _, it := range j.Items {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	for i := range j.Items {
		if j.Items[i].ID == 0 {
			j.Items[i].ID = next
			next++
		}
	}
	next = 1
	for _, c := range j.Costs {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	for i := range j.Costs {
		if j.Costs[i].ID == 0 {
			j.Costs[i].ID = next
			next++
		}
	}
}

type service struct{ repo Repository }

// NewService creates the job service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return s.repo.List(ctx)
}

func (s *service) GetJob(ctx context.Context, id int) (domain.Job, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) CreateJob(ctx context.Context, req JobRequest) (domain.Job, error) {
	return s.repo.Create(ctx, req.toRecord())
}

func (s *service) UpdateJob(ctx context.Context, id int, req JobRequest) (domain.Job, error) {
	return s.repo.Update(ctx, id, req.toRecord())
}

func (s *service) DeleteJob(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// JobTotals recomputes the costing from the stored job on every call.
func (s *service) JobTotals(ctx context.Context, id int) (JobTotals, error) {
	j, err := s.repo.Get(ctx, id)
	if err != nil {
		return JobTotals{}, err
	}
	return Totals(j), nil
}
