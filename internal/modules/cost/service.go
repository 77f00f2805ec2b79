package cost

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// Service defines cost ledger business logic.
type Service interface {
	ListEntries(ctx context.Context) ([]domain.CostEntry, error)
	GetEntry(ctx context.Context, id int) (domain.CostEntry, error)
	CreateEntry(ctx context.Context, req EntryRequest) (domain.CostEntry, error)
	UpdateEntry(ctx context.Context, id int, req EntryRequest) (domain.CostEntry, error)
	DeleteEntry(ctx context.Context, id int) error
	Summary(ctx context.Context) (Summary, error)
}

// EntryRequest holds every ledger entry field except the identity.
type EntryRequest struct {
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Type        domain.CostType `json:"type"`
	Supplier    string          `json:"supplier,omitempty"`
	Notes       string          `json:"notes"`
}

func (r EntryRequest) toRecord() domain.CostEntry {
	typ := r.Type
	if typ == "" {
		typ = domain.CostExpense
	}
	return domain.CostEntry{
		Description: r.Description,
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		Type:        typ,
		Supplier:    r.Supplier,
		Notes:       r.Notes,
	}
}

type service struct{ repo Repository }

// NewService creates the cost ledger service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListEntries(ctx context.Context) ([]domain.CostEntry, error) {
	return s.repo.List(ctx)
}

func (s *service) GetEntry(ctx context.Context, id int) (domain.CostEntry, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) CreateEntry(ctx context.Context, req EntryRequest) (domain.CostEntry, error) {
	return s.repo.Create(ctx, req.toRecord())
}

func (s *service) UpdateEntry(ctx context.Context, id int, req EntryRequest) (domain.CostEntry, error) {
	return s.repo.Update(ctx, id, req.toRecord())
}

func (s *service) DeleteEntry(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Summary recomputes the ledger aggregates from the current collection on
// every call.
func (s *service) Summary(ctx context.Context) (Summary, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(entries), nil
}
