package customer

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// Service defines customer business logic.
type Service interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int) (domain.Customer, error)
	CreateCustomer(ctx context.Context, req CustomerRequest) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int, req CustomerRequest) (domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error
}

// CustomerRequest holds every customer field except the identity. Running
// totals come from the caller; they are stored, not recomputed.
type CustomerRequest struct {
	Name          string          `json:"name"`
	Company       string          `json:"company"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	TotalOrders   int             `json:"totalOrders"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	LastOrderDate string          `json:"lastOrderDate"`
}

func (r CustomerRequest) toRecord() domain.Customer {
	return domain.Customer{
		Name:          r.Name,
		Company:       r.Company,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		TotalOrders:   r.TotalOrders,
		TotalAmount:   r.TotalAmount,
		LastOrderDate: r.LastOrderDate,
	}
}

type service struct{ repo Repository }

// NewService creates the customer service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *service) GetCustomer(ctx context.Context, id int) (domain.Customer, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) CreateCustomer(ctx context.Context, req CustomerRequest) (domain.Customer, error) {
	return s.repo.Create(ctx, req.toRecord())
}

func (s *service) UpdateCustomer(ctx context.Context, id int, req CustomerRequest) (domain.Customer, error) {
	return s.repo.Update(ctx, id, req.toRecord())
}

func (s *service) DeleteCustomer(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
