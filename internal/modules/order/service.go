package order

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// Service defines order business logic.
type Service interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int) (domain.Order, error)
	CreateOrder(ctx context.Context, req OrderRequest) (domain.Order, error)
	UpdateOrder(ctx context.Context, id int, req OrderRequest) (domain.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

// OrderRequest holds every order field except the identity. Customer name and
// company are snapshots taken at entry time, not references into the
// customer collection.
type OrderRequest struct {
	OrderNumber     string               `json:"orderNumber"`
	CustomerName    string               `json:"customerName"`
	CustomerCompany string               `json:"customerCompany"`
	WorkDescription string               `json:"workDescription"`
	Quantity        int                  `json:"quantity"`
	UnitPrice       decimal.Decimal      `json:"unitPrice"`
	TotalAmount     decimal.Decimal      `json:"totalAmount"`
	OrderDate       string               `json:"orderDate"`
	DeliveryDate    string               `json:"deliveryDate"`
	Status          domain.OrderStatus   `json:"status"`
	PaymentStatus   domain.PaymentStatus `json:"paymentStatus"`
	Notes           string               `json:"notes"`
}

func (r OrderRequest) toRecord() domain.Order {
	status := r.Status
	if status == "" {
		status = domain.OrderPending
	}
	payment := r.PaymentStatus
	if payment == "" {
		payment = domain.PaymentPending
	}
	return domain.Order{
		OrderNumber:     r.OrderNumber,
		CustomerName:    r.CustomerName,
		CustomerCompany: r.CustomerCompany,
		WorkDescription: r.WorkDescription,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		TotalAmount:     r.TotalAmount,
		OrderDate:       r.OrderDate,
		DeliveryDate:    r.DeliveryDate,
		Status:          status,
		PaymentStatus:   payment,
		Notes:           r.Notes,
	}
}

type service struct{ repo Repository }

// NewService creates the order service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *service) GetOrder(ctx context.Context, id int) (domain.Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) CreateOrder(ctx context.Context, req OrderRequest) (domain.Order, error) {
	return s.repo.Create(ctx, req.toRecord())
}

func (s *service) UpdateOrder(ctx context.Context, id int, req OrderRequest) (domain.Order, error) {
	return s.repo.Update(ctx, id, req.toRecord())
}

func (s *service) DeleteOrder(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
