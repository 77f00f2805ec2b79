package product

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// Service defines product business logic.
type Service interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (domain.Product, error)
	CreateProduct(ctx context.Context, req ProductRequest) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int, req ProductRequest) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	StockReport(ctx context.Context) ([]StockStatus, error)
}

// ProductRequest holds every product field except the identity.
type ProductRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Material    string          `json:"material"`
	Thickness   string          `json:"thickness"`
	Stock       int             `json:"stock"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Supplier    string          `json:"supplier"`
	LastRestock string          `json:"lastRestock"`
	MinStock    int             `json:"minStock"`
}

// StockStatus pairs a product with its current stock health tier. The tier
// is recomputed from the stored record on every report.
type StockStatus struct {
	Product domain.Product `json:"product"`
	Level   StockLevel     `json:"level"`
}

func (r ProductRequest) toRecord() domain.Product {
	return domain.Product{
		Name:        r.Name,
		Category:    r.Category,
		Material:    r.Material,
		Thickness:   r.Thickness,
		Stock:       r.Stock,
		UnitPrice:   r.UnitPrice,
		Supplier:    r.Supplier,
		LastRestock: r.LastRestock,
		MinStock:    r.MinStock,
	}
}

type service struct{ repo Repository }

// NewService creates the product service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (domain.Product, error) {
	return s.repo.Create(ctx, req.toRecord())
}

func (s *service) UpdateProduct(ctx context.Context, id int, req ProductRequest) (domain.Product, error) {
	return s.repo.Update(ctx, id, req.toRecord())
}

func (s *service) DeleteProduct(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) StockReport(ctx context.Context) ([]StockStatus, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	report := make([]StockStatus, 0, len(products))
	for _, p := range products {
		report = append(report, StockStatus{
			Product: p,
			Level:   ClassifyStock(p.Stock, p.MinStock),
		})
	}
	return report, nil
}
