package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// Service defines inventory business logic.
type Service interface {
	ListEntries(ctx context.Context) ([]domain.InventoryEntry, error)
	GetEntry(ctx context.Context, id int) (domain.InventoryEntry, error)
	CreateEntry(ctx context.Context, req EntryRequest) (domain.InventoryEntry, error)
	UpdateEntry(ctx context.Context, id int, req EntryRequest) (domain.InventoryEntry, error)
	DeleteEntry(ctx context.Context, id int) error
}

// EntryRequest holds every inventory entry field except the identity.
// TotalCost is taken as entered; the shop records the invoiced figure rather
// than deriving one.
type EntryRequest struct {
	ProductName      string          `json:"productName"`
	Category         string          `json:"category"`
	Supplier         string          `json:"supplier"`
	SupplierLocation string          `json:"supplierLocation"`
	SupplierContact  string          `json:"supplierContact"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	ShippingCost     decimal.Decimal `json:"shippingCost"`
	EntryDate        string          `json:"entryDate"`
	Notes            string          `json:"notes"`
}

func (r EntryRequest) toRecord() domain.InventoryEntry {
	return domain.InventoryEntry{
		ProductName:      r.ProductName,
		Category:         r.Category,
		Supplier:         r.Supplier,
		SupplierLocation: r.SupplierLocation,
		SupplierContact:  r.SupplierContact,
		Quantity:         r.Quantity,
		UnitPrice:        r.UnitPrice,
		TotalCost:        r.TotalCost,
		ShippingCost:     r.ShippingCost,
		EntryDate:        r.EntryDate,
		Notes:            r.Notes,
	}
}

type service struct{ repo Repository }

// NewService creates the inventory service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListEntries(ctx context.Context) ([]domain.InventoryEntry, error) {
	return s.repo.List(ctx)
}

func (s *service) GetEntry(ctx context.Context, id int) (domain.InventoryEntry, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) CreateEntry(ctx context.Context, req EntryRequest) (domain.InventoryEntry, error) {
	return s.repo.Create(ctx, req.toRecord())
}

func (s *service) UpdateEntry(ctx context.Context, id int, req EntryRequest) (domain.InventoryEntry, error) {
	return s.repo.Update(ctx, id, req.toRecord())
}

func (s *service) DeleteEntry(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
