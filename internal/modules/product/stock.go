package product

// StockLevel is the health tier of a product's stock relative to its reorder
// threshold.
type StockLevel string

const (
	StockCritical StockLevel = "critical"
	StockLow      StockLevel = "low"
	StockHealthy  StockLevel = "healthy"
)

// ClassifyStock maps a stock count to its health tier: critical at or below
// minStock, low at or below 1.5×minStock, healthy above that. Boundary
// values land in the stricter tier. The 1.5 factor is compared in integer
// arithmetic so the classification never drifts on rounding.
func ClassifyStock(stock, minStock int) StockLevel {
	switch {
	case stock <= minStock:
		return StockCritical
	case 2*stock <= 3*minStock:
		return StockLow
	default:
		return StockHealthy
	}
}
