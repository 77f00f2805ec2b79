package job

import (
	"github.com/shopspring/decimal"
	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// JobTotals is the derived costing of one job: the billable item subtotal,
// the internal cost total, and their sum.
type JobTotals struct {
	ItemsSubtotal decimal.Decimal `json:"itemsSubtotal"`
	CostsTotal    decimal.Decimal `json:"costsTotal"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
}

// Totals computes the costing from the job's current lines. It is
// recomputed on every read; nothing is cached on the record.
func Totals(j domain.Job) JobTotals {
	var t JobTotals
	for _, item := range j.Items {
		t.ItemsSubtotal = t.ItemsSubtotal.Add(item.Quantity.Mul(item.UnitPrice))
	}
	for _, c := range j.Costs {
		t.CostsTotal = t.CostsTotal.Add(c.Amount)
	}
	t.GrandTotal = t.ItemsSubtotal.Add(t.CostsTotal)
	return t
}
