package cost

import (
	"github.com/shopspring/decimal"
	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// Summary is the derived view of the cost ledger: overall income, expense
// and net figures plus per-category subtotals. Categories with no entries do
// not appear in the breakdown.
type Summary struct {
	TotalIncome  decimal.Decimal           `json:"totalIncome"`
	TotalExpense decimal.Decimal           `json:"totalExpense"`
	NetProfit    decimal.Decimal           `json:"netProfit"`
	Categories   map[string]CategoryTotals `json:"categories"`
}

// CategoryTotals holds the income and expense sums of one ledger category.
type CategoryTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Summarize folds the ledger into a Summary. An empty ledger yields zero
// totals and an empty breakdown, never an error.
func Summarize(entries []domain.CostEntry) Summary {
	s := Summary{Categories: map[string]CategoryTotals{}}
	for _, e := range entries {
		totals := s.Categories[e.Category]
		switch e.Type {
		case domain.CostIncome:
			s.TotalIncome = s.TotalIncome.Add(e.Amount)
			totals.Income = totals.Income.Add(e.Amount)
		case domain.CostExpense:
			s.TotalExpense = s.TotalExpense.Add(e.Amount)
			totals.Expense = totals.Expense.Add(e.Amount)
		default:
			continue
		}
		s.Categories[e.Category] = totals
	}
	s.NetProfit = s.TotalIncome.Sub(s.TotalExpense)
	return s
}
