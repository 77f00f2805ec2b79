package cost

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

func entry(typ domain.CostType, category string, amount string) domain.CostEntry {
	return domain.CostEntry{
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Type:     typ,
	}
}

func TestSummarizeTotals(t *testing.T) {
	s := Summarize([]domain.CostEntry{
		entry(domain.CostIncome, "Satış", "100"),
		entry(domain.CostExpense, "Malzeme", "40"),
		entry(domain.CostExpense, "Nakliye", "10"),
	})

	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(100)), "totalIncome = %s", s.TotalIncome)
	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(50)), "totalExpense = %s", s.TotalExpense)
	assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(50)), "netProfit = %s", s.NetProfit)
}

func TestSummarizeCategoryBreakdown(t *testing.T) {
	s := Summarize([]domain.CostEntry{
		entry(domain.CostExpense, "Malzeme", "200.50"),
		entry(domain.CostExpense, "Malzeme", "99.50"),
		entry(domain.CostIncome, "Malzeme", "40"),
		entry(domain.CostIncome, "Satış", "1000"),
	})

	assert.Len(t, s.Categories, 2)

	malzeme := s.Categories["Malzeme"]
	assert.True(t, malzeme.Expense.Equal(decimal.NewFromInt(300)))
	assert.True(t, malzeme.Income.Equal(decimal.NewFromInt(40)))

	satis := s.Categories["Satış"]
	assert.True(t, satis.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, satis.Expense.IsZero())

	// categories with no entries are absent, not zero-filled
	assert.NotContains(t, s.Categories, "Kira")
}

func TestSummarizeEmptyLedger(t *testing.T) {
	s := Summarize(nil)

	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.NetProfit.IsZero())
	assert.Empty(t, s.Categories)
}

func TestSummarizeNoDecimalDrift(t *testing.T) {
	entries := make([]domain.CostEntry, 0, 1000)
	for i := 0; i < 1000; i++ {
		entries = append(entries, entry(domain.CostExpense, "Malzeme", "0.10"))
	}
	s := Summarize(entries)
	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(100)), "1000 × 0.10 must be exactly 100, got %s", s.TotalExpense)
}
