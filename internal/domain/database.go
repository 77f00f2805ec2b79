package domain

import "github.com/shopspring/decimal"

func init() {
	// The durable data file predates this backend; its amounts are plain
	// JSON numbers and must stay that way.
	decimal.MarshalJSONWithoutQuotes = true
}

// Database is the full snapshot of every collection. It is the unit of
// durability: the store loads and saves it whole.
type Database struct {
	Customers []Customer       `json:"customers"`
	Products  []Product        `json:"products"`
	Orders    []Order          `json:"orders"`
	Inventory []InventoryEntry `json:"inventory"`
	Costs     []CostEntry      `json:"costs"`
	Jobs      []Job            `json:"jobs"`
}

// NewDatabase returns a snapshot with all collections present and empty,
// so an untouched store still serializes every collection key.
func NewDatabase() *Database {
	return &Database{
		Customers: []Customer{},
		Products:  []Product{},
		Orders:    []Order{},
		Inventory: []InventoryEntry{},
		Costs:     []CostEntry{},
		Jobs:      []Job{},
	}
}
