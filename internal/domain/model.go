package domain

import "github.com/shopspring/decimal"

// OrderStatus is the lifecycle state of a cutting order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderDelivered  OrderStatus = "delivered"
)

// PaymentStatus tracks how much of an order has been paid.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// CostType distinguishes ledger entries.
type CostType string

const (
	CostExpense CostType = "expense"
	CostIncome  CostType = "income"
)

// JobCostType categorizes a cost line within a job.
type JobCostType string

const (
	JobCostMaterial JobCostType = "material"
	JobCostLabor    JobCostType = "labor"
	JobCostShipping JobCostType = "shipping"
	JobCostOther    JobCostType = "other"
)

// Customer is a client of the shop. TotalOrders and TotalAmount are running
// totals maintained by the caller, not recomputed here.
type Customer struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Company       string          `json:"company"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	TotalOrders   int             `json:"totalOrders"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	LastOrderDate string          `json:"lastOrderDate"`
}

// Product is a sheet material kept in stock.
type Product struct {
	ID          int             `json:"id"`
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

// Order is a cutting order. Customer name and company are copied in at entry
// time; there is no foreign key to the customer collection.
type Order struct {
	ID              int             `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	CustomerName    string          `json:"customerName"`
	CustomerCompany string          `json:"customerCompany"`
	WorkDescription string          `json:"workDescription"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	OrderDate       string          `json:"orderDate"`
	DeliveryDate    string          `json:"deliveryDate"`
	Status          OrderStatus     `json:"status"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	Notes           string          `json:"notes"`
}

// InventoryEntry records a stock purchase. TotalCost is stored as entered,
// not derived from quantity and unit price.
type InventoryEntry struct {
	ID               int             `json:"id"`
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

// CostEntry is one line of the income/expense ledger.
type CostEntry struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Type        CostType        `json:"type"`
	Supplier    string          `json:"supplier,omitempty"`
	Notes       string          `json:"notes"`
}

// Job is a costed piece of work with its own line items and cost lines.
// Item and cost ids are unique only within the owning job.
type Job struct {
	ID           int       `json:"id"`
	CustomerName string    `json:"customerName"`
	JobTitle     string    `json:"jobTitle"`
	DeliveryDate string    `json:"deliveryDate"`
	Notes        string    `json:"notes"`
	Items        []JobItem `json:"items"`
	Costs        []JobCost `json:"costs"`
	CreatedAt    string    `json:"createdAt"`
}

// JobItem is a billable line on a job. Quantity is decimal because lines are
// often priced per square meter.
type JobItem struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Material    string          `json:"material"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// JobCost is an internal cost line on a job.
type JobCost struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        JobCostType     `json:"type"`
}

func (c Customer) EntityID() int { return c.ID }

func (c Customer) WithID(id int) Customer { c.ID = id; return c }

func (p Product) EntityID() int { return p.ID }

func (p Product) WithID(id int) Product { p.ID = id; return p }

func (o Order) EntityID() int { return o.ID }

func (o Order) WithID(id int) Order { o.ID = id; return o }

func (e InventoryEntry) EntityID() int { return e.ID }

func (e InventoryEntry) WithID(id int) InventoryEntry { e.ID = id; return e }

func (c CostEntry) EntityID() int { return c.ID }

func (c CostEntry) WithID(id int) CostEntry { c.ID = id; return c }

func (j Job) EntityID() int { return j.ID }

func (j Job) WithID(id int) Job { j.ID = id; return j }
