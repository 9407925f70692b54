package core

import "github.com/shopspring/decimal"

// DebtStatus tracks a customer debt through its lifecycle.
// A paid debt is terminal — due-date checks no longer apply to it.
type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtOverdue DebtStatus = "overdue"
	DebtPaid    DebtStatus = "paid"
)

// PaymentType distinguishes immediate cash sales from deferred credit sales.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCredit PaymentType = "credit"
)

// SaleStatus is completed for cash sales and pending for credit sales.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SalePending   SaleStatus = "pending"
)

// SupplierStatus marks whether a supplier is currently used.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "active"
	SupplierInactive SupplierStatus = "inactive"
)

// LineItem is one product/quantity/price entry within a sale or debt.
// Total is denormalized and must equal Quantity × Price.
type LineItem struct {
	ProductID int             `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// Product is an inventory item. Quantity at or below StockAlert means low stock.
// Dates are YYYY-MM-DD strings; Image is an external reference, never raw bytes.
type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Supplier      string          `json:"supplier"`
	StockAlert    int             `json:"stock_alert"`
	LastRestocked string          `json:"last_restocked"`
	Image         string          `json:"image,omitempty"`
}

// Supplier is a pure CRUD master record with no derived logic.
type Supplier struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	Contact    string         `json:"contact"`
	Phone      string         `json:"phone"`
	Email      string         `json:"email"`
	Street     string         `json:"street"`
	City       string         `json:"city"`
	State      string         `json:"state"`
	PostalCode string         `json:"postal_code"`
	Country    string         `json:"country"`
	Status     SupplierStatus `json:"status"`
}

// Sale is a recorded transaction. Items are denormalized — deleting a product
// later does not alter historical sales. DebtID links a credit sale to the
// debt it created.
type Sale struct {
	ID           int             `json:"id"`
	Date         string          `json:"date"`
	Items        []LineItem      `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaymentType  PaymentType     `json:"payment_type"`
	Status       SaleStatus      `json:"status"`
	CustomerName string          `json:"customer_name,omitempty"`
	DueDate      string          `json:"due_date,omitempty"`
	DebtID       *int            `json:"debt_id,omitempty"`
}

// Debt is a customer's outstanding credit, created when a credit sale is
// completed. Status transitions: pending → overdue (derived at read time),
// pending/overdue → paid (terminal).
type Debt struct {
	ID           int             `json:"id"`
	CustomerName string          `json:"customer_name"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedDate  string          `json:"created_date"`
	DueDate      string          `json:"due_date"`
	Items        []LineItem      `json:"items"`
	Status       DebtStatus      `json:"status"`
	Notified     bool            `json:"notified"`
}

// User is a shop owner account.
type User struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	ShopName     string `json:"shop_name"`
	Address      string `json:"address"`
	PasswordHash string `json:"-"`
}
