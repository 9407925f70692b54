package app

import (
	"context"

	"retail-manager/internal/core"
)

// ApplicationService is the single interface all adapters (HTTP handlers, CLI
// tools) call. It decouples presentation from business logic. Implementations
// must contain no HTTP types and no display logic of any kind.
type ApplicationService interface {
	// Login verifies credentials and returns the account, or
	// core.ErrUnauthorized for a bad email/password.
	Login(ctx context.Context, email, password string) (*core.User, error)

	// Signup creates a shop-owner account with a hashed password.
	Signup(ctx context.Context, req SignupRequest) (*core.User, error)

	// GetUser returns the account for an authenticated token subject.
	GetUser(ctx context.Context, id int) (*core.User, error)

	// ListSales returns all recorded sales.
	ListSales(ctx context.Context) (*SaleListResult, error)

	// RecordSale assembles a cart from the request lines, validates it, and
	// records the sale: stock is decremented and a credit sale creates a
	// linked debt.
	RecordSale(ctx context.Context, req RecordSaleRequest) (*SaleResult, error)

	// DeleteSale removes a sale record. Stock is not restocked and a linked
	// debt is left standing.
	DeleteSale(ctx context.Context, id int) error

	// ListProducts returns products matching the filter.
	ListProducts(ctx context.Context, filter core.ProductFilter) (*ProductListResult, error)

	// AddProduct validates and stores a new product.
	AddProduct(ctx context.Context, p core.Product) (*core.Product, error)

	// UpdateProduct validates and replaces an existing product.
	UpdateProduct(ctx context.Context, id int, p core.Product) (*core.Product, error)

	// DeleteProduct removes a product. Historical sales keep their snapshots.
	DeleteProduct(ctx context.Context, id int) error

	// ListDebts reclassifies overdue debts, persists any status flips, and
	// returns the filtered/sorted collection plus aging totals.
	ListDebts(ctx context.Context, filter core.DebtFilter) (*DebtListResult, error)

	// GetDebt returns a single debt.
	GetDebt(ctx context.Context, id int) (*core.Debt, error)

	// AddDebt records a manually entered debt.
	AddDebt(ctx context.Context, d core.Debt) (*core.Debt, error)

	// UpdateDebt replaces an existing debt.
	UpdateDebt(ctx context.Context, id int, d core.Debt) (*core.Debt, error)

	// PayDebt marks a debt paid. Paying an already-paid debt is a no-op.
	PayDebt(ctx context.Context, id int) (*core.Debt, error)

	// RemindDebt marks a reminder sent for an unpaid, un-notified debt.
	RemindDebt(ctx context.Context, id int) (*core.Debt, error)

	// ListSuppliers returns all suppliers.
	ListSuppliers(ctx context.Context) (*SupplierListResult, error)

	// GetSupplier returns a single supplier.
	GetSupplier(ctx context.Context, id int) (*core.Supplier, error)

	// AddSupplier validates and stores a new supplier.
	AddSupplier(ctx context.Context, sup core.Supplier) (*core.Supplier, error)

	// UpdateSupplier validates and replaces an existing supplier.
	UpdateSupplier(ctx context.Context, id int, sup core.Supplier) (*core.Supplier, error)

	// DeleteSupplier removes a supplier. Products keep their supplier name.
	DeleteSupplier(ctx context.Context, id int) error

	// GenerateReport builds a sales report for the period.
	GenerateReport(ctx context.Context, period core.ReportPeriod, startDate, endDate string) (*core.SalesReport, error)

	// DashboardSummary aggregates revenue, stock alerts, and debt totals.
	DashboardSummary(ctx context.Context) (*DashboardSummaryResult, error)

	// AskAssistant answers a natural-language question about the shop's
	// current state. Returns ErrAssistantDisabled when no API key is set.
	AskAssistant(ctx context.Context, question string) (*AssistantResult, error)
}
