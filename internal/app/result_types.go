package app

import (
	"github.com/shopspring/decimal"

	"retail-manager/internal/core"
)

// SaleListResult is returned by ListSales.
type SaleListResult struct {
	Sales []core.Sale `json:"sales"`
}

// SaleResult is returned by RecordSale. Debt is non-nil for credit sales.
type SaleResult struct {
	Sale *core.Sale `json:"sale"`
	Debt *core.Debt `json:"debt,omitempty"`
}

// ProductListResult is returned by ListProducts.
type ProductListResult struct {
	Products []core.Product `json:"products"`
}

// DebtListResult is returned by ListDebts. Reclassified counts debts flipped
// from pending to overdue during this call — the caller surfaces it as one
// aggregate notification.
type DebtListResult struct {
	Debts        []core.Debt     `json:"debts"`
	Totals       core.DebtTotals `json:"totals"`
	Reclassified int             `json:"reclassified"`
}

// SupplierListResult is returned by ListSuppliers.
type SupplierListResult struct {
	Suppliers []core.Supplier `json:"suppliers"`
}

// DashboardSummaryResult aggregates the stat-card figures: lifetime revenue,
// sale count, stock position, and debt aging totals.
type DashboardSummaryResult struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	SaleCount        int             `json:"sale_count"`
	ProductCount     int             `json:"product_count"`
	LowStockCount    int             `json:"low_stock_count"`
	LowStockProducts []core.Product  `json:"low_stock_products"`
	Debts            core.DebtTotals `json:"debts"`
}

// AssistantResult is returned by AskAssistant.
type AssistantResult struct {
	Answer string `json:"answer"`
}
