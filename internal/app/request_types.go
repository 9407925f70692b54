package app

import "retail-manager/internal/core"

// SignupRequest is the input for creating a shop-owner account.
type SignupRequest struct {
	FirstName string
	LastName  string
	Email     string
	ShopName  string
	Address   string
	Password  string
}

// RecordSaleRequest is the input for recording a sale. Lines reference live
// products by ID; quantities are validated against current stock when the
// cart is assembled.
type RecordSaleRequest struct {
	Lines        []SaleLineInput
	PaymentType  core.PaymentType
	CustomerName string // required for credit
	DueDate      string // required for credit, YYYY-MM-DD
}

// SaleLineInput is a single product/quantity pair within a RecordSaleRequest.
type SaleLineInput struct {
	ProductID int
	Quantity  int
}
