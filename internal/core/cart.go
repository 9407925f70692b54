package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CartState tracks the single in-progress sale.
//
//	Empty → Building → Submitted
//
// Submitted is terminal; a fresh cart is created for the next sale.
type CartState string

const (
	CartEmpty     CartState = "empty"
	CartBuilding  CartState = "building"
	CartSubmitted CartState = "submitted"
)

// Cart accumulates line items for one sale. Quantities for the same product
// merge into a single line and are re-checked against the product's stock
// ceiling on every add.
type Cart struct {
	lines     []LineItem
	submitted bool
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// State returns the cart's position in the sale lifecycle.
func (c *Cart) State() CartState {
	switch {
	case c.submitted:
		return CartSubmitted
	case len(c.lines) == 0:
		return CartEmpty
	default:
		return CartBuilding
	}
}

// Lines returns a copy of the cart's line items.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// AddItem adds qty units of product to the cart. Adding the same product twice
// merges into one line; the cumulative quantity is validated against the
// product's current stock.
func (c *Cart) AddItem(product *Product, qty int) error {
	if c.submitted {
		return Validationf("sale already submitted")
	}
	if product == nil {
		return Validationf("please select a product")
	}
	if qty <= 0 {
		return Validationf("quantity must be greater than 0")
	}
	if qty > product.Quantity {
		return Validationf("only %d %s available in stock", product.Quantity, product.Unit)
	}

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			newQty := c.lines[i].Quantity + qty
			if newQty > product.Quantity {
				return Validationf("cannot add more: only %d %s available in stock", product.Quantity, product.Unit)
			}
			c.lines[i].Quantity = newQty
			c.lines[i].Total = product.SellingPrice.Mul(decimal.NewFromInt(int64(newQty)))
			return nil
		}
	}

	c.lines = append(c.lines, LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  qty,
		Unit:      product.Unit,
		Price:     product.SellingPrice,
		Total:     product.SellingPrice.Mul(decimal.NewFromInt(int64(qty))),
	})
	return nil
}

// RemoveItem drops the line at index. Out-of-range indexes are rejected.
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.lines) {
		return fmt.Errorf("cart line %d: %w", index, ErrNotFound)
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Total sums all line totals.
func (c *Cart) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total)
	}
	return sum
}

// Complete submits the cart as a Sale. A credit sale requires a customer name
// and a due date; cash sales complete immediately. The returned Sale has no ID
// yet — the owning store assigns one when the sale is recorded.
func (c *Cart) Complete(paymentType PaymentType, customerName, dueDate string, now time.Time) (*Sale, error) {
	if c.submitted {
		return nil, Validationf("sale already submitted")
	}
	if len(c.lines) == 0 {
		return nil, Validationf("cart is empty, add products to complete sale")
	}
	if paymentType != PaymentCash && paymentType != PaymentCredit {
		return nil, Validationf("unknown payment type %q", paymentType)
	}
	if paymentType == PaymentCredit {
		if customerName == "" {
			return nil, Validationf("please provide customer name for credit sale")
		}
		if dueDate == "" {
			return nil, Validationf("please provide due date for credit sale")
		}
		if _, err := ParseDate(dueDate); err != nil {
			return nil, Validationf("invalid due date %q", dueDate)
		}
	}

	sale := &Sale{
		Date:        now.UTC().Format(DateLayout),
		Items:       c.Lines(),
		TotalAmount: c.Total(),
		PaymentType: paymentType,
		Status:      SaleCompleted,
	}
	if paymentType == PaymentCredit {
		sale.Status = SalePending
		sale.CustomerName = customerName
		sale.DueDate = dueDate
	}

	c.submitted = true
	return sale, nil
}
