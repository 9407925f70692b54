package core

import "strings"

// DefaultProductImage is substituted when a product is created without one.
const DefaultProductImage = "https://images.unsplash.com/photo-1553395572-53de71bbcfe7?w=500&auto=format&fit=crop&q=60"

// IsLowStock reports whether the product's quantity has reached its alert
// threshold. The boundary quantity == stockAlert counts as low.
func IsLowStock(p Product) bool {
	return p.Quantity <= p.StockAlert
}

// ProductFilter narrows a product collection.
// Category "all" (or empty) matches every category.
type ProductFilter struct {
	Search       string
	Category     string
	Supplier     string
	LowStockOnly bool
}

// FilterProducts applies a case-insensitive substring match against product
// name or supplier, an exact category filter, an exact supplier filter, and
// an optional low-stock restriction. The input slice is never mutated.
func FilterProducts(products []Product, f ProductFilter) []Product {
	search := strings.ToLower(f.Search)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Supplier), search) {
			continue
		}
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if f.Supplier != "" && f.Supplier != "all" && p.Supplier != f.Supplier {
			continue
		}
		if f.LowStockOnly && !IsLowStock(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// LowStockProducts returns the products currently at or below their alert level.
func LowStockProducts(products []Product) []Product {
	return FilterProducts(products, ProductFilter{LowStockOnly: true})
}

// ValidateProduct rejects drafts with a missing name or category or a negative
// quantity, and fills in the default image reference. Validation happens here,
// at construction, rather than at scattered call sites.
func ValidateProduct(p *Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return Validationf("product name is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return Validationf("product category is required")
	}
	if p.Quantity < 0 {
		return Validationf("quantity cannot be negative")
	}
	if p.Image == "" {
		p.Image = DefaultProductImage
	}
	return nil
}

// ValidateSupplier rejects supplier drafts missing a name or contact details.
func ValidateSupplier(s *Supplier) error {
	if strings.TrimSpace(s.Name) == "" {
		return Validationf("supplier name is required")
	}
	if strings.TrimSpace(s.Contact) == "" && strings.TrimSpace(s.Email) == "" && strings.TrimSpace(s.Phone) == "" {
		return Validationf("supplier needs a contact person, phone, or email")
	}
	if s.Status == "" {
		s.Status = SupplierActive
	}
	if s.Status != SupplierActive && s.Status != SupplierInactive {
		return Validationf("supplier status must be active or inactive")
	}
	return nil
}
