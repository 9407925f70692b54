package core_test

import (
	"testing"

	"retail-manager/internal/core"

	"github.com/shopspring/decimal"
)

func productFixture() []core.Product {
	return []core.Product{
		{ID: 1, Name: "Rice", Category: "Grains", Quantity: 50, Unit: "kg", CostPrice: decimal.NewFromFloat(2.5), SellingPrice: decimal.NewFromFloat(3.5), Supplier: "Global Foods Inc.", StockAlert: 10},
		{ID: 2, Name: "Sugar", Category: "Sweeteners", Quantity: 5, Unit: "kg", CostPrice: decimal.NewFromFloat(1.8), SellingPrice: decimal.NewFromFloat(2.5), Supplier: "Global Foods Inc.", StockAlert: 5},
		{ID: 3, Name: "Beans", Category: "Legumes", Quantity: 3, Unit: "kg", CostPrice: decimal.NewFromFloat(3.2), SellingPrice: decimal.NewFromFloat(4.5), Supplier: "Farm Direct", StockAlert: 8},
	}
}

func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		alert    int
		want     bool
	}{
		{"well stocked", 50, 10, false},
		{"exactly at threshold", 10, 10, true},
		{"below threshold", 3, 8, true},
		{"one above threshold", 11, 10, false},
		{"zero stock", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := core.Product{Quantity: tt.quantity, StockAlert: tt.alert}
			if got := core.IsLowStock(p); got != tt.want {
				t.Errorf("IsLowStock(qty=%d alert=%d) = %v, want %v", tt.quantity, tt.alert, got, tt.want)
			}
		})
	}
}

func TestFilterProducts(t *testing.T) {
	products := productFixture()

	tests := []struct {
		name    string
		filter  core.ProductFilter
		wantIDs []int
	}{
		{"no filter returns all", core.ProductFilter{}, []int{1, 2, 3}},
		{"search matches name", core.ProductFilter{Search: "rice"}, []int{1}},
		{"search matches supplier", core.ProductFilter{Search: "global"}, []int{1, 2}},
		{"category all", core.ProductFilter{Category: "all"}, []int{1, 2, 3}},
		{"category exact", core.ProductFilter{Category: "Legumes"}, []int{3}},
		{"supplier exact", core.ProductFilter{Supplier: "Farm Direct"}, []int{3}},
		{"low stock only", core.ProductFilter{LowStockOnly: true}, []int{2, 3}},
		{"combined", core.ProductFilter{Search: "global", LowStockOnly: true}, []int{2}},
		{"no match", core.ProductFilter{Search: "salt"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.FilterProducts(products, tt.filter)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d products, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("position %d: got id %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name    string
		product core.Product
		wantErr bool
	}{
		{"valid", core.Product{Name: "Salt", Category: "Seasonings", Quantity: 20}, false},
		{"empty name", core.Product{Category: "Seasonings"}, true},
		{"whitespace name", core.Product{Name: "   ", Category: "Seasonings"}, true},
		{"empty category", core.Product{Name: "Salt"}, true},
		{"negative quantity", core.Product{Name: "Salt", Category: "Seasonings", Quantity: -1}, true},
		{"zero quantity allowed", core.Product{Name: "Salt", Category: "Seasonings", Quantity: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.ValidateProduct(&tt.product)
			if tt.wantErr {
				if !core.IsValidation(err) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateProduct: %v", err)
			}
			if tt.product.Image == "" {
				t.Error("default image was not substituted")
			}
		})
	}
}

func TestValidateProduct_KeepsSuppliedImage(t *testing.T) {
	p := core.Product{Name: "Salt", Category: "Seasonings", Image: "https://example.com/salt.jpg"}
	if err := core.ValidateProduct(&p); err != nil {
		t.Fatalf("ValidateProduct: %v", err)
	}
	if p.Image != "https://example.com/salt.jpg" {
		t.Errorf("supplied image was replaced with %q", p.Image)
	}
}

func TestValidateSupplier(t *testing.T) {
	tests := []struct {
		name     string
		supplier core.Supplier
		wantErr  bool
	}{
		{"valid", core.Supplier{Name: "Global Foods Inc.", Contact: "John Smith"}, false},
		{"email only contact", core.Supplier{Name: "Global Foods Inc.", Email: "j@gf.com"}, false},
		{"missing name", core.Supplier{Contact: "John Smith"}, true},
		{"no contact details", core.Supplier{Name: "Global Foods Inc."}, true},
		{"bad status", core.Supplier{Name: "X", Contact: "Y", Status: "dormant"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.ValidateSupplier(&tt.supplier)
			if tt.wantErr != (err != nil) {
				t.Errorf("ValidateSupplier error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.supplier.Status == "" {
				t.Error("status default was not applied")
			}
		})
	}
}
