// Package store defines the persistence boundary of the application.
//
// Two implementations exist: memory.Store, a mutex-guarded in-memory store
// seeded with sample data for dev/demo mode and tests, and postgres.Store,
// used when DATABASE_URL is configured. Each collection hands out small
// sequential IDs starting at 1; this is only safe because a single logical
// writer owns each collection (see the concurrency notes in DESIGN.md).
package store

import (
	"context"

	"retail-manager/internal/core"
)

// Store is the single persistence interface the application service talks to.
// Mutating calls return the stored record with its assigned ID. Lookups for
// missing records return core.ErrNotFound.
type Store interface {
	// Products
	ListProducts(ctx context.Context) ([]core.Product, error)
	GetProduct(ctx context.Context, id int) (*core.Product, error)
	AddProduct(ctx context.Context, p core.Product) (*core.Product, error)
	UpdateProduct(ctx context.Context, id int, p core.Product) (*core.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	// Suppliers
	ListSuppliers(ctx context.Context) ([]core.Supplier, error)
	GetSupplier(ctx context.Context, id int) (*core.Supplier, error)
	AddSupplier(ctx context.Context, s core.Supplier) (*core.Supplier, error)
	UpdateSupplier(ctx context.Context, id int, s core.Supplier) (*core.Supplier, error)
	DeleteSupplier(ctx context.Context, id int) error

	// Sales. RecordSale atomically stores the sale, decrements the sold
	// products' quantities, and — for credit sales — creates the linked debt,
	// returning it alongside the stored sale.
	ListSales(ctx context.Context) ([]core.Sale, error)
	RecordSale(ctx context.Context, sale core.Sale) (*core.Sale, *core.Debt, error)
	DeleteSale(ctx context.Context, id int) error

	// Debts
	ListDebts(ctx context.Context) ([]core.Debt, error)
	GetDebt(ctx context.Context, id int) (*core.Debt, error)
	AddDebt(ctx context.Context, d core.Debt) (*core.Debt, error)
	UpdateDebt(ctx context.Context, id int, d core.Debt) (*core.Debt, error)

	// Users
	CreateUser(ctx context.Context, u core.User) (*core.User, error)
	GetUserByEmail(ctx context.Context, email string) (*core.User, error)
	GetUserByID(ctx context.Context, id int) (*core.User, error)

	Close()
}
