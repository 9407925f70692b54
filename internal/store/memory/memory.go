// Package memory implements store.Store entirely in process memory.
//
// It backs dev/demo mode and the test suite. A single RWMutex serializes all
// access: one logical writer per collection, synchronous recompute on every
// mutation. IDs come from per-collection monotonic counters owned by the
// store — valid only under this single-writer model.
package memory

import (
	"context"
	"fmt"
	"sync"

	"retail-manager/internal/core"
)

type Store struct {
	mu sync.RWMutex

	products  []core.Product
	suppliers []core.Supplier
	sales     []core.Sale
	debts     []core.Debt
	users     []core.User

	nextProductID  int
	nextSupplierID int
	nextSaleID     int
	nextDebtID     int
	nextUserID     int

	seed Seed
}

// Seed is the initial dataset injected at construction. No module-level
// sample arrays: callers pass DefaultSeed() or build their own.
type Seed struct {
	Products  []core.Product
	Suppliers []core.Supplier
	Sales     []core.Sale
	Debts     []core.Debt
	Users     []core.User
}

// New builds a Store holding a copy of seed. The seed is kept so tests can
// Reset back to it.
func New(seed Seed) *Store {
	s := &Store{seed: seed}
	s.load(seed)
	return s
}

// Reset discards all state and reloads the construction-time seed.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(s.seed)
}

func (s *Store) load(seed Seed) {
	s.products = append([]core.Product(nil), seed.Products...)
	s.suppliers = append([]core.Supplier(nil), seed.Suppliers...)
	s.sales = append([]core.Sale(nil), seed.Sales...)
	s.debts = append([]core.Debt(nil), seed.Debts...)
	s.users = append([]core.User(nil), seed.Users...)

	s.nextProductID = maxID(len(s.products), func(i int) int { return s.products[i].ID }) + 1
	s.nextSupplierID = maxID(len(s.suppliers), func(i int) int { return s.suppliers[i].ID }) + 1
	s.nextSaleID = maxID(len(s.sales), func(i int) int { return s.sales[i].ID }) + 1
	s.nextDebtID = maxID(len(s.debts), func(i int) int { return s.debts[i].ID }) + 1
	s.nextUserID = maxID(len(s.users), func(i int) int { return s.users[i].ID }) + 1
}

func maxID(n int, id func(int) int) int {
	max := 0
	for i := 0; i < n; i++ {
		if v := id(i); v > max {
			max = v
		}
	}
	return max
}

func (s *Store) Close() {}

// ── Products ──────────────────────────────────────────────────────────────────

func (s *Store) ListProducts(ctx context.Context) ([]core.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Product(nil), s.products...), nil
}

func (s *Store) GetProduct(ctx context.Context, id int) (*core.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product id=%d: %w", id, core.ErrNotFound)
}

func (s *Store) AddProduct(ctx context.Context, p core.Product) (*core.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, p)
	return &p, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id int, p core.Product) (*core.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p.ID = id
			s.products[i] = p
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product id=%d: %w", id, core.ErrNotFound)
}

func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product id=%d: %w", id, core.ErrNotFound)
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

func (s *Store) ListSuppliers(ctx context.Context) ([]core.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Supplier(nil), s.suppliers...), nil
}

func (s *Store) GetSupplier(ctx context.Context, id int) (*core.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			sup := s.suppliers[i]
			return &sup, nil
		}
	}
	return nil, fmt.Errorf("supplier id=%d: %w", id, core.ErrNotFound)
}

func (s *Store) AddSupplier(ctx context.Context, sup core.Supplier) (*core.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sup.ID = s.nextSupplierID
	s.nextSupplierID++
	s.suppliers = append(s.suppliers, sup)
	return &sup, nil
}

func (s *Store) UpdateSupplier(ctx context.Context, id int, sup core.Supplier) (*core.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			sup.ID = id
			s.suppliers[i] = sup
			return &sup, nil
		}
	}
	return nil, fmt.Errorf("supplier id=%d: %w", id, core.ErrNotFound)
}

func (s *Store) DeleteSupplier(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("supplier id=%d: %w", id, core.ErrNotFound)
}

// ── Sales ─────────────────────────────────────────────────────────────────────

func (s *Store) ListSales(ctx context.Context) ([]core.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Sale(nil), s.sales...), nil
}

// RecordSale stores the sale, decrements sold product quantities, and creates
// the linked debt for credit sales. Stock is re-checked under the write lock;
// the cart's earlier ceiling check makes a shortfall unreachable in the
// single-writer model, but the store refuses to go negative regardless.
func (s *Store) RecordSale(ctx context.Context, sale core.Sale) (*core.Sale, *core.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range sale.Items {
		if item.ProductID == 0 {
			continue
		}
		found := false
		for i := range s.products {
			if s.products[i].ID == item.ProductID {
				found = true
				if s.products[i].Quantity < item.Quantity {
					return nil, nil, core.Validationf("only %d %s of %s available in stock",
						s.products[i].Quantity, s.products[i].Unit, s.products[i].Name)
				}
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("product id=%d: %w", item.ProductID, core.ErrNotFound)
		}
	}

	for _, item := range sale.Items {
		for i := range s.products {
			if s.products[i].ID == item.ProductID {
				s.products[i].Quantity -= item.Quantity
			}
		}
	}

	sale.ID = s.nextSaleID
	s.nextSaleID++

	var debt *core.Debt
	if sale.PaymentType == core.PaymentCredit {
		d := core.Debt{
			ID:           s.nextDebtID,
			CustomerName: sale.CustomerName,
			Amount:       sale.TotalAmount,
			CreatedDate:  sale.Date,
			DueDate:      sale.DueDate,
			Items:        append([]core.LineItem(nil), sale.Items...),
			Status:       core.DebtPending,
		}
		s.nextDebtID++
		s.debts = append(s.debts, d)
		sale.DebtID = &d.ID
		debt = &d
	}

	s.sales = append(s.sales, sale)
	return &sale, debt, nil
}

// DeleteSale removes the sale record only. Inventory is not restocked and any
// linked debt stands — the debt is an obligation, not bookkeeping.
func (s *Store) DeleteSale(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sales {
		if s.sales[i].ID == id {
			s.sales = append(s.sales[:i], s.sales[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("sale id=%d: %w", id, core.ErrNotFound)
}

// ── Debts ─────────────────────────────────────────────────────────────────────

func (s *Store) ListDebts(ctx context.Context) ([]core.Debt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Debt(nil), s.debts...), nil
}

func (s *Store) GetDebt(ctx context.Context, id int) (*core.Debt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.debts {
		if s.debts[i].ID == id {
			d := s.debts[i]
			return &d, nil
		}
	}
	return nil, fmt.Errorf("debt id=%d: %w", id, core.ErrNotFound)
}

func (s *Store) AddDebt(ctx context.Context, d core.Debt) (*core.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.nextDebtID
	s.nextDebtID++
	s.debts = append(s.debts, d)
	return &d, nil
}

func (s *Store) UpdateDebt(ctx context.Context, id int, d core.Debt) (*core.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.debts {
		if s.debts[i].ID == id {
			d.ID = id
			s.debts[i] = d
			return &d, nil
		}
	}
	return nil, fmt.Errorf("debt id=%d: %w", id, core.ErrNotFound)
}

// ── Users ─────────────────────────────────────────────────────────────────────

func (s *Store) CreateUser(ctx context.Context, u core.User) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == u.Email {
			return nil, core.Validationf("an account with this email already exists")
		}
	}
	u.ID = s.nextUserID
	s.nextUserID++
	s.users = append(s.users, u)
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", email, core.ErrNotFound)
}

func (s *Store) GetUserByID(ctx context.Context, id int) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user id=%d: %w", id, core.ErrNotFound)
}
