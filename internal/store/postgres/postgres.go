// Package postgres implements store.Store on pgx. It is selected when
// DATABASE_URL is configured; the schema lives in cmd/seed.
//
// Line items are stored as JSONB on their owning sale/debt row — they are
// denormalized snapshots, never joined against products.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"retail-manager/internal/core"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() {
	s.pool.Close()
}

// ── Products ──────────────────────────────────────────────────────────────────

const productColumns = "id, name, category, quantity, unit, cost_price, selling_price, supplier, stock_alert, last_restocked, image"

func scanProduct(row pgx.Row) (*core.Product, error) {
	var p core.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Unit,
		&p.CostPrice, &p.SellingPrice, &p.Supplier, &p.StockAlert, &p.LastRestocked, &p.Image)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]core.Product, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []core.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *Store) GetProduct(ctx context.Context, id int) (*core.Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product id=%d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return p, nil
}

func (s *Store) AddProduct(ctx context.Context, p core.Product) (*core.Product, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO products (name, category, quantity, unit, cost_price, selling_price, supplier, stock_alert, last_restocked, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, p.Name, p.Category, p.Quantity, p.Unit, p.CostPrice, p.SellingPrice,
		p.Supplier, p.StockAlert, p.LastRestocked, p.Image).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return &p, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id int, p core.Product) (*core.Product, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE products
		SET name = $2, category = $3, quantity = $4, unit = $5, cost_price = $6,
		    selling_price = $7, supplier = $8, stock_alert = $9, last_restocked = $10, image = $11
		WHERE id = $1
	`, id, p.Name, p.Category, p.Quantity, p.Unit, p.CostPrice, p.SellingPrice,
		p.Supplier, p.StockAlert, p.LastRestocked, p.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("product id=%d: %w", id, core.ErrNotFound)
	}
	p.ID = id
	return &p, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product id=%d: %w", id, core.ErrNotFound)
	}
	return nil
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

const supplierColumns = "id, name, category, contact, phone, email, street, city, state, postal_code, country, status"

func scanSupplier(row pgx.Row) (*core.Supplier, error) {
	var sup core.Supplier
	err := row.Scan(&sup.ID, &sup.Name, &sup.Category, &sup.Contact, &sup.Phone, &sup.Email,
		&sup.Street, &sup.City, &sup.State, &sup.PostalCode, &sup.Country, &sup.Status)
	if err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *Store) ListSuppliers(ctx context.Context) ([]core.Supplier, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+supplierColumns+`
		FROM suppliers
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []core.Supplier
	for rows.Next() {
		sup, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, *sup)
	}
	return suppliers, rows.Err()
}

func (s *Store) GetSupplier(ctx context.Context, id int) (*core.Supplier, error) {
	sup, err := scanSupplier(s.pool.QueryRow(ctx, `
		SELECT `+supplierColumns+`
		FROM suppliers
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("supplier id=%d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch supplier: %w", err)
	}
	return sup, nil
}

func (s *Store) AddSupplier(ctx context.Context, sup core.Supplier) (*core.Supplier, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO suppliers (name, category, contact, phone, email, street, city, state, postal_code, country, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, sup.Name, sup.Category, sup.Contact, sup.Phone, sup.Email,
		sup.Street, sup.City, sup.State, sup.PostalCode, sup.Country, sup.Status).Scan(&sup.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert supplier: %w", err)
	}
	return &sup, nil
}

func (s *Store) UpdateSupplier(ctx context.Context, id int, sup core.Supplier) (*core.Supplier, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE suppliers
		SET name = $2, category = $3, contact = $4, phone = $5, email = $6,
		    street = $7, city = $8, state = $9, postal_code = $10, country = $11, status = $12
		WHERE id = $1
	`, id, sup.Name, sup.Category, sup.Contact, sup.Phone, sup.Email,
		sup.Street, sup.City, sup.State, sup.PostalCode, sup.Country, sup.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("supplier id=%d: %w", id, core.ErrNotFound)
	}
	sup.ID = id
	return &sup, nil
}

func (s *Store) DeleteSupplier(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("supplier id=%d: %w", id, core.ErrNotFound)
	}
	return nil
}

// ── Sales ─────────────────────────────────────────────────────────────────────

func (s *Store) ListSales(ctx context.Context) ([]core.Sale, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, date, items, total_amount, payment_type, status, customer_name, due_date, debt_id
		FROM sales
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []core.Sale
	for rows.Next() {
		var sale core.Sale
		var items []byte
		if err := rows.Scan(&sale.ID, &sale.Date, &items, &sale.TotalAmount,
			&sale.PaymentType, &sale.Status, &sale.CustomerName, &sale.DueDate, &sale.DebtID); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		if err := json.Unmarshal(items, &sale.Items); err != nil {
			return nil, fmt.Errorf("failed to decode sale items: %w", err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

// RecordSale runs in a single transaction: stock rows are locked and
// decremented, the sale is inserted, and a linked debt is created for credit
// sales. Any failure rolls the whole thing back.
func (s *Store) RecordSale(ctx context.Context, sale core.Sale) (*core.Sale, *core.Debt, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, item := range sale.Items {
		if item.ProductID == 0 {
			continue
		}
		var name, unit string
		var qty int
		err := tx.QueryRow(ctx, `
			SELECT name, unit, quantity
			FROM products
			WHERE id = $1
			FOR UPDATE
		`, item.ProductID).Scan(&name, &unit, &qty)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil, fmt.Errorf("product id=%d: %w", item.ProductID, core.ErrNotFound)
			}
			return nil, nil, fmt.Errorf("failed to lock product: %w", err)
		}
		if qty < item.Quantity {
			return nil, nil, core.Validationf("only %d %s of %s available in stock", qty, unit, name)
		}
		if _, err := tx.Exec(ctx, `
			UPDATE products SET quantity = quantity - $2 WHERE id = $1
		`, item.ProductID, item.Quantity); err != nil {
			return nil, nil, fmt.Errorf("failed to decrement stock: %w", err)
		}
	}

	items, err := json.Marshal(sale.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode sale items: %w", err)
	}

	var debt *core.Debt
	if sale.PaymentType == core.PaymentCredit {
		d := core.Debt{
			CustomerName: sale.CustomerName,
			Amount:       sale.TotalAmount,
			CreatedDate:  sale.Date,
			DueDate:      sale.DueDate,
			Items:        sale.Items,
			Status:       core.DebtPending,
		}
		err := tx.QueryRow(ctx, `
			INSERT INTO debts (customer_name, amount, created_date, due_date, items, status, notified)
			VALUES ($1, $2, $3, $4, $5, $6, false)
			RETURNING id
		`, d.CustomerName, d.Amount, d.CreatedDate, d.DueDate, items, d.Status).Scan(&d.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to insert debt: %w", err)
		}
		sale.DebtID = &d.ID
		debt = &d
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO sales (date, items, total_amount, payment_type, status, customer_name, due_date, debt_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, sale.Date, items, sale.TotalAmount, sale.PaymentType, sale.Status,
		sale.CustomerName, sale.DueDate, sale.DebtID).Scan(&sale.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert sale: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit sale: %w", err)
	}
	return &sale, debt, nil
}

func (s *Store) DeleteSale(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM sales WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sale id=%d: %w", id, core.ErrNotFound)
	}
	return nil
}

// ── Debts ─────────────────────────────────────────────────────────────────────

const debtColumns = "id, customer_name, amount, created_date, due_date, items, status, notified"

func scanDebt(row pgx.Row) (*core.Debt, error) {
	var d core.Debt
	var items []byte
	err := row.Scan(&d.ID, &d.CustomerName, &d.Amount, &d.CreatedDate, &d.DueDate,
		&items, &d.Status, &d.Notified)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &d.Items); err != nil {
		return nil, fmt.Errorf("failed to decode debt items: %w", err)
	}
	return &d, nil
}

func (s *Store) ListDebts(ctx context.Context) ([]core.Debt, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+debtColumns+`
		FROM debts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	var debts []core.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, *d)
	}
	return debts, rows.Err()
}

func (s *Store) GetDebt(ctx context.Context, id int) (*core.Debt, error) {
	d, err := scanDebt(s.pool.QueryRow(ctx, `
		SELECT `+debtColumns+`
		FROM debts
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("debt id=%d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch debt: %w", err)
	}
	return d, nil
}

func (s *Store) AddDebt(ctx context.Context, d core.Debt) (*core.Debt, error) {
	items, err := json.Marshal(d.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode debt items: %w", err)
	}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO debts (customer_name, amount, created_date, due_date, items, status, notified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, d.CustomerName, d.Amount, d.CreatedDate, d.DueDate, items, d.Status, d.Notified).Scan(&d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert debt: %w", err)
	}
	return &d, nil
}

func (s *Store) UpdateDebt(ctx context.Context, id int, d core.Debt) (*core.Debt, error) {
	items, err := json.Marshal(d.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode debt items: %w", err)
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE debts
		SET customer_name = $2, amount = $3, created_date = $4, due_date = $5,
		    items = $6, status = $7, notified = $8
		WHERE id = $1
	`, id, d.CustomerName, d.Amount, d.CreatedDate, d.DueDate, items, d.Status, d.Notified)
	if err != nil {
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("debt id=%d: %w", id, core.ErrNotFound)
	}
	d.ID = id
	return &d, nil
}

// ── Users ─────────────────────────────────────────────────────────────────────

func (s *Store) CreateUser(ctx context.Context, u core.User) (*core.User, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", u.Email).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, core.Validationf("an account with this email already exists")
	}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, shop_name, address, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, u.FirstName, u.LastName, u.Email, u.ShopName, u.Address, u.PasswordHash).Scan(&u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return &u, nil
}

const userColumns = "id, first_name, last_name, email, shop_name, address, password_hash"

func scanUser(row pgx.Row) (*core.User, error) {
	var u core.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.ShopName, &u.Address, &u.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", email, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int) (*core.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user id=%d: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}
