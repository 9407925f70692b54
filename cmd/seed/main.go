// seed creates the retail-manager schema in PostgreSQL and loads the sample
// dataset (the same one the in-memory store ships with). Existing rows are
// wiped first, so run it only against a dev or demo database.
//
// Usage: DATABASE_URL=... go run ./cmd/seed
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"

	"retail-manager/internal/db"
	"retail-manager/internal/store/memory"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id             SERIAL PRIMARY KEY,
	name           TEXT NOT NULL,
	category       TEXT NOT NULL,
	quantity       INTEGER NOT NULL DEFAULT 0,
	unit           TEXT NOT NULL DEFAULT '',
	cost_price     NUMERIC(12,2) NOT NULL DEFAULT 0,
	selling_price  NUMERIC(12,2) NOT NULL DEFAULT 0,
	supplier       TEXT NOT NULL DEFAULT '',
	stock_alert    INTEGER NOT NULL DEFAULT 0,
	last_restocked TEXT NOT NULL DEFAULT '',
	image          TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS suppliers (
	id          SERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	contact     TEXT NOT NULL DEFAULT '',
	phone       TEXT NOT NULL DEFAULT '',
	email       TEXT NOT NULL DEFAULT '',
	street      TEXT NOT NULL DEFAULT '',
	city        TEXT NOT NULL DEFAULT '',
	state       TEXT NOT NULL DEFAULT '',
	postal_code TEXT NOT NULL DEFAULT '',
	country     TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'active'
);

CREATE TABLE IF NOT EXISTS debts (
	id            SERIAL PRIMARY KEY,
	customer_name TEXT NOT NULL,
	amount        NUMERIC(12,2) NOT NULL,
	created_date  TEXT NOT NULL,
	due_date      TEXT NOT NULL,
	items         JSONB NOT NULL DEFAULT '[]',
	status        TEXT NOT NULL DEFAULT 'pending',
	notified      BOOLEAN NOT NULL DEFAULT false
);

CREATE TABLE IF NOT EXISTS sales (
	id            SERIAL PRIMARY KEY,
	date          TEXT NOT NULL,
	items         JSONB NOT NULL DEFAULT '[]',
	total_amount  NUMERIC(12,2) NOT NULL,
	payment_type  TEXT NOT NULL,
	status        TEXT NOT NULL,
	customer_name TEXT NOT NULL DEFAULT '',
	due_date      TEXT NOT NULL DEFAULT '',
	debt_id       INTEGER REFERENCES debts(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL UNIQUE,
	shop_name     TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL
);
`

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Clearing existing data...")
	if _, err := tx.Exec(ctx, `
		TRUNCATE sales, debts, products, suppliers, users RESTART IDENTITY CASCADE;
	`); err != nil {
		log.Fatalf("Failed to clear tables: %v", err)
	}

	seed := memory.DefaultSeed()

	log.Println("Restoring products...")
	for _, p := range seed.Products {
		if _, err := tx.Exec(ctx, `
			INSERT INTO products (name, category, quantity, unit, cost_price, selling_price, supplier, stock_alert, last_restocked, image)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, p.Name, p.Category, p.Quantity, p.Unit, p.CostPrice, p.SellingPrice,
			p.Supplier, p.StockAlert, p.LastRestocked, p.Image); err != nil {
			log.Fatalf("Failed to insert product %q: %v", p.Name, err)
		}
	}

	log.Println("Restoring suppliers...")
	for _, s := range seed.Suppliers {
		if _, err := tx.Exec(ctx, `
			INSERT INTO suppliers (name, category, contact, phone, email, street, city, state, postal_code, country, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, s.Name, s.Category, s.Contact, s.Phone, s.Email,
			s.Street, s.City, s.State, s.PostalCode, s.Country, s.Status); err != nil {
			log.Fatalf("Failed to insert supplier %q: %v", s.Name, err)
		}
	}

	log.Println("Restoring debts...")
	for _, d := range seed.Debts {
		items, err := json.Marshal(d.Items)
		if err != nil {
			log.Fatalf("Failed to encode debt items: %v", err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO debts (customer_name, amount, created_date, due_date, items, status, notified)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, d.CustomerName, d.Amount, d.CreatedDate, d.DueDate, items, d.Status, d.Notified); err != nil {
			log.Fatalf("Failed to insert debt for %q: %v", d.CustomerName, err)
		}
	}

	log.Println("Restoring sales...")
	for _, s := range seed.Sales {
		items, err := json.Marshal(s.Items)
		if err != nil {
			log.Fatalf("Failed to encode sale items: %v", err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO sales (date, items, total_amount, payment_type, status, customer_name, due_date, debt_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.Date, items, s.TotalAmount, s.PaymentType, s.Status,
			s.CustomerName, s.DueDate, s.DebtID); err != nil {
			log.Fatalf("Failed to insert sale %d: %v", s.ID, err)
		}
	}

	log.Println("Restoring demo user...")
	for _, u := range seed.Users {
		if _, err := tx.Exec(ctx, `
			INSERT INTO users (first_name, last_name, email, shop_name, address, password_hash)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, u.FirstName, u.LastName, u.Email, u.ShopName, u.Address, u.PasswordHash); err != nil {
			log.Fatalf("Failed to insert user %q: %v", u.Email, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}
	log.Println("Seed restored.")
}
