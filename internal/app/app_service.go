package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"retail-manager/internal/ai"
	"retail-manager/internal/core"
	"retail-manager/internal/store"
)

// ErrAssistantDisabled is returned by AskAssistant when no OpenAI API key is
// configured.
var ErrAssistantDisabled = errors.New("assistant is not configured")

type appService struct {
	store store.Store
	log   zerolog.Logger
	agent *ai.Agent // nil when the assistant is disabled
}

// NewAppService constructs an appService that satisfies ApplicationService.
// agent may be nil; AskAssistant then reports ErrAssistantDisabled.
func NewAppService(st store.Store, log zerolog.Logger, agent *ai.Agent) ApplicationService {
	return &appService{store: st, log: log, agent: agent}
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func (s *appService) Login(ctx context.Context, email, password string) (*core.User, error) {
	u, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrUnauthorized
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, core.ErrUnauthorized
	}
	return u, nil
}

func (s *appService) Signup(ctx context.Context, req SignupRequest) (*core.User, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, core.Validationf("first and last name are required")
	}
	if req.Email == "" {
		return nil, core.Validationf("email is required")
	}
	if len(req.Password) < 8 {
		return nil, core.Validationf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.store.CreateUser(ctx, core.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		ShopName:     req.ShopName,
		Address:      req.Address,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("email", u.Email).Msg("account created")
	return u, nil
}

func (s *appService) GetUser(ctx context.Context, id int) (*core.User, error) {
	return s.store.GetUserByID(ctx, id)
}

// ── Sales ─────────────────────────────────────────────────────────────────────

func (s *appService) ListSales(ctx context.Context) (*SaleListResult, error) {
	sales, err := s.store.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	return &SaleListResult{Sales: sales}, nil
}

func (s *appService) RecordSale(ctx context.Context, req RecordSaleRequest) (*SaleResult, error) {
	cart := core.NewCart()
	for _, line := range req.Lines {
		p, err := s.store.GetProduct(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return nil, core.Validationf("product %d not found", line.ProductID)
			}
			return nil, err
		}
		if err := cart.AddItem(p, line.Quantity); err != nil {
			return nil, err
		}
	}

	sale, err := cart.Complete(req.PaymentType, req.CustomerName, req.DueDate, time.Now())
	if err != nil {
		return nil, err
	}

	stored, debt, err := s.store.RecordSale(ctx, *sale)
	if err != nil {
		return nil, err
	}

	evt := s.log.Info().Int("sale_id", stored.ID).Str("payment_type", string(stored.PaymentType)).
		Str("total", stored.TotalAmount.String())
	if debt != nil {
		evt = evt.Int("debt_id", debt.ID)
	}
	evt.Msg("sale recorded")

	return &SaleResult{Sale: stored, Debt: debt}, nil
}

func (s *appService) DeleteSale(ctx context.Context, id int) error {
	return s.store.DeleteSale(ctx, id)
}

// ── Inventory ─────────────────────────────────────────────────────────────────

func (s *appService) ListProducts(ctx context.Context, filter core.ProductFilter) (*ProductListResult, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductListResult{Products: core.FilterProducts(products, filter)}, nil
}

func (s *appService) AddProduct(ctx context.Context, p core.Product) (*core.Product, error) {
	if err := core.ValidateProduct(&p); err != nil {
		return nil, err
	}
	if p.LastRestocked == "" {
		p.LastRestocked = core.Today(time.Now()).Format(core.DateLayout)
	}
	return s.store.AddProduct(ctx, p)
}

func (s *appService) UpdateProduct(ctx context.Context, id int, p core.Product) (*core.Product, error) {
	if err := core.ValidateProduct(&p); err != nil {
		return nil, err
	}
	return s.store.UpdateProduct(ctx, id, p)
}

func (s *appService) DeleteProduct(ctx context.Context, id int) error {
	return s.store.DeleteProduct(ctx, id)
}

// ── Debts ─────────────────────────────────────────────────────────────────────

// ListDebts is the reclassification point: every read sweeps pending debts
// whose due date has passed, persists the flips, and reports the count so the
// caller can show a single aggregate notification.
func (s *appService) ListDebts(ctx context.Context, filter core.DebtFilter) (*DebtListResult, error) {
	debts, err := s.store.ListDebts(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	reclassified, count := core.ReclassifyDebts(debts, today)
	if count > 0 {
		for i := range reclassified {
			if reclassified[i].Status == core.DebtOverdue && debts[i].Status == core.DebtPending {
				if _, err := s.store.UpdateDebt(ctx, reclassified[i].ID, reclassified[i]); err != nil {
					return nil, fmt.Errorf("failed to persist overdue status: %w", err)
				}
			}
		}
		s.log.Warn().Int("count", count).Msg("debts became overdue")
	}

	return &DebtListResult{
		Debts:        core.FilterAndSortDebts(reclassified, filter),
		Totals:       core.TotalDebts(reclassified, today),
		Reclassified: count,
	}, nil
}

func (s *appService) GetDebt(ctx context.Context, id int) (*core.Debt, error) {
	return s.store.GetDebt(ctx, id)
}

func (s *appService) AddDebt(ctx context.Context, d core.Debt) (*core.Debt, error) {
	if err := core.ValidateDebt(&d, time.Now()); err != nil {
		return nil, err
	}
	return s.store.AddDebt(ctx, d)
}

func (s *appService) UpdateDebt(ctx context.Context, id int, d core.Debt) (*core.Debt, error) {
	if err := core.ValidateDebt(&d, time.Now()); err != nil {
		return nil, err
	}
	return s.store.UpdateDebt(ctx, id, d)
}

func (s *appService) PayDebt(ctx context.Context, id int) (*core.Debt, error) {
	d, err := s.store.GetDebt(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := core.MarkDebtPaid([]core.Debt{*d}, id)
	if err != nil {
		return nil, err
	}
	paid, err := s.store.UpdateDebt(ctx, id, updated[0])
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("debt_id", id).Str("customer", paid.CustomerName).Msg("debt paid")
	return paid, nil
}

func (s *appService) RemindDebt(ctx context.Context, id int) (*core.Debt, error) {
	d, err := s.store.GetDebt(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := core.MarkDebtNotified([]core.Debt{*d}, id)
	if err != nil {
		return nil, err
	}
	notified, err := s.store.UpdateDebt(ctx, id, updated[0])
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("debt_id", id).Str("customer", notified.CustomerName).Msg("payment reminder sent")
	return notified, nil
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

func (s *appService) ListSuppliers(ctx context.Context) (*SupplierListResult, error) {
	suppliers, err := s.store.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	return &SupplierListResult{Suppliers: suppliers}, nil
}

func (s *appService) GetSupplier(ctx context.Context, id int) (*core.Supplier, error) {
	return s.store.GetSupplier(ctx, id)
}

func (s *appService) AddSupplier(ctx context.Context, sup core.Supplier) (*core.Supplier, error) {
	if err := core.ValidateSupplier(&sup); err != nil {
		return nil, err
	}
	return s.store.AddSupplier(ctx, sup)
}

func (s *appService) UpdateSupplier(ctx context.Context, id int, sup core.Supplier) (*core.Supplier, error) {
	if err := core.ValidateSupplier(&sup); err != nil {
		return nil, err
	}
	return s.store.UpdateSupplier(ctx, id, sup)
}

func (s *appService) DeleteSupplier(ctx context.Context, id int) error {
	return s.store.DeleteSupplier(ctx, id)
}

// ── Reports & dashboard ───────────────────────────────────────────────────────

func (s *appService) GenerateReport(ctx context.Context, period core.ReportPeriod, startDate, endDate string) (*core.SalesReport, error) {
	sales, err := s.store.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return core.BuildSalesReport(sales, products, period, startDate, endDate)
}

func (s *appService) DashboardSummary(ctx context.Context) (*DashboardSummaryResult, error) {
	sales, err := s.store.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	debts, err := s.store.ListDebts(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	reclassified, _ := core.ReclassifyDebts(debts, today)
	low := core.LowStockProducts(products)

	summary := &DashboardSummaryResult{
		SaleCount:        len(sales),
		ProductCount:     len(products),
		LowStockCount:    len(low),
		LowStockProducts: low,
		Debts:            core.TotalDebts(reclassified, today),
	}
	revenue := decimal.Zero
	for _, sale := range sales {
		revenue = revenue.Add(sale.TotalAmount)
	}
	summary.TotalRevenue = revenue
	return summary, nil
}

// ── Assistant ─────────────────────────────────────────────────────────────────

func (s *appService) AskAssistant(ctx context.Context, question string) (*AssistantResult, error) {
	if s.agent == nil {
		return nil, ErrAssistantDisabled
	}
	if question == "" {
		return nil, core.Validationf("question is required")
	}

	snapshot, err := s.buildShopSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	answer, err := s.agent.Ask(ctx, question, snapshot)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}
	return &AssistantResult{Answer: answer}, nil
}

func (s *appService) buildShopSnapshot(ctx context.Context) (*ai.ShopSnapshot, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	debts, err := s.store.ListDebts(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.store.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	reclassified, _ := core.ReclassifyDebts(debts, time.Now())
	return &ai.ShopSnapshot{
		Products: products,
		Debts:    reclassified,
		Sales:    sales,
	}, nil
}
