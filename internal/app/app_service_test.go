package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"retail-manager/internal/app"
	"retail-manager/internal/core"
	"retail-manager/internal/store/memory"
)

func newService(t *testing.T) (app.ApplicationService, *memory.Store) {
	t.Helper()
	st := memory.New(memory.DefaultSeed())
	return app.NewAppService(st, zerolog.Nop(), nil), st
}

func TestListDebtsPersistsReclassification(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	// seed debts 1 and 2 are pending with due dates long past
	result, err := svc.ListDebts(ctx, core.DebtFilter{})
	if err != nil {
		t.Fatalf("ListDebts: %v", err)
	}
	if result.Reclassified != 2 {
		t.Fatalf("reclassified = %d, want 2", result.Reclassified)
	}

	// the flips reached the store, not just the response
	for _, id := range []int{1, 2} {
		d, err := st.GetDebt(ctx, id)
		if err != nil {
			t.Fatalf("GetDebt(%d): %v", id, err)
		}
		if d.Status != core.DebtOverdue {
			t.Errorf("stored debt %d status = %q, want overdue", id, d.Status)
		}
	}

	// totals count every unpaid debt
	if result.Totals.OutstandingCount != 4 {
		t.Errorf("outstanding count = %d, want 4", result.Totals.OutstandingCount)
	}
	if result.Totals.OverdueCount != 4 {
		t.Errorf("overdue count = %d, want 4", result.Totals.OverdueCount)
	}
}

func TestRecordSaleRejectsPartialStock(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	_, err := svc.RecordSale(ctx, app.RecordSaleRequest{
		Lines: []app.SaleLineInput{
			{ProductID: 1, Quantity: 5},
			{ProductID: 3, Quantity: 500},
		},
		PaymentType: core.PaymentCash,
	})
	if !core.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}

	// first line must not have been applied
	rice, _ := st.GetProduct(ctx, 1)
	if rice.Quantity != 50 {
		t.Errorf("rice stock = %d after rejected sale, want 50", rice.Quantity)
	}
}

func TestAddDebtFillsDefaults(t *testing.T) {
	svc, _ := newService(t)

	added, err := svc.AddDebt(context.Background(), core.Debt{
		CustomerName: "Yaw Asante",
		Amount:       decimal.RequireFromString("12.50"),
		DueDate:      "2030-03-01",
	})
	if err != nil {
		t.Fatalf("AddDebt: %v", err)
	}
	if added.Status != core.DebtPending {
		t.Errorf("default status = %q, want pending", added.Status)
	}
	today := core.Today(time.Now()).Format(core.DateLayout)
	if added.CreatedDate != today {
		t.Errorf("created date = %q, want %q", added.CreatedDate, today)
	}

	_, err = svc.AddDebt(context.Background(), core.Debt{CustomerName: "", Amount: decimal.NewFromInt(5), DueDate: "2030-01-01"})
	if !core.IsValidation(err) {
		t.Errorf("missing name err = %v, want validation error", err)
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Signup(context.Background(), app.SignupRequest{
		FirstName: "A", LastName: "B", Email: "a@b.local", Password: "short",
	})
	if !core.IsValidation(err) {
		t.Errorf("short password err = %v, want validation error", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Login(context.Background(), memory.DemoEmail, "nope")
	if !errors.Is(err, core.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
	_, err = svc.Login(context.Background(), "ghost@shop.local", memory.DemoPassword)
	if !errors.Is(err, core.ErrUnauthorized) {
		t.Errorf("unknown email err = %v, want ErrUnauthorized", err)
	}
}

func TestAskAssistantDisabled(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.AskAssistant(context.Background(), "how much rice is left?")
	if !errors.Is(err, app.ErrAssistantDisabled) {
		t.Errorf("err = %v, want ErrAssistantDisabled", err)
	}
}

func TestDashboardSummary(t *testing.T) {
	svc, _ := newService(t)
	summary, err := svc.DashboardSummary(context.Background())
	if err != nil {
		t.Fatalf("DashboardSummary: %v", err)
	}
	if summary.SaleCount != 3 || summary.ProductCount != 3 {
		t.Errorf("counts = %d sales / %d products", summary.SaleCount, summary.ProductCount)
	}
	if !summary.TotalRevenue.Equal(decimal.RequireFromString("71")) {
		t.Errorf("revenue = %s, want 71", summary.TotalRevenue)
	}
	if summary.LowStockCount != 0 {
		t.Errorf("low stock = %d, want 0 (all seed products above alert)", summary.LowStockCount)
	}
}
