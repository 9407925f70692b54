package core_test

import (
	"errors"
	"testing"
	"time"

	"retail-manager/internal/core"

	"github.com/shopspring/decimal"
)

var testToday = time.Date(2023, 4, 12, 9, 30, 0, 0, time.UTC)

func debtFixture() []core.Debt {
	return []core.Debt{
		{ID: 1, CustomerName: "John Doe", Amount: decimal.NewFromFloat(35.00), CreatedDate: "2023-04-10", DueDate: "2023-04-20", Status: core.DebtPending},
		{ID: 2, CustomerName: "Sarah Williams", Amount: decimal.NewFromFloat(45.50), CreatedDate: "2023-04-05", DueDate: "2023-04-15", Status: core.DebtPending, Notified: true},
		{ID: 3, CustomerName: "Michael Johnson", Amount: decimal.NewFromFloat(67.25), CreatedDate: "2023-03-28", DueDate: "2023-04-07", Status: core.DebtPending},
		{ID: 4, CustomerName: "Linda Brown", Amount: decimal.NewFromFloat(23.75), CreatedDate: "2023-04-01", DueDate: "2023-04-08", Status: core.DebtOverdue},
		{ID: 5, CustomerName: "Johnny Cash", Amount: decimal.NewFromFloat(10.00), CreatedDate: "2023-04-01", DueDate: "2023-04-30", Status: core.DebtPaid},
	}
}

func TestDueDays(t *testing.T) {
	tests := []struct {
		name    string
		dueDate string
		want    int
	}{
		{"five days overdue", "2023-04-07", -5},
		{"due today", "2023-04-12", 0},
		{"due tomorrow", "2023-04-13", 1},
		{"due in a week", "2023-04-19", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := core.Debt{DueDate: tt.dueDate, Status: core.DebtPending}
			if got := core.DueDays(d, testToday); got != tt.want {
				t.Errorf("DueDays(%s) = %d, want %d", tt.dueDate, got, tt.want)
			}
		})
	}
}

func TestDueLabel(t *testing.T) {
	tests := []struct {
		name string
		debt core.Debt
		want string
	}{
		{"overdue", core.Debt{DueDate: "2023-04-07", Status: core.DebtPending}, "5 days overdue"},
		{"due today", core.Debt{DueDate: "2023-04-12", Status: core.DebtPending}, "Due today"},
		{"future", core.Debt{DueDate: "2023-04-15", Status: core.DebtPending}, "3 days"},
		{"paid wins over date", core.Debt{DueDate: "2023-04-01", Status: core.DebtPaid}, "Paid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.DueLabel(tt.debt, testToday); got != tt.want {
				t.Errorf("DueLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReclassifyDebts(t *testing.T) {
	debts := debtFixture()

	once, count := core.ReclassifyDebts(debts, testToday)
	if count != 1 {
		t.Fatalf("expected 1 reclassified debt, got %d", count)
	}
	// Only id 3 (due 04-07) flips: 1 and 2 are not yet due, 4 was already
	// overdue, 5 is paid.
	if once[1].Status != core.DebtPending {
		t.Errorf("debt 2 due 2023-04-15 should stay pending, got %s", once[1].Status)
	}
	if once[2].Status != core.DebtOverdue {
		t.Errorf("debt 3 should be overdue, got %s", once[2].Status)
	}
	if once[4].Status != core.DebtPaid {
		t.Errorf("paid debt must never be reclassified, got %s", once[4].Status)
	}

	// Input not mutated.
	if debts[2].Status != core.DebtPending {
		t.Error("ReclassifyDebts mutated its input")
	}

	// Idempotent: second application changes nothing.
	twice, count2 := core.ReclassifyDebts(once, testToday)
	if count2 != 0 {
		t.Errorf("second reclassify should report 0, got %d", count2)
	}
	for i := range once {
		if twice[i].Status != once[i].Status {
			t.Errorf("debt %d status changed on second pass: %s -> %s", once[i].ID, once[i].Status, twice[i].Status)
		}
	}
}

func TestReclassifyDebts_Count(t *testing.T) {
	// One pending debt already past due should flip and be counted.
	debts := []core.Debt{{ID: 1, DueDate: "2023-04-07", Status: core.DebtPending}}
	out, count := core.ReclassifyDebts(debts, testToday)
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
	if out[0].Status != core.DebtOverdue {
		t.Fatalf("expected overdue, got %s", out[0].Status)
	}
}

func TestTotalDebts(t *testing.T) {
	debts, _ := core.ReclassifyDebts(debtFixture(), testToday)
	totals := core.TotalDebts(debts, testToday)

	// Unpaid: 35.00 + 45.50 + 67.25 + 23.75 = 171.50
	if want := decimal.NewFromFloat(171.50); !totals.Outstanding.Equal(want) {
		t.Errorf("outstanding = %s, want %s", totals.Outstanding, want)
	}
	if totals.OutstandingCount != 4 {
		t.Errorf("outstanding count = %d, want 4", totals.OutstandingCount)
	}
	// Overdue after reclassify: 67.25 + 23.75 = 91.00
	if want := decimal.NewFromFloat(91.00); !totals.Overdue.Equal(want) {
		t.Errorf("overdue = %s, want %s", totals.Overdue, want)
	}
	// Due soon (pending, 0 <= dueDays <= 3): only Sarah, due 04-15.
	if want := decimal.NewFromFloat(45.50); !totals.DueSoon.Equal(want) {
		t.Errorf("due soon = %s, want %s", totals.DueSoon, want)
	}
	if totals.DueSoonCount != 1 {
		t.Errorf("due soon count = %d, want 1", totals.DueSoonCount)
	}
}

func TestMarkDebtPaid(t *testing.T) {
	debts := debtFixture()

	out, err := core.MarkDebtPaid(debts, 1)
	if err != nil {
		t.Fatalf("MarkDebtPaid: %v", err)
	}
	if out[0].Status != core.DebtPaid {
		t.Errorf("debt 1 should be paid, got %s", out[0].Status)
	}
	if debts[0].Status != core.DebtPending {
		t.Error("MarkDebtPaid mutated its input")
	}

	// Paying an already-paid debt re-sets the field without error.
	again, err := core.MarkDebtPaid(out, 1)
	if err != nil {
		t.Fatalf("second MarkDebtPaid: %v", err)
	}
	if again[0].Status != core.DebtPaid {
		t.Errorf("debt 1 should stay paid, got %s", again[0].Status)
	}

	if _, err := core.MarkDebtPaid(debts, 99); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestMarkDebtNotified(t *testing.T) {
	debts := debtFixture()

	out, err := core.MarkDebtNotified(debts, 1)
	if err != nil {
		t.Fatalf("MarkDebtNotified: %v", err)
	}
	if !out[0].Notified {
		t.Error("debt 1 should be notified")
	}

	if _, err := core.MarkDebtNotified(out, 1); !core.IsValidation(err) {
		t.Errorf("repeat reminder should be a validation error, got %v", err)
	}
	if _, err := core.MarkDebtNotified(debts, 5); !core.IsValidation(err) {
		t.Errorf("reminding a paid debt should be a validation error, got %v", err)
	}
	if _, err := core.MarkDebtNotified(debts, 99); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFilterAndSortDebts(t *testing.T) {
	debts := debtFixture()

	t.Run("search john all statuses by due date", func(t *testing.T) {
		got := core.FilterAndSortDebts(debts, core.DebtFilter{Search: "john", Status: "all", SortKey: core.SortByDueDate})
		// Matches: John Doe, Michael Johnson, Johnny Cash — due dates 04-20, 04-07, 04-30.
		wantIDs := []int{3, 1, 5}
		if len(got) != len(wantIDs) {
			t.Fatalf("expected %d debts, got %d", len(wantIDs), len(got))
		}
		for i, id := range wantIDs {
			if got[i].ID != id {
				t.Errorf("position %d: got id %d, want %d", i, got[i].ID, id)
			}
		}
	})

	t.Run("sort by amount descending", func(t *testing.T) {
		got := core.FilterAndSortDebts(debts, core.DebtFilter{Status: "all", SortKey: core.SortByAmount})
		for i := 1; i < len(got); i++ {
			if got[i].Amount.GreaterThan(got[i-1].Amount) {
				t.Errorf("amounts not descending at %d: %s > %s", i, got[i].Amount, got[i-1].Amount)
			}
		}
	})

	t.Run("sort by customer name", func(t *testing.T) {
		got := core.FilterAndSortDebts(debts, core.DebtFilter{SortKey: core.SortByCustomer})
		for i := 1; i < len(got); i++ {
			if got[i].CustomerName < got[i-1].CustomerName {
				t.Errorf("names not ascending at %d: %q < %q", i, got[i].CustomerName, got[i-1].CustomerName)
			}
		}
	})

	t.Run("status filter exact match", func(t *testing.T) {
		got := core.FilterAndSortDebts(debts, core.DebtFilter{Status: "paid"})
		if len(got) != 1 || got[0].ID != 5 {
			t.Fatalf("expected only debt 5, got %+v", got)
		}
	})

	t.Run("input never mutated by sort", func(t *testing.T) {
		core.FilterAndSortDebts(debts, core.DebtFilter{SortKey: core.SortByAmount})
		if debts[0].ID != 1 || debts[4].ID != 5 {
			t.Error("FilterAndSortDebts reordered its input")
		}
	})
}
