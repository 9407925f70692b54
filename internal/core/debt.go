package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for all dates in the system.
const DateLayout = "2006-01-02"

// dueSoonWindowDays is the inclusive window for the "due soon" bucket.
const dueSoonWindowDays = 3

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Today truncates t to UTC midnight so date arithmetic works in whole days.
func Today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DueDays returns the number of days until the debt is due, relative to today.
// Zero means due today; a negative value means overdue by that many days.
// A malformed due date counts as due today.
func DueDays(d Debt, today time.Time) int {
	due, err := ParseDate(d.DueDate)
	if err != nil {
		return 0
	}
	return int(due.Sub(Today(today)).Hours() / 24)
}

// IsOverdue reports whether a pending debt's due date has passed.
// Paid and already-overdue debts are not re-evaluated.
func IsOverdue(d Debt, today time.Time) bool {
	return d.Status == DebtPending && DueDays(d, today) < 0
}

// DueLabel renders the user-facing payment status for a debt.
func DueLabel(d Debt, today time.Time) string {
	if d.Status == DebtPaid {
		return "Paid"
	}
	days := DueDays(d, today)
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "Due today"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// ReclassifyDebts maps every pending debt whose due date has passed to overdue
// and returns the updated collection with the number of debts reclassified.
// The input slice is not mutated. Applying it twice yields the same result as
// once: a reclassified debt is no longer pending, so it cannot match again.
func ReclassifyDebts(debts []Debt, today time.Time) ([]Debt, int) {
	out := make([]Debt, len(debts))
	copy(out, debts)
	count := 0
	for i := range out {
		if IsOverdue(out[i], today) {
			out[i].Status = DebtOverdue
			count++
		}
	}
	return out, count
}

// DebtTotals aggregates a debt collection for the summary cards.
type DebtTotals struct {
	Outstanding      decimal.Decimal `json:"outstanding"`
	OutstandingCount int             `json:"outstanding_count"`
	Overdue          decimal.Decimal `json:"overdue"`
	OverdueCount     int             `json:"overdue_count"`
	DueSoon          decimal.Decimal `json:"due_soon"`
	DueSoonCount     int             `json:"due_soon_count"`
}

// TotalDebts computes outstanding (everything unpaid), overdue, and due-soon
// (pending, due within 3 days inclusive) sums.
func TotalDebts(debts []Debt, today time.Time) DebtTotals {
	t := DebtTotals{
		Outstanding: decimal.Zero,
		Overdue:     decimal.Zero,
		DueSoon:     decimal.Zero,
	}
	for _, d := range debts {
		if d.Status != DebtPaid {
			t.Outstanding = t.Outstanding.Add(d.Amount)
			t.OutstandingCount++
		}
		if d.Status == DebtOverdue {
			t.Overdue = t.Overdue.Add(d.Amount)
			t.OverdueCount++
		}
		if d.Status == DebtPending {
			if days := DueDays(d, today); days >= 0 && days <= dueSoonWindowDays {
				t.DueSoon = t.DueSoon.Add(d.Amount)
				t.DueSoonCount++
			}
		}
	}
	return t
}

// MarkDebtPaid sets the matching debt's status to paid. Paying an already-paid
// debt simply re-sets the field. Returns ErrNotFound for an unknown id.
func MarkDebtPaid(debts []Debt, id int) ([]Debt, error) {
	out := make([]Debt, len(debts))
	copy(out, debts)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = DebtPaid
			return out, nil
		}
	}
	return nil, fmt.Errorf("debt id=%d: %w", id, ErrNotFound)
}

// MarkDebtNotified flags the matching debt as reminded. Reminding a paid or
// already-notified debt is rejected — the call sites disable the action, and
// the engine blocks it regardless.
func MarkDebtNotified(debts []Debt, id int) ([]Debt, error) {
	out := make([]Debt, len(debts))
	copy(out, debts)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if out[i].Status == DebtPaid {
			return nil, Validationf("debt is already paid")
		}
		if out[i].Notified {
			return nil, Validationf("reminder already sent")
		}
		out[i].Notified = true
		return out, nil
	}
	return nil, fmt.Errorf("debt id=%d: %w", id, ErrNotFound)
}

// ValidateDebt checks a manually entered debt and fills defaults: a missing
// status becomes pending and a missing created date becomes today.
func ValidateDebt(d *Debt, today time.Time) error {
	if strings.TrimSpace(d.CustomerName) == "" {
		return Validationf("customer name is required")
	}
	if d.Amount.LessThanOrEqual(decimal.Zero) {
		return Validationf("amount must be greater than 0")
	}
	if _, err := ParseDate(d.DueDate); err != nil {
		return Validationf("invalid due date %q", d.DueDate)
	}
	if d.CreatedDate == "" {
		d.CreatedDate = Today(today).Format(DateLayout)
	} else if _, err := ParseDate(d.CreatedDate); err != nil {
		return Validationf("invalid created date %q", d.CreatedDate)
	}
	switch d.Status {
	case "":
		d.Status = DebtPending
	case DebtPending, DebtOverdue, DebtPaid:
	default:
		return Validationf("unknown debt status %q", d.Status)
	}
	return nil
}

// DebtSortKey selects the ordering of a filtered debt list.
type DebtSortKey string

const (
	SortByDueDate  DebtSortKey = "dueDate"      // ascending
	SortByAmount   DebtSortKey = "amount"       // descending
	SortByCustomer DebtSortKey = "customerName" // lexicographic ascending
)

// DebtFilter narrows and orders a debt collection.
// Status "all" (or empty) matches every status.
type DebtFilter struct {
	Search  string
	Status  string
	SortKey DebtSortKey
}

// FilterAndSortDebts applies a case-insensitive substring match on customer
// name, an exact status filter, and the requested ordering. The input slice
// is never mutated.
func FilterAndSortDebts(debts []Debt, f DebtFilter) []Debt {
	search := strings.ToLower(f.Search)
	out := make([]Debt, 0, len(debts))
	for _, d := range debts {
		if search != "" && !strings.Contains(strings.ToLower(d.CustomerName), search) {
			continue
		}
		if f.Status != "" && f.Status != "all" && string(d.Status) != f.Status {
			continue
		}
		out = append(out, d)
	}

	switch f.SortKey {
	case SortByAmount:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.GreaterThan(out[j].Amount)
		})
	case SortByCustomer:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CustomerName < out[j].CustomerName
		})
	default: // SortByDueDate
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DueDate < out[j].DueDate
		})
	}
	return out
}
