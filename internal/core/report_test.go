package core_test

import (
	"testing"

	"retail-manager/internal/core"

	"github.com/shopspring/decimal"
)

func reportSales() []core.Sale {
	d := decimal.NewFromFloat
	return []core.Sale{
		{
			ID: 1, Date: "2023-04-12", PaymentType: core.PaymentCash, Status: core.SaleCompleted,
			Items:       []core.LineItem{{ProductID: 1, Name: "Rice", Quantity: 5, Unit: "kg", Price: d(3.5), Total: d(17.5)}},
			TotalAmount: d(17.5),
		},
		{
			ID: 2, Date: "2023-04-11", PaymentType: core.PaymentCash, Status: core.SaleCompleted,
			Items: []core.LineItem{
				{ProductID: 2, Name: "Sugar", Quantity: 2, Unit: "kg", Price: d(2.5), Total: d(5)},
				{ProductID: 3, Name: "Beans", Quantity: 3, Unit: "kg", Price: d(4.5), Total: d(13.5)},
			},
			TotalAmount: d(18.5),
		},
		{
			ID: 3, Date: "2023-04-10", PaymentType: core.PaymentCredit, Status: core.SalePending,
			Items:       []core.LineItem{{ProductID: 1, Name: "Rice", Quantity: 10, Unit: "kg", Price: d(3.5), Total: d(35)}},
			TotalAmount: d(35), CustomerName: "John Doe", DueDate: "2023-04-20",
		},
		{
			// Outside the window — must be ignored.
			ID: 4, Date: "2023-03-01", PaymentType: core.PaymentCash, Status: core.SaleCompleted,
			Items:       []core.LineItem{{ProductID: 1, Name: "Rice", Quantity: 99, Unit: "kg", Price: d(3.5), Total: d(346.5)}},
			TotalAmount: d(346.5),
		},
	}
}

func TestBuildSalesReport(t *testing.T) {
	report, err := core.BuildSalesReport(reportSales(), productFixture(), core.PeriodDaily, "2023-04-01", "2023-04-30")
	if err != nil {
		t.Fatalf("BuildSalesReport: %v", err)
	}

	if report.Transactions != 3 {
		t.Errorf("transactions = %d, want 3", report.Transactions)
	}
	if want := decimal.NewFromFloat(71.0); !report.TotalRevenue.Equal(want) {
		t.Errorf("revenue = %s, want %s", report.TotalRevenue, want)
	}
	if report.ItemsSold != 20 {
		t.Errorf("items sold = %d, want 20", report.ItemsSold)
	}
	// Margin: rice 15×(3.5−2.5)=15, sugar 2×(2.5−1.8)=1.4, beans 3×(4.5−3.2)=3.9
	if want := decimal.NewFromFloat(20.3); !report.TotalProfit.Equal(want) {
		t.Errorf("profit = %s, want %s", report.TotalProfit, want)
	}

	if len(report.Buckets) != 3 {
		t.Fatalf("buckets = %d, want 3", len(report.Buckets))
	}
	if report.Buckets[0].Label != "2023-04-10" || report.Buckets[2].Label != "2023-04-12" {
		t.Errorf("buckets not chronological: %+v", report.Buckets)
	}

	if len(report.TopProducts) == 0 || report.TopProducts[0].Name != "Rice" {
		t.Fatalf("expected Rice as top seller, got %+v", report.TopProducts)
	}
	if report.TopProducts[0].Quantity != 15 {
		t.Errorf("rice quantity = %d, want 15", report.TopProducts[0].Quantity)
	}

	if len(report.Categories) == 0 || report.Categories[0].Name != "Grains" {
		t.Fatalf("expected Grains as leading category, got %+v", report.Categories)
	}
}

func TestBuildSalesReport_Bucketing(t *testing.T) {
	tests := []struct {
		period    core.ReportPeriod
		wantFirst string
	}{
		{core.PeriodDaily, "2023-04-10"},
		{core.PeriodWeekly, "2023-W15"},
		{core.PeriodMonthly, "2023-04"},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			report, err := core.BuildSalesReport(reportSales(), productFixture(), tt.period, "2023-04-01", "2023-04-30")
			if err != nil {
				t.Fatalf("BuildSalesReport: %v", err)
			}
			if len(report.Buckets) == 0 {
				t.Fatal("no buckets")
			}
			if report.Buckets[0].Label != tt.wantFirst {
				t.Errorf("first bucket = %q, want %q", report.Buckets[0].Label, tt.wantFirst)
			}
		})
	}
}

func TestBuildSalesReport_UnknownProductCountsRevenueOnly(t *testing.T) {
	d := decimal.NewFromFloat
	sales := []core.Sale{{
		ID: 1, Date: "2023-04-12", PaymentType: core.PaymentCash, Status: core.SaleCompleted,
		Items:       []core.LineItem{{Name: "Discontinued", Quantity: 2, Price: d(5), Total: d(10)}},
		TotalAmount: d(10),
	}}
	report, err := core.BuildSalesReport(sales, productFixture(), core.PeriodDaily, "2023-04-01", "2023-04-30")
	if err != nil {
		t.Fatalf("BuildSalesReport: %v", err)
	}
	if !report.TotalRevenue.Equal(d(10)) {
		t.Errorf("revenue = %s, want 10", report.TotalRevenue)
	}
	if !report.TotalProfit.IsZero() {
		t.Errorf("profit for unknown product = %s, want 0", report.TotalProfit)
	}
	if report.Categories[0].Name != "Others" {
		t.Errorf("unknown product category = %q, want Others", report.Categories[0].Name)
	}
}

func TestBuildSalesReport_Validation(t *testing.T) {
	tests := []struct {
		name       string
		period     core.ReportPeriod
		start, end string
	}{
		{"bad start date", core.PeriodDaily, "April 1", "2023-04-30"},
		{"bad end date", core.PeriodDaily, "2023-04-01", "soon"},
		{"inverted range", core.PeriodDaily, "2023-04-30", "2023-04-01"},
		{"unknown period", "hourly", "2023-04-01", "2023-04-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.BuildSalesReport(nil, nil, tt.period, tt.start, tt.end)
			if !core.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}
