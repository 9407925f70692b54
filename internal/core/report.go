package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod selects the bucketing granularity of a sales report.
type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "daily"
	PeriodWeekly  ReportPeriod = "weekly"
	PeriodMonthly ReportPeriod = "monthly"
	PeriodCustom  ReportPeriod = "custom"
)

// topProductLimit caps the top-seller table.
const topProductLimit = 5

// ReportBucket is one time slice of the report (a day, a week, or a month).
type ReportBucket struct {
	Label  string          `json:"name"`
	Sales  decimal.Decimal `json:"sales"`
	Profit decimal.Decimal `json:"profit"`
}

// CategoryShare is one category's revenue within the reporting window.
type CategoryShare struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// TopProduct is a best-seller row: units moved and revenue taken.
type TopProduct struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Sales    decimal.Decimal `json:"sales"`
}

// SalesReport aggregates recorded sales over a date window.
// Profit is estimated from the catalog's current cost prices; items sold by
// products that were later deleted contribute revenue but zero margin.
type SalesReport struct {
	Period       ReportPeriod    `json:"period"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	Transactions int             `json:"transactions"`
	ItemsSold    int             `json:"items_sold"`
	Buckets      []ReportBucket  `json:"buckets"`
	Categories   []CategoryShare `json:"categories"`
	TopProducts  []TopProduct    `json:"top_products"`
}

// BuildSalesReport filters sales to [start, end] inclusive, buckets them by
// period granularity, and computes revenue, margin, category shares, and the
// top sellers. The products catalog supplies unit costs and categories.
func BuildSalesReport(sales []Sale, products []Product, period ReportPeriod, startDate, endDate string) (*SalesReport, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid start date %q", startDate)}
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid end date %q", endDate)}
	}
	if end.Before(start) {
		return nil, Validationf("end date is before start date")
	}
	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodCustom:
	case "":
		period = PeriodDaily
	default:
		return nil, &ValidationError{Msg: fmt.Sprintf("unknown report period %q", period)}
	}

	byID := make(map[int]Product, len(products))
	byName := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
		byName[p.Name] = p
	}
	lookup := func(item LineItem) (Product, bool) {
		if p, ok := byID[item.ProductID]; ok && item.ProductID != 0 {
			return p, true
		}
		p, ok := byName[item.Name]
		return p, ok
	}

	r := &SalesReport{
		Period:       period,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
	}

	bucketTotals := map[string]*ReportBucket{}
	var bucketOrder []string
	categoryTotals := map[string]decimal.Decimal{}
	productQty := map[string]int{}
	productRevenue := map[string]decimal.Decimal{}

	for _, sale := range sales {
		day, err := ParseDate(sale.Date)
		if err != nil || day.Before(start) || day.After(end) {
			continue
		}

		r.Transactions++
		r.TotalRevenue = r.TotalRevenue.Add(sale.TotalAmount)

		label := bucketLabel(day, period)
		b, ok := bucketTotals[label]
		if !ok {
			b = &ReportBucket{Label: label, Sales: decimal.Zero, Profit: decimal.Zero}
			bucketTotals[label] = b
			bucketOrder = append(bucketOrder, label)
		}
		b.Sales = b.Sales.Add(sale.TotalAmount)

		for _, item := range sale.Items {
			r.ItemsSold += item.Quantity
			productQty[item.Name] += item.Quantity
			productRevenue[item.Name] = productRevenue[item.Name].Add(item.Total)

			category := "Others"
			if p, ok := lookup(item); ok {
				category = p.Category
				margin := item.Price.Sub(p.CostPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
				r.TotalProfit = r.TotalProfit.Add(margin)
				b.Profit = b.Profit.Add(margin)
			}
			categoryTotals[category] = categoryTotals[category].Add(item.Total)
		}
	}

	for _, label := range bucketOrder {
		r.Buckets = append(r.Buckets, *bucketTotals[label])
	}
	sort.Slice(r.Buckets, func(i, j int) bool { return r.Buckets[i].Label < r.Buckets[j].Label })

	for name, value := range categoryTotals {
		r.Categories = append(r.Categories, CategoryShare{Name: name, Value: value})
	}
	sort.Slice(r.Categories, func(i, j int) bool {
		if !r.Categories[i].Value.Equal(r.Categories[j].Value) {
			return r.Categories[i].Value.GreaterThan(r.Categories[j].Value)
		}
		return r.Categories[i].Name < r.Categories[j].Name
	})

	for name, qty := range productQty {
		r.TopProducts = append(r.TopProducts, TopProduct{Name: name, Quantity: qty, Sales: productRevenue[name]})
	}
	sort.Slice(r.TopProducts, func(i, j int) bool {
		if r.TopProducts[i].Quantity != r.TopProducts[j].Quantity {
			return r.TopProducts[i].Quantity > r.TopProducts[j].Quantity
		}
		return r.TopProducts[i].Name < r.TopProducts[j].Name
	})
	if len(r.TopProducts) > topProductLimit {
		r.TopProducts = r.TopProducts[:topProductLimit]
	}

	return r, nil
}

// bucketLabel keys a sale date into its report bucket. Labels are chosen to
// sort chronologically as strings.
func bucketLabel(day time.Time, period ReportPeriod) string {
	switch period {
	case PeriodWeekly:
		year, week := day.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case PeriodMonthly:
		return day.Format("2006-01")
	default:
		return day.Format(DateLayout)
	}
}
