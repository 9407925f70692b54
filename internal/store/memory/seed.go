package memory

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"retail-manager/internal/core"
)

// Demo credentials for the seeded shop-owner account.
const (
	DemoEmail    = "demo@shop.local"
	DemoPassword = "demo1234"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultSeed returns the sample dataset used in demo mode: three products,
// three suppliers, three sales, four debts in assorted states, and a demo
// user. Debt 3 and 4 are seeded overdue; debt 1 and 2 flip once their due
// dates pass, which exercises reclassification on any later date.
func DefaultSeed() Seed {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	return Seed{
		Products: []core.Product{
			{
				ID: 1, Name: "Rice", Category: "Grains", Quantity: 50, Unit: "kg",
				CostPrice: d("2.5"), SellingPrice: d("3.5"), Supplier: "Global Foods Inc.",
				StockAlert: 10, LastRestocked: "2023-04-01",
				Image: "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
			{
				ID: 2, Name: "Sugar", Category: "Sweeteners", Quantity: 30, Unit: "kg",
				CostPrice: d("1.8"), SellingPrice: d("2.5"), Supplier: "Global Foods Inc.",
				StockAlert: 5, LastRestocked: "2023-04-05",
				Image: "https://images.unsplash.com/photo-1514963629718-4f9795ee8c27?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
			{
				ID: 3, Name: "Beans", Category: "Legumes", Quantity: 25, Unit: "kg",
				CostPrice: d("3.2"), SellingPrice: d("4.5"), Supplier: "Global Foods Inc.",
				StockAlert: 8, LastRestocked: "2023-04-10",
				Image: "https://images.unsplash.com/photo-1517081719645-0456073ca84d?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
		},
		Suppliers: []core.Supplier{
			{
				ID: 1, Name: "Global Foods Inc.", Category: "Food", Contact: "John Smith",
				Phone: "+1 (555) 123-4567", Email: "john@globalfoods.com",
				Street: "123 Main Street", City: "Cityville", State: "State",
				PostalCode: "12345", Country: "USA", Status: core.SupplierActive,
			},
			{
				ID: 2, Name: "Tech Solutions Ltd.", Category: "Electronics", Contact: "Sarah Johnson",
				Phone: "+1 (555) 987-6543", Email: "sarah@techsolutions.com",
				Street: "456 Tech Avenue", City: "Innovation City", State: "State",
				PostalCode: "67890", Country: "Canada", Status: core.SupplierActive,
			},
			{
				ID: 3, Name: "Fashion World", Category: "Clothing", Contact: "Michael Brown",
				Phone: "+1 (555) 456-7890", Email: "michael@fashionworld.com",
				Street: "789 Style Street", City: "Trendville", State: "State",
				PostalCode: "34567", Country: "UK", Status: core.SupplierInactive,
			},
		},
		Sales: []core.Sale{
			{
				ID: 1, Date: "2023-04-12",
				Items: []core.LineItem{
					{ProductID: 1, Name: "Rice", Quantity: 5, Unit: "kg", Price: d("3.5"), Total: d("17.5")},
				},
				TotalAmount: d("17.5"), PaymentType: core.PaymentCash, Status: core.SaleCompleted,
			},
			{
				ID: 2, Date: "2023-04-11",
				Items: []core.LineItem{
					{ProductID: 2, Name: "Sugar", Quantity: 2, Unit: "kg", Price: d("2.5"), Total: d("5")},
					{ProductID: 3, Name: "Beans", Quantity: 3, Unit: "kg", Price: d("4.5"), Total: d("13.5")},
				},
				TotalAmount: d("18.5"), PaymentType: core.PaymentCash, Status: core.SaleCompleted,
			},
			{
				ID: 3, Date: "2023-04-10",
				Items: []core.LineItem{
					{ProductID: 1, Name: "Rice", Quantity: 10, Unit: "kg", Price: d("3.5"), Total: d("35")},
				},
				TotalAmount: d("35"), PaymentType: core.PaymentCredit, Status: core.SalePending,
				CustomerName: "John Doe", DueDate: "2023-04-20", DebtID: intPtr(1),
			},
		},
		Debts: []core.Debt{
			{
				ID: 1, CustomerName: "John Doe", Amount: d("35"),
				CreatedDate: "2023-04-10", DueDate: "2023-04-20",
				Items: []core.LineItem{
					{ProductID: 1, Name: "Rice", Quantity: 10, Unit: "kg", Price: d("3.5"), Total: d("35")},
				},
				Status: core.DebtPending,
			},
			{
				ID: 2, CustomerName: "Sarah Williams", Amount: d("45.5"),
				CreatedDate: "2023-04-05", DueDate: "2023-04-15",
				Items: []core.LineItem{
					{ProductID: 2, Name: "Sugar", Quantity: 5, Unit: "kg", Price: d("2.5"), Total: d("12.5")},
					{ProductID: 3, Name: "Beans", Quantity: 5, Unit: "kg", Price: d("4.5"), Total: d("22.5")},
					{Name: "Salt", Quantity: 2, Unit: "kg", Price: d("5.25"), Total: d("10.5")},
				},
				Status: core.DebtPending, Notified: true,
			},
			{
				ID: 3, CustomerName: "Michael Johnson", Amount: d("67.25"),
				CreatedDate: "2023-03-28", DueDate: "2023-04-07",
				Items: []core.LineItem{
					{ProductID: 1, Name: "Rice", Quantity: 15, Unit: "kg", Price: d("3.5"), Total: d("52.5")},
					{ProductID: 2, Name: "Sugar", Quantity: 3, Unit: "kg", Price: d("2.5"), Total: d("7.5")},
					{Name: "Salt", Quantity: 1, Unit: "kg", Price: d("7.25"), Total: d("7.25")},
				},
				Status: core.DebtOverdue, Notified: true,
			},
			{
				ID: 4, CustomerName: "Linda Brown", Amount: d("23.75"),
				CreatedDate: "2023-04-01", DueDate: "2023-04-08",
				Items: []core.LineItem{
					{ProductID: 3, Name: "Beans", Quantity: 3, Unit: "kg", Price: d("4.5"), Total: d("13.5")},
					{ProductID: 2, Name: "Sugar", Quantity: 2, Unit: "kg", Price: d("2.5"), Total: d("5")},
					{Name: "Salt", Quantity: 1, Unit: "kg", Price: d("5.25"), Total: d("5.25")},
				},
				Status: core.DebtOverdue,
			},
		},
		Users: []core.User{
			{
				ID: 1, FirstName: "Demo", LastName: "Owner", Email: DemoEmail,
				ShopName: "Demo Shop", Address: "123 Market Street", PasswordHash: string(hash),
			},
		},
	}
}

func intPtr(v int) *int { return &v }
