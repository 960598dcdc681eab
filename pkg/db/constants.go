package db

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product ids the generator rules key on.
const (
	ProductAmericano       uint = 2
	ProductLatte           uint = 4
	ProductButterCroissant uint = 11
	ProductChickenPanini   uint = 16
)

var CustomerNames = []string{
	"Aarav",
	"Bianca",
	"Carlos",
	"Devika",
	"Ethan",
	"Farah",
	"Gustavo",
	"Hana",
	"Imran",
	"Julia",
	"Kenji",
	"Lucia",
}

var ProductCategories = []string{"Coffee", "Tea", "Beverages", "Pastries", "Breakfast", "Salads", "Sandwiches", "Mains", "Desserts"}

var MenuProducts = []Product{
	{ProductID: 1, ProductName: "Espresso", Category: "Coffee", UnitPrice: price("80.00")},
	{ProductID: 2, ProductName: "Americano", Category: "Coffee", UnitPrice: price("110.00")},
	{ProductID: 3, ProductName: "Cappuccino", Category: "Coffee", UnitPrice: price("140.00")},
	{ProductID: 4, ProductName: "Latte", Category: "Coffee", UnitPrice: price("150.00")},
	{ProductID: 5, ProductName: "Mocha", Category: "Coffee", UnitPrice: price("160.00")},
	{ProductID: 6, ProductName: "Green Tea", Category: "Tea", UnitPrice: price("90.00")},
	{ProductID: 7, ProductName: "Masala Chai", Category: "Tea", UnitPrice: price("70.00")},
	{ProductID: 8, ProductName: "Iced Lemon Tea", Category: "Tea", UnitPrice: price("100.00")},
	{ProductID: 9, ProductName: "Fresh Orange Juice", Category: "Beverages", UnitPrice: price("130.00")},
	{ProductID: 10, ProductName: "Sparkling Water", Category: "Beverages", UnitPrice: price("60.00")},
	{ProductID: 11, ProductName: "Butter Croissant", Category: "Pastries", UnitPrice: price("90.00")},
	{ProductID: 12, ProductName: "Chocolate Muffin", Category: "Pastries", UnitPrice: price("100.00")},
	{ProductID: 13, ProductName: "Cinnamon Roll", Category: "Pastries", UnitPrice: price("110.00")},
	{ProductID: 14, ProductName: "Pancake Stack", Category: "Breakfast", UnitPrice: price("180.00")},
	{ProductID: 15, ProductName: "Veggie Omelette", Category: "Breakfast", UnitPrice: price("150.00")},
	{ProductID: 16, ProductName: "Chicken Panini", Category: "Sandwiches", UnitPrice: price("190.00")},
	{ProductID: 17, ProductName: "Caesar Salad", Category: "Salads", UnitPrice: price("170.00")},
	{ProductID: 18, ProductName: "Greek Salad", Category: "Salads", UnitPrice: price("160.00")},
	{ProductID: 19, ProductName: "Grilled Chicken Bowl", Category: "Mains", UnitPrice: price("240.00")},
	{ProductID: 20, ProductName: "Chocolate Brownie", Category: "Desserts", UnitPrice: price("120.00")},
}

// Hand-entered demo orders. Their dates block the generator from creating a
// second order for the same day, whatever customer its rule would have picked.
var SampleOrders = []Order{
	{OrderID: 101, CustomerID: 1, OrderDate: day(2024, time.January, 15)},
	{OrderID: 102, CustomerID: 5, OrderDate: day(2024, time.March, 8)},
	{OrderID: 103, CustomerID: 9, OrderDate: day(2024, time.July, 22)},
}

var SampleOrderItems = []OrderItem{
	{OrderItemID: 1001, OrderID: 101, ProductID: 3, Quantity: 2, LineTotal: price("280.00")},
	{OrderItemID: 1002, OrderID: 101, ProductID: 17, Quantity: 1, LineTotal: price("170.00")},
	{OrderItemID: 1003, OrderID: 102, ProductID: 5, Quantity: 1, LineTotal: price("160.00")},
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
