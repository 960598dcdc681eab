package db

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer - café regulars, reference data loaded once and never changed
type Customer struct {
	CustomerID   uint   `gorm:"primaryKey"`
	CustomerName string `gorm:"not null"`
}

// Product - menu items for sale
type Product struct {
	ProductID   uint            `gorm:"primaryKey"`
	ProductName string          `gorm:"not null"`
	Category    string          `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// Order - one customer visit on a given date
type Order struct {
	OrderID    uint        `gorm:"primaryKey"`
	CustomerID uint        `gorm:"not null"`
	Customer   Customer    // Belongs to Customer
	OrderDate  time.Time   `gorm:"not null;index"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem - a single line on an order
type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"not null;index"`
	ProductID   uint            `gorm:"not null"`
	Product     Product         // Belongs to Product
	Quantity    int             `gorm:"not null;check:quantity > 0"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}
