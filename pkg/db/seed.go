package db

import (
	"fmt"

	"gorm.io/gorm"
)

// SeedDimensions inserts the fixed customers and menu products. Rows that
// already exist are left untouched, so it is safe against a live file.
func SeedDimensions(database *gorm.DB) error {
	for i, name := range CustomerNames {
		customer := Customer{CustomerID: uint(i + 1), CustomerName: name}
		if err := database.FirstOrCreate(&customer, Customer{CustomerID: customer.CustomerID}).Error; err != nil {
			return fmt.Errorf("could not seed customer %d: %w", customer.CustomerID, err)
		}
	}

	for _, product := range MenuProducts {
		if err := database.FirstOrCreate(&product, Product{ProductID: product.ProductID}).Error; err != nil {
			return fmt.Errorf("could not seed product %d: %w", product.ProductID, err)
		}
	}

	return nil
}

// SeedSampleOrders inserts the hand-entered orders and their items.
// Must run after SeedDimensions so the foreign keys resolve.
func SeedSampleOrders(database *gorm.DB) error {
	for _, order := range SampleOrders {
		if err := database.FirstOrCreate(&order, Order{OrderID: order.OrderID}).Error; err != nil {
			return fmt.Errorf("could not seed order %d: %w", order.OrderID, err)
		}
	}

	for _, item := range SampleOrderItems {
		if err := database.FirstOrCreate(&item, OrderItem{OrderItemID: item.OrderItemID}).Error; err != nil {
			return fmt.Errorf("could not seed order item %d: %w", item.OrderItemID, err)
		}
	}

	return nil
}
