package generator

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/op/go-logging"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ricapearlalamo/english-to-sql/pkg/db"
)

var log = logging.MustGetLogger("log")

// Calendar range covered by the demo dataset, inclusive on both ends.
var (
	RangeStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	RangeEnd   = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
)

var (
	// ErrReferentialViolation means an insert would reference a parent row
	// that does not exist. Only possible if the dimension data was altered.
	ErrReferentialViolation = errors.New("insert references a missing parent row")
	// ErrDuplicateDate means the store already holds more than one order
	// for a single date, which the backfill can neither cause nor repair.
	ErrDuplicateDate = errors.New("more than one order exists for the same date")
)

const dateLayout = "2006-01-02"

// DatesBetween yields every calendar date from start to end inclusive,
// ascending one day at a time. The sequence can be ranged over repeatedly.
func DatesBetween(start, end time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Generator backfills the orders and order_items tables so that every date
// in its range ends up with exactly one order holding exactly two items.
// Every step checks for existing rows before inserting, so running it
// against an already-populated store is a no-op.
type Generator struct {
	db    *gorm.DB
	start time.Time
	end   time.Time
}

func New(database *gorm.DB, start, end time.Time) *Generator {
	return &Generator{db: database, start: start, end: end}
}

// Run makes a single pass over the date range. Any error aborts the pass;
// nothing needs cleanup afterwards because every insert is guarded.
func (g *Generator) Run() error {
	ordersCreated := 0
	itemsCreated := 0

	for date := range DatesBetween(g.start, g.end) {
		order, created, err := g.ensureOrderForDate(date)
		if err != nil {
			return err
		}
		if created {
			ordersCreated++
		}

		created, err = g.ensureBeverageItem(order)
		if err != nil {
			return err
		}
		if created {
			itemsCreated++
		}

		created, err = g.ensureFoodItem(order)
		if err != nil {
			return err
		}
		if created {
			itemsCreated++
		}
	}

	log.Infof("Backfill done: created %d orders and %d order items", ordersCreated, itemsCreated)
	return nil
}

// ensureOrderForDate returns the order for the given date, creating it with
// the rule-derived customer when missing. A pre-existing order is returned
// as-is even if it belongs to a different customer than the rule would pick.
func (g *Generator) ensureOrderForDate(date time.Time) (*db.Order, bool, error) {
	var existing []db.Order
	if err := g.db.Where("order_date = ?", date).Find(&existing).Error; err != nil {
		return nil, false, fmt.Errorf("could not look up order for %s: %w", date.Format(dateLayout), err)
	}
	if len(existing) > 1 {
		return nil, false, fmt.Errorf("date %s: %w", date.Format(dateLayout), ErrDuplicateDate)
	}
	if len(existing) == 1 {
		return &existing[0], false, nil
	}

	customerID := CustomerIDFor(date)
	var n int64
	if err := g.db.Model(&db.Customer{}).Where("customer_id = ?", customerID).Count(&n).Error; err != nil {
		return nil, false, err
	}
	if n == 0 {
		return nil, false, fmt.Errorf("customer %d: %w", customerID, ErrReferentialViolation)
	}

	order := db.Order{CustomerID: customerID, OrderDate: date}
	if err := g.db.Create(&order).Error; err != nil {
		return nil, false, fmt.Errorf("could not create order for %s: %w", date.Format(dateLayout), err)
	}
	log.Debugf("Created order %d for %s (customer %d)", order.OrderID, date.Format(dateLayout), customerID)
	return &order, true, nil
}

// ensureBeverageItem adds the drink line to an order that has no items yet.
func (g *Generator) ensureBeverageItem(order *db.Order) (bool, error) {
	count, err := g.itemCount(order)
	if err != nil {
		return false, err
	}
	if count != 0 {
		return false, nil
	}

	productID, quantity := BeverageFor(order.OrderDate)
	return true, g.insertItem(order, productID, quantity)
}

// ensureFoodItem adds the food line to an order that holds exactly one item.
// Orders with two or more items are already complete and are left alone.
func (g *Generator) ensureFoodItem(order *db.Order) (bool, error) {
	count, err := g.itemCount(order)
	if err != nil {
		return false, err
	}
	if count != 1 {
		return false, nil
	}

	return true, g.insertItem(order, FoodFor(order.OrderDate), 1)
}

func (g *Generator) itemCount(order *db.Order) (int64, error) {
	var count int64
	if err := g.db.Model(&db.OrderItem{}).Where("order_id = ?", order.OrderID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("could not count items of order %d: %w", order.OrderID, err)
	}
	return count, nil
}

func (g *Generator) insertItem(order *db.Order, productID uint, quantity int) error {
	var product db.Product
	err := g.db.First(&product, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %d: %w", productID, ErrReferentialViolation)
	}
	if err != nil {
		return err
	}

	item := db.OrderItem{
		OrderID:   order.OrderID,
		ProductID: product.ProductID,
		Quantity:  quantity,
		LineTotal: product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
	if err := g.db.Create(&item).Error; err != nil {
		return fmt.Errorf("could not create item for order %d: %w", order.OrderID, err)
	}
	return nil
}
