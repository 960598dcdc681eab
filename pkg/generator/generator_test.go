package generator_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ricapearlalamo/english-to-sql/pkg/db"
	"github.com/ricapearlalamo/english-to-sql/pkg/generator"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database := db.Init(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, db.SeedDimensions(database))
	require.NoError(t, db.SeedSampleOrders(database))
	return database
}

func runFullRange(t *testing.T, database *gorm.DB) {
	t.Helper()
	gen := generator.New(database, generator.RangeStart, generator.RangeEnd)
	require.NoError(t, gen.Run())
}

func TestRunCreatesOneOrderPerDate(t *testing.T) {
	database := newTestDB(t)
	runFullRange(t, database)

	var total int64
	require.NoError(t, database.Model(&db.Order{}).Count(&total).Error)
	assert.EqualValues(t, 1096, total)

	var distinctDates int64
	require.NoError(t, database.Model(&db.Order{}).Distinct("order_date").Count(&distinctDates).Error)
	assert.EqualValues(t, 1096, distinctDates)
}

func TestRunSkipsHandEnteredOrderDates(t *testing.T) {
	database := newTestDB(t)
	runFullRange(t, database)

	// 2024-01-15 is covered by sample order 101 (customer 1), even though
	// the day-of-year rule would have picked customer 3 for that date.
	var orders []db.Order
	require.NoError(t, database.Where("order_date = ?", date(2024, time.January, 15)).Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.EqualValues(t, 101, orders[0].OrderID)
	assert.EqualValues(t, 1, orders[0].CustomerID)
}

func TestRunLeavesEveryOrderWithTwoItems(t *testing.T) {
	database := newTestDB(t)
	runFullRange(t, database)

	var badOrders int64
	err := database.Raw(`
		SELECT COUNT(*) FROM (
			SELECT orders.order_id, COUNT(order_items.order_item_id) AS item_count
			FROM orders
			LEFT JOIN order_items ON order_items.order_id = orders.order_id
			GROUP BY orders.order_id
			HAVING item_count != 2
		)`).Scan(&badOrders).Error
	require.NoError(t, err)
	assert.EqualValues(t, 0, badOrders)
}

func TestRunIsIdempotent(t *testing.T) {
	database := newTestDB(t)
	runFullRange(t, database)

	var ordersBefore, itemsBefore int64
	require.NoError(t, database.Model(&db.Order{}).Count(&ordersBefore).Error)
	require.NoError(t, database.Model(&db.OrderItem{}).Count(&itemsBefore).Error)

	runFullRange(t, database)

	var ordersAfter, itemsAfter int64
	require.NoError(t, database.Model(&db.Order{}).Count(&ordersAfter).Error)
	require.NoError(t, database.Model(&db.OrderItem{}).Count(&itemsAfter).Error)
	assert.Equal(t, ordersBefore, ordersAfter)
	assert.Equal(t, itemsBefore, itemsAfter)
}

func TestLineTotalsMatchUnitPriceTimesQuantity(t *testing.T) {
	database := newTestDB(t)
	gen := generator.New(database, date(2023, time.January, 1), date(2023, time.March, 31))
	require.NoError(t, gen.Run())

	products := make(map[uint]decimal.Decimal)
	var all []db.Product
	require.NoError(t, database.Find(&all).Error)
	for _, p := range all {
		products[p.ProductID] = p.UnitPrice
	}

	var items []db.OrderItem
	require.NoError(t, database.Find(&items).Error)
	require.NotEmpty(t, items)
	for _, item := range items {
		want := products[item.ProductID].Mul(decimal.NewFromInt(int64(item.Quantity)))
		assert.True(t, item.LineTotal.Equal(want),
			"item %d: line total %s, want %s", item.OrderItemID, item.LineTotal, want)
	}
}

func itemsOf(t *testing.T, database *gorm.DB, orderDate time.Time) []db.OrderItem {
	t.Helper()
	var order db.Order
	require.NoError(t, database.First(&order, "order_date = ?", orderDate).Error)
	var items []db.OrderItem
	require.NoError(t, database.Order("order_item_id").Find(&items, "order_id = ?", order.OrderID).Error)
	return items
}

func TestGeneratedItemsForKnownDates(t *testing.T) {
	database := newTestDB(t)
	gen := generator.New(database, date(2023, time.February, 1), date(2023, time.February, 5))
	require.NoError(t, gen.Run())

	// Feb 2nd: even day, not divisible by three, even month
	items := itemsOf(t, database, date(2023, time.February, 2))
	require.Len(t, items, 2)
	assert.Equal(t, db.ProductAmericano, items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.True(t, items[0].LineTotal.Equal(decimal.RequireFromString("110.00")))
	assert.Equal(t, db.ProductButterCroissant, items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
	assert.True(t, items[1].LineTotal.Equal(decimal.RequireFromString("90.00")))

	// Feb 3rd: odd day but divisible by three
	items = itemsOf(t, database, date(2023, time.February, 3))
	require.Len(t, items, 2)
	assert.Equal(t, db.ProductLatte, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].LineTotal.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, db.ProductButterCroissant, items[1].ProductID)
	assert.True(t, items[1].LineTotal.Equal(decimal.RequireFromString("90.00")))
}

func TestHandEnteredOrderWithOneItemGetsFoodOnly(t *testing.T) {
	database := newTestDB(t)

	// Sample order 102 on 2024-03-08 already holds one hand-entered item,
	// so only the food rule should fire for it.
	orderDate := date(2024, time.March, 8)
	gen := generator.New(database, orderDate, orderDate)
	require.NoError(t, gen.Run())

	items := itemsOf(t, database, orderDate)
	require.Len(t, items, 2)
	assert.EqualValues(t, 5, items[0].ProductID)
	assert.Equal(t, db.ProductChickenPanini, items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
	assert.True(t, items[1].LineTotal.Equal(decimal.RequireFromString("190.00")))
}

func TestHandEnteredOrderWithTwoItemsIsUntouched(t *testing.T) {
	database := newTestDB(t)

	orderDate := date(2024, time.January, 15)
	gen := generator.New(database, orderDate, orderDate)
	require.NoError(t, gen.Run())

	items := itemsOf(t, database, orderDate)
	require.Len(t, items, 2)
	assert.EqualValues(t, 1001, items[0].OrderItemID)
	assert.EqualValues(t, 1002, items[1].OrderItemID)
}

func TestEmptyHandEnteredOrderGetsBothItems(t *testing.T) {
	database := newTestDB(t)

	// Sample order 103 on 2024-07-22 ships without items.
	orderDate := date(2024, time.July, 22)
	gen := generator.New(database, orderDate, orderDate)
	require.NoError(t, gen.Run())

	items := itemsOf(t, database, orderDate)
	require.Len(t, items, 2)
	// 22nd: even day, not divisible by three; July is odd
	assert.Equal(t, db.ProductAmericano, items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, db.ProductChickenPanini, items[1].ProductID)
}

func TestMissingCustomerIsAReferentialViolation(t *testing.T) {
	database := db.Init(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, db.SeedDimensions(database))
	require.NoError(t, database.Delete(&db.Customer{}, "customer_id = ?", 2).Error)

	// day-of-year 2 resolves to customer 2
	orderDate := date(2023, time.January, 2)
	gen := generator.New(database, orderDate, orderDate)
	err := gen.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrReferentialViolation)
}

func TestMissingProductIsAReferentialViolation(t *testing.T) {
	database := newTestDB(t)
	require.NoError(t, database.Delete(&db.Product{}, "product_id = ?", db.ProductAmericano).Error)

	orderDate := date(2023, time.February, 2)
	gen := generator.New(database, orderDate, orderDate)
	err := gen.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrReferentialViolation)
}

func TestDuplicateDateIsDetected(t *testing.T) {
	database := newTestDB(t)

	orderDate := date(2023, time.May, 10)
	require.NoError(t, database.Create(&db.Order{CustomerID: 1, OrderDate: orderDate}).Error)
	require.NoError(t, database.Create(&db.Order{CustomerID: 2, OrderDate: orderDate}).Error)

	gen := generator.New(database, orderDate, orderDate)
	err := gen.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrDuplicateDate)
}
