package generator

import (
	"time"

	"github.com/ricapearlalamo/english-to-sql/pkg/db"
)

// CustomerIDFor maps a date onto one of the twelve fixed customers,
// cycling through them by ordinal day of the year.
func CustomerIDFor(date time.Time) uint {
	return uint((date.YearDay()-1)%12) + 1
}

// BeverageFor picks the drink line for a date. Even days of the month get
// an Americano, odd days a Latte; days divisible by three get a double.
func BeverageFor(date time.Time) (productID uint, quantity int) {
	productID = db.ProductLatte
	if date.Day()%2 == 0 {
		productID = db.ProductAmericano
	}
	quantity = 1
	if date.Day()%3 == 0 {
		quantity = 2
	}
	return productID, quantity
}

// FoodFor picks the food line for a date: a Butter Croissant in even
// months, a Chicken Panini in odd ones. Always a single unit.
func FoodFor(date time.Time) uint {
	if int(date.Month())%2 == 0 {
		return db.ProductButterCroissant
	}
	return db.ProductChickenPanini
}
