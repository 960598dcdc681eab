package db

import (
	"github.com/op/go-logging"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logging.MustGetLogger("log")

// Init opens the database and performs auto-migration
// dbPath is where the sqlite file lives (e.g., "./retail_demo.sqlite")
func Init(dbPath string) *gorm.DB {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	database, err := gorm.Open(sqlite.Open(dbPath), config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// SQLite leaves foreign keys off unless asked
	if err := database.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		log.Fatalf("Failed to enable foreign keys: %v", err)
	}

	// Auto-Migrate creates the tables based on our structs
	// This is "Code First" migration
	err = database.AutoMigrate(&Customer{}, &Product{}, &Order{}, &OrderItem{})
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return database
}
