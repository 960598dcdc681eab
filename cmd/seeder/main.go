package main

import (
	"os"
	"time"

	"github.com/op/go-logging"

	"github.com/ricapearlalamo/english-to-sql/pkg/db"
	"github.com/ricapearlalamo/english-to-sql/pkg/generator"
	"github.com/ricapearlalamo/english-to-sql/pkg/utils"
)

var log = logging.MustGetLogger("log")

// InitLogger Receives the log level to be set in go-logging as a string. This method
// initializes the logging framework for this log level
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	// Set the backends to be used.
	logging.SetBackend(backendLeveled)
	return nil
}

func rangeBounds(config *Config) (time.Time, time.Time, error) {
	start, end := generator.RangeStart, generator.RangeEnd
	var err error

	if config.StartDate != "" {
		if start, err = utils.ParseFlexibleDate(config.StartDate); err != nil {
			return start, end, err
		}
	}
	if config.EndDate != "" {
		if end, err = utils.ParseFlexibleDate(config.EndDate); err != nil {
			return start, end, err
		}
	}
	return start, end, nil
}

func main() {
	config, err := InitConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	if err := InitLogger(config.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	log.Debugf("Config: %+v", config)

	start, end, err := rangeBounds(config)
	if err != nil {
		log.Fatalf("Invalid date range: %s", err)
	}

	database := db.Init(config.DBPath)

	if err := db.SeedDimensions(database); err != nil {
		log.Fatalf("Failed to seed dimension tables: %s", err)
	}
	if err := db.SeedSampleOrders(database); err != nil {
		log.Fatalf("Failed to seed sample orders: %s", err)
	}

	gen := generator.New(database, start, end)
	if err := gen.Run(); err != nil {
		log.Fatalf("Order backfill failed: %s", err)
	}

	var orders, items int64
	database.Model(&db.Order{}).Count(&orders)
	database.Model(&db.OrderItem{}).Count(&items)
	log.Infof("Database %s ready: %d orders, %d order items", config.DBPath, orders, items)
}
