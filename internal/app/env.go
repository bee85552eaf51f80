package app

import (
	"database/sql"
	"fmt"
	"os"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

const connectRetries = 5

// openDatabase connects to Postgres from the DB_* environment and hands back
// both handles: gorm for the domain repos, database/sql for transactions and
// the outbox.
func openDatabase() (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		connectRetries,
	)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

func kafkaBrokerFromEnv() (string, error) {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return "", fmt.Errorf("KAFKA_BROKER is required")
	}
	return broker, nil
}
