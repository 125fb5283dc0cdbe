package postgres

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kabalen/internal/adapters/out/postgres/clientrepo"
	"kabalen/internal/adapters/out/postgres/orderrepo"
	"kabalen/internal/adapters/out/postgres/riderrepo"
)

// CreateDbIfNotExists connects to the maintenance database and creates the
// application database when it does not exist yet. Lets a fresh deployment
// start against a bare Postgres instance.
func CreateDbIfNotExists(host, port, user, password, dbName, sslMode string) error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		host, port, user, password, sslMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %q: %w", dbName, err)
	}

	if !exists {
		if _, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName)); err != nil {
			return fmt.Errorf("create database %q: %w", dbName, err)
		}
	}

	return nil
}

// MakeConnectionString builds the application DSN from its parts.
func MakeConnectionString(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}

// MustConnectDB opens the GORM connection and runs migrations.
// Panics on failure; called once at startup.
func MustConnectDB(connectionString string) *gorm.DB {
	db, err := gorm.Open(gormpostgres.Open(connectionString), &gorm.Config{})
	if err != nil {
		panic(fmt.Errorf("open database: %w", err))
	}

	if err = Migrate(db); err != nil {
		panic(err)
	}

	return db
}

// Migrate creates or updates the schema for all three aggregates.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&riderrepo.RiderDTO{},
		&clientrepo.ClientDTO{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return nil
}
