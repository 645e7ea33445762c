package config

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"passenger/domain"
)

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

func BootDB(ctx context.Context) (*pgxpool.Pool, error) {
	url := GetDatabaseURL()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := autoMigrate(url); err != nil {
		return pool, err
	}

	return pool, nil
}

// autoMigrate lets gorm own the schema so the unique cpf constraint and the
// contact cascade stay declared on the domain structs. The migration
// connection is closed right after, queries run on the pgx pool.
func autoMigrate(url string) error {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}

	if err := db.AutoMigrate(&domain.Passenger{}, &domain.Contact{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
