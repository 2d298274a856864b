package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"logistics/internal/adapters/out/postgres/migrations"

	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL, applies the pending migrations and wraps the
// same connection pool in GORM.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db error: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db error: %w", err)
	}

	if err := migrations.Up(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm error: %w", err)
	}
	return gormDB, nil
}

// DSN builds a lib/pq connection string.
func DSN(host, port, user, password, name, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslMode)
}
