package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabases connects to the managed Postgres database twice: a pgx pool
// for the search_games function calls and a GORM handle for everything else.
// Handles are returned to the caller and injected where needed; there is no
// package-level connection state.
func OpenDatabases() (*gorm.DB, *pgxpool.Pool, error) {
	dsn := databaseURL()

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to connect to database (pgx): %w", err)
	}
	if err = pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("database ping failed: %w", err)
	}
	log.Println("✅ Database connected (pgx)")

	gormLogger := logger.Default.LogMode(logger.Info)
	if IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("unable to connect to database (GORM): %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Database connected (GORM)")

	return db, pool, nil
}

// databaseURL prefers the managed-database URL, falling back to local
// development defaults.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	log.Println("⚠️ DATABASE_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/game_search?sslmode=disable",
		Env("DB_USER", "postgres"),
		Env("DB_PASSWORD", ""),
		Env("DB_HOST", "localhost"),
		Env("DB_PORT", "5432"),
	)
}

// WithTimeout returns a context with a 10s timeout (generous for managed
// databases with cold starts).
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// IsProduction gates error detail and query logging.
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

// Env reads an environment variable with a default.
func Env(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
