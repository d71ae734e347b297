// Package postgres opens and manages the GORM connection pool used by the
// SQL order store. Repositories live in sub-packages (orderrepo) and share
// the *gorm.DB returned by Store.DB.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultConnTimeout     = 5 * time.Second
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 5 * time.Minute
)

var ErrStoreIsNotInitialized = errors.New("postgres store is not initialized")

// PoolOptions tunes the underlying database/sql pool. Zero fields fall back
// to package defaults.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Store owns a GORM connection pool.
type Store struct {
	db *gorm.DB
}

// Open connects to PostgreSQL with dsn, tunes the pool and pings the server.
// The connection is closed again when the ping fails.
func Open(ctx context.Context, dsn string, pool PoolOptions) (*Store, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(orDefault(pool.MaxOpenConns, defaultMaxOpenConns))
	sqlDB.SetMaxIdleConns(orDefault(pool.MaxIdleConns, defaultMaxIdleConns))
	sqlDB.SetConnMaxLifetime(orDefault(pool.ConnMaxLifetime, defaultConnMaxLifetime))
	sqlDB.SetConnMaxIdleTime(orDefault(pool.ConnMaxIdleTime, defaultConnMaxIdleTime))

	store := &Store{db: db}
	if err = store.Ping(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return store, nil
}

// NewStore wraps an already opened *gorm.DB.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the shared GORM handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping checks that the database answers within the connection timeout.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return ErrStoreIsNotInitialized
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// Close releases every pooled connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
