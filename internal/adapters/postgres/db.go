package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Pool abstracts the pgxpool.Pool so tests can substitute a mock.
type Pool interface {
	Ping(ctx context.Context) error
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

type DB struct {
	pool Pool
	log  *zap.Logger
}

// New wraps an existing pool. Used directly by tests.
func New(pool Pool, logger *zap.Logger) *DB {
	return &DB{pool: pool, log: logger.Named("postgres")}
}

// Connect opens a pgx pool against url and verifies connectivity.
func Connect(ctx context.Context, url string, logger *zap.Logger) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return New(pool, logger), nil
}

func (db *DB) Close() { db.pool.Close() }
