package infra

import (
	"context"
	"fmt"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultMaxConns keeps headroom below the usual postgres max_connections of
// 100, shared with the migrations runner and the roster LISTEN connection.
const defaultMaxConns = 25

func NewPostgresConnectionPool(connectionString string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, fmt.Errorf("parse postgres connection string: %w", err)
	}
	cfg.ConnConfig.Tracer = otelpgx.NewTracer()
	if maxConns <= 0 {
		maxConns = defaultMaxConns
	}
	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres connection pool: %w", err)
	}
	return pool, nil
}
