package db

import (
	"context"
	"fmt"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool sizing defaults fit the workout pipeline's query profile: short
// single-statement reads and writes, with the occasional
// achievement-unlock transaction.
const (
	defaultMaxConns        = 8
	defaultMinConns        = 2
	defaultMaxConnIdleTime = 5 * time.Minute
)

type PoolParams struct {
	Host     string
	Port     string
	Database string
	// MaxConns overrides the default pool ceiling when positive.
	MaxConns       int32
	TracingEnabled bool
}

func (p PoolParams) connString() string {
	return fmt.Sprintf("postgres://postgres@%s:%s/%s", p.Host, p.Port, p.Database)
}

// PoolConfig builds the pgx pool configuration serving the profile,
// workout, record and achievement repositories.
func PoolConfig(params PoolParams) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(params.connString())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	poolConfig.MaxConns = defaultMaxConns
	if params.MaxConns > 0 {
		poolConfig.MaxConns = params.MaxConns
	}
	poolConfig.MinConns = defaultMinConns
	poolConfig.MaxConnIdleTime = defaultMaxConnIdleTime

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer(otelpgx.WithTrimSQLInSpanName())
	}

	return poolConfig, nil
}

func NewPool(ctx context.Context, params PoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := PoolConfig(params)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return pool, nil
}
