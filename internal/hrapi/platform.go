package hrapi

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/config"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS employees (
    id          TEXT PRIMARY KEY,
    first_name  TEXT NOT NULL,
    last_name   TEXT NOT NULL,
    email       TEXT NOT NULL UNIQUE,
    phone       TEXT NOT NULL,
    department  TEXT NOT NULL,
    position    TEXT NOT NULL,
    salary      DOUBLE PRECISION NOT NULL,
    hire_date   DATE NOT NULL,
    status      TEXT NOT NULL,
    address     TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS departments (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    manager     TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// NewPostgresPool connects to Postgres when a DSN is configured; without
// one the server falls back to in-memory storage.
func NewPostgresPool(ctx context.Context, cfg config.HRAPIConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	if cfg.PostgresDSN == "" {
		logger.Warn("HRAPI_POSTGRES_DSN not provided; using in-memory storage")
		return nil, nil
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return pool, nil
}

// EnsureSchema applies the embedded DDL.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		return nil
	}
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return err
	}
	logger.Info("schema ensured")
	return nil
}

// NewRedisClient connects to Redis when an address is configured; the list
// cache degrades to a no-op without it.
func NewRedisClient(cfg config.HRAPIConfig, logger *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		logger.Warn("HRAPI_REDIS_ADDR not provided; list caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}
	return client
}
