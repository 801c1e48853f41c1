package container

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/slinkhq/slink/internal/kv"
)

// RedisPackage provides the shared Redis client.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		opts := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{Addr: opts.RedisAddr}), nil
	})
}

// PostgresPackage provides the pgx connection pool. Only built when the
// postgres backend is selected.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		opts := do.MustInvoke[*Options](i)
		if opts.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres backend selected but no DSN configured")
		}

		return pgxpool.New(context.Background(), opts.PostgresDSN)
	})
}

// KVPackage provides the kv.Store matching the configured backend.
func KVPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (kv.Store, error) {
		opts := do.MustInvoke[*Options](i)

		switch opts.Backend {
		case "postgres":
			return kv.NewPostgresStore(do.MustInvoke[*pgxpool.Pool](i)), nil
		case "memory":
			return kv.NewMemoryStore(opts.MemoryCapacity), nil
		default:
			return kv.NewRedisStore(do.MustInvoke[*redis.Client](i)), nil
		}
	})
}
