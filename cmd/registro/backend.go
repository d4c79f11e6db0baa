package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/appcadastro/registro/pkg/config"
	"github.com/appcadastro/registro/pkg/httpserver"
	"github.com/appcadastro/registro/pkg/mongo"
	"github.com/appcadastro/registro/pkg/pg"
	"github.com/appcadastro/registro/pkg/redis"
	"github.com/appcadastro/registro/pkg/storage"
)

type backend struct {
	kv     storage.KeyValue
	checks []httpserver.Check
	close  func()
}

// openBackend connects the key-value backend named by driver. Each driver
// reads its own configuration from the environment.
func openBackend(ctx context.Context, driver string, log *slog.Logger) (*backend, error) {
	switch driver {
	case driverMemory, "":
		mem := storage.NewMemoryStore()
		return &backend{kv: mem, close: func() {}}, nil

	case driverRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{
			kv:     redis.NewStorage(client, redis.WithKeyPrefix(cfg.KeyPrefix)),
			checks: []httpserver.Check{{Name: driverRedis, Fn: redis.Healthcheck(client)}},
			close:  func() { _ = client.Close() },
		}, nil

	case driverPostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return nil, err
		}
		return &backend{
			kv:     pg.NewStorage(pool),
			checks: []httpserver.Check{{Name: driverPostgres, Fn: pg.Healthcheck(pool)}},
			close:  pool.Close,
		}, nil

	case driverMongo:
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		db, err := mongo.NewWithDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		client := db.Client()
		return &backend{
			kv:     mongo.NewStorage(db.Collection(cfg.Collection)),
			checks: []httpserver.Check{{Name: driverMongo, Fn: mongo.Healthcheck(client)}},
			close:  func() { _ = client.Disconnect(context.WithoutCancel(ctx)) },
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDriver, driver)
	}
}
