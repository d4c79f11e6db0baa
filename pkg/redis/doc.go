// Package redis connects to Redis and exposes it as a key-value backend for
// pkg/storage.
//
// Connect retries the initial ping according to Config, which is populated
// from REDIS_* environment variables. Storage implements storage.KeyValue on
// top of any redis.UniversalClient:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := storage.New(redis.NewStorage(client, redis.WithKeyPrefix(cfg.KeyPrefix)))
//
// Healthcheck plugs the connection into the readiness endpoint. All errors
// wrap a package sentinel with errors.Join.
package redis
