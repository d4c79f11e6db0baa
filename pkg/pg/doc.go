// Package pg bootstraps PostgreSQL with pgx/v5 and provides a key-value
// backend for pkg/storage.
//
// Connect opens a *pgxpool.Pool with linear back-off between retries.
// Migrate applies the embedded goose migrations that create the kv_store
// table, and Storage reads and upserts rows in it:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	store := storage.New(pg.NewStorage(pool))
//
// Healthcheck wraps pool.Ping for the readiness endpoint.
package pg
