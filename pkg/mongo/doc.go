// Package mongo connects to MongoDB with the official v2 driver and provides
// a key-value backend for pkg/storage.
//
// New retries the initial ping according to Config. Storage keeps one
// document per key, with the key as _id and the payload as binary:
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := storage.New(mongo.NewStorage(db.Collection(cfg.Collection)))
package mongo
