// Package storage persists application records as JSON documents in a
// key-value backend.
//
// KeyValue is the capability every backend implements (memory here, Redis,
// PostgreSQL and MongoDB in their own packages). Store wraps a backend with
// the semantics the application relies on:
//
//   - Save refuses blank keys and nil data and reports success as a bool,
//     logging the reason of any failure;
//   - Create writes only when the key is still free and reports whether it did;
//   - Load reports whether the key existed and decodes it into dst;
//   - Exists and Remove complete the set.
//
// # Backends
//
// Get returns nil, nil for a missing key; any error means the backend failed.
// Backends that can write a key only when it is absent in one operation also
// implement Creator (SETNX in Redis, INSERT ... ON CONFLICT DO NOTHING in
// PostgreSQL, a duplicate _id insert in MongoDB, a locked map here). For other
// backends Create falls back to a read followed by a write, serialised only
// inside one Store.
//
// # Usage
//
//	store := storage.New(storage.NewMemoryStore(), storage.WithLogger(log))
//
//	created, err := store.Create(ctx, "usuarios/52998224725", user)
//	switch {
//	case err != nil:
//	    // backend failure, wraps ErrBackend
//	case !created:
//	    // a record already exists under the key
//	}
//
//	var stored User
//	found, err := store.Load(ctx, "usuarios/52998224725", &stored)
//
//	if !store.Save(ctx, "usuarios/52998224725", stored) {
//	    // already logged; report failure to the user
//	}
//
// # Error Handling
//
// Key and input problems return ErrEmptyKey, ErrNilData or ErrEncode. Backend
// failures are joined with ErrBackend and undecodable values with ErrDecode,
// so callers match them with errors.Is.
package storage
