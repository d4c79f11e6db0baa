// Package ratelimiter implements a token bucket limiter with an in-memory
// store and an HTTP middleware. The registration endpoint uses it to throttle
// submissions per client IP.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByRemoteIP, nil)).Post("/", submit)
package ratelimiter
