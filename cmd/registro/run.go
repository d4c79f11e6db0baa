package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/appcadastro/registro/modules/registration"
	"github.com/appcadastro/registro/pkg/config"
	"github.com/appcadastro/registro/pkg/httpserver"
	"github.com/appcadastro/registro/pkg/logger"
	"github.com/appcadastro/registro/pkg/messages"
	"github.com/appcadastro/registro/pkg/ratelimiter"
	"github.com/appcadastro/registro/pkg/storage"
)

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	slog.SetDefault(log)

	backend, err := openBackend(ctx, cfg.StorageDriver, log)
	if err != nil {
		return err
	}
	defer backend.close()

	catalog, err := messages.Bundled()
	if err != nil {
		return err
	}

	svc := registration.NewService(
		storage.New(backend.kv, storage.WithLogger(log)),
		registration.WithLogger(log),
		registration.WithBcryptCost(cfg.BcryptCost),
		registration.WithLoginPath(cfg.LoginPath),
	)
	handlerOpts := []registration.HandlerOption{registration.WithHandlerLogger(log)}
	if cfg.RateLimit {
		limiterStore := ratelimiter.NewMemoryStore()
		defer limiterStore.Close()
		bucket, err := ratelimiter.NewBucket(limiterStore, cfg.Limiter)
		if err != nil {
			return err
		}
		handlerOpts = append(handlerOpts, registration.WithSubmitLimiter(bucket))
	}
	h := registration.NewHandler(svc, catalog, handlerOpts...)

	router := newRouter(cfg.MountPath, h, log, backend.checks...)

	log.InfoContext(ctx, "Starting registro",
		slog.String("storage", cfg.StorageDriver),
		slog.String("mount", cfg.MountPath),
	)
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

type mountable interface {
	Handle() http.Handler
}

func newRouter(mount string, module mountable, log *slog.Logger, checks ...httpserver.Check) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, 2*time.Second, checks...))
	r.Mount(mount, module.Handle())
	return r
}
