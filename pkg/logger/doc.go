// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.InfoContext(ctx, "User registered", logger.UserID(id), logger.CPF(cpf))
//
// New wraps the text or JSON handler in LogHandlerDecorator, which runs the
// registered ContextExtractor functions on every record so request-scoped
// values show up without passing them around.
//
// Attribute helpers that carry personal data (CPF, Email) mask their input.
package logger
