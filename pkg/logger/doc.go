// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions. The options
// select the output format and the minimum level, attach static attributes
// and register ContextExtractor callbacks that pull request-scoped values
// (for example a request id) out of the context on every record.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and, when extractors are registered, wraps it with a
// handler that runs them before delegating to the underlying handler.
// RequestIDExtractor reads the id set by chi's RequestID middleware.
//
// Helper constructors in attr.go keep attribute keys consistent across
// packages: Schema, Field and Rule describe validation failures, Error and
// Errors attach errors only when they are non-nil.
//
// # Usage
//
//	log := logger.New(
//		logger.WithService("schemadoc"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithFormat(logger.Format(cfg.LogFormat)),
//		logger.WithContextExtractors(logger.RequestIDExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.DebugContext(ctx, "validation failed",
//		logger.Schema("SignupDto"),
//		logger.Fields(errs.Fields()),
//	)
//
// WithFormat and WithLevelName panic on unknown values so that a bad
// configuration stops the process at startup.
package logger
