// Package logger builds *slog.Logger instances and provides attribute
// helpers so that components log with consistent keys.
//
// New applies functional options (format, level, output, static attributes,
// per-environment defaults) and returns a plain *slog.Logger:
//
//	log := logger.New(
//	    logger.WithEnvironment("development"),
//	    logger.WithAttr(logger.Component("catalog")),
//	)
//	log.Error("range rejected",
//	    logger.Code(10000004),
//	    logger.Field("min"),
//	    logger.Error(err),
//	)
//
// Error returns an empty attribute for a nil error, so callers can pass it
// without a nil check. Discard and OrDefault cover the two common fallbacks
// for optional loggers in library code.
package logger
