// Package logger builds slog loggers for the formstate packages and provides
// attribute helpers that keep key names consistent.
//
// New assembles a text or JSON slog.Handler, applies static attributes and
// wraps the result in LogHandlerDecorator, which injects attributes extracted
// from the record context on every call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithComponent("signup-form"),
//	)
//	log.DebugContext(ctx, "field validated",
//	    logger.Field("email"),
//	    logger.Messages(msgs),
//	)
//
// ParseFormat and ParseLevel turn configuration strings into option values.
// Components that take an optional logger default to Discard.
//
// # Error Handling
//
// Error and Messages return an empty attribute for nil input, so they can be
// passed unconditionally.
package logger
