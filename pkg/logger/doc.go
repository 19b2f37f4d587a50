// Package logger builds the *slog.Logger used across vtree and its services,
// and provides attribute helpers that keep key names consistent.
//
// New creates a logger from functional options: output format (text or
// json), level, static attributes and ContextExtractor callbacks that copy
// values from a context.Context into every record. Discard returns a logger
// that drops everything; validator trees use it until a logger is injected.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("signup-api"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	tree := vtree.New[User](vtree.WithLogger(log), vtree.WithDev(true))
//
// Attribute helpers such as TreeID, Field, Success and Report return
// slog.Attr values. Error and Errors return an empty Attr for nil errors so
// they can be passed unconditionally.
package logger
