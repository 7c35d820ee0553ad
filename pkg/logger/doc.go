// Package logger builds *slog.Logger instances with functional options,
// helper attribute constructors and transparent injection of values stored
// in context.Context.
//
//	log := logger.New(
//	    logger.WithService("uagen"),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//
// New picks slog.NewTextHandler or slog.NewJSONHandler and wraps it with
// LogHandlerDecorator, which runs registered ContextExtractor callbacks on
// every record. Attribute helpers (Error, Browser, Count, ...) live in
// attr.go and keep key naming consistent.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("generated fixtures", logger.Error(err))
//
// needs no nil check.
package logger
