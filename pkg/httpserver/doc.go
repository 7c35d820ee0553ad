// Package httpserver runs an http.Handler with configurable timeouts,
// graceful shutdown and structured logging via slog.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled (wire signals with signal.NotifyContext)
// or the listener fails, then shuts down within the configured deadline.
// Listen errors wrap ErrStart and shutdown errors wrap ErrShutdown.
package httpserver
