// Package httpserver runs a small HTTP server with graceful shutdown,
// used to expose Prometheus metrics while l10ncheck watches catalogs.
//
// Server binds its listener before Run invokes the start hooks, so hooks and
// Addr report the real address even for ":0". Run blocks until the context
// is cancelled or Shutdown is called, then shuts the server down with
// http.Server.Shutdown bounded by the configured timeout.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(log *slog.Logger, addr string) {
//			log.Info("serving metrics", "addr", addr)
//		}),
//	)
//	if err := srv.Run(ctx, collector.Handler()); err != nil {
//		log.Error("metrics server stopped", "err", err)
//	}
//
// # Errors
//
// Run wraps listen and serve errors with ErrStart, while Shutdown wraps
// underlying shutdown errors with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
