// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until its context is cancelled or the process receives SIGINT or
// SIGTERM, then calls http.Server.Shutdown bounded by the shutdown timeout:
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthHandler serves liveness and readiness probes. Listen failures are
// wrapped with ErrStart and shutdown failures with ErrShutdown.
package httpserver
