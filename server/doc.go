// Package server runs the jsonops HTTP service.
//
// A [Server] wraps an [net/http.Server] with the timeouts from [Config] and
// shuts down gracefully when the context passed to [Server.Run] ends:
//
//	cfg := server.NewConfig()
//	cfg.RegisterFlags(cmd.Flags())
//
//	srv, err := cfg.NewServer(handler, logger)
//	if err != nil {
//	    return err
//	}
//
//	return srv.Run(ctx)
//
// With --pprof, the runtime profiling handlers are served under /debug.
package server
