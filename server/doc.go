// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package server binds the listen address and runs the HTTP server.

# Binding

Listen acquires the TCP address before anything is served:

	ln, err := server.Listen(":8000")
	var bindErr *server.BindError
	if errors.As(err, &bindErr) {
		// port in use or not permitted; fatal
	}

# Serving

Serve blocks until ctx is cancelled or the listener fails:

	srv := server.New(handler, slog.Default())
	err := srv.Serve(ctx, ln)

Cancelling ctx starts a graceful shutdown with a 5 second deadline, after
which Serve returns nil. Request contexts derive from ctx. Slow clients
are bounded by a 10 second header read timeout and idle keep-alive
connections are closed after 60 seconds.

# Readiness

ReadyURL formats the address for the startup log line, showing an
unspecified bind host (empty, 0.0.0.0 or ::) as 127.0.0.1:

	slog.Info("Server is running on " + server.ReadyURL(cfg.Host, ln.Addr()))
*/
package server
