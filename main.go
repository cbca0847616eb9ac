package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/danielhkuo/pollserver/catalog"
	"github.com/danielhkuo/pollserver/cliparse"
	"github.com/danielhkuo/pollserver/middleware"
	"github.com/danielhkuo/pollserver/router"
	"github.com/danielhkuo/pollserver/server"
)

func main() {
	// Cancelled on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// run starts the server and blocks until ctx is cancelled.
// It returns the process exit code.
func run(ctx context.Context, args []string) int {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	// Build the poll collection once; it never changes afterwards
	polls, source, err := loadPolls(ctx, cfg)
	if err != nil {
		slog.Error("loading polls failed", "source", source, "error", err)
		return 1
	}
	slog.Debug("Polls ready", "source", source, "count", polls.Len())

	// Create router
	var handler http.Handler = router.NewRouter(polls)
	if len(cfg.CORSOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSOrigins)(handler)
	}

	// Bind before announcing readiness
	ln, err := server.Listen(cfg.Addr())
	if err != nil {
		slog.Error("Server failed to start", "error", err)
		return 1
	}

	slog.Info("Server is running on " + server.ReadyURL(cfg.Host, ln.Addr()))

	err = server.New(handler, slog.Default()).Serve(ctx, ln)
	if err != nil {
		slog.Error("Server closed", "error", err)
		return 1
	}
	slog.Info("Server closed")
	return 0
}

func loadPolls(ctx context.Context, cfg cliparse.Config) (*catalog.Collection, string, error) {
	switch {
	case cfg.PollsFile != "":
		polls, err := catalog.LoadFile(cfg.PollsFile)
		return polls, "file", err
	case cfg.DatabaseURL != "":
		polls, err := catalog.LoadDatabase(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		return polls, cfg.DatabaseType, err
	default:
		return catalog.Default(), "builtin", nil
	}
}
