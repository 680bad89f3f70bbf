package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/doclens/doclens/internal/httpapi"
	"github.com/doclens/doclens/normalizer"
)

// Serve implements the 'serve' command which runs the HTTP API server
// until interrupted.
func Serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		host = fs.String("host", "", "listen host (overrides DOCLENS_HOST)")
		port = fs.Int("port", 0, "listen port (overrides DOCLENS_PORT)")
	)
	fs.Usage = func() {
		fmt.Println(`Usage: doclens serve [flags]

Runs the documentation ingestion HTTP API. Configuration is read from
the environment (DOCLENS_HOST, DOCLENS_PORT, DOCLENS_ALLOWED_ORIGINS,
ANTHROPIC_API_KEY, DOCLENS_MODEL); flags override the environment.

Flags:`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("serve takes no arguments, got %d", fs.NArg())
	}

	cfg := httpapi.LoadConfig()
	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}

	logger := normalizer.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	server, err := httpapi.New(cfg, httpapi.WithLogger(logger))
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", "addr", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
