package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	wealthmcp "github.com/wagiedev/wealth-mcp-go"
	"github.com/wagiedev/wealth-mcp-go/internal/config"
)

const shutdownTimeout = 5 * time.Second

type serveCmd struct {
	transport string
	addr      string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the MCP tools over stdio or streamable HTTP" }
func (*serveCmd) Usage() string {
	return `wealth-mcp serve [-transport stdio|http] [-addr host:port]

  Serves get_clients, get_client_positions and get_recommendations. The
  stdio transport is what desktop assistant hosts launch; http serves the
  streamable HTTP transport until interrupted.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transport, "transport", "", "transport to serve (stdio, http); overrides "+config.EnvTransport)
	f.StringVar(&c.addr, "addr", "", "listen address for the http transport; overrides "+config.EnvHTTPAddr)
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	srv, cfg, err := loadServer()
	if err != nil {
		return fail(err)
	}

	transport := cfg.Transport
	if c.transport != "" {
		transport = config.NormalizeTransport(c.transport)
	}

	addr := cfg.HTTPAddr
	if c.addr != "" {
		addr = c.addr
	}

	logger := cfg.Logger(os.Stderr)

	switch transport {
	case config.TransportStdio:
		err = srv.Run(ctx, &mcp.StdioTransport{})
	case config.TransportHTTP:
		err = serveHTTP(ctx, logger, srv, addr)
	default:
		logger.Error("unsupported transport", slog.String("transport", string(transport)))

		return subcommands.ExitUsageError
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fail(err)
	}

	return subcommands.ExitSuccess
}

// serveHTTP listens on addr until ctx is done, then drains in-flight
// requests.
func serveHTTP(ctx context.Context, logger *slog.Logger, srv *wealthmcp.Server, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.HTTPHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("serving MCP over HTTP", slog.String("addr", addr))

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down HTTP server")

		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
