// Command wealth-mcp serves the wealth-management MCP tools and exposes the
// same dataset on the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"

	wealthmcp "github.com/wagiedev/wealth-mcp-go"
	"github.com/wagiedev/wealth-mcp-go/internal/config"
)

var envFile = flag.String("env", ".env", "dotenv file holding WEALTH_MCP_* settings")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&serveCmd{}, "server")
	commander.Register(&hostConfigCmd{}, "server")

	commander.Register(&clientsCmd{}, "data")
	commander.Register(&positionsCmd{}, "data")
	commander.Register(&recommendationsCmd{}, "data")

	commander.Register(&queryCmd{}, "advisor")
	commander.Register(&reportCmd{}, "advisor")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(int(commander.Execute(ctx)))
}

// loadServer reads the configuration and builds the server. Logs go to
// stderr so they never mix with stdio protocol traffic or JSON output.
func loadServer() (*wealthmcp.Server, *config.Config, error) {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, nil, err
	}

	srv, err := wealthmcp.NewServer(
		wealthmcp.WithLogger(cfg.Logger(os.Stderr)),
		wealthmcp.WithSeed(cfg.Seed),
		wealthmcp.WithName(cfg.Name),
		wealthmcp.WithVersion(cfg.Version),
	)
	if err != nil {
		return nil, nil, err
	}

	return srv, cfg, nil
}

// callTool runs a tool and prints its JSON payload to w.
func callTool(ctx context.Context, w io.Writer, srv *wealthmcp.Server, name string, args map[string]any) error {
	result, err := srv.CallTool(ctx, name, args)
	if err != nil {
		return err
	}

	var payload json.RawMessage
	if err := wealthmcp.DecodeResult(result, &payload); err != nil {
		return fmt.Errorf("%s [%s]", err, wealthmcp.ErrorCode(err))
	}

	return printJSON(w, payload)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)

	return subcommands.ExitFailure
}
