package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/subcommands"

	"github.com/wagiedev/wealth-mcp-go/internal/config"
	"github.com/wagiedev/wealth-mcp-go/internal/mcp"
	"github.com/wagiedev/wealth-mcp-go/internal/portfolio"
)

type hostConfigCmd struct {
	transport string
}

func (*hostConfigCmd) Name() string     { return "host-config" }
func (*hostConfigCmd) Synopsis() string { return "print the mcpServers entry for a desktop assistant host" }
func (*hostConfigCmd) Usage() string {
	return `wealth-mcp host-config [-transport stdio|http]

  Prints the JSON to merge into the host's MCP configuration. The stdio
  entry launches this binary; the http entry points at the configured
  listen address.
`
}

func (c *hostConfigCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transport, "transport", "", "transport the host should use (stdio, http)")
}

func (c *hostConfigCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return fail(err)
	}

	transport := cfg.Transport
	if c.transport != "" {
		transport = config.NormalizeTransport(c.transport)
	}

	var doc mcp.HostConfig

	switch transport {
	case config.TransportStdio:
		exe, err := os.Executable()
		if err != nil {
			return fail(err)
		}

		if abs, err := filepath.Abs(exe); err == nil {
			exe = abs
		}

		doc = mcp.StdioHostConfig(cfg.Name, exe, []string{"serve"}, hostEnv(cfg))
	case config.TransportHTTP:
		doc = mcp.HTTPHostConfig(cfg.Name, "http://"+cfg.HTTPAddr)
	default:
		fmt.Fprintf(os.Stderr, "unsupported transport %q\n", transport)

		return subcommands.ExitUsageError
	}

	data, err := doc.MarshalIndent()
	if err != nil {
		return fail(err)
	}

	fmt.Println(string(data))

	return subcommands.ExitSuccess
}

// hostEnv carries the settings that differ from the defaults into the
// launched server's environment.
func hostEnv(cfg *config.Config) map[string]string {
	env := map[string]string{}

	if cfg.Name != config.DefaultName {
		env[config.EnvName] = cfg.Name
	}

	if cfg.Seed != portfolio.DefaultSeed {
		env[config.EnvSeed] = strconv.FormatUint(cfg.Seed, 10)
	}

	if cfg.Version != config.DefaultVersion {
		env[config.EnvVersion] = cfg.Version
	}

	if cfg.LogLevel != slog.LevelInfo {
		env[config.EnvLogLevel] = cfg.LogLevel.String()
	}

	if cfg.LogFormat != config.LogFormatText {
		env[config.EnvLogFormat] = cfg.LogFormat
	}

	return env
}
