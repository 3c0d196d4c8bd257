package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"

	wealthmcp "github.com/wagiedev/wealth-mcp-go"
)

type clientsCmd struct {
	filter string
	sort   string
	limit  int
}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list clients as get_clients returns them" }
func (*clientsCmd) Usage() string {
	return `wealth-mcp clients [-filter <filter>] [-sort <key>] [-limit <n>]

  Filters: all, active, under_review, high_aum, new_clients.
  Sort keys: client_id, name, total_aum, onboarding_date, last_review.
`
}

func (c *clientsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "filter", "all", "client filter")
	f.StringVar(&c.sort, "sort", "client_id", "sort key")
	f.IntVar(&c.limit, "limit", 0, "maximum number of clients, 0 for all")
}

func (c *clientsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	srv, _, err := loadServer()
	if err != nil {
		return fail(err)
	}

	args := map[string]any{"filter_by": c.filter, "sort_by": c.sort}
	if c.limit > 0 {
		args["limit"] = c.limit
	}

	if err := callTool(ctx, os.Stdout, srv, wealthmcp.ToolGetClients, args); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}

type positionsCmd struct {
	assetType string
	minWeight float64
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "show the positions of one client" }
func (*positionsCmd) Usage() string {
	return `wealth-mcp positions [-type equity|bond|cash] [-min-weight <fraction>] <client_id>
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.assetType, "type", "all", "asset type to keep")
	f.Float64Var(&c.minWeight, "min-weight", 0, "minimum position weight as a fraction of the portfolio (0-1)")
}

func (c *positionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()

		return subcommands.ExitUsageError
	}

	srv, _, err := loadServer()
	if err != nil {
		return fail(err)
	}

	args := map[string]any{
		"client_id":  f.Arg(0),
		"asset_type": c.assetType,
		"min_weight": c.minWeight,
	}

	if err := callTool(ctx, os.Stdout, srv, wealthmcp.ToolGetClientPositions, args); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}

type recommendationsCmd struct {
	rating    string
	assetType string
}

func (*recommendationsCmd) Name() string     { return "recommendations" }
func (*recommendationsCmd) Synopsis() string { return "show analyst recommendations" }
func (*recommendationsCmd) Usage() string {
	return `wealth-mcp recommendations [-rating BUY|SELL|NEUTRAL] [-type equity|bond] [isin...]

  Without ISINs every covered security is listed. Listed securities without
  research coverage are reported as NEUTRAL.
`
}

func (c *recommendationsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rating, "rating", "all", "rating to keep")
	f.StringVar(&c.assetType, "type", "all", "asset type to keep")
}

func (c *recommendationsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	srv, _, err := loadServer()
	if err != nil {
		return fail(err)
	}

	rating := c.rating
	if rating != "all" {
		rating = strings.ToUpper(rating)
	}

	args := map[string]any{"rating_filter": rating, "asset_type": c.assetType}

	switch f.NArg() {
	case 0:
	case 1:
		args["isin"] = f.Arg(0)
	default:
		args["isins"] = f.Args()
	}

	if err := callTool(ctx, os.Stdout, srv, wealthmcp.ToolGetRecommendations, args); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}
