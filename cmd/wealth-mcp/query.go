package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	wealthmcp "github.com/wagiedev/wealth-mcp-go"
)

const defaultCashThreshold = 15.0

type queryCmd struct {
	threshold float64
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run an advisor query across every client" }
func (*queryCmd) Usage() string {
	return `wealth-mcp query [-threshold N] <question> [args]

  Questions:
    sell                clients holding SELL-rated securities
    cash                clients whose cash exceeds -threshold % of their portfolio
    holding <term>      clients holding a security by ISIN or name
    no-equity           clients without any equity position
    alignment           risk alignment of every client, worst first
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.threshold, "threshold", defaultCashThreshold, "cash percentage threshold for the cash question")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()

		return subcommands.ExitUsageError
	}

	srv, _, err := loadServer()
	if err != nil {
		return fail(err)
	}

	result, status := c.run(srv.Analytics(), f.Args())
	if status != subcommands.ExitSuccess {
		f.Usage()

		return status
	}

	if result.err != nil {
		return fail(result.err)
	}

	if err := printJSON(os.Stdout, result.value); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}

type answer struct {
	value any
	err   error
}

func answerOf[T any](v T, err error) answer {
	return answer{value: v, err: err}
}

func (c *queryCmd) run(e *wealthmcp.Engine, args []string) (answer, subcommands.ExitStatus) {
	switch args[0] {
	case "sell":
		return answerOf(e.ClientsWithRating(wealthmcp.RatingSell)), subcommands.ExitSuccess
	case "cash":
		return answerOf(e.ClientsAboveCash(c.threshold)), subcommands.ExitSuccess
	case "holding":
		if len(args) != 2 {
			return answer{}, subcommands.ExitUsageError
		}

		return answerOf(e.ClientsHolding(args[1])), subcommands.ExitSuccess
	case "no-equity":
		return answerOf(e.ClientsWithoutEquities()), subcommands.ExitSuccess
	case "alignment":
		return answerOf(e.Alignments()), subcommands.ExitSuccess
	default:
		return answer{}, subcommands.ExitUsageError
	}
}
