package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	wealthmcp "github.com/wagiedev/wealth-mcp-go"
)

const reportWordWrap = 120

type reportCmd struct {
	raw bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render a portfolio review for one client" }
func (*reportCmd) Usage() string {
	return `wealth-mcp report [-raw] <client_id>

  Renders the client's positions, asset mix, research ratings and risk
  alignment as a terminal markdown report.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()

		return subcommands.ExitUsageError
	}

	srv, _, err := loadServer()
	if err != nil {
		return fail(err)
	}

	md, err := portfolioReport(srv, f.Arg(0))
	if err != nil {
		return fail(fmt.Errorf("%w [%s]", err, wealthmcp.ErrorCode(err)))
	}

	if c.raw {
		fmt.Print(md)

		return subcommands.ExitSuccess
	}

	if err := printMarkdown(md); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}

func printMarkdown(md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(reportWordWrap),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprint(os.Stdout, out)

	return err
}

// portfolioReport builds the markdown review of client id.
func portfolioReport(srv *wealthmcp.Server, id string) (string, error) {
	client, err := srv.GetClient(id)
	if err != nil {
		return "", err
	}

	positions, err := srv.GetPositions(id)
	if err != nil {
		return "", err
	}

	alignment, err := srv.RiskAlignment(id)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s (%s)\n\n", client.Name, client.ID)
	fmt.Fprintf(&b, "- Risk profile: **%s**\n", client.RiskProfile)
	fmt.Fprintf(&b, "- Assets under management: %s\n", client.AUM)
	fmt.Fprintf(&b, "- Portfolio value: %s\n", positions.Total())
	fmt.Fprintf(&b, "- Status: %s, last review %s\n", client.Status, client.LastReview)

	if client.AdvisorNotes != "" {
		fmt.Fprintf(&b, "\n> %s\n", client.AdvisorNotes)
	}

	b.WriteString("\n## Positions\n\n")
	b.WriteString("| Type | ISIN | Name | Quantity | Valuation | Weight | Rating |\n")
	b.WriteString("|---|---|---|---|---:|---:|---|\n")

	for _, p := range positions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %.2f%% | %s |\n",
			p.Kind, dash(p.ISIN), p.Name, quantity(p), p.Valuation, p.Weight, rating(srv, p))
	}

	b.WriteString("\n## Asset mix\n\n")
	b.WriteString("| Asset class | Current | Target |\n")
	b.WriteString("|---|---:|---|\n")
	fmt.Fprintf(&b, "| Cash | %.2f%% | %s |\n", alignment.Current.Cash, alignment.Target.Cash)
	fmt.Fprintf(&b, "| Bonds | %.2f%% | %s |\n", alignment.Current.Bonds, alignment.Target.Bonds)
	fmt.Fprintf(&b, "| Equities | %.2f%% | %s |\n", alignment.Current.Equities, alignment.Target.Equities)

	fmt.Fprintf(&b, "\n## Risk alignment: %s (score %d)\n\n", alignment.Status, alignment.Score)

	if len(alignment.Issues) == 0 {
		b.WriteString("Allocation is within every target band.\n")
	}

	for _, issue := range alignment.Issues {
		fmt.Fprintf(&b, "- %s\n", issue)
	}

	return b.String(), nil
}

func quantity(p wealthmcp.Position) string {
	switch p.Kind {
	case wealthmcp.PositionEquity:
		return fmt.Sprintf("%d @ %s", p.Shares, p.Price)
	case wealthmcp.PositionBond:
		return fmt.Sprintf("%s @ %.2f%%", p.Nominal, p.PricePercent)
	default:
		return p.Amount.String()
	}
}

func rating(srv *wealthmcp.Server, p wealthmcp.Position) string {
	if p.IsCash() {
		return "-"
	}

	rec, err := srv.GetRecommendation(p.ISIN)
	if err != nil || !rec.Covered {
		return "no rating"
	}

	return string(rec.Rating)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
