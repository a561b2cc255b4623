package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/simfolio/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list the stocks of a drawn portfolio with one price each" }
func (*holdingsCmd) Usage() string {
	return `sim holdings

  Draws a portfolio and prints its stocks with a single random price each,
  and their total. Use -seed to see the portfolio a seeded report will use.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintf(stderr, "Error: holdings takes no argument\n")
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	h := renderer.NewHoldings(s.portfolio.Quotes(), s.cfg.Currency)
	printMarkdown(renderer.RenderHoldings(h))
	return subcommands.ExitSuccess
}
