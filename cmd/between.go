package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type betweenCmd struct{}

func (*betweenCmd) Name() string     { return "between" }
func (*betweenCmd) Synopsis() string { return "print the simulated profit between two dates" }
func (*betweenCmd) Usage() string {
	return `sim between <start> <end>

  Draws a portfolio, values it twice with random prices, and prints the
  cumulative profit. Dates use the yyyy-mm-dd format and are only validated.

Usage Examples:
$ sim between 2022-01-01 2020-01-01
Profit between 2022-01-01 and 2020-01-01: 12.34%

`
}

func (c *betweenCmd) SetFlags(f *flag.FlagSet) {}

func (c *betweenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, end, ok := twoDates(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	if err := s.portfolio.ProfitBetween(stdout, start, end); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
