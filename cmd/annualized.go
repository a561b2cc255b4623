package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type annualizedCmd struct{}

func (*annualizedCmd) Name() string { return "annualized" }
func (*annualizedCmd) Synopsis() string {
	return "print the simulated cumulative and annualized profit between two dates"
}
func (*annualizedCmd) Usage() string {
	return `sim annualized <start> <end>

  Draws a portfolio, values it twice with random prices, and prints the
  cumulative profit and its compound yearly equivalent. Years are the number
  of days between the dates divided by 365, in any order. Equal dates are
  rejected.

Usage Examples:
$ sim annualized 2020-01-01 2022-01-01
Profit since 2020-01-01: 15.00%
Annualized profit: 7.23%

`
}

func (c *annualizedCmd) SetFlags(f *flag.FlagSet) {}

func (c *annualizedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, end, ok := twoDates(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	if err := s.portfolio.ProfitAnnualized(stdout, start, end); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
