package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	json  bool
	query string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "detail a simulated holding period stock by stock" }
func (*reportCmd) Usage() string {
	return `sim report [-json] [-q <jsonpath>] <start> <end>

  Draws a portfolio, values it twice with random prices, and reports both
  prices of every stock, the totals, the profit and, when the dates differ,
  the annualized profit.

  -json prints the report as JSON, -q prints the result of a JSONPath query
  on that JSON.

Usage Examples:
$ sim report 2020-01-01 2022-01-01
$ sim report -q '$.holdings[*].ticker' 2020-01-01 2022-01-01

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the report as JSON")
	f.StringVar(&c.query, "q", "", "JSONPath query on the JSON report, e.g. '$.profit'")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, end, ok := twoDates(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	r, err := s.portfolio.Report(start, end)
	if err != nil {
		return fail(err)
	}

	if !c.json && c.query == "" {
		printMarkdown(renderer.RenderReport(r))
		return subcommands.ExitSuccess
	}

	out, err := encodeReport(r, c.query)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// encodeReport returns r as indented JSON, or the JSON of the query result.
func encodeReport(r *simfolio.Report, query string) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("error encoding report: %w", err)
	}
	if query == "" {
		var b bytes.Buffer
		if err := json.Indent(&b, data, "", "  "); err != nil {
			return nil, fmt.Errorf("error encoding report: %w", err)
		}
		return b.Bytes(), nil
	}

	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("error decoding report: %w", err)
	}
	jval, err := jsonpath.Get(query, jobj)
	if err != nil {
		return nil, fmt.Errorf("error querying report with %q: %w", query, err)
	}
	return json.Marshal(jval)
}
