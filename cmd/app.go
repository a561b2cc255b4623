// Package cmd implements the CLI application simulating a random portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range commands() {
		c.Register(cmd, groups[cmd.Name()])
	}
}

func commands() []subcommands.Command {
	return []subcommands.Command{
		&betweenCmd{},
		&annualizedCmd{},
		&holdingsCmd{},
		&reportCmd{},
		&topicCmd{},
	}
}

var groups = map[string]string{
	"between":    "profit",
	"annualized": "profit",
	"report":     "profit",
	"holdings":   "portfolio",
	"topic":      "",
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile   = flag.String("config", "simfolio.toml", "Path to the optional TOML configuration file")
	currencyFlag = flag.String("currency", "", "Currency of the simulated prices (default USD)")
	seedFlag     = flag.String("seed", "", "Seed phrase making the run reproducible")
	Verbose      = flag.Bool("v", false, "Log debug information on stderr")
	rawMarkdown  = flag.Bool("raw", false, "Print markdown reports without rendering them")
)

// output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// runID tags every log line of this invocation.
var runID = uuid.NewString()[:8]

// session is what every command needs: the effective settings, a logger and the portfolio.
type session struct {
	cfg       *Config
	logger    zerolog.Logger
	portfolio *simfolio.Portfolio
}

// openSession resolves the settings and draws a new portfolio.
func openSession() (*session, error) {
	cfg, err := Settings()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	opts := []simfolio.Option{
		simfolio.WithCurrency(cfg.Currency),
		simfolio.WithLogger(logger),
	}
	if cfg.Seed != "" {
		opts = append(opts, simfolio.WithRand(simfolio.NewRand(simfolio.SeedFromString(cfg.Seed))))
		logger.Debug().Str("seed", cfg.Seed).Msg("reproducible run")
	}
	return &session{cfg: cfg, logger: logger, portfolio: simfolio.New(opts...)}, nil
}

func newLogger(cfg *Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("run", runID).
		Logger()
}

// fail reports err and picks the exit status: bad dates are usage errors.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, date.ErrInvalidFormat) || errors.Is(err, simfolio.ErrEmptyPeriod) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// twoDates checks that f holds exactly a start and an end argument.
func twoDates(f *flag.FlagSet) (start, end string, ok bool) {
	if f.NArg() != 2 {
		fmt.Fprintf(stderr, "Error: want <start> <end> dates, got %d argument(s)\n", f.NArg())
		return "", "", false
	}
	return f.Arg(0), f.Arg(1), true
}

// printMarkdown renders md for the terminal, or prints it as is with -raw or
// when rendering fails.
func printMarkdown(md string) {
	if !*rawMarkdown {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			out, err := r.Render(md)
			if err == nil {
				fmt.Fprint(stdout, out)
				return
			}
		}
	}
	fmt.Fprint(stdout, md)
}
