// Command sim simulates a portfolio of random stocks and reports fictitious
// profits between two dates. Run `sim topic` for the manual.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/simfolio/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when invoked by the shell for completion
	cmd.Completion().Complete("sim")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commander *subcommands.Commander, name string) (found bool) {
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
