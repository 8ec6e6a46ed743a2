// Command wp is the WealthPilot command line: a personal finance tracker
// covering budget, portfolio, recurring contributions, NYC taxes and RSUs.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/wealthpilot/wealthpilot/cmd"
)

func main() {
	// Optional .env with FMP_API_KEY and Gemini credentials.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
