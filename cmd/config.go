package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// configCmd holds the flags for the 'config' subcommand.
type configCmd struct {
	apiKey string
	clear  bool
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change stored settings" }
func (*configCmd) Usage() string {
	return `wp config [-api-key <key>] [-clear-api-key]

  Without flags, shows whether a quote-provider API key is stored and
  when prices were last refreshed.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.apiKey, "api-key", "", "Store a Financial Modeling Prep API key")
	f.BoolVar(&c.clear, "clear-api-key", false, "Remove the stored API key")
}

func (c *configCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.apiKey != "":
		if err := app.SetAPIKey(c.apiKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error storing API key: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("API key stored")
	case c.clear:
		if err := app.SetAPIKey(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing API key: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("API key cleared")
	default:
		if app.APIKey() != "" {
			fmt.Println("API key: stored")
		} else {
			fmt.Println("API key: not set")
		}
		if last := app.LastRefresh(); !last.IsZero() {
			fmt.Println("Last price refresh:", last.Format("2006-01-02 15:04:05"))
		} else {
			fmt.Println("Last price refresh: never")
		}
	}
	return subcommands.ExitSuccess
}
