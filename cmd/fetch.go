package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/wealthpilot/wealthpilot"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "refresh holding prices from the quote provider" }
func (*fetchCmd) Usage() string {
	return `wp fetch

  Fetches a current quote for every distinct non-cash ticker in the
  portfolio and updates the stored prices. Requires a Financial
  Modeling Prep API key (see the -fmp-api-key flag and 'wp config').
`
}

func (*fetchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fetchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	var client wealthpilot.QuoteClient
	updated, result := client.Refresh(ctx, fmpAPIKey(app), app.Holdings)
	if !result.Success {
		fmt.Fprintf(os.Stderr, "Price refresh failed: %s\n", result.Error)
		return subcommands.ExitFailure
	}

	if err := app.SaveHoldings(updated); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := app.SetLastRefresh(time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording refresh time: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %d holding(s) across %d ticker(s)\n", result.Updated, len(result.Prices))
	for ticker, price := range result.Prices {
		fmt.Printf("  %-6s %s\n", ticker, wealthpilot.FormatUSD(price))
	}
	return subcommands.ExitSuccess
}
