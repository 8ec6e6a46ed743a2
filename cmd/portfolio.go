package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/wealthpilot/wealthpilot"
	"github.com/wealthpilot/wealthpilot/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	add     bool
	ticker  string
	name    string
	typ     string
	account string
	shares  float64
	avgCost float64
	price   float64
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "holdings, allocation and drift report" }
func (*portfolioCmd) Usage() string {
	return `wp portfolio [-add -ticker <ticker> -shares <n> -cost <price> ...]

  Displays every holding with gain/loss, the allocation by asset type and
  the drift against the recommended ETF mix. With -add, records a new
  holding first.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a holding before reporting")
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol of the new holding")
	f.StringVar(&c.name, "name", "", "Display name of the new holding")
	f.StringVar(&c.typ, "type", string(wealthpilot.ETF), "Asset type (etf, crypto, stock, bond)")
	f.StringVar(&c.account, "account", string(wealthpilot.Taxable), "Account (taxable, 401k, roth_ira, traditional_ira, hsa, crypto_exchange, other)")
	f.Float64Var(&c.shares, "shares", 0, "Number of shares")
	f.Float64Var(&c.avgCost, "cost", 0, "Average cost per share in dollars")
	f.Float64Var(&c.price, "price", 0, "Current price per share in dollars")
}

func (c *portfolioCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.add {
		if c.ticker == "" {
			fmt.Fprintln(os.Stderr, "-ticker is required with -add")
			return subcommands.ExitUsageError
		}
		h := wealthpilot.Holding{
			ID:           uuid.NewString(),
			Ticker:       c.ticker,
			Name:         c.name,
			Type:         wealthpilot.AssetType(c.typ),
			Account:      wealthpilot.Account(c.account),
			Shares:       c.shares,
			AvgCost:      c.avgCost,
			CurrentPrice: c.price,
		}
		if err := h.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid holding: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := app.SaveHoldings(append(app.Holdings, h)); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving holdings: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.PortfolioMarkdown(app.Holdings))
	return subcommands.ExitSuccess
}
