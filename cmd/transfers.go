package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/wealthpilot/wealthpilot"
	"github.com/wealthpilot/wealthpilot/date"
	"github.com/wealthpilot/wealthpilot/renderer"
)

// transfersCmd holds the flags for the 'transfers' subcommand.
type transfersCmd struct {
	add       bool
	ticker    string
	name      string
	amount    float64
	frequency string
	day       string
	next      string
	account   string
}

func (*transfersCmd) Name() string     { return "transfers" }
func (*transfersCmd) Synopsis() string { return "recurring contributions and the startup catch-up" }
func (*transfersCmd) Usage() string {
	return `wp transfers [-add -ticker <ticker> -amount <dollars> -next <date> ...]

  Displays the recurring contribution schedule and what the startup
  catch-up applied since the last run. With -add, records a new
  recurring transfer first.
`
}

func (c *transfersCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a recurring transfer before reporting")
	f.StringVar(&c.ticker, "ticker", "", "Ticker the transfer buys")
	f.StringVar(&c.name, "name", "", "Display name of the transfer")
	f.Float64Var(&c.amount, "amount", 0, "Dollars per occurrence")
	f.StringVar(&c.frequency, "frequency", string(wealthpilot.Monthly), "Frequency (weekly, biweekly, monthly)")
	f.StringVar(&c.day, "day", "", "Display label for the scheduled day")
	f.StringVar(&c.next, "next", "", "Next occurrence date (YYYY-MM-DD)")
	f.StringVar(&c.account, "account", string(wealthpilot.Taxable), "Account the transfer buys into")
}

func (c *transfersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		next, err := date.Parse(c.next)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing next date: %v\n", err)
			return subcommands.ExitUsageError
		}
		t := wealthpilot.RecurringTransfer{
			ID:        uuid.NewString(),
			Ticker:    c.ticker,
			Name:      c.name,
			Amount:    c.amount,
			Frequency: wealthpilot.Frequency(c.frequency),
			Day:       c.day,
			NextDate:  next,
			Account:   wealthpilot.Account(c.account),
		}
		if err := app.SaveTransfers(append(app.Transfers, t)); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving transfers: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.TransfersMarkdown(app.Transfers, app.LastSim))
	return subcommands.ExitSuccess
}
