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

// rsuCmd holds the flags for the 'rsu' subcommand.
type rsuCmd struct {
	add           bool
	company       string
	ticker        string
	totalShares   int
	grantPrice    float64
	price         float64
	grantDate     string
	vestingMonths int
	cliffMonths   int
	note          string
}

func (*rsuCmd) Name() string     { return "rsu" }
func (*rsuCmd) Synopsis() string { return "RSU grants and vesting schedule" }
func (*rsuCmd) Usage() string {
	return `wp rsu [-add -company <name> -shares <n> -grant-date <date> ...]

  Displays every RSU grant with its vesting progress and the vests due
  over the next twelve months. With -add, records a new grant and
  generates its quarterly vesting schedule first.
`
}

func (c *rsuCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a grant before reporting")
	f.StringVar(&c.company, "company", "", "Granting company")
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol, if public")
	f.IntVar(&c.totalShares, "shares", 0, "Total shares granted")
	f.Float64Var(&c.grantPrice, "grant-price", 0, "Share price at grant in dollars")
	f.Float64Var(&c.price, "price", 0, "Current share price in dollars")
	f.StringVar(&c.grantDate, "grant-date", "", "Grant date (YYYY-MM-DD)")
	f.IntVar(&c.vestingMonths, "vesting", 48, "Vesting period in months")
	f.IntVar(&c.cliffMonths, "cliff", 12, "Cliff in months")
	f.StringVar(&c.note, "note", "", "Optional note")
}

func (c *rsuCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.add {
		if c.company == "" {
			fmt.Fprintln(os.Stderr, "-company is required with -add")
			return subcommands.ExitUsageError
		}
		granted, err := date.Parse(c.grantDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing grant date: %v\n", err)
			return subcommands.ExitUsageError
		}
		g := wealthpilot.RSUGrant{
			ID:            uuid.NewString(),
			Company:       c.company,
			Ticker:        c.ticker,
			TotalShares:   c.totalShares,
			GrantPrice:    c.grantPrice,
			CurrentPrice:  c.price,
			GrantDate:     granted,
			VestingMonths: c.vestingMonths,
			CliffMonths:   c.cliffMonths,
			Note:          c.note,
		}
		g.VestingSchedule = wealthpilot.GenerateVestingSchedule(g.GrantDate, g.VestingMonths, g.CliffMonths, g.TotalShares)
		if err := g.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid grant: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := app.SaveGrants(append(app.Grants, g)); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving grants: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.RSUMarkdown(app.Grants, date.Today()))
	return subcommands.ExitSuccess
}
