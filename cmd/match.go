package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthpilot/wealthpilot"
	"github.com/wealthpilot/wealthpilot/renderer"
)

// matchCmd holds the flags for the 'match' subcommand.
type matchCmd struct {
	salary       float64
	contribution float64
}

func (*matchCmd) Name() string     { return "match" }
func (*matchCmd) Synopsis() string { return "tiered 401k employer match calculator" }
func (*matchCmd) Usage() string {
	return `wp match [-salary <dollars>] [-contribution <percent>]

  Computes the employer 401k match: 100% on the first 3% of salary
  contributed, 50% on the next 2%. Without flags the figures come from
  the stored profile.
`
}

func (c *matchCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.salary, "salary", 0, "Annual salary in dollars (defaults to the profile)")
	f.Float64Var(&c.contribution, "contribution", 0, "Contribution as a percent of salary (defaults to the profile)")
}

func (c *matchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	salary := app.Profile.AnnualSalary
	contribution := app.Profile.Contribution401kPct
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "salary":
			salary = c.salary
		case "contribution":
			contribution = c.contribution
		}
	})

	printMarkdown(renderer.MatchMarkdown(wealthpilot.ComputeRampMatch(salary, contribution)))
	return subcommands.ExitSuccess
}
