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

// advisorCmd holds the flags for the 'advisor' subcommand.
type advisorCmd struct{}

func (*advisorCmd) Name() string     { return "advisor" }
func (*advisorCmd) Synopsis() string { return "contribution waterfall and allocation plan" }
func (*advisorCmd) Usage() string {
	return `wp advisor

  Runs the retirement waterfall on the stored profile: employer match
  first, then Roth IRA, then 401k up to the annual limit, then taxable,
  and splits the taxable portion across the recommended ETF and crypto
  baskets. Includes a debt payoff strategy when debts are recorded.
`
}

func (*advisorCmd) SetFlags(_ *flag.FlagSet) {}

func (c *advisorCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AdvisoryMarkdown(wealthpilot.ComputeAdvisory(app.Profile)))
	return subcommands.ExitSuccess
}
