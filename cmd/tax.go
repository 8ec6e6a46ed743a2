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

// taxCmd holds the flags for the 'tax' subcommand.
type taxCmd struct {
	base       float64
	commission float64
	rate       float64
	pre401k    float64
	preHSA     float64
	ficaExempt bool
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "NYC take-home pay estimate" }
func (*taxCmd) Usage() string {
	return `wp tax [-base <dollars>] [-commission <dollars>] [-pre401k <dollars>] [-prehsa <dollars>]

  Estimates federal, New York State, New York City and FICA withholding
  for a NYC resident and the resulting net pay per period. Without flags
  the figures come from the stored profile.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.base, "base", 0, "Annual base salary in dollars (defaults to the profile)")
	f.Float64Var(&c.commission, "commission", 0, "Annual commission in dollars (defaults to the profile)")
	f.Float64Var(&c.rate, "rate", 0, "Commission withholding rate as a fraction (defaults to the profile)")
	f.Float64Var(&c.pre401k, "pre401k", 0, "Annual pre-tax 401k contribution in dollars (defaults to the profile)")
	f.Float64Var(&c.preHSA, "prehsa", 0, "Annual HSA contribution in dollars (defaults to the profile)")
	f.BoolVar(&c.ficaExempt, "fica-exempt", false, "Hide FICA lines from the breakdown")
}

func (c *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	p := app.Profile
	in := wealthpilot.TakeHomeInput{
		BaseSalary:                p.BaseSalary,
		Commission:                p.Commission * 12,
		CommissionWithholdingRate: p.CommissionWithholdingRate,
		Pre401k:                   p.AnnualSalary * p.Contribution401kPct / 100,
		PreHSA:                    p.HSAAnnual,
		FICAExempt:                p.FICAExempt,
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "base":
			in.BaseSalary = c.base
		case "commission":
			in.Commission = c.commission
		case "rate":
			in.CommissionWithholdingRate = c.rate
		case "pre401k":
			in.Pre401k = c.pre401k
		case "prehsa":
			in.PreHSA = c.preHSA
		case "fica-exempt":
			in.FICAExempt = c.ficaExempt
		}
	})

	printMarkdown(renderer.TaxMarkdown(wealthpilot.ComputeTakeHome(in)))
	return subcommands.ExitSuccess
}
