package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthpilot/wealthpilot"
)

// profileCmd holds the flags for the 'profile' subcommand.
type profileCmd struct {
	name         string
	age          int
	salary       float64
	takeHome     float64
	base         float64
	commission   float64
	rate         float64
	risk         string
	match        float64
	matchLimit   float64
	contribution float64
	hsa          float64
	hasHSA       bool
	ficaExempt   bool
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or update the financial profile" }
func (*profileCmd) Usage() string {
	return `wp profile [-salary <dollars>] [-risk <tolerance>] ...

  Without flags, shows the stored profile. Each flag given updates that
  field; the rest are left untouched.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name")
	f.IntVar(&c.age, "age", 0, "Age in years")
	f.Float64Var(&c.salary, "salary", 0, "Annual gross salary in dollars")
	f.Float64Var(&c.takeHome, "take-home", 0, "Monthly take-home pay in dollars")
	f.Float64Var(&c.base, "base", 0, "Annual base salary in dollars")
	f.Float64Var(&c.commission, "commission", 0, "Monthly commission in dollars")
	f.Float64Var(&c.rate, "rate", 0, "Commission withholding rate as a fraction")
	f.StringVar(&c.risk, "risk", "", "Risk tolerance (conservative, moderate, aggressive)")
	f.Float64Var(&c.match, "match", 0, "Employer match as a percent of salary")
	f.Float64Var(&c.matchLimit, "match-limit", 0, "Contribution percent needed for the full match")
	f.Float64Var(&c.contribution, "contribution", 0, "401k contribution as a percent of salary")
	f.Float64Var(&c.hsa, "hsa", 0, "Annual HSA contribution in dollars")
	f.BoolVar(&c.hasHSA, "has-hsa", false, "Whether an HSA is available")
	f.BoolVar(&c.ficaExempt, "fica-exempt", false, "Hide FICA lines from tax breakdowns")
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	var update wealthpilot.ProfileUpdate
	changed := false
	f.Visit(func(fl *flag.Flag) {
		changed = true
		switch fl.Name {
		case "name":
			update.Name = &c.name
		case "age":
			update.Age = &c.age
		case "salary":
			update.AnnualSalary = &c.salary
		case "take-home":
			update.TakeHomePay = &c.takeHome
		case "base":
			update.BaseSalary = &c.base
		case "commission":
			update.Commission = &c.commission
		case "rate":
			update.CommissionWithholdingRate = &c.rate
		case "risk":
			risk := wealthpilot.RiskTolerance(c.risk)
			update.RiskTolerance = &risk
		case "match":
			update.EmployerMatch = &c.match
		case "match-limit":
			update.EmployerMatchLimit = &c.matchLimit
		case "contribution":
			update.Contribution401kPct = &c.contribution
		case "hsa":
			update.HSAAnnual = &c.hsa
		case "has-hsa":
			update.HasHSA = &c.hasHSA
		case "fica-exempt":
			update.FICAExempt = &c.ficaExempt
		}
	})

	if changed {
		if _, err := app.UpdateProfile(update); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid profile: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	p := app.Profile
	fmt.Printf("Name:               %s\n", p.Name)
	fmt.Printf("Age:                %d\n", p.Age)
	fmt.Printf("Annual salary:      %s\n", wealthpilot.FormatUSD(p.AnnualSalary))
	fmt.Printf("Monthly take-home:  %s\n", wealthpilot.FormatUSD(p.TakeHomePay))
	fmt.Printf("Base salary:        %s\n", wealthpilot.FormatUSD(p.BaseSalary))
	fmt.Printf("Monthly commission: %s\n", wealthpilot.FormatUSD(p.Commission))
	fmt.Printf("Risk tolerance:     %s\n", p.RiskTolerance)
	fmt.Printf("Employer match:     %.1f%% up to %.1f%%\n", p.EmployerMatch, p.EmployerMatchLimit)
	fmt.Printf("401k contribution:  %.1f%%\n", p.Contribution401kPct)
	if p.HasHSA {
		fmt.Printf("HSA contribution:   %s\n", wealthpilot.FormatUSD(p.HSAAnnual))
	}
	for _, d := range p.Debts {
		fmt.Printf("Debt:               %s %s at %.2f%%\n", d.Name, wealthpilot.FormatUSD(d.Balance), d.InterestRate)
	}
	return subcommands.ExitSuccess
}
