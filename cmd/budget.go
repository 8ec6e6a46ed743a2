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

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	add         bool
	name        string
	category    string
	subcategory string
	amount      float64
	typ         string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "monthly budget breakdown and savings rate" }
func (*budgetCmd) Usage() string {
	return `wp budget [-add -name <name> -category <cat> -amount <dollars> ...]

  Displays the monthly budget grouped by needs, wants and savings, with
  the share of each category and the savings rate. With -add, records a
  new budget entry first.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a budget entry before reporting")
	f.StringVar(&c.name, "name", "", "Display name of the new entry")
	f.StringVar(&c.category, "category", string(wealthpilot.Needs), "Category (needs, wants, savings)")
	f.StringVar(&c.subcategory, "subcategory", "", "Subcategory within the category")
	f.Float64Var(&c.amount, "amount", 0, "Monthly amount in dollars")
	f.StringVar(&c.typ, "type", "fixed", "Expense type (fixed, variable)")
}

func (c *budgetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.add {
		if c.name == "" {
			fmt.Fprintln(os.Stderr, "-name is required with -add")
			return subcommands.ExitUsageError
		}
		entry := wealthpilot.BudgetEntry{
			ID:          uuid.NewString(),
			Name:        c.name,
			Category:    wealthpilot.BudgetCategory(c.category),
			Subcategory: c.subcategory,
			Amount:      c.amount,
			Type:        c.typ,
		}
		if err := app.SaveBudget(append(app.Budget, entry)); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving budget: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.BudgetMarkdown(app.Budget))
	return subcommands.ExitSuccess
}
