package renderer

import (
	"fmt"
	"strings"

	"github.com/wealthpilot/wealthpilot"
)

var categoryOrder = []wealthpilot.BudgetCategory{
	wealthpilot.Needs, wealthpilot.Wants, wealthpilot.Savings,
}

var categoryLabels = map[wealthpilot.BudgetCategory]string{
	wealthpilot.Needs:   "Needs",
	wealthpilot.Wants:   "Wants",
	wealthpilot.Savings: "Savings & Investing",
}

// BudgetMarkdown renders the monthly budget entries and their 50/30/20
// summary.
func BudgetMarkdown(entries []wealthpilot.BudgetEntry) string {
	var b strings.Builder
	s := wealthpilot.SummarizeBudget(entries)
	groups := wealthpilot.GroupByCategory(entries)

	fmt.Fprint(&b, "# Monthly Budget\n\n")
	fmt.Fprintf(&b, "Total %s/mo, savings rate %s\n\n", usd(s.GrandTotal), pct(s.SavingsRate))

	for _, cat := range categoryOrder {
		group := groups[cat]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s - %s (%s)\n\n", categoryLabels[cat], usd(s.Totals[cat]), pct(s.Percentages[cat]))
		row(&b, "Name", "Subcategory", "Type", "Amount")
		rule(&b, 4)
		for _, e := range group {
			row(&b, e.Name, e.Subcategory, e.Type, usd(e.Amount))
		}
		fmt.Fprintln(&b)
	}

	if s.GrandTotal == 0 {
		fmt.Fprintln(&b, "No budget entries yet.")
	}
	return b.String()
}
