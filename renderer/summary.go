package renderer

import (
	"fmt"
	"strings"

	"github.com/wealthpilot/wealthpilot"
	"github.com/wealthpilot/wealthpilot/date"
)

// SummaryMarkdown renders the dashboard: portfolio totals, budget ratios,
// RSU position, and the next scheduled vests.
func SummaryMarkdown(app *wealthpilot.App, today date.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# WealthPilot on %s\n\n", today)

	totals := wealthpilot.Aggregate(wealthpilot.Enrich(app.Holdings))
	fmt.Fprint(&b, "## Portfolio\n\n")
	row(&b, "Value", "Cost", "Gain/Loss", "%")
	rule(&b, 4)
	row(&b, usd(totals.TotalValue), usd(totals.TotalCost),
		signed(totals.TotalGainLoss), pct(totals.TotalGainLossPercent))

	budget := wealthpilot.SummarizeBudget(app.Budget)
	if budget.GrandTotal > 0 {
		fmt.Fprint(&b, "\n## Budget\n\n")
		row(&b, "Needs", "Wants", "Savings", "Total")
		rule(&b, 4)
		row(&b,
			usd(budget.Totals[wealthpilot.Needs]),
			usd(budget.Totals[wealthpilot.Wants]),
			usd(budget.Totals[wealthpilot.Savings]),
			usd(budget.GrandTotal))
	}

	rsus := wealthpilot.SummarizeGrants(app.Grants, today)
	if rsus.TotalShares > 0 {
		fmt.Fprint(&b, "\n## RSUs\n\n")
		fmt.Fprintf(&b, "%s total, %s vested.\n", usd(rsus.TotalCurrentValue), usd(rsus.VestedValue))
		for i, v := range rsus.UpcomingVests {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "- %s: %d %s shares (%s)\n", v.Date, v.Shares, v.Ticker, usd(v.Value))
		}
	}

	if advisory := wealthpilot.ComputeAdvisory(app.Profile); advisory != nil {
		fmt.Fprint(&b, "\n## Savings Plan\n\n")
		fmt.Fprintf(&b, "Save %s/mo (%s profile); %s/mo free for ETFs and crypto after retirement accounts.\n",
			usd(advisory.BudgetSplit[wealthpilot.Savings]), advisory.Risk.Label,
			usd(advisory.Waterfall.RemainingMonthly))
	}
	return b.String()
}
