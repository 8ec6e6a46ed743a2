package renderer

import (
	"fmt"
	"strings"

	"github.com/wealthpilot/wealthpilot"
)

// AdvisoryMarkdown renders the full advisory report: budget split, debt
// strategy, retirement waterfall, and the discretionary investing plan.
func AdvisoryMarkdown(a *wealthpilot.Advisory) string {
	if a == nil {
		return "# Advisory\n\nSet your annual salary in the profile to get advice.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Advisory (%s)\n\n", a.Risk.Label)
	fmt.Fprintf(&b, "Monthly take-home %s (gross %s)\n\n", usd(a.MonthlyTakeHome), usd(a.MonthlyGross))

	fmt.Fprint(&b, "## Budget Split\n\n")
	row(&b, "Bucket", "Share", "Monthly")
	rule(&b, 3)
	row(&b, "Needs", pct(a.Risk.Needs/100), usd(a.BudgetSplit[wealthpilot.Needs]))
	row(&b, "Wants", pct(a.Risk.Wants/100), usd(a.BudgetSplit[wealthpilot.Wants]))
	row(&b, "Savings", pct(a.Risk.Savings/100), usd(a.BudgetSplit[wealthpilot.Savings]))

	if a.DebtStrategy.HasDebt {
		fmt.Fprintf(&b, "\n## Debt Strategy: %s\n\n", a.DebtStrategy.Strategy)
		row(&b, "Debt", "Rate", "Minimum", "Priority", "Recommendation")
		rule(&b, 5)
		for _, d := range a.DebtStrategy.Items {
			row(&b, d.Name, fmt.Sprintf("%.2f%%", d.InterestRate), usd(d.MinimumPayment), d.Priority, d.Recommendation)
		}
		fmt.Fprintf(&b, "\nMinimum payments total %s/mo.\n", usd(a.DebtStrategy.TotalMonthly))
	}

	fmt.Fprint(&b, "\n## Retirement Waterfall\n\n")
	row(&b, "Step", "Annual", "Notes")
	rule(&b, 3)
	for _, s := range a.Waterfall.Steps {
		notes := s.Description
		if s.FreeMatch > 0 {
			notes = fmt.Sprintf("%s (+%s free match)", notes, usd(s.FreeMatch))
		}
		row(&b, s.Label, usd(s.Amount), notes)
	}
	fmt.Fprintf(&b, "\nLeft for discretionary investing: %s/yr (%s/mo)\n",
		usd(a.Waterfall.RemainingAnnual), usd(a.Waterfall.RemainingMonthly))

	fmt.Fprintf(&b, "\n## Investing Plan (%s crypto)\n\n", pct(a.CryptoPct))
	row(&b, "Ticker", "Name", "Weight", "Monthly", "Annual")
	rule(&b, 5)
	for _, p := range a.ETFBreakdown {
		row(&b, p.Ticker, p.Name, pct(p.Weight), usd(p.MonthlyAmount), usd(p.AnnualAmount))
	}
	for _, p := range a.CryptoBreakdown {
		row(&b, p.Ticker, p.Name, pct(p.Weight), usd(p.MonthlyAmount), usd(p.AnnualAmount))
	}

	return b.String()
}
