package renderer

import (
	"fmt"
	"strings"

	"github.com/wealthpilot/wealthpilot"
)

// TaxMarkdown renders the take-home breakdown. FICA lines are suppressed
// for a FICA-exempt profile; the computed totals still include them.
func TaxMarkdown(t *wealthpilot.TakeHomeBreakdown) string {
	if t == nil {
		return "# Take-Home Pay\n\nNo income configured.\n"
	}

	var b strings.Builder
	fmt.Fprint(&b, "# Take-Home Pay (NYC)\n\n")
	fmt.Fprintf(&b, "Gross %s = base %s + commission %s\n\n", usd(t.GrossIncome), usd(t.BaseSalary), usd(t.Commission))

	fmt.Fprint(&b, "## Withholding\n\n")
	row(&b, "Line", "Annual", "% of Gross")
	rule(&b, 3)
	for _, line := range t.Breakdown {
		if t.FICAExempt && line.IsFICA() {
			continue
		}
		row(&b, line.Label, usd(line.Amount), pct(line.Pct))
	}
	row(&b, "**Total tax**", "**"+usd(t.TotalTax)+"**", "**"+pct(t.EffectiveRate)+"**")

	fmt.Fprint(&b, "\n## Take-Home\n\n")
	row(&b, "Period", "Amount")
	rule(&b, 2)
	row(&b, "Annual", usd(t.AnnualTakeHome))
	row(&b, "Monthly", usd(t.MonthlyTakeHome))
	row(&b, "Biweekly", usd(t.BiweeklyTakeHome))

	fmt.Fprintf(&b, "\nMarginal rates: federal %s, state %s.\n",
		pct(t.MarginalFederal), pct(t.MarginalState))

	if t.Commission > 0 {
		fmt.Fprint(&b, "\n## Commission Checks\n\n")
		fmt.Fprintf(&b, "Withheld flat at %s: %s net per year (%s/mo). This is the\n",
			pct(t.CommissionEffectiveRate), usd(t.CommissionNetAnnual), usd(t.CommissionNetMonthly))
		fmt.Fprint(&b, "on-the-check estimate, shown next to the bracket math above.\n")
	}
	return b.String()
}

// MatchMarkdown renders the tiered employer-match table.
func MatchMarkdown(m wealthpilot.RampMatch) string {
	var b strings.Builder
	fmt.Fprint(&b, "# 401k Employer Match\n\n")
	row(&b, "Tier", "Match")
	rule(&b, 2)
	row(&b, "100% on first 3%", usd(m.First3Match))
	row(&b, "50% on next 2%", usd(m.Next2Match))
	row(&b, "**Total match**", "**"+usd(m.MatchAmount)+"**")
	fmt.Fprintf(&b, "\nYou contribute %s, the employer adds %s (%.1f%% of salary), for %s/yr total.\n",
		usd(m.EmployeeContribution), usd(m.MatchAmount), m.MatchPercent, usd(m.TotalAnnual))
	fmt.Fprintf(&b, "Contribute %.0f%% to earn the full %.0f%% match (%s/yr).\n",
		m.OptimalContribution, m.MaxMatchPercent, usd(m.MaxMatchAmount))
	return b.String()
}
