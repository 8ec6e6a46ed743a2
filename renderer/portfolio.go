package renderer

import (
	"fmt"
	"strings"

	"github.com/wealthpilot/wealthpilot"
)

// PortfolioMarkdown renders the holdings table, asset allocation, and the
// drift against the recommended ETF basket.
func PortfolioMarkdown(holdings []wealthpilot.Holding) string {
	var b strings.Builder
	enriched := wealthpilot.Enrich(holdings)
	totals := wealthpilot.Aggregate(enriched)

	fmt.Fprint(&b, "# Portfolio\n\n")
	fmt.Fprintf(&b, "Total value %s on a cost of %s (%s %s)\n\n",
		usd(totals.TotalValue), usd(totals.TotalCost),
		signed(totals.TotalGainLoss), pct(totals.TotalGainLossPercent))

	if len(enriched) == 0 {
		fmt.Fprintln(&b, "No holdings yet.")
		return b.String()
	}

	fmt.Fprint(&b, "## Holdings\n\n")
	row(&b, "Account", "Ticker", "Shares", "Avg Cost", "Price", "Value", "Gain/Loss", "%")
	rule(&b, 8)
	for _, h := range enriched {
		row(&b,
			string(h.Account), h.Ticker,
			shares(h.Shares), usd(h.AvgCost), usd(h.CurrentPrice),
			usd(h.CurrentValue), signed(h.GainLoss), pct(h.GainLossPercent))
	}

	fmt.Fprint(&b, "\n## Allocation\n\n")
	row(&b, "Type", "Value", "Share")
	rule(&b, 3)
	for _, a := range totals.Allocations {
		row(&b, strings.ToUpper(string(a.Type)), usd(a.Value), pct(a.Percent))
	}

	fmt.Fprint(&b, "\n## Drift vs ETF Targets\n\n")
	row(&b, "Ticker", "Target", "Actual", "Drift")
	rule(&b, 4)
	for _, d := range wealthpilot.AllocationDrift(holdings, wealthpilot.ETFTargets) {
		row(&b, d.Ticker, pct(d.RecommendedPct), pct(d.ActualPct), pct(d.Drift))
	}

	return b.String()
}

// TransfersMarkdown renders the recurring-transfer schedule plus any
// occurrences the last catch-up pass skipped.
func TransfersMarkdown(transfers []wealthpilot.RecurringTransfer, sim wealthpilot.SimulationResult) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Recurring Investments\n\n")

	if len(transfers) == 0 {
		fmt.Fprintln(&b, "No recurring transfers configured.")
		return b.String()
	}

	row(&b, "Ticker", "Account", "Amount", "Frequency", "Next Date")
	rule(&b, 5)
	for _, t := range transfers {
		row(&b, t.Ticker, string(t.Account), usd(t.Amount), string(t.Frequency), t.NextDate.String())
	}

	if sim.Applied > 0 {
		fmt.Fprintf(&b, "\nApplied %d contribution(s) since the last run.\n", sim.Applied)
	}
	for _, s := range sim.Skipped {
		fmt.Fprintf(&b, "\n> %s of %s on %s skipped: no %s holding in %s.\n",
			usd(s.Amount), s.Ticker, s.On, s.Ticker, s.Account)
	}
	return b.String()
}
