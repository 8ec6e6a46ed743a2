package renderer

import (
	"fmt"
	"strings"

	"github.com/wealthpilot/wealthpilot"
	"github.com/wealthpilot/wealthpilot/date"
)

// RSUMarkdown renders each grant, its vesting schedule, and the upcoming
// twelve months of vests.
func RSUMarkdown(grants []wealthpilot.RSUGrant, today date.Date) string {
	var b strings.Builder
	s := wealthpilot.SummarizeGrants(grants, today)

	fmt.Fprint(&b, "# RSU Tracker\n\n")
	if len(grants) == 0 {
		fmt.Fprintln(&b, "No RSU grants tracked.")
		return b.String()
	}

	fmt.Fprintf(&b, "%d shares worth %s: %s vested (%d sh), %s unvested (%d sh).\n",
		s.TotalShares, usd(s.TotalCurrentValue),
		usd(s.VestedValue), s.VestedShares,
		usd(s.UnvestedValue), s.UnvestedShares)
	fmt.Fprintf(&b, "Gain since grant: %s\n\n", signed(s.TotalGain))

	fmt.Fprint(&b, "## Grants\n\n")
	row(&b, "Company", "Granted", "Shares", "Vested", "Grant Price", "Price", "Value")
	rule(&b, 7)
	for _, g := range grants {
		row(&b, g.Company, g.GrantDate.String(),
			fmt.Sprint(g.TotalShares), fmt.Sprint(g.VestedShares),
			usd(g.GrantPrice), usd(g.CurrentPrice),
			usd(float64(g.TotalShares)*g.CurrentPrice))
	}

	if len(s.UpcomingVests) > 0 {
		fmt.Fprint(&b, "\n## Upcoming Vests (12 months)\n\n")
		row(&b, "Date", "Company", "Shares", "Value")
		rule(&b, 4)
		for _, v := range s.UpcomingVests {
			row(&b, v.Date.String(), v.Company, fmt.Sprint(v.Shares), usd(v.Value))
		}
	}
	return b.String()
}
