// Package renderer turns engine outputs into markdown reports for the
// terminal. Rendering is the presentation seam: nothing here computes, it
// only formats what the wealthpilot package already derived.
package renderer

import (
	"fmt"
	"io"

	"github.com/wealthpilot/wealthpilot"
)

func usd(amount float64) string    { return wealthpilot.FormatUSD(amount) }
func pct(fraction float64) string  { return wealthpilot.FormatPercent(fraction) }
func signed(amount float64) string { return wealthpilot.FormatSignedUSD(amount) }
func shares(count float64) string  { return wealthpilot.FormatShares(count) }

// row writes one markdown table row.
func row(w io.Writer, cells ...string) {
	for _, c := range cells {
		fmt.Fprintf(w, "| %s ", c)
	}
	fmt.Fprintln(w, "|")
}

// rule writes a markdown table separator with n right-aligned columns after
// the first.
func rule(w io.Writer, n int) {
	fmt.Fprint(w, "|:---")
	for i := 1; i < n; i++ {
		fmt.Fprint(w, "|---:")
	}
	fmt.Fprintln(w, "|")
}
