package wealthpilot

import (
	"math"
	"testing"

	"github.com/wealthpilot/wealthpilot/date"
)

// approx fails the test when got is not within tolerance of want.
func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// approxCents is for dollar amounts carried through longer float chains.
func approxCents(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func d(s string) date.Date { return date.MustParse(s) }
