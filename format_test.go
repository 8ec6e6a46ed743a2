package wealthpilot

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{-99.99, "-$99.99"},
		{1000000, "$1,000,000.00"},
	}
	for _, tc := range tests {
		if got := FormatUSD(tc.amount); got != tc.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatSignedUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "-"},
		{500, "+$500.00"},
		{-500, "-$500.00"},
	}
	for _, tc := range tests {
		if got := FormatSignedUSD(tc.amount); got != tc.want {
			t.Errorf("FormatSignedUSD(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.325); got != "32.5%" {
		t.Errorf("FormatPercent(0.325) = %q", got)
	}
	if got := FormatPercent(-0.05); got != "-5.0%" {
		t.Errorf("FormatPercent(-0.05) = %q", got)
	}
}

func TestFormatShares(t *testing.T) {
	if got := FormatShares(1.7244); got != "1.724" {
		t.Errorf("FormatShares(1.7244) = %q", got)
	}
}
