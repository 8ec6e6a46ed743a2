package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	// Day overflow rolls into the next month.
	d := New(2025, time.January, 32)
	if got, want := d.String(), "2025-02-01"; got != want {
		t.Errorf("New(2025, January, 32) = %s, want %s", got, want)
	}
}

func TestAdd(t *testing.T) {
	testCases := []struct {
		name string
		from string
		days int
		want string
	}{
		{"one week", "2026-01-05", 7, "2026-01-12"},
		{"two weeks", "2026-01-05", 14, "2026-01-19"},
		{"across month end", "2026-01-28", 7, "2026-02-04"},
		{"across leap day", "2028-02-28", 1, "2028-02-29"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParse(tc.from).Add(tc.days)
			if got.String() != tc.want {
				t.Errorf("%s.Add(%d) = %s, want %s", tc.from, tc.days, got, tc.want)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		name   string
		from   string
		months int
		want   string
	}{
		{"simple", "2026-01-15", 1, "2026-02-15"},
		{"across year end", "2025-12-01", 1, "2026-01-01"},
		{"quarter step", "2025-06-01", 3, "2025-09-01"},
		{"time.Date normalization", "2026-01-31", 1, "2026-03-03"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParse(tc.from).AddMonths(tc.months)
			if got.String() != tc.want {
				t.Errorf("%s.AddMonths(%d) = %s, want %s", tc.from, tc.months, got, tc.want)
			}
		})
	}
}

func TestParseLenient(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse(2025-7-1) failed: %v", err)
	}
	if d.String() != "2025-07-01" {
		t.Errorf("Parse(2025-7-1) = %s, want 2025-07-01", d)
	}

	if _, err := Parse("not-a-date"); err == nil {
		t.Error("Parse(not-a-date) should fail")
	}
}

func TestBeforeAfter(t *testing.T) {
	a := MustParse("2026-01-01")
	b := MustParse("2026-01-02")
	if !a.Before(b) || b.Before(a) {
		t.Error("Before is wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is wrong")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date is neither before nor after itself")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2026-08-29")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2026-08-29"` {
		t.Errorf("Marshal = %s, want %q", data, `"2026-08-29"`)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip: got %s, want %s", back, d)
	}
}
