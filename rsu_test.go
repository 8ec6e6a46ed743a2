package wealthpilot

import "testing"

func TestGenerateVestingSchedule(t *testing.T) {
	// 4800 shares over 48 months, 12-month cliff: 1200 at the cliff, then
	// 300 per quarter.
	schedule := GenerateVestingSchedule(d("2025-01-15"), 48, 12, 4800)

	if len(schedule) != 13 {
		t.Fatalf("len(schedule) = %d, want 13", len(schedule))
	}
	if got, want := schedule[0].Date.String(), "2026-01-15"; got != want {
		t.Errorf("cliff date = %s, want %s", got, want)
	}
	if schedule[0].Shares != 1200 {
		t.Errorf("cliff shares = %d, want 1200", schedule[0].Shares)
	}
	if schedule[1].Shares != 300 {
		t.Errorf("quarterly shares = %d, want 300", schedule[1].Shares)
	}
	if got, want := schedule[12].Date.String(), "2029-01-15"; got != want {
		t.Errorf("final date = %s, want %s", got, want)
	}

	var total int
	for _, v := range schedule {
		total += v.Shares
	}
	if total > 4800 {
		t.Errorf("scheduled shares = %d, exceeds grant", total)
	}
}

func TestGenerateVestingSchedule_CapAtRemaining(t *testing.T) {
	schedule := GenerateVestingSchedule(d("2025-06-01"), 12, 3, 100)

	var total int
	for _, v := range schedule {
		if v.Shares < 0 {
			t.Errorf("negative vest: %+v", v)
		}
		total += v.Shares
	}
	if total > 100 {
		t.Errorf("scheduled shares = %d, exceeds grant", total)
	}
}

func TestGenerateVestingSchedule_Invalid(t *testing.T) {
	if s := GenerateVestingSchedule(d("2025-01-01"), 0, 0, 100); s != nil {
		t.Errorf("schedule with zero vesting months = %v, want nil", s)
	}
	if s := GenerateVestingSchedule(d("2025-01-01"), 48, 12, 0); s != nil {
		t.Errorf("schedule with zero shares = %v, want nil", s)
	}
	// A negative cliff is treated as no cliff.
	s := GenerateVestingSchedule(d("2025-01-01"), 12, -3, 100)
	if len(s) == 0 {
		t.Fatal("schedule with negative cliff is empty")
	}
	if got, want := s[0].Date.String(), "2025-01-01"; got != want {
		t.Errorf("first vest = %s, want %s", got, want)
	}
}

func TestSummarizeGrants(t *testing.T) {
	grants := []RSUGrant{
		{
			Company:      "Ramp",
			TotalShares:  1000,
			VestedShares: 250,
			GrantPrice:   40,
			CurrentPrice: 60,
			VestingSchedule: []VestingEvent{
				{Date: d("2026-06-01"), Shares: 250, Vested: true},
				{Date: d("2026-09-01"), Shares: 250},
				{Date: d("2026-12-01"), Shares: 250},
				{Date: d("2028-03-01"), Shares: 250}, // beyond the window
			},
		},
		{
			Company:      "Ramp",
			TotalShares:  500,
			VestedShares: 0,
			GrantPrice:   55,
			CurrentPrice: 60,
			VestingSchedule: []VestingEvent{
				{Date: d("2026-01-01"), Shares: 100}, // already past
				{Date: d("2026-10-01"), Shares: 100},
			},
		},
	}

	s := SummarizeGrants(grants, d("2026-08-15"))

	if s.TotalShares != 1500 || s.VestedShares != 250 || s.UnvestedShares != 1250 {
		t.Errorf("shares = %d/%d/%d, want 1500/250/1250", s.TotalShares, s.VestedShares, s.UnvestedShares)
	}
	approx(t, "TotalCurrentValue", s.TotalCurrentValue, 1500*60)
	approx(t, "VestedValue", s.VestedValue, 250*60)
	approx(t, "UnvestedValue", s.UnvestedValue, 1250*60)
	approx(t, "TotalGrantValue", s.TotalGrantValue, 1000*40+500*55)
	approx(t, "TotalGain", s.TotalGain, 90000-67500)

	// Only the three events inside the 12-month window, sorted by date.
	if len(s.UpcomingVests) != 3 {
		t.Fatalf("len(UpcomingVests) = %d, want 3: %v", len(s.UpcomingVests), s.UpcomingVests)
	}
	if got, want := s.UpcomingVests[0].Date.String(), "2026-09-01"; got != want {
		t.Errorf("first upcoming = %s, want %s", got, want)
	}
	if got, want := s.UpcomingVests[2].Date.String(), "2026-12-01"; got != want {
		t.Errorf("last upcoming = %s, want %s", got, want)
	}
	approx(t, "first upcoming value", s.UpcomingVests[0].Value, 250*60)
}

func TestSummarizeGrants_Empty(t *testing.T) {
	s := SummarizeGrants(nil, d("2026-08-15"))

	if s.TotalShares != 0 || len(s.UpcomingVests) != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}
