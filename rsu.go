package wealthpilot

import (
	"sort"

	"github.com/wealthpilot/wealthpilot/date"
)

// VestingEvent is one scheduled vest of an RSU grant. Once generated the
// schedule is a historical record; only the Vested flag is ever toggled.
type VestingEvent struct {
	Date   date.Date `json:"date"`
	Shares int       `json:"shares"`
	Vested bool      `json:"vested"`
}

// RSUGrant is a restricted stock unit grant and its vesting schedule.
type RSUGrant struct {
	ID              string         `json:"id"`
	Company         string         `json:"company"`
	Ticker          string         `json:"ticker"`
	TotalShares     int            `json:"totalShares" validate:"gte=0"`
	VestedShares    int            `json:"vestedShares" validate:"gte=0"`
	GrantPrice      float64        `json:"grantPrice" validate:"gte=0"`
	CurrentPrice    float64        `json:"currentPrice" validate:"gte=0"`
	GrantDate       date.Date      `json:"grantDate"`
	VestingMonths   int            `json:"vestingMonths" validate:"gte=0"`
	CliffMonths     int            `json:"cliffMonths" validate:"gte=0"`
	VestingSchedule []VestingEvent `json:"vestingSchedule"`
	Note            string         `json:"note,omitempty"`
}

// Validate checks the grant's field constraints.
func (g RSUGrant) Validate() error { return validate.Struct(g) }

// GenerateVestingSchedule builds a quarterly vesting schedule starting at
// the cliff month and stepping every 3 months through vestingMonths. The
// first event vests floor(totalShares x cliff/months); every later event
// vests floor(totalShares / (months/3)). Each event is capped at the
// grant's remaining shares. The schedule is empty when totalShares or
// vestingMonths is not positive.
func GenerateVestingSchedule(grantDate date.Date, vestingMonths, cliffMonths, totalShares int) []VestingEvent {
	if totalShares <= 0 || vestingMonths <= 0 {
		return nil
	}
	if cliffMonths < 0 {
		cliffMonths = 0
	}

	quarterly := int(float64(totalShares) / (float64(vestingMonths) / 3))
	cliffShares := totalShares * cliffMonths / vestingMonths

	var schedule []VestingEvent
	remaining := totalShares
	for m := cliffMonths; m <= vestingMonths; m += 3 {
		shares := quarterly
		if m == cliffMonths {
			shares = cliffShares
		}
		if shares > remaining {
			shares = remaining
		}
		schedule = append(schedule, VestingEvent{
			Date:   grantDate.AddMonths(m),
			Shares: shares,
		})
		remaining -= shares
	}
	return schedule
}

// UpcomingVest is a scheduled, not-yet-vested event within the projection
// window, annotated with its grant.
type UpcomingVest struct {
	Date         date.Date
	Shares       int
	Company      string
	Ticker       string
	CurrentPrice float64
	Value        float64
}

// RSUSummary aggregates every grant.
type RSUSummary struct {
	TotalShares       int
	VestedShares      int
	UnvestedShares    int
	TotalCurrentValue float64
	VestedValue       float64
	UnvestedValue     float64
	TotalGrantValue   float64
	TotalGain         float64
	UpcomingVests     []UpcomingVest
}

// SummarizeGrants sums share counts and values across grants and projects
// the unvested events falling within the next 12 months, sorted by date.
func SummarizeGrants(grants []RSUGrant, today date.Date) RSUSummary {
	var s RSUSummary
	horizon := today.AddMonths(12)

	for _, g := range grants {
		s.TotalShares += g.TotalShares
		s.VestedShares += g.VestedShares
		s.TotalCurrentValue += float64(g.TotalShares) * g.CurrentPrice
		s.VestedValue += float64(g.VestedShares) * g.CurrentPrice
		s.TotalGrantValue += float64(g.TotalShares) * g.GrantPrice

		for _, v := range g.VestingSchedule {
			if v.Vested || v.Date.Before(today) || v.Date.After(horizon) {
				continue
			}
			s.UpcomingVests = append(s.UpcomingVests, UpcomingVest{
				Date:         v.Date,
				Shares:       v.Shares,
				Company:      g.Company,
				Ticker:       g.Ticker,
				CurrentPrice: g.CurrentPrice,
				Value:        float64(v.Shares) * g.CurrentPrice,
			})
		}
	}

	s.UnvestedShares = s.TotalShares - s.VestedShares
	s.UnvestedValue = s.TotalCurrentValue - s.VestedValue
	s.TotalGain = s.TotalCurrentValue - s.TotalGrantValue

	sort.SliceStable(s.UpcomingVests, func(i, j int) bool {
		return s.UpcomingVests[i].Date.Before(s.UpcomingVests[j].Date)
	})
	return s
}
