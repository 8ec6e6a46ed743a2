package wealthpilot

import (
	"github.com/wealthpilot/wealthpilot/date"
	"github.com/wealthpilot/wealthpilot/store"
)

// Seed versions gate one-time default-data population. When the stored
// version is below the code-defined threshold, the record is overwritten
// with the built-in sample data. This is a migration mechanism: bumping a
// version re-seeds that record on next startup.
const (
	portfolioSeedVersion = 1
	rsuSeedVersion       = 2
)

// seedHoldings is the sample portfolio installed on first run.
var seedHoldings = []Holding{
	{ID: "seed-vti", Ticker: "VTI", Name: "Vanguard Total Stock Market", Type: ETF, Account: Taxable, Shares: 10, AvgCost: 250, CurrentPrice: 250},
	{ID: "seed-cash", Ticker: CashTicker, Name: "Cash", Type: Bond, Account: Taxable, Shares: 500, AvgCost: 1, CurrentPrice: 1},
	{ID: "seed-btc", Ticker: "BTC", Name: "Bitcoin", Type: Crypto, Account: CryptoExchange, Shares: 0.05, AvgCost: 60000, CurrentPrice: 60000},
}

// seedTransfers is the sample recurring-contribution plan.
var seedTransfers = []RecurringTransfer{
	{ID: "seed-vti-weekly", Ticker: "VTI", Name: "Weekly VTI buy", Amount: 200, Frequency: Weekly, Day: "Monday", NextDate: date.New(2026, 1, 5), Account: Taxable},
	{ID: "seed-btc-monthly", Ticker: "BTC", Name: "Monthly BTC buy", Amount: 100, Frequency: Monthly, Day: "1st", NextDate: date.New(2026, 1, 1), Account: CryptoExchange},
}

// seedGrants is the sample RSU data.
var seedGrants = []RSUGrant{
	{
		ID:           "ramp-jun-2025",
		Company:      "Ramp",
		Ticker:       "RAMP",
		TotalShares:  400,
		VestedShares: 0,
		GrantPrice:   19.24,
		CurrentPrice: 90,
		GrantDate:    date.New(2025, 6, 1),
		Note:         "Initial grant - vesting not tracked here",
	},
	{
		ID:            "ramp-dec-2025",
		Company:       "Ramp",
		Ticker:        "RAMP",
		TotalShares:   438,
		VestedShares:  36,
		GrantPrice:    90,
		CurrentPrice:  90,
		GrantDate:     date.New(2025, 12, 1),
		VestingMonths: 13,
		CliffMonths:   0,
		VestingSchedule: []VestingEvent{
			{Date: date.New(2026, 1, 1), Shares: 36, Vested: true},
			{Date: date.New(2026, 2, 1), Shares: 36},
			{Date: date.New(2026, 3, 1), Shares: 36},
			{Date: date.New(2026, 4, 1), Shares: 36},
			{Date: date.New(2026, 5, 1), Shares: 36},
			{Date: date.New(2026, 6, 1), Shares: 36},
			{Date: date.New(2026, 7, 1), Shares: 36},
			{Date: date.New(2026, 8, 1), Shares: 36},
			{Date: date.New(2026, 9, 1), Shares: 36},
			{Date: date.New(2026, 10, 1), Shares: 36},
			{Date: date.New(2026, 11, 1), Shares: 36},
			{Date: date.New(2026, 12, 1), Shares: 36},
			{Date: date.New(2027, 1, 1), Shares: 6},
		},
	},
}

// seed populates stale records. Each record has its own version marker so
// they migrate independently.
func (a *App) seed() error {
	if err := seedRecord(a.Store, KeyPortfolioSeed, portfolioSeedVersion, func() error {
		if err := store.Write(a.Store, KeyPortfolio, seedHoldings); err != nil {
			return err
		}
		return store.Write(a.Store, KeyTransfers, seedTransfers)
	}); err != nil {
		return err
	}
	return seedRecord(a.Store, KeyRSUSeed, rsuSeedVersion, func() error {
		return store.Write(a.Store, KeyRSUs, seedGrants)
	})
}

// seedRecord runs populate when the stored version at versionKey is below
// want, then records the new version.
func seedRecord(s store.Store, versionKey string, want int, populate func() error) error {
	version, _, err := store.Read[int](s, versionKey)
	if err != nil {
		return err
	}
	if version >= want {
		return nil
	}
	if err := populate(); err != nil {
		return err
	}
	return store.Write(s, versionKey, want)
}
