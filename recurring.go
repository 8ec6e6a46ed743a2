package wealthpilot

import (
	"github.com/shopspring/decimal"

	"github.com/wealthpilot/wealthpilot/date"
)

// Frequency is the cadence of a recurring transfer.
type Frequency string

const (
	Weekly   Frequency = "weekly"
	Biweekly Frequency = "biweekly"
	Monthly  Frequency = "monthly"
)

// advance moves a date forward by one occurrence interval. Unknown
// frequencies step monthly so a bad record can never loop forever.
func (f Frequency) advance(d date.Date) date.Date {
	switch f {
	case Weekly:
		return d.Add(7)
	case Biweekly:
		return d.Add(14)
	default:
		return d.AddMonths(1)
	}
}

// RecurringTransfer is a scheduled contribution into a holding, matched by
// (ticker, account). NextDate is the next occurrence still to apply.
type RecurringTransfer struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"` // dollars per occurrence
	Frequency Frequency `json:"frequency"`
	Day       string    `json:"day"` // display label only
	NextDate  date.Date `json:"nextDate"`
	Account   Account   `json:"account"`
}

// SkippedOccurrence records one due occurrence that could not be applied.
// The transfer still advances past it.
type SkippedOccurrence struct {
	Ticker  string
	Account Account
	On      date.Date
	Amount  float64
}

// SimulationResult carries both collections after a catch-up pass. Callers
// must persist Holdings and Transfers together, or neither, and only when
// Changed is set.
type SimulationResult struct {
	Holdings  []Holding
	Transfers []RecurringTransfer
	Applied   int
	Skipped   []SkippedOccurrence
	Changed   bool
}

// SimulateTransfers applies every due occurrence of every transfer
// (NextDate <= today), catching up however many were missed. Each applied
// occurrence buys amount/currentPrice shares at the holding's stored price
// and recomputes the weighted-average cost. Shares are rounded to 3 decimal
// places and avgCost to 2. An occurrence with no matching (ticker, account)
// holding, or a holding without a usable price, is skipped but the transfer
// still advances. The inputs are never mutated.
func SimulateTransfers(holdings []Holding, transfers []RecurringTransfer, today date.Date) SimulationResult {
	r := SimulationResult{
		Holdings:  make([]Holding, len(holdings)),
		Transfers: make([]RecurringTransfer, len(transfers)),
	}
	copy(r.Holdings, holdings)
	copy(r.Transfers, transfers)

	for ti := range r.Transfers {
		t := &r.Transfers[ti]
		for !t.NextDate.IsZero() && !t.NextDate.After(today) {
			hi := findHolding(r.Holdings, t.Ticker, t.Account)
			if hi >= 0 && r.Holdings[hi].CurrentPrice > 0 && t.Amount > 0 {
				applyBuy(&r.Holdings[hi], t.Amount)
				r.Applied++
			} else {
				r.Skipped = append(r.Skipped, SkippedOccurrence{
					Ticker:  t.Ticker,
					Account: t.Account,
					On:      t.NextDate,
					Amount:  t.Amount,
				})
			}
			t.NextDate = t.Frequency.advance(t.NextDate)
			r.Changed = true
		}
	}
	return r
}

// applyBuy treats amount as a purchase at the holding's stored current
// price, which doubles as this period's purchase price: prices are only
// refreshed by the explicit quote fetch, never mid-simulation.
func applyBuy(h *Holding, amount float64) {
	price := decimal.NewFromFloat(h.CurrentPrice)
	bought := decimal.NewFromFloat(amount).Div(price)

	oldShares := decimal.NewFromFloat(h.Shares)
	oldCost := decimal.NewFromFloat(h.AvgCost)
	newShares := oldShares.Add(bought)

	// Weighted average across the old position and the synthetic buy.
	newCost := oldCost.Mul(oldShares).Add(price.Mul(bought)).Div(newShares)

	h.Shares = newShares.Round(3).InexactFloat64()
	h.AvgCost = newCost.Round(2).InexactFloat64()
}

func findHolding(holdings []Holding, ticker string, account Account) int {
	for i, h := range holdings {
		if h.Ticker == ticker && h.Account == account {
			return i
		}
	}
	return -1
}
