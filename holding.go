package wealthpilot

// AssetType classifies a holding for allocation reporting.
type AssetType string

const (
	ETF    AssetType = "etf"
	Crypto AssetType = "crypto"
	Stock  AssetType = "stock"
	Bond   AssetType = "bond"
)

// Account is the kind of account a holding sits in.
type Account string

const (
	Taxable        Account = "taxable"
	Acct401k       Account = "401k"
	RothIRA        Account = "roth_ira"
	TraditionalIRA Account = "traditional_ira"
	HSA            Account = "hsa"
	CryptoExchange Account = "crypto_exchange"
	OtherAccount   Account = "other"
)

// Holding is a position in a single security within one account.
// CostBasis and the other derived fields are zero until Enrich runs.
type Holding struct {
	ID           string    `json:"id"`
	Ticker       string    `json:"ticker"`
	Name         string    `json:"name"`
	Type         AssetType `json:"type"`
	Account      Account   `json:"account"`
	Shares       float64   `json:"shares" validate:"gte=0"`
	AvgCost      float64   `json:"avgCost" validate:"gte=0"`      // dollars per share
	CurrentPrice float64   `json:"currentPrice" validate:"gte=0"` // dollars per share

	// Derived, never persisted.
	CostBasis       float64 `json:"-"`
	CurrentValue    float64 `json:"-"`
	GainLoss        float64 `json:"-"`
	GainLossPercent float64 `json:"-"`
}

// Validate checks the holding's field constraints.
func (h Holding) Validate() error { return validate.Struct(h) }

// Enrich computes cost basis, market value, and gain/loss for each holding.
// GainLossPercent is 0 when the cost basis is 0.
func Enrich(holdings []Holding) []Holding {
	enriched := make([]Holding, len(holdings))
	for i, h := range holdings {
		h.CostBasis = h.Shares * h.AvgCost
		h.CurrentValue = h.Shares * h.CurrentPrice
		h.GainLoss = h.CurrentValue - h.CostBasis
		if h.CostBasis > 0 {
			h.GainLossPercent = h.GainLoss / h.CostBasis
		} else {
			h.GainLossPercent = 0
		}
		enriched[i] = h
	}
	return enriched
}

// Allocation is the portfolio share of one asset type.
type Allocation struct {
	Type    AssetType
	Value   float64
	Percent float64 // fraction of total value, 0 when the portfolio is empty
}

// PortfolioTotals aggregates enriched holdings.
type PortfolioTotals struct {
	TotalValue           float64
	TotalCost            float64
	TotalGainLoss        float64
	TotalGainLossPercent float64
	Allocations          []Allocation
}

// Aggregate sums enriched holdings into portfolio totals and a per-asset-type
// allocation. Allocations keep the order types first appear in.
func Aggregate(enriched []Holding) PortfolioTotals {
	var t PortfolioTotals
	byType := make(map[AssetType]float64)
	var order []AssetType

	for _, h := range enriched {
		t.TotalValue += h.CurrentValue
		t.TotalCost += h.CostBasis
		if _, seen := byType[h.Type]; !seen {
			order = append(order, h.Type)
		}
		byType[h.Type] += h.CurrentValue
	}

	t.TotalGainLoss = t.TotalValue - t.TotalCost
	if t.TotalCost > 0 {
		t.TotalGainLossPercent = t.TotalGainLoss / t.TotalCost
	}

	for _, typ := range order {
		a := Allocation{Type: typ, Value: byType[typ]}
		if t.TotalValue > 0 {
			a.Percent = a.Value / t.TotalValue
		}
		t.Allocations = append(t.Allocations, a)
	}
	return t
}

// AssetWeight is one entry of a target allocation table.
type AssetWeight struct {
	Ticker string
	Name   string
	Weight float64 // target fraction of the portfolio
}

// DriftEntry compares the actual weight of one recommended ticker against
// its target.
type DriftEntry struct {
	Ticker         string
	Name           string
	RecommendedPct float64
	ActualPct      float64
	Drift          float64 // ActualPct - RecommendedPct
}

// AllocationDrift reports, for each ticker of the recommended table, how far
// the actual portfolio weight drifts from the target. Matching is by ticker
// across all accounts; tickers held but absent from the table are not
// reported.
func AllocationDrift(holdings []Holding, recommended []AssetWeight) []DriftEntry {
	enriched := Enrich(holdings)
	totals := Aggregate(enriched)

	actualByTicker := make(map[string]float64)
	for _, h := range enriched {
		actualByTicker[h.Ticker] += h.CurrentValue
	}

	entries := make([]DriftEntry, len(recommended))
	for i, rec := range recommended {
		actualPct := 0.0
		if totals.TotalValue > 0 {
			actualPct = actualByTicker[rec.Ticker] / totals.TotalValue
		}
		entries[i] = DriftEntry{
			Ticker:         rec.Ticker,
			Name:           rec.Name,
			RecommendedPct: rec.Weight,
			ActualPct:      actualPct,
			Drift:          actualPct - rec.Weight,
		}
	}
	return entries
}
