package wealthpilot

import (
	"fmt"
	"math"
	"sort"
)

// RiskProfile is the needs/wants/savings split for one risk tolerance.
type RiskProfile struct {
	Needs   float64 // percent of monthly take-home
	Wants   float64
	Savings float64
	Label   string
}

// RiskProfiles maps each tolerance to its budget split.
var RiskProfiles = map[RiskTolerance]RiskProfile{
	Conservative: {Needs: 50, Wants: 30, Savings: 20, Label: "Conservative"},
	Moderate:     {Needs: 50, Wants: 25, Savings: 25, Label: "Moderate"},
	Aggressive:   {Needs: 50, Wants: 20, Savings: 30, Label: "Aggressive"},
}

// Annual contribution limits used by the retirement waterfall.
const (
	RothIRALimit = 7500
	Max401kLimit = 24500
	HSALimit     = 4300 // individual coverage
)

// CryptoAllocation is the fraction of discretionary investing routed to
// crypto per risk tolerance.
var CryptoAllocation = map[RiskTolerance]float64{
	Conservative: 0.05,
	Moderate:     0.10,
	Aggressive:   0.20,
}

const defaultCryptoAllocation = 0.10

// ETFTargets is the recommended ETF basket, also the target table for
// allocation drift.
var ETFTargets = []AssetWeight{
	{Ticker: "VTI", Name: "Vanguard Total Stock Market", Weight: 0.40},
	{Ticker: "QQQ", Name: "Invesco QQQ Trust (Nasdaq-100)", Weight: 0.25},
	{Ticker: "VXUS", Name: "Vanguard Total International", Weight: 0.20},
	{Ticker: "AVUV", Name: "Avantis US Small Cap Value", Weight: 0.10},
	{Ticker: "BND", Name: "Vanguard Total Bond Market", Weight: 0.05},
}

// CryptoTargets is the recommended crypto basket.
var CryptoTargets = []AssetWeight{
	{Ticker: "BTC", Name: "Bitcoin", Weight: 0.60},
	{Ticker: "ETH", Name: "Ethereum", Weight: 0.25},
	{Ticker: "ALT", Name: "Altcoins", Weight: 0.15},
}

// Interest-rate thresholds (percent) for debt payoff priority.
const (
	HighInterestThreshold     = 7
	ModerateInterestThreshold = 4
)

// DebtAdvice is one debt with its payoff-priority classification.
type DebtAdvice struct {
	Debt
	Priority       string // high, moderate, low
	Recommendation string
}

// DebtStrategy classifies the profile's debts and picks a payoff strategy.
type DebtStrategy struct {
	HasDebt      bool
	Strategy     string // avalanche, standard, none
	Items        []DebtAdvice
	TotalMonthly float64 // sum of minimum payments
}

// WaterfallStep is one funded step of the retirement waterfall.
type WaterfallStep struct {
	Label       string
	Amount      float64
	FreeMatch   float64 // employer dollars, separate from the contribution
	Description string
}

// Waterfall is the retirement-contribution allocation in priority order.
type Waterfall struct {
	Steps            []WaterfallStep
	TotalAllocated   float64
	RemainingAnnual  float64
	RemainingMonthly float64
}

// AssetPlan is a per-asset slice of the discretionary investing budget.
type AssetPlan struct {
	Ticker        string
	Name          string
	Weight        float64
	MonthlyAmount float64
	AnnualAmount  float64
}

// Advisory is the full advisory output consumed by the presentation layers.
type Advisory struct {
	Risk              RiskProfile
	MonthlyGross      float64
	MonthlyTakeHome   float64
	AnnualTakeHome    float64
	BudgetSplit       map[BudgetCategory]float64
	DebtStrategy      DebtStrategy
	Waterfall         Waterfall
	InvestableMonthly float64
	CryptoPct         float64
	CryptoMonthly     float64
	ETFMonthly        float64
	ETFBreakdown      []AssetPlan
	CryptoBreakdown   []AssetPlan
}

// ComputeAdvisory derives the budget split, debt strategy, retirement
// waterfall, and discretionary investing plan from a profile. It returns
// nil when the annual salary is unset: there is nothing to advise on.
func ComputeAdvisory(p Profile) *Advisory {
	if p.AnnualSalary == 0 {
		return nil
	}

	risk, ok := RiskProfiles[p.RiskTolerance]
	if !ok {
		risk = RiskProfiles[Aggressive]
	}

	monthlyGross := p.AnnualSalary / 12
	monthlyTakeHome := monthlyGross * 0.72 // flat fallback, not bracket-accurate
	if p.TakeHomePay > 0 {
		monthlyTakeHome = p.TakeHomePay / 12
	}

	split := map[BudgetCategory]float64{
		Needs:   monthlyTakeHome * risk.Needs / 100,
		Wants:   monthlyTakeHome * risk.Wants / 100,
		Savings: monthlyTakeHome * risk.Savings / 100,
	}

	waterfall := computeWaterfall(split[Savings]*12, p.EmployerMatch, p.EmployerMatchLimit, p.AnnualSalary, p.HasHSA)

	cryptoPct, ok := CryptoAllocation[p.RiskTolerance]
	if !ok {
		cryptoPct = defaultCryptoAllocation
	}
	investable := waterfall.RemainingMonthly
	cryptoMonthly := investable * cryptoPct
	etfMonthly := investable * (1 - cryptoPct)

	return &Advisory{
		Risk:              risk,
		MonthlyGross:      monthlyGross,
		MonthlyTakeHome:   monthlyTakeHome,
		AnnualTakeHome:    monthlyTakeHome * 12,
		BudgetSplit:       split,
		DebtStrategy:      ClassifyDebts(p.Debts),
		Waterfall:         waterfall,
		InvestableMonthly: investable,
		CryptoPct:         cryptoPct,
		CryptoMonthly:     cryptoMonthly,
		ETFMonthly:        etfMonthly,
		ETFBreakdown:      planAssets(ETFTargets, etfMonthly),
		CryptoBreakdown:   planAssets(CryptoTargets, cryptoMonthly),
	}
}

func planAssets(targets []AssetWeight, monthly float64) []AssetPlan {
	plans := make([]AssetPlan, len(targets))
	for i, t := range targets {
		plans[i] = AssetPlan{
			Ticker:        t.Ticker,
			Name:          t.Name,
			Weight:        t.Weight,
			MonthlyAmount: monthly * t.Weight,
			AnnualAmount:  monthly * t.Weight * 12,
		}
	}
	return plans
}

// computeWaterfall allocates the annual savings budget in strict priority
// order. Every step is capped by its own limit and by the remaining funds,
// and never goes negative; whatever survives all steps is the discretionary
// investing pool.
func computeWaterfall(annualSavings, matchPct, matchLimit, annualSalary float64, hasHSA bool) Waterfall {
	remaining := annualSavings
	var steps []WaterfallStep

	// 1. Contribute exactly the match-eligible percent, no more: dollars
	// past the limit earn no match and belong to a later step.
	matchContribution := 0.0
	if matchLimit > 0 {
		matchContribution = math.Min(annualSalary*matchLimit/100, remaining)
	}
	if matchPct > 0 {
		steps = append(steps, WaterfallStep{
			Label:       "401k (Employer Match)",
			Amount:      matchContribution,
			FreeMatch:   annualSalary * matchPct / 100,
			Description: fmt.Sprintf("Contribute %.0f%% to get the full match (100%% on first 3%% + 50%% on next 2%%)", matchLimit),
		})
		remaining -= matchContribution
	}

	// 2. Roth IRA.
	if roth := math.Min(RothIRALimit, math.Max(remaining, 0)); roth > 0 {
		steps = append(steps, WaterfallStep{
			Label:       "Roth IRA",
			Amount:      roth,
			Description: fmt.Sprintf("Max out Roth IRA ($%d/yr) - tax-free growth", RothIRALimit),
		})
		remaining -= roth
	}

	// 3. HSA, only with HSA eligibility.
	if hasHSA {
		if hsa := math.Min(HSALimit, math.Max(remaining, 0)); hsa > 0 {
			steps = append(steps, WaterfallStep{
				Label:       "HSA",
				Amount:      hsa,
				Description: fmt.Sprintf("Max HSA ($%d/yr) - triple tax advantage", HSALimit),
			})
			remaining -= hsa
		}
	}

	// 4. Fill the rest of the 401k, net of what step 1 already used.
	if add := math.Min(Max401kLimit-matchContribution, math.Max(remaining, 0)); add > 0 {
		steps = append(steps, WaterfallStep{
			Label:       "401k (Max Out)",
			Amount:      add,
			Description: fmt.Sprintf("Fill remaining 401k to $%d/yr", Max401kLimit),
		})
		remaining -= add
	}

	// 5. Taxable brokerage takes the uncapped remainder.
	if taxable := math.Max(remaining, 0); taxable > 0 {
		steps = append(steps, WaterfallStep{
			Label:       "Taxable Brokerage",
			Amount:      taxable,
			Description: "Invest remainder in taxable account (ETFs + Crypto)",
		})
	}

	leftover := math.Max(remaining, 0)
	return Waterfall{
		Steps:            steps,
		TotalAllocated:   annualSavings - leftover,
		RemainingAnnual:  leftover,
		RemainingMonthly: leftover / 12,
	}
}

// ClassifyDebts sorts debts by interest rate descending and classifies each
// into a payoff-priority tier. The strategy is avalanche when any debt
// clears the high-interest threshold, standard otherwise.
func ClassifyDebts(debts []Debt) DebtStrategy {
	if len(debts) == 0 {
		return DebtStrategy{Strategy: "none"}
	}

	sorted := make([]Debt, len(debts))
	copy(sorted, debts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InterestRate > sorted[j].InterestRate
	})

	strategy := "standard"
	items := make([]DebtAdvice, len(sorted))
	var totalMonthly float64
	for i, d := range sorted {
		advice := DebtAdvice{Debt: d}
		switch {
		case d.InterestRate >= HighInterestThreshold:
			advice.Priority = "high"
			advice.Recommendation = "Pay off aggressively before investing"
			strategy = "avalanche"
		case d.InterestRate >= ModerateInterestThreshold:
			advice.Priority = "moderate"
			advice.Recommendation = "Pay minimums, invest the rest"
		default:
			advice.Priority = "low"
			advice.Recommendation = "Low interest - invest instead, pay minimums"
		}
		items[i] = advice
		totalMonthly += d.MinimumPayment
	}

	return DebtStrategy{
		HasDebt:      true,
		Strategy:     strategy,
		Items:        items,
		TotalMonthly: totalMonthly,
	}
}
