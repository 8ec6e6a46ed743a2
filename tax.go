package wealthpilot

import "math"

// 2024/2025 bracket tables and rates for NYC compensation (base + commission).

// Bracket is one marginal-rate band of a progressive schedule.
type Bracket struct {
	Min, Max, Rate float64
}

var FederalBrackets = []Bracket{
	{0, 11600, 0.10},
	{11600, 47150, 0.12},
	{47150, 100525, 0.22},
	{100525, 191950, 0.24},
	{191950, 243725, 0.32},
	{243725, 609350, 0.35},
	{609350, math.Inf(1), 0.37},
}

var NYStateBrackets = []Bracket{
	{0, 8500, 0.04},
	{8500, 11700, 0.045},
	{11700, 13900, 0.0525},
	{13900, 80650, 0.0585},
	{80650, 215400, 0.0625},
	{215400, 1077550, 0.0685},
	{1077550, 5000000, 0.0965},
	{5000000, 25000000, 0.103},
	{25000000, math.Inf(1), 0.109},
}

var NYCLocalBrackets = []Bracket{
	{0, 12000, 0.03078},
	{12000, 25000, 0.03762},
	{25000, 50000, 0.03819},
	{50000, math.Inf(1), 0.03876},
}

const (
	FederalStandardDeduction = 14600
	NYStandardDeduction      = 8000

	SocialSecurityRate          = 0.062
	SocialSecurityWageCap       = 168600
	MedicareRate                = 0.0145
	MedicareAdditionalRate      = 0.009
	MedicareAdditionalThreshold = 200000

	// DefaultCommissionWithholdingRate is the flat supplemental rate
	// assumed withheld from commission checks.
	DefaultCommissionWithholdingRate = 0.40
)

// BracketTax computes progressive tax over a monotonically increasing
// marginal-rate table. Income at or below a bracket's floor contributes
// nothing from that bracket.
func BracketTax(taxableIncome float64, brackets []Bracket) float64 {
	var tax float64
	for _, b := range brackets {
		if taxableIncome <= b.Min {
			break
		}
		tax += (math.Min(taxableIncome, b.Max) - b.Min) * b.Rate
	}
	return tax
}

// MarginalRate returns the rate of the highest bracket the taxable income
// reaches, scanning from the top of the table down.
func MarginalRate(taxableIncome float64, brackets []Bracket) float64 {
	for i := len(brackets) - 1; i >= 0; i-- {
		if taxableIncome > brackets[i].Min {
			return brackets[i].Rate
		}
	}
	return brackets[0].Rate
}

// TakeHomeInput is the income model for the take-home estimate. All amounts
// are annual dollars; CommissionWithholdingRate defaults to
// DefaultCommissionWithholdingRate when zero.
type TakeHomeInput struct {
	BaseSalary                float64
	Commission                float64
	CommissionWithholdingRate float64
	Pre401k                   float64
	PreHSA                    float64
	FICAExempt                bool
}

// TaxLine is one row of the withholding breakdown.
type TaxLine struct {
	Label  string
	Amount float64
	Pct    float64 // fraction of gross income
}

// ficaLabels marks breakdown rows a FICA-exempt presentation may suppress.
var ficaLabels = map[string]bool{"Social Security": true, "Medicare": true}

// IsFICA reports whether this line is a payroll-tax line.
func (l TaxLine) IsFICA() bool { return ficaLabels[l.Label] }

// TakeHomeBreakdown is the full take-home pay estimate.
type TakeHomeBreakdown struct {
	GrossIncome               float64
	BaseSalary                float64
	Commission                float64
	CommissionWithholdingRate float64
	Pre401k                   float64
	PreHSA                    float64

	FederalTaxable float64
	FederalTax     float64
	NYTaxable      float64
	NYStateTax     float64
	NYCLocalTax    float64

	SocialSecurity float64
	TotalMedicare  float64
	TotalFICA      float64
	// FICAExempt is carried through so the presentation layer can choose
	// whether to surface the FICA lines; the totals always include them.
	FICAExempt bool

	TotalTax        float64
	TotalPreTax     float64
	TotalDeductions float64

	AnnualTakeHome   float64
	MonthlyTakeHome  float64
	BiweeklyTakeHome float64
	EffectiveRate    float64
	MarginalFederal  float64
	MarginalState    float64

	// Commission under the flat supplemental withholding, reported next to
	// the bracket math rather than reconciled with it.
	CommissionTaxWithheld   float64
	CommissionNetAnnual     float64
	CommissionNetMonthly    float64
	CommissionEffectiveRate float64
	BaseNetAnnual           float64
	BaseNetMonthly          float64

	Breakdown []TaxLine
}

// ComputeTakeHome estimates federal, NY state, NYC local, and FICA
// withholding for a base + commission income, returning nil when gross
// income is not positive.
//
// Pre-tax 401k/HSA contributions reduce income-taxable wages but not FICA
// wages. The standard deductions differ between the federal and state/city
// schedules.
func ComputeTakeHome(in TakeHomeInput) *TakeHomeBreakdown {
	gross := in.BaseSalary + in.Commission
	if gross <= 0 {
		return nil
	}

	rate := in.CommissionWithholdingRate
	if rate == 0 {
		rate = DefaultCommissionWithholdingRate
	}

	totalPreTax := in.Pre401k + in.PreHSA

	federalTaxable := math.Max(gross-totalPreTax-FederalStandardDeduction, 0)
	federalTax := BracketTax(federalTaxable, FederalBrackets)

	nyTaxable := math.Max(gross-totalPreTax-NYStandardDeduction, 0)
	nyStateTax := BracketTax(nyTaxable, NYStateBrackets)
	nycLocalTax := BracketTax(nyTaxable, NYCLocalBrackets)

	// FICA on full gross: pre-tax contributions do not reduce payroll wages.
	ssWages := math.Min(gross, SocialSecurityWageCap)
	socialSecurity := ssWages * SocialSecurityRate
	medicare := gross * MedicareRate
	if gross > MedicareAdditionalThreshold {
		medicare += (gross - MedicareAdditionalThreshold) * MedicareAdditionalRate
	}
	totalFICA := socialSecurity + medicare

	totalTax := federalTax + nyStateTax + nycLocalTax + totalFICA
	totalDeductions := totalTax + totalPreTax
	annualTakeHome := gross - totalDeductions

	// The flat supplemental estimate for what a commission check shows.
	commissionTaxWithheld := in.Commission * rate
	commissionNetAnnual := in.Commission - commissionTaxWithheld

	// The rest of the liability attributed to base salary.
	baseTaxEstimate := totalTax - commissionTaxWithheld
	baseNetAnnual := in.BaseSalary - math.Max(baseTaxEstimate, 0) - totalPreTax

	b := &TakeHomeBreakdown{
		GrossIncome:               gross,
		BaseSalary:                in.BaseSalary,
		Commission:                in.Commission,
		CommissionWithholdingRate: rate,
		Pre401k:                   in.Pre401k,
		PreHSA:                    in.PreHSA,

		FederalTaxable: federalTaxable,
		FederalTax:     federalTax,
		NYTaxable:      nyTaxable,
		NYStateTax:     nyStateTax,
		NYCLocalTax:    nycLocalTax,

		SocialSecurity: socialSecurity,
		TotalMedicare:  medicare,
		TotalFICA:      totalFICA,
		FICAExempt:     in.FICAExempt,

		TotalTax:        totalTax,
		TotalPreTax:     totalPreTax,
		TotalDeductions: totalDeductions,

		AnnualTakeHome:   annualTakeHome,
		MonthlyTakeHome:  annualTakeHome / 12,
		BiweeklyTakeHome: annualTakeHome / 26,
		EffectiveRate:    totalTax / gross,
		MarginalFederal:  MarginalRate(federalTaxable, FederalBrackets),
		MarginalState:    MarginalRate(nyTaxable, NYStateBrackets),

		CommissionTaxWithheld:   commissionTaxWithheld,
		CommissionNetAnnual:     commissionNetAnnual,
		CommissionNetMonthly:    commissionNetAnnual / 12,
		CommissionEffectiveRate: rate,
		BaseNetAnnual:           baseNetAnnual,
		BaseNetMonthly:          baseNetAnnual / 12,
	}

	b.Breakdown = []TaxLine{
		{"Federal Income Tax", federalTax, federalTax / gross},
		{"NY State Tax", nyStateTax, nyStateTax / gross},
		{"NYC Local Tax", nycLocalTax, nycLocalTax / gross},
		{"Social Security", socialSecurity, socialSecurity / gross},
		{"Medicare", medicare, medicare / gross},
		{"401k Contribution", in.Pre401k, in.Pre401k / gross},
	}
	if in.PreHSA > 0 {
		b.Breakdown = append(b.Breakdown, TaxLine{"HSA Contribution", in.PreHSA, in.PreHSA / gross})
	}
	return b
}

// RampMatch is the result of the tiered employer-match formula.
type RampMatch struct {
	MatchPercent         float64
	MatchAmount          float64
	EmployeeContribution float64
	TotalAnnual          float64
	First3Match          float64 // match dollars from the 100% tier
	Next2Match           float64 // match dollars from the 50% tier
	MaxMatchPercent      float64
	MaxMatchAmount       float64
	OptimalContribution  float64 // contribution percent that earns the full match
}

// ComputeRampMatch implements the tiered 401k employer match: 100% on the
// first 3 points of contribution, 50% on the next 2, nothing past 5.
func ComputeRampMatch(annualSalary, contributionPercent float64) RampMatch {
	first3 := math.Min(contributionPercent, 3)
	next2 := math.Max(0, math.Min(contributionPercent-3, 2))
	matchPercent := first3 + next2*0.5
	employee := annualSalary * math.Min(contributionPercent, 100) / 100
	matchAmount := annualSalary * matchPercent / 100

	return RampMatch{
		MatchPercent:         matchPercent,
		MatchAmount:          matchAmount,
		EmployeeContribution: employee,
		TotalAnnual:          employee + matchAmount,
		First3Match:          annualSalary * first3 / 100,
		Next2Match:           annualSalary * next2 * 0.5 / 100,
		MaxMatchPercent:      4,
		MaxMatchAmount:       annualSalary * 4 / 100,
		OptimalContribution:  5,
	}
}
