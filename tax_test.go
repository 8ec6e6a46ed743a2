package wealthpilot

import "testing"

func TestComputeTakeHome_NYCSingleFiler(t *testing.T) {
	b := ComputeTakeHome(TakeHomeInput{BaseSalary: 85000})
	if b == nil {
		t.Fatal("ComputeTakeHome returned nil")
	}

	approxCents(t, "FederalTaxable", b.FederalTaxable, 70400)
	approxCents(t, "FederalTax", b.FederalTax, 10541)
	approxCents(t, "NYTaxable", b.NYTaxable, 77000)
	approxCents(t, "NYStateTax", b.NYStateTax, 4290.85)
	approxCents(t, "NYCLocalTax", b.NYCLocalTax, 2859.69)
	approxCents(t, "SocialSecurity", b.SocialSecurity, 5270)
	approxCents(t, "TotalMedicare", b.TotalMedicare, 1232.50)
	approxCents(t, "TotalTax", b.TotalTax, 24194.04)
	approxCents(t, "AnnualTakeHome", b.AnnualTakeHome, 60805.96)
	approxCents(t, "MonthlyTakeHome", b.MonthlyTakeHome, 5067.16)
	approx(t, "MarginalFederal", b.MarginalFederal, 0.22)
	approx(t, "MarginalState", b.MarginalState, 0.0585)
}

func TestComputeTakeHome_PreTaxReducesIncomeTaxNotFICA(t *testing.T) {
	without := ComputeTakeHome(TakeHomeInput{BaseSalary: 85000})
	with := ComputeTakeHome(TakeHomeInput{BaseSalary: 85000, Pre401k: 10000, PreHSA: 2000})

	if with.FederalTax >= without.FederalTax {
		t.Errorf("FederalTax with pre-tax = %v, want below %v", with.FederalTax, without.FederalTax)
	}
	if with.NYStateTax >= without.NYStateTax {
		t.Errorf("NYStateTax with pre-tax = %v, want below %v", with.NYStateTax, without.NYStateTax)
	}
	// Payroll wages are not reduced.
	approx(t, "SocialSecurity", with.SocialSecurity, without.SocialSecurity)
	approx(t, "TotalMedicare", with.TotalMedicare, without.TotalMedicare)
	approx(t, "TotalPreTax", with.TotalPreTax, 12000)
}

func TestComputeTakeHome_NonPositiveGross(t *testing.T) {
	if b := ComputeTakeHome(TakeHomeInput{}); b != nil {
		t.Errorf("ComputeTakeHome(zero) = %v, want nil", b)
	}
	if b := ComputeTakeHome(TakeHomeInput{BaseSalary: -100}); b != nil {
		t.Errorf("ComputeTakeHome(negative) = %v, want nil", b)
	}
}

func TestComputeTakeHome_SocialSecurityWageCap(t *testing.T) {
	b := ComputeTakeHome(TakeHomeInput{BaseSalary: 250000})

	approxCents(t, "SocialSecurity", b.SocialSecurity, 168600*0.062)
	// Additional medicare above 200k.
	approxCents(t, "TotalMedicare", b.TotalMedicare, 250000*0.0145+50000*0.009)
}

func TestComputeTakeHome_CommissionWithholding(t *testing.T) {
	b := ComputeTakeHome(TakeHomeInput{BaseSalary: 60000, Commission: 24000})

	// Flat supplemental rate defaults to 40%.
	approx(t, "CommissionWithholdingRate", b.CommissionWithholdingRate, 0.40)
	approxCents(t, "CommissionTaxWithheld", b.CommissionTaxWithheld, 9600)
	approxCents(t, "CommissionNetAnnual", b.CommissionNetAnnual, 14400)
	approxCents(t, "CommissionNetMonthly", b.CommissionNetMonthly, 1200)
	approx(t, "GrossIncome", b.GrossIncome, 84000)

	custom := ComputeTakeHome(TakeHomeInput{BaseSalary: 60000, Commission: 24000, CommissionWithholdingRate: 0.25})
	approxCents(t, "custom CommissionTaxWithheld", custom.CommissionTaxWithheld, 6000)
}

func TestComputeTakeHome_FICAExemptStillTaxed(t *testing.T) {
	exempt := ComputeTakeHome(TakeHomeInput{BaseSalary: 85000, FICAExempt: true})
	normal := ComputeTakeHome(TakeHomeInput{BaseSalary: 85000})

	// The flag is presentation only: the totals are identical.
	if !exempt.FICAExempt {
		t.Error("FICAExempt flag not carried through")
	}
	approx(t, "TotalTax", exempt.TotalTax, normal.TotalTax)
	approx(t, "AnnualTakeHome", exempt.AnnualTakeHome, normal.AnnualTakeHome)
}

func TestBracketTax_Monotonic(t *testing.T) {
	prev := 0.0
	for income := 0.0; income <= 700000; income += 12500 {
		tax := BracketTax(income, FederalBrackets)
		if tax < prev {
			t.Fatalf("BracketTax(%v) = %v, below tax at lower income %v", income, tax, prev)
		}
		if tax > income {
			t.Fatalf("BracketTax(%v) = %v exceeds income", income, tax)
		}
		prev = tax
	}
}

func TestBracketTax_Boundaries(t *testing.T) {
	// Exactly at a bracket edge the higher rate has not kicked in yet.
	approxCents(t, "at 11600", BracketTax(11600, FederalBrackets), 1160)
	approxCents(t, "just above", BracketTax(11601, FederalBrackets), 1160.12)
	approx(t, "at zero", BracketTax(0, FederalBrackets), 0)
}

func TestMarginalRate(t *testing.T) {
	tests := []struct {
		income float64
		want   float64
	}{
		{0, 0.10},
		{11600, 0.10},
		{11601, 0.12},
		{70400, 0.22},
		{1000000, 0.37},
	}
	for _, tc := range tests {
		if got := MarginalRate(tc.income, FederalBrackets); got != tc.want {
			t.Errorf("MarginalRate(%v) = %v, want %v", tc.income, got, tc.want)
		}
	}
}

func TestComputeRampMatch(t *testing.T) {
	m := ComputeRampMatch(100000, 5)

	// 100% on the first 3%, 50% on the next 2%.
	approx(t, "MatchPercent", m.MatchPercent, 4)
	approxCents(t, "MatchAmount", m.MatchAmount, 4000)
	approxCents(t, "First3Match", m.First3Match, 3000)
	approxCents(t, "Next2Match", m.Next2Match, 1000)
	approxCents(t, "EmployeeContribution", m.EmployeeContribution, 5000)
	approxCents(t, "TotalAnnual", m.TotalAnnual, 9000)
	approx(t, "OptimalContribution", m.OptimalContribution, 5)
}

func TestComputeRampMatch_Tiers(t *testing.T) {
	tests := []struct {
		contribution float64
		wantMatchPct float64
	}{
		{0, 0},
		{1, 1},
		{3, 3},
		{4, 3.5},
		{5, 4},
		{10, 4}, // capped at the full match
	}
	for _, tc := range tests {
		m := ComputeRampMatch(100000, tc.contribution)
		approx(t, "MatchPercent", m.MatchPercent, tc.wantMatchPct)
		if m.MatchPercent > m.MaxMatchPercent {
			t.Errorf("MatchPercent %v exceeds MaxMatchPercent %v", m.MatchPercent, m.MaxMatchPercent)
		}
	}
}
