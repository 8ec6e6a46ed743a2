package wealthpilot

import (
	"github.com/go-playground/validator/v10"
)

// RiskTolerance selects the budget split and crypto exposure used by the
// advisory engine.
type RiskTolerance string

const (
	Conservative RiskTolerance = "conservative"
	Moderate     RiskTolerance = "moderate"
	Aggressive   RiskTolerance = "aggressive"
)

// DebtTypes are the loan categories a debt can be filed under.
var DebtTypes = []string{
	"Student Loan",
	"Credit Card",
	"Car Loan",
	"Personal Loan",
	"Mortgage",
	"Other",
}

// Debt is a single liability owned by the profile. The advisory engine
// classifies debts into payoff-priority tiers but never mutates them.
type Debt struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Balance        float64 `json:"balance" validate:"gte=0"`
	InterestRate   float64 `json:"interestRate" validate:"gte=0"`
	MinimumPayment float64 `json:"minimumPayment" validate:"gte=0"`
}

// Profile holds the identity and compensation fields that drive the tax and
// advisory calculators.
type Profile struct {
	Name                      string        `json:"name"`
	Age                       int           `json:"age" validate:"gte=0,lte=120"`
	AnnualSalary              float64       `json:"annualSalary" validate:"gte=0"`
	TakeHomePay               float64       `json:"takeHomePay" validate:"gte=0"`
	BaseSalary                float64       `json:"baseSalary" validate:"gte=0"`
	Commission                float64       `json:"commission" validate:"gte=0"` // monthly
	CommissionWithholdingRate float64       `json:"commissionWithholdingRate" validate:"gte=0,lte=1"`
	RiskTolerance             RiskTolerance `json:"riskTolerance" validate:"oneof=conservative moderate aggressive"`
	EmployerMatch             float64       `json:"employerMatch" validate:"gte=0,lte=100"`      // effective match, percent of salary
	EmployerMatchLimit        float64       `json:"employerMatchLimit" validate:"gte=0,lte=100"` // contribution percent needed for the full match
	Contribution401kPct       float64       `json:"contribution401kPct" validate:"gte=0,lte=100"`
	HSAAnnual                 float64       `json:"hsaAnnual" validate:"gte=0"`
	HasHSA                    bool          `json:"hasHSA"`
	FICAExempt                bool          `json:"ficaExempt"`
	Debts                     []Debt        `json:"debts" validate:"dive"`
}

// DefaultProfile returns the profile used before the user has entered one.
func DefaultProfile() Profile {
	return Profile{
		Age:                 23,
		RiskTolerance:       Aggressive,
		EmployerMatch:       4,
		EmployerMatchLimit:  5,
		Contribution401kPct: 5,
	}
}

// ProfileUpdate is a partial update to a Profile. Nil fields are left
// untouched; debts are replaced wholesale when set.
type ProfileUpdate struct {
	Name                      *string
	Age                       *int
	AnnualSalary              *float64
	TakeHomePay               *float64
	BaseSalary                *float64
	Commission                *float64
	CommissionWithholdingRate *float64
	RiskTolerance             *RiskTolerance
	EmployerMatch             *float64
	EmployerMatchLimit        *float64
	Contribution401kPct       *float64
	HSAAnnual                 *float64
	HasHSA                    *bool
	FICAExempt                *bool
	Debts                     []Debt
}

// Apply merges the update into p and returns the merged profile.
func (u ProfileUpdate) Apply(p Profile) Profile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.AnnualSalary != nil {
		p.AnnualSalary = *u.AnnualSalary
	}
	if u.TakeHomePay != nil {
		p.TakeHomePay = *u.TakeHomePay
	}
	if u.BaseSalary != nil {
		p.BaseSalary = *u.BaseSalary
	}
	if u.Commission != nil {
		p.Commission = *u.Commission
	}
	if u.CommissionWithholdingRate != nil {
		p.CommissionWithholdingRate = *u.CommissionWithholdingRate
	}
	if u.RiskTolerance != nil {
		p.RiskTolerance = *u.RiskTolerance
	}
	if u.EmployerMatch != nil {
		p.EmployerMatch = *u.EmployerMatch
	}
	if u.EmployerMatchLimit != nil {
		p.EmployerMatchLimit = *u.EmployerMatchLimit
	}
	if u.Contribution401kPct != nil {
		p.Contribution401kPct = *u.Contribution401kPct
	}
	if u.HSAAnnual != nil {
		p.HSAAnnual = *u.HSAAnnual
	}
	if u.HasHSA != nil {
		p.HasHSA = *u.HasHSA
	}
	if u.FICAExempt != nil {
		p.FICAExempt = *u.FICAExempt
	}
	if u.Debts != nil {
		p.Debts = u.Debts
	}
	return p
}

var validate = validator.New()

// Validate checks the profile's field constraints.
func (p Profile) Validate() error { return validate.Struct(p) }
