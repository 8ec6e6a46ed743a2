package wealthpilot

// BudgetCategory is one of the three 50/30/20 buckets.
type BudgetCategory string

const (
	Needs   BudgetCategory = "needs"
	Wants   BudgetCategory = "wants"
	Savings BudgetCategory = "savings"
)

// ExpenseTypes are the recognized values for BudgetEntry.Type.
var ExpenseTypes = []string{"fixed", "variable"}

// Subcategories lists the fixed subcategory names per category.
var Subcategories = map[BudgetCategory][]string{
	Needs: {
		"Rent/Mortgage",
		"Utilities",
		"Groceries",
		"Insurance",
		"Transportation",
		"Minimum Debt Payments",
		"Phone",
		"Internet",
		"Healthcare",
		"Other Needs",
	},
	Wants: {
		"Dining Out",
		"Entertainment",
		"Shopping",
		"Subscriptions",
		"Travel",
		"Hobbies",
		"Personal Care",
		"Gifts",
		"Other Wants",
	},
	Savings: {
		"401k Contribution",
		"Roth IRA",
		"HSA",
		"Brokerage (ETFs)",
		"Crypto",
		"Emergency Fund",
		"Extra Debt Payment",
		"Other Savings",
	},
}

// BudgetEntry is a single monthly budget line item.
type BudgetEntry struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    BudgetCategory `json:"category"`
	Subcategory string         `json:"subcategory"`
	Amount      float64        `json:"amount"` // monthly dollars
	Type        string         `json:"type"`   // fixed or variable
}

// BudgetSummary aggregates budget entries into category totals and ratios.
type BudgetSummary struct {
	Totals        map[BudgetCategory]float64
	BySubcategory map[string]float64 // keyed "category:subcategory"
	GrandTotal    float64
	Percentages   map[BudgetCategory]float64 // fractions of GrandTotal, 0 when empty
	SavingsRate   float64
}

// SummarizeBudget sums budget entries into needs/wants/savings totals.
// Entries with an unknown category contribute to BySubcategory only.
func SummarizeBudget(entries []BudgetEntry) BudgetSummary {
	totals := map[BudgetCategory]float64{Needs: 0, Wants: 0, Savings: 0}
	bySub := make(map[string]float64)

	for _, e := range entries {
		if _, ok := totals[e.Category]; ok {
			totals[e.Category] += e.Amount
		}
		bySub[string(e.Category)+":"+e.Subcategory] += e.Amount
	}

	grand := totals[Needs] + totals[Wants] + totals[Savings]

	pct := map[BudgetCategory]float64{Needs: 0, Wants: 0, Savings: 0}
	if grand > 0 {
		for cat, total := range totals {
			pct[cat] = total / grand
		}
	}

	return BudgetSummary{
		Totals:        totals,
		BySubcategory: bySub,
		GrandTotal:    grand,
		Percentages:   pct,
		SavingsRate:   pct[Savings],
	}
}

// GroupByCategory splits entries into per-category lists, preserving order.
// Entries with an unknown category are dropped.
func GroupByCategory(entries []BudgetEntry) map[BudgetCategory][]BudgetEntry {
	groups := map[BudgetCategory][]BudgetEntry{Needs: nil, Wants: nil, Savings: nil}
	for _, e := range entries {
		if _, ok := groups[e.Category]; ok {
			groups[e.Category] = append(groups[e.Category], e)
		}
	}
	return groups
}
