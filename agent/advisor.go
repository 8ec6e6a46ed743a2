package agent

import (
	"context"

	"google.golang.org/genai"

	"github.com/wealthpilot/wealthpilot"
	"github.com/wealthpilot/wealthpilot/date"
	"github.com/wealthpilot/wealthpilot/renderer"
)

const model = "gemini-2.5-pro"

// reportTool exposes one engine report to the model as a zero-argument
// function returning markdown.
type reportTool struct {
	name        string
	description string
	render      func() string
}

func (t reportTool) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        t.name,
		Description: t.description,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The report as markdown.",
		},
	}
}

func (t reportTool) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     t.name,
		Response: map[string]any{"output": t.render()},
	}
}

// NewAdvisor builds the financial-advisor expert. Every figure it quotes
// comes from the engine through its tools; the model only explains.
func NewAdvisor(app *wealthpilot.App, today date.Date) *Expert {
	tools := []Function{
		reportTool{
			name:        "get_portfolio",
			description: "Current holdings with cost basis, market value, gain/loss, allocation, and drift against the recommended ETF targets.",
			render:      func() string { return renderer.PortfolioMarkdown(app.Holdings) },
		},
		reportTool{
			name:        "get_budget",
			description: "Monthly budget entries and the needs/wants/savings totals and ratios.",
			render:      func() string { return renderer.BudgetMarkdown(app.Budget) },
		},
		reportTool{
			name:        "get_advisory",
			description: "The computed advisory: budget split, debt strategy, retirement waterfall, and the ETF/crypto investing plan.",
			render:      func() string { return renderer.AdvisoryMarkdown(wealthpilot.ComputeAdvisory(app.Profile)) },
		},
		reportTool{
			name:        "get_take_home",
			description: "The NYC take-home pay estimate: bracket taxes, FICA, pre-tax contributions, and net pay per period.",
			render: func() string {
				return renderer.TaxMarkdown(wealthpilot.ComputeTakeHome(wealthpilot.TakeHomeInput{
					BaseSalary:                app.Profile.BaseSalary,
					Commission:                app.Profile.Commission * 12,
					CommissionWithholdingRate: app.Profile.CommissionWithholdingRate,
					Pre401k:                   app.Profile.AnnualSalary * app.Profile.Contribution401kPct / 100,
					PreHSA:                    app.Profile.HSAAnnual,
					FICAExempt:                app.Profile.FICAExempt,
				}))
			},
		},
		reportTool{
			name:        "get_rsus",
			description: "RSU grants, vesting progress, and the upcoming twelve months of vests.",
			render:      func() string { return renderer.RSUMarkdown(app.Grants, today) },
		},
	}

	return &Expert{
		Name:        "Advisor",
		Description: "A personal-finance advisor over the user's own data.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal-finance advisor. The user's budget, portfolio,
			RSU grants, tax estimate, and the computed advisory are available
			through your tools; read them before answering and quote figures
			from them rather than estimating yourself.

			Be concrete and brief. This is general guidance, not tax or
			investment advice, and you should say so when the stakes warrant it.
		`}}},
		},
		Library: NewLibrary(tools),
	}
}
