// Package insights wraps a hosted language model behind three
// prompt-template flows: personalized advice, trend summaries, and
// cash-flow forecasts. The rest of the system treats the model as an
// opaque text-in/text-out collaborator: responses are displayed
// verbatim, never parsed, and any failure collapses into a single
// fallback sentence.
package insights

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// TextGenerator is the outbound port to the model provider.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Fallback is what every flow returns when the provider fails. One
// generic result, no partial output, no retry.
const Fallback = "Não foi possível gerar a análise no momento. Tente novamente mais tarde."

type Service struct {
	gen TextGenerator
}

func NewService(gen TextGenerator) *Service {
	return &Service{gen: gen}
}

// ExpenseLine is one category row of the insight input.
type ExpenseLine struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// DebtLine describes one outstanding debt.
type DebtLine struct {
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interestRate"`
	MinimumPayment float64 `json:"minimumPayment"`
}

// InsightsInput is the structured record behind the advice flow.
type InsightsInput struct {
	Income         float64       `json:"income"`
	Expenses       []ExpenseLine `json:"expenses"`
	Debts          []DebtLine    `json:"debts"`
	Savings        float64       `json:"savings"`
	FinancialGoals string        `json:"financialGoals"`
}

// GenerateFinancialInsights renders the advisor prompt and returns the
// model's text, or Fallback on any failure.
func (s *Service) GenerateFinancialInsights(ctx context.Context, in InsightsInput) string {
	var sb strings.Builder
	sb.WriteString("You are a financial advisor providing personalized advice.\n\n")
	sb.WriteString("Based on the following financial data, provide actionable recommendations ")
	sb.WriteString("for saving money, reducing debt, or optimizing investments, tailored to ")
	sb.WriteString("help achieve the stated financial goals.\n\n")
	fmt.Fprintf(&sb, "Income: %.2f\nExpenses:\n", in.Income)
	for _, e := range in.Expenses {
		fmt.Fprintf(&sb, "- Category: %s, Amount: %.2f\n", e.Category, e.Amount)
	}
	sb.WriteString("Debts:\n")
	for _, d := range in.Debts {
		fmt.Fprintf(&sb, "- Name: %s, Balance: %.2f, Interest Rate: %.4f, Minimum Payment: %.2f\n",
			d.Name, d.Balance, d.InterestRate, d.MinimumPayment)
	}
	fmt.Fprintf(&sb, "Savings: %.2f\nFinancial Goals: %s\n\n", in.Savings, in.FinancialGoals)
	sb.WriteString("Provide insights in a clear and concise manner.")

	return s.generate(ctx, "financial_insights", sb.String())
}

// SummarizeCashFlowTrends asks for a summary of the raw transaction
// history passed as free text.
func (s *Service) SummarizeCashFlowTrends(ctx context.Context, cashFlowData string) string {
	prompt := "You are an expert financial analyst. Analyze the following cash flow data " +
		"and provide a concise summary of key trends, including significant income sources, " +
		"expense patterns, and potential areas for improvement.\n\nCash Flow Data:\n" + cashFlowData
	return s.generate(ctx, "cashflow_summary", prompt)
}

// PredictFutureCashFlow forecasts from historical CSV data over the
// given horizon (e.g. "next month", "next quarter").
func (s *Service) PredictFutureCashFlow(ctx context.Context, historicalCSV, goals, horizon string) string {
	var sb strings.Builder
	sb.WriteString("You are a financial advisor specializing in cash flow forecasting.\n\n")
	sb.WriteString("You will use the provided historical cash flow data and the user's ")
	sb.WriteString("financial goals to predict their future cash flow for the specified time period.\n\n")
	fmt.Fprintf(&sb, "Historical Data: %s\nFinancial Goals: %s\nPrediction Horizon: %s\n\n",
		historicalCSV, goals, horizon)
	sb.WriteString("Provide a clear and concise prediction of the user's cash flow, highlighting ")
	sb.WriteString("potential shortfalls or surpluses. Offer actionable insights and recommendations ")
	sb.WriteString("to help the user make informed financial decisions.")

	return s.generate(ctx, "cashflow_forecast", sb.String())
}

func (s *Service) generate(ctx context.Context, flow, prompt string) string {
	out, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		slog.ErrorContext(ctx, "Insight generation failed", "flow", flow, "error", err)
		return Fallback
	}
	if strings.TrimSpace(out) == "" {
		slog.WarnContext(ctx, "Insight generation returned empty text", "flow", flow)
		return Fallback
	}
	return out
}
