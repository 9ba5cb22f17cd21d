package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"acontafacil/internal/core"
	"acontafacil/internal/export"
	"acontafacil/internal/insights"
	"acontafacil/internal/report"
)

// handleInsights runs the personalized advice flow. Income, expenses
// and goals default to figures derived from the stores, so an empty
// body asks about the current ledger.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	var in insights.InsightsInput
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &in); err != nil {
			slog.ErrorContext(r.Context(), "Insights decode error", "error", err)
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	now := timeNow()
	txs := s.transactions.All()

	if in.Income == 0 {
		in.Income = report.CurrentMonthTotals(txs, now).Income.Reais()
	}
	if len(in.Expenses) == 0 {
		for _, item := range report.CategoryBreakdown(txs, now) {
			in.Expenses = append(in.Expenses, insights.ExpenseLine{
				Category: string(item.Category),
				Amount:   item.Amount.Reais(),
			})
		}
	}
	if in.FinancialGoals == "" {
		in.FinancialGoals = describeGoals(s.goals.All())
	}

	text := s.advisor.GenerateFinancialInsights(r.Context(), in)
	writeJSON(w, r, http.StatusOK, map[string]string{"insights": text})
}

// handleInsightsSummary narrates the trailing cash-flow series.
func (s *Server) handleInsightsSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	series := report.CashFlowSeries(s.transactions.All(), timeNow(), 12)
	data, err := json.Marshal(series)
	if err != nil {
		slog.ErrorContext(r.Context(), "Cash flow encoding failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	text := s.advisor.SummarizeCashFlowTrends(r.Context(), string(data))
	writeJSON(w, r, http.StatusOK, map[string]string{"summary": text})
}

// handleInsightsForecast projects future cash flow from the full
// transaction history.
func (s *Server) handleInsightsForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	horizon := "6 months"
	var req struct {
		Horizon string `json:"horizon"`
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Horizon) != "" {
			horizon = strings.TrimSpace(req.Horizon)
		}
	}

	csvData, err := export.TransactionsCSV(s.transactions.All())
	if err != nil {
		slog.ErrorContext(r.Context(), "CSV export failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	text := s.advisor.PredictFutureCashFlow(r.Context(), csvData, describeGoals(s.goals.All()), horizon)
	writeJSON(w, r, http.StatusOK, map[string]string{"forecast": text})
}

// describeGoals renders the goal list as prompt-friendly prose.
func describeGoals(goals []core.FinancialGoal) string {
	if len(goals) == 0 {
		return "No financial goals defined."
	}
	var sb strings.Builder
	for i, g := range goals {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(g.Name)
		sb.WriteString(": ")
		sb.WriteString(core.FormatReais(g.CurrentAmount.Cents))
		sb.WriteString(" of ")
		sb.WriteString(core.FormatReais(g.TargetAmount.Cents))
		if g.TargetDate != nil {
			sb.WriteString(" by ")
			sb.WriteString(g.TargetDate.Format("2006-01-02"))
		}
	}
	return sb.String()
}
