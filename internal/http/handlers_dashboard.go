package http

import (
	"net/http"
	"time"

	"acontafacil/internal/core"
	"acontafacil/internal/report"
)

// timeNow is the reference instant for "this month" figures.
// Indirected for tests.
var timeNow = time.Now

// dashboardResponse aggregates everything the overview screen shows.
// Figures are recomputed from the stores on every request.
type dashboardResponse struct {
	MonthIncome   core.Money                  `json:"monthIncome"`
	MonthExpenses core.Money                  `json:"monthExpenses"`
	MonthBalance  core.Money                  `json:"monthBalance"`
	TotalBalance  core.Money                  `json:"totalBalance"`
	CashFlow      []report.CashFlowDataPoint  `json:"cashFlow"`
	TopCategories []report.CategoryReportItem `json:"topCategories"`
	Goals         []goalView                  `json:"goals"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	now := timeNow()
	txs := s.transactions.All()

	totals := report.CurrentMonthTotals(txs, now)

	categories := report.CategoryBreakdown(txs, now)
	if len(categories) > 5 {
		categories = categories[:5]
	}

	goals := goalViews(s.goals.All())
	if len(goals) > 3 {
		goals = goals[:3]
	}

	writeJSON(w, r, http.StatusOK, dashboardResponse{
		MonthIncome:   totals.Income,
		MonthExpenses: totals.Expenses,
		MonthBalance:  core.Money{Cents: totals.Income.Cents - totals.Expenses.Cents},
		TotalBalance:  report.OverallBalance(txs),
		CashFlow:      report.CashFlowSeries(txs, now, 6),
		TopCategories: categories,
		Goals:         goals,
	})
}
