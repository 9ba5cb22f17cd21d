package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"acontafacil/internal/report"
)

// handleCategoryReport returns the expense breakdown for one calendar
// month, current month when year/month are not supplied.
func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	now := timeNow()
	year, month := parseYearMonth(r, now)
	ref := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())

	items := report.CategoryBreakdown(s.transactions.All(), ref)
	writeJSON(w, r, http.StatusOK, struct {
		Month      string                      `json:"month"`
		Categories []report.CategoryReportItem `json:"categories"`
	}{
		Month:      report.MonthLabel(year, month),
		Categories: items,
	})
}

// handleCashFlowReport returns the trailing monthly series, six months
// by default, clamped to 1..24.
func (s *Server) handleCashFlowReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	months := 6
	if v := strings.TrimSpace(r.URL.Query().Get("months")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			months = n
		}
	}
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	series := report.CashFlowSeries(s.transactions.All(), timeNow(), months)
	writeJSON(w, r, http.StatusOK, series)
}
