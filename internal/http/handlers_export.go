package http

import (
	"log/slog"
	"net/http"

	"acontafacil/internal/export"
)

// handleExportCSV streams the full transaction history as a CSV
// download.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	data, err := export.TransactionsCSV(s.transactions.All())
	if err != nil {
		slog.ErrorContext(r.Context(), "CSV export failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(data))
}
