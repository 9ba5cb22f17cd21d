package http

import (
	"log/slog"
	"net/http"

	"acontafacil/internal/core"
)

// transactionRequest is the JSON payload for create and update calls.
// Amount is a decimal string; both "1200.50" and "1200,50" are
// accepted.
type transactionRequest struct {
	ID          string `json:"id,omitempty"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

// buildTransaction turns the wire payload into a domain record. Parse
// failures are reported here; domain validation happens in the store.
func buildTransaction(req transactionRequest) (core.Transaction, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		return core.Transaction{}, err
	}
	return core.Transaction{
		ID:          req.ID,
		Date:        date,
		Description: sanitizeInput(req.Description),
		Amount:      core.Money{Cents: cents},
		Type:        core.TransactionType(req.Type),
		Category:    core.Category(req.Category),
	}, nil
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, s.transactions.All())
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.ErrorContext(r.Context(), "Transaction decode error", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := buildTransaction(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid date or amount")
		return
	}

	created, err := s.transactions.Add(r.Context(), tx)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.ErrorContext(r.Context(), "Transaction decode error", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}

	tx, err := buildTransaction(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid date or amount")
		return
	}

	found, err := s.transactions.Update(r.Context(), req.ID, tx)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"updated": found})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		methodNotAllowed(w, "POST, DELETE")
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := decodeJSON(r, &req); err != nil || req.ID == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}

	deleted := s.transactions.Remove(r.Context(), req.ID)
	writeJSON(w, r, http.StatusOK, map[string]bool{"deleted": deleted})
}
