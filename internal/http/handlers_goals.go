package http

import (
	"log/slog"
	"net/http"

	"acontafacil/internal/core"
	"acontafacil/internal/report"
)

// goalRequest is the JSON payload for goal create and update calls.
// CurrentAmount is optional and defaults to zero; TargetDate is
// optional in YYYY-MM-DD format.
type goalRequest struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	TargetAmount  string `json:"targetAmount"`
	CurrentAmount string `json:"currentAmount,omitempty"`
	TargetDate    string `json:"targetDate,omitempty"`
}

// goalView is a goal enriched with its progress percentage.
type goalView struct {
	core.FinancialGoal
	Progress float64 `json:"progress"`
}

func buildGoal(req goalRequest) (core.FinancialGoal, error) {
	target, err := core.ParseDecimalToCents(req.TargetAmount)
	if err != nil {
		return core.FinancialGoal{}, err
	}
	current, err := core.ParseNonNegativeCents(req.CurrentAmount)
	if err != nil {
		return core.FinancialGoal{}, err
	}

	g := core.FinancialGoal{
		ID:            req.ID,
		Name:          sanitizeInput(req.Name),
		TargetAmount:  core.Money{Cents: target},
		CurrentAmount: core.Money{Cents: current},
	}
	if req.TargetDate != "" {
		td, err := parseDate(req.TargetDate)
		if err != nil {
			return core.FinancialGoal{}, err
		}
		g.TargetDate = &td
	}
	return g, nil
}

func goalViews(goals []core.FinancialGoal) []goalView {
	views := make([]goalView, len(goals))
	for i, g := range goals {
		views[i] = goalView{FinancialGoal: g, Progress: report.GoalProgress(g)}
	}
	return views
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, goalViews(s.goals.All()))
	case http.MethodPost:
		s.handleCreateGoal(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.ErrorContext(r.Context(), "Goal decode error", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := buildGoal(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid amount or date")
		return
	}

	created, err := s.goals.Add(r.Context(), g)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, r, http.StatusCreated, goalView{FinancialGoal: created, Progress: report.GoalProgress(created)})
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.ErrorContext(r.Context(), "Goal decode error", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}

	g, err := buildGoal(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid amount or date")
		return
	}

	found, err := s.goals.Update(r.Context(), req.ID, g)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"updated": found})
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
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

	deleted := s.goals.Remove(r.Context(), req.ID)
	writeJSON(w, r, http.StatusOK, map[string]bool{"deleted": deleted})
}
