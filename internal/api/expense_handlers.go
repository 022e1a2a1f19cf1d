package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"lifehub/internal/auth"
	"lifehub/internal/entities"
	"lifehub/internal/service"
)

type ExpenseHandler struct {
	Service *service.ExpenseService
}

func NewExpenseHandler(svc *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Service: svc}
}

func (h *ExpenseHandler) expenseRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from, err := parseTimeParam(r, "from", monthStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseTimeParam(r, "to", now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req entities.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	expense, err := h.Service.CreateExpense(r.Context(), auth.UserID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.ExpenseToResponse(expense))
}

func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	from, to, err := h.expenseRange(r)
	if err != nil {
		writeError(w, err)
		return
	}
	expenses, err := h.Service.ListExpenses(r.Context(), auth.UserID(r), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]entities.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, entities.ExpenseToResponse(&expenses[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ExpenseHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := h.expenseRange(r)
	if err != nil {
		writeError(w, err)
		return
	}
	summary, err := h.Service.Summary(r.Context(), auth.UserID(r), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	expense, err := h.Service.GetExpense(r.Context(), auth.UserID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.ExpenseToResponse(expense))
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req entities.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	expense, err := h.Service.UpdateExpense(r.Context(), auth.UserID(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.ExpenseToResponse(expense))
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteExpense(r.Context(), auth.UserID(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted"})
}
